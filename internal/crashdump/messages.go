// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "strings"

// decodeProcMessages turns ProcMessages's raw "ADDR:TERM" lines into an
// ordered slice of MessageEntry, preserving file order (§4.8).
func decodeProcMessages(pid string, lines []string) ProcMessages {
	pm := ProcMessages{Pid: pid}
	for _, line := range lines {
		i := strings.IndexByte(line, ':')
		if i < 0 {
			continue
		}
		pm.Entries = append(pm.Entries, MessageEntry{
			Address: strings.TrimSpace(line[:i]),
			Value:   line[i+1:],
		})
	}
	return pm
}
