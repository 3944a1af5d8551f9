// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "strings"

// decodePreamble builds the single Preamble section. id is the crash-dump
// format version carried in the `=erl_crash_dump:<id>` header itself; the
// first line of the body is a free-form timestamp; everything after is kv
// (§4.4, §6).
func decodePreamble(id string, lines []string, kv map[string]string) Preamble {
	var timestamp string
	if len(lines) > 0 {
		timestamp = strings.TrimSpace(lines[0])
	}
	return Preamble{
		Version:       id,
		Timestamp:     timestamp,
		Slogan:        kv["Slogan"],
		ErtsBanner:    kv["System version"],
		Taints:        parseBracketList(kv["Taints"]),
		AtomCount:     atoiDefault(kv["Atoms"]),
		CallingThread: kv["Calling Thread"],
	}
}

// decodeAbort builds an Abort from the reason text carried in the
// `=abort:<reason>` header (the section's id), present instead of the normal section set
// when the VM aborted before producing a full dump (SPEC_FULL.md §3).
func decodeAbort(reason string) Abort {
	return Abort{Reason: strings.TrimSpace(reason)}
}
