// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "strings"

// rawLineKinds carries repeating or non-keyed content (heaps, literals,
// persistent terms, stacks, message queues) where every line is raw
// content, never a KEY: VALUE pair (SPEC_FULL.md §4.4).
var rawLineKinds = map[Kind]bool{
	KindProcHeap:        true,
	KindProcStack:       true,
	KindProcMessages:    true,
	KindProcDictionary:  true,
	KindLiterals:        true,
	KindPersistentTerms: true,
	KindBinary:          true,
	KindAtoms:           true,
}

// parseSection splits one section's text into a header line plus a
// classified body: KEY: VALUE lines go into kv, everything else
// (including all lines of a raw-line kind) goes into lines, in file
// order.
func parseSection(kind Kind, tag, id, text string) *GenericSection {
	g := &GenericSection{
		Tag: tag,
		ID:  id,
		KV:  make(map[string]string),
	}

	lines := splitLinesKeepNone(text)
	if len(lines) == 0 {
		return g
	}
	// The first line is the header; skip it.
	body := lines[1:]

	raw := rawLineKinds[kind]
	for _, line := range body {
		if !raw {
			if key, val, ok := parseKV(line); ok {
				g.KV[key] = val
				continue
			}
		}
		g.Lines = append(g.Lines, line)
	}
	return g
}

// splitLinesKeepNone splits text on '\n', trimming a trailing '\r' from
// each line, and drops the final empty element produced when text ends
// in a newline.
func splitLinesKeepNone(text string) []string {
	parts := strings.Split(text, "\n")
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// parseKV recognizes a single "KEY: VALUE" line: single ':' delimiter
// followed by exactly one space, per SPEC_FULL.md §4.4.
func parseKV(line string) (key, val string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 || i+1 >= len(line) || line[i+1] != ' ' {
		return "", "", false
	}
	return line[:i], line[i+2:], true
}
