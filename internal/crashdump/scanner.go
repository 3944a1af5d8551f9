// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import (
	"bufio"
	"io"
	"strings"
)

// headerRef is one section header found by the scanner: its kind, its id
// (if any), and the absolute byte offset of the leading '='.
type headerRef struct {
	Kind   Kind
	ID     string
	Tag    string // literal tag text, used when Kind == KindOther
	Offset int64
}

// scan performs the single linear pass over r described in
// SPEC_FULL.md §4.1: it locates every line beginning with '=' and
// records its kind, optional id, and absolute byte offset of the '='.
//
// r is read from its current position to EOF. The scanner does not
// interpret section bodies; it only recognizes header lines.
func scan(r io.Reader) ([]headerRef, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	var refs []headerRef
	var offset int64

	for {
		line, err := br.ReadString('\n')
		lineLen := int64(len(line))
		if len(line) > 0 {
			if hasNullByte(line) {
				return nil, formatErrorf("binary null byte encountered at offset %d", offset)
			}
			if strings.HasPrefix(line, "=") {
				ref, ok := parseHeaderLine(line, offset)
				if ok {
					if ref.Kind == KindOther {
						logWarnf("unknown section tag %q at offset %d, bucketed as other", ref.Tag, offset)
					}
					refs = append(refs, ref)
				}
			}
		}
		offset += lineLen
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapIO(err, "scanning crash dump")
		}
	}
	return refs, nil
}

func hasNullByte(s string) bool {
	return strings.IndexByte(s, 0) >= 0
}

// parseHeaderLine parses a single "=TAG" or "=TAG:ID\n" line at the
// given absolute offset. The split on ':' is one-shot on the first
// colon; any remaining colons become part of the id (spec.md §4.1's
// "pathological VM output" case).
func parseHeaderLine(line string, offset int64) (headerRef, bool) {
	body := strings.TrimPrefix(line, "=")
	body = strings.TrimRight(body, "\r\n")
	body = strings.TrimRight(body, " \t")
	if body == "" {
		return headerRef{}, false
	}

	tag := body
	id := ""
	if i := strings.IndexByte(body, ':'); i >= 0 {
		tag = body[:i]
		id = strings.TrimSpace(body[i+1:])
	}
	kind := normalizeTag(tag)
	return headerRef{Kind: kind, ID: id, Tag: tag, Offset: offset}, true
}
