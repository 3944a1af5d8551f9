// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import (
	"os"
	"unicode/utf8"
)

// source is the positional-read handle the loader reads sections
// through. Each caller that needs concurrent access opens its own
// source over the same path, so no file-cursor state is ever shared
// (SPEC_FULL.md §4.3 and §5).
type source struct {
	f *os.File
}

func openSource(path string) (*source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapIO(err, "opening %s", path)
	}
	return &source{f: f}, nil
}

func (s *source) Close() error {
	return s.f.Close()
}

// load reads exactly entry.Length bytes at entry.Start and returns them
// as UTF-8 text with lossy replacement for invalid bytes. Crash dumps
// are mostly ASCII but ProcHeap lines can carry raw binary bytes for
// heap binaries; the parser downstream must not assume strict UTF-8.
func (s *source) load(entry *IndexEntry) (string, error) {
	buf := make([]byte, entry.Length)
	n, err := s.f.ReadAt(buf, entry.Start)
	if err != nil && int64(n) != entry.Length {
		return "", wrapIO(err, "reading section %s at offset %d", entry.Kind, entry.Start)
	}
	return toValidUTF8(buf[:n]), nil
}

// toValidUTF8 performs lossy UTF-8 replacement without the extra
// allocation churn of strings.ToValidUTF8 for the already-valid common
// case.
func toValidUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return string([]rune(string(b)))
}
