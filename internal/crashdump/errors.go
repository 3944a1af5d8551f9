// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrIO is the sentinel wrapped by failures to open or read the dump
// file. Fatal for Load.
var ErrIO = errors.New("crashdump: i/o error")

// ErrFormat is the sentinel wrapped when the scanner finds no section
// headers at all or meets a binary null byte, and the one
// DuplicateIDError unwraps to. Fatal for Load; the kind of the first
// section is not checked, and every other malformed-input condition is
// recovered locally (§7 of SPEC_FULL.md).
var ErrFormat = errors.New("crashdump: format error")

// ErrCancelled is returned by Load when the caller's context is
// cancelled mid-parse.
var ErrCancelled = errors.New("crashdump: cancelled")

// wrapIO wraps err, attributing it to ErrIO, with msg as additional
// context (e.g. the path involved). Both err and ErrIO are reachable
// through errors.Is on the result.
func wrapIO(err error, msg string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %w", fmt.Sprintf(msg, args...), ErrIO, err)
}

// formatErrorf builds a new ErrFormat-rooted error with the given
// message.
func formatErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrFormat)
}

// DuplicateIDError reports a keyed section kind with two entries sharing
// the same id — a FormatError per spec.md §4.2.
type DuplicateIDError struct {
	Kind Kind
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("crashdump: duplicate %s id %q", e.Kind, e.ID)
}

func (e *DuplicateIDError) Unwrap() error { return ErrFormat }
