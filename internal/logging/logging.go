// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging provides the small stderr-by-default logger the
// crashdump engine uses for non-fatal warnings (duplicate addresses,
// truncated sections, unknown tags). It wraps the standard log.Logger
// rather than pulling in a structured logging library, matching the
// teacher's own cmd/viewcore practice of writing diagnostics straight
// to os.Stderr with fmt.Fprintf.
package logging

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	logger = log.New(os.Stderr, "crashdump: ", 0)
)

// SetOutput redirects future log output, primarily for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "crashdump: ", 0)
}

// Warnf logs a non-fatal warning.
func Warnf(format string, args ...interface{}) {
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Printf("warn: "+format, args...)
}
