// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "github.com/erlangtools/crashdump/internal/logging"

// logWarnf routes the engine's non-fatal warnings (duplicate address
// overwritten, truncated final section, unknown tag bucketed as other)
// through internal/logging (SPEC_FULL.md §4.0, §7).
func logWarnf(format string, args ...interface{}) {
	logging.Warnf(format, args...)
}
