// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

// decodeTimerInfo builds a TimerInfo from a timer section's kv map
// (SPEC_FULL.md §4.12: {owner_pid_or_port, encoded_message,
// time_left_ms}).
func decodeTimerInfo(kv map[string]string) TimerInfo {
	owner := kv["Process"]
	if owner == "" {
		owner = kv["Port"]
	}
	return TimerInfo{
		Owner:      owner,
		Message:    kv["Message"],
		TimeLeftMs: atoiDefault(kv["Time left"]),
	}
}
