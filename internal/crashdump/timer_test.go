// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "testing"

func TestDecodeTimerInfoProcessOwner(t *testing.T) {
	kv := map[string]string{
		"Process":   "<0.99.0>",
		"Message":   "41000:I1",
		"Time left": "1500",
	}
	tm := decodeTimerInfo(kv)
	if tm.Owner != "<0.99.0>" || tm.Message != "41000:I1" || tm.TimeLeftMs != 1500 {
		t.Fatalf("unexpected timer info: %+v", tm)
	}
}

func TestDecodeTimerInfoPortOwnerFallback(t *testing.T) {
	kv := map[string]string{
		"Port":      "#Port<0.10>",
		"Time left": "200",
	}
	tm := decodeTimerInfo(kv)
	if tm.Owner != "#Port<0.10>" {
		t.Fatalf("expected port fallback owner, got %q", tm.Owner)
	}
}
