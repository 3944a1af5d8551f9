// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "testing"

func TestParseSectionKV(t *testing.T) {
	text := "=proc:<0.1.0>\nState: Running\nName: my_proc\n"
	sec := parseSection(KindProc, "proc", "<0.1.0>", text)
	if sec.KV["State"] != "Running" || sec.KV["Name"] != "my_proc" {
		t.Fatalf("unexpected kv: %+v", sec.KV)
	}
	if len(sec.Lines) != 0 {
		t.Fatalf("expected no raw lines, got %v", sec.Lines)
	}
}

func TestParseSectionRawLines(t *testing.T) {
	text := "=proc_heap:<0.1.0>\n41000:I1\n41010:I2\n"
	sec := parseSection(KindProcHeap, "proc_heap", "<0.1.0>", text)
	if len(sec.Lines) != 2 {
		t.Fatalf("expected 2 raw lines, got %d: %v", len(sec.Lines), sec.Lines)
	}
	if len(sec.KV) != 0 {
		t.Fatalf("expected no kv pairs for a raw-line kind, got %+v", sec.KV)
	}
}

func TestParseKVRequiresSingleSpace(t *testing.T) {
	if _, _, ok := parseKV("State:Running"); ok {
		t.Fatal("expected parseKV to reject missing space after colon")
	}
	key, val, ok := parseKV("State: Running")
	if !ok || key != "State" || val != "Running" {
		t.Fatalf("got key=%q val=%q ok=%v", key, val, ok)
	}
}
