// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "testing"

func TestDecodeProcInfoDefaultsMissingFields(t *testing.T) {
	kv := map[string]string{
		"State": "Running",
	}
	p := decodeProcInfo("<0.5.0>", kv)
	if p.State != "Running" {
		t.Fatalf("unexpected state: %q", p.State)
	}
	if p.Reductions != 0 || p.Memory != 0 || p.BinVHeap != 0 {
		t.Fatalf("expected missing numeric fields to default to 0: %+v", p)
	}
}

func TestDecodeProcInfoLinksAndInternalState(t *testing.T) {
	kv := map[string]string{
		"Link list":     "[<0.1.0>, <0.2.0>]",
		"Internal State": "running | garbage_collecting",
	}
	p := decodeProcInfo("<0.5.0>", kv)
	if len(p.Links) != 2 || p.Links[0] != "<0.1.0>" || p.Links[1] != "<0.2.0>" {
		t.Fatalf("unexpected links: %v", p.Links)
	}
	if len(p.InternalState) != 2 || p.InternalState[0] != "running" {
		t.Fatalf("unexpected internal state: %v", p.InternalState)
	}
}

func TestDecodeProgramCounter(t *testing.T) {
	pc := parseProgramCounter("0x7f1234 (lists:map/2 + 48)")
	if pc.Module != "lists" || pc.Function != "map" || pc.Arity != 2 {
		t.Fatalf("unexpected program counter: %+v", pc)
	}
	if pc.Offset != 0x48 {
		t.Fatalf("expected hex offset 0x48, got %d", pc.Offset)
	}
}

func TestTotalBinVHeapDerivedInvariant(t *testing.T) {
	p := ProcInfo{BinVHeap: 10, OldBinVHeap: 5}
	if got := p.TotalBinVHeap(); got != 15 {
		t.Fatalf("got %d, want 15", got)
	}
}
