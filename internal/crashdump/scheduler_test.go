// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "testing"

func TestDecodeSchedulerInfoWithoutCurrentProcess(t *testing.T) {
	kv := map[string]string{
		"Current Port":            "#Port<0.5>",
		"Sleep Info Flags":        "[SLEEPING]",
		"Run Queue Max Length":    "4",
		"Run Queue High Length":   "1",
		"Run Queue Normal Length": "2",
		"Run Queue Low Length":    "0",
		"Run Queue Port Length":   "1",
	}
	s := decodeSchedulerInfo("1", kv, nil)
	if s.ID != "1" || s.CurrentPort != "#Port<0.5>" {
		t.Fatalf("unexpected scheduler info: %+v", s)
	}
	if s.RunQueue.MaxLength != 4 || s.RunQueue.HighLength != 1 {
		t.Fatalf("unexpected run queue: %+v", s.RunQueue)
	}
	if s.CurrentProcess != nil {
		t.Fatalf("expected nil CurrentProcess, got %+v", s.CurrentProcess)
	}
}

func TestDecodeSchedulerInfoWithCurrentProcess(t *testing.T) {
	kv := map[string]string{
		"Current Process":                    "<0.30.0>",
		"Current Process State":              "Running",
		"Current Process Internal State":     "ACTIVE|GC",
		"Current Process Program counter":    "0x7f0010 (lists:map/2 + 16)",
		"Stack+heap":                         "200",
	}
	lines := []string{
		"y0:I1",
		"0x7f0020:SReturn addr 0x7f0030 (erlang:apply/2 + 8)",
	}
	s := decodeSchedulerInfo("2", kv, lines)
	if s.CurrentProcess == nil {
		t.Fatal("expected non-nil CurrentProcess")
	}
	cp := s.CurrentProcess
	if cp.Pid != "<0.30.0>" || cp.State != "Running" {
		t.Fatalf("unexpected current process: %+v", cp)
	}
	if len(cp.InternalState) != 2 || cp.InternalState[0] != "ACTIVE" || cp.InternalState[1] != "GC" {
		t.Fatalf("unexpected internal state: %+v", cp.InternalState)
	}
	if cp.ProgramCounter.Module != "lists" || cp.ProgramCounter.Function != "map" {
		t.Fatalf("unexpected program counter: %+v", cp.ProgramCounter)
	}
	if len(cp.StackTrace) != 2 {
		t.Fatalf("expected 2 stack frames (synthetic base + one), got %d", len(cp.StackTrace))
	}
	if !cp.StackTrace[0].Synthetic {
		t.Fatal("expected first frame to be the synthetic base frame")
	}
	if cp.StackTrace[1].Module != "erlang" || cp.StackTrace[1].Function != "apply" {
		t.Fatalf("unexpected decoded frame: %+v", cp.StackTrace[1])
	}
}
