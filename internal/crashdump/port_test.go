// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "testing"

func TestDecodePortInfo(t *testing.T) {
	kv := map[string]string{
		"State":                          "CONNECTED|BUSY",
		"Slot":                           "3",
		"Connected":                      "<0.50.0>",
		"Links":                          "[<0.51.0>, <0.52.0>]",
		"Registered as":                  "my_port",
		"Port controls linked process":   "<0.53.0>",
		"Input":                          "1024",
		"Output":                         "2048",
		"Queue":                          "0",
	}
	p := decodePortInfo("#Port<0.7>", kv)
	if p.ID != "#Port<0.7>" {
		t.Fatalf("unexpected id: %q", p.ID)
	}
	if len(p.State) != 2 || p.State[0] != "CONNECTED" || p.State[1] != "BUSY" {
		t.Fatalf("unexpected state: %+v", p.State)
	}
	if p.Slot != 3 || p.Connected != "<0.50.0>" || p.RegisteredAs != "my_port" {
		t.Fatalf("unexpected scalar fields: %+v", p)
	}
	if len(p.Links) != 2 || p.Links[0] != "<0.51.0>" || p.Links[1] != "<0.52.0>" {
		t.Fatalf("unexpected links: %+v", p.Links)
	}
	if p.Input != 1024 || p.Output != 2048 || p.Queue != 0 {
		t.Fatalf("unexpected io counters: %+v", p)
	}
}

func TestDecodePortInfoMissingFields(t *testing.T) {
	p := decodePortInfo("#Port<0.8>", map[string]string{})
	if p.Slot != 0 || p.Input != 0 || p.Output != 0 {
		t.Fatalf("expected zero defaults, got %+v", p)
	}
	if p.State != nil {
		t.Fatalf("expected nil state for empty value, got %+v", p.State)
	}
}
