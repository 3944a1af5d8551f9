// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "testing"

func TestDecodePreamble(t *testing.T) {
	kv := map[string]string{
		"Slogan":         "init terminating in do_boot",
		"System version": "Erlang/OTP 26 [erts-14.0]",
		"Taints":         "[crypto, asn1]",
		"Atoms":          "1024",
		"Calling Thread": "scheduler:1",
	}
	lines := []string{"Wed Jul 29 12:00:00 2026"}
	p := decodePreamble("0.5", lines, kv)
	if p.Version != "0.5" {
		t.Fatalf("expected version from header id, got %q", p.Version)
	}
	if p.ErtsBanner != "Erlang/OTP 26 [erts-14.0]" {
		t.Fatalf("expected erts banner from System version kv, got %q", p.ErtsBanner)
	}
	if p.Timestamp != "Wed Jul 29 12:00:00 2026" {
		t.Fatalf("unexpected timestamp: %q", p.Timestamp)
	}
	if p.Slogan != "init terminating in do_boot" {
		t.Fatalf("unexpected slogan: %q", p.Slogan)
	}
	if len(p.Taints) != 2 || p.Taints[0] != "crypto" || p.Taints[1] != "asn1" {
		t.Fatalf("unexpected taints: %+v", p.Taints)
	}
	if p.AtomCount != 1024 {
		t.Fatalf("unexpected atom count: %d", p.AtomCount)
	}
}

func TestDecodeAbort(t *testing.T) {
	a := decodeAbort("  heap allocation failure  ")
	if a.Reason != "heap allocation failure" {
		t.Fatalf("unexpected abort reason: %q", a.Reason)
	}
}
