// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "testing"

func newTestDecoder(am map[string]string, bi map[string]int64, maxDepth int) *Decoder {
	a := &AddressMap{m: am}
	b := &BinaryIndex{m: bi}
	return NewDecoder(a, b, maxDepth)
}

func TestDecodeAtom(t *testing.T) {
	d := newTestDecoder(nil, nil, DefaultMaxDepth)
	got := d.Decode("A3:foo")
	if got != "foo" {
		t.Fatalf("got %q, want %q", got, "foo")
	}
}

func TestDecodeInteger(t *testing.T) {
	d := newTestDecoder(nil, nil, DefaultMaxDepth)
	if got := d.Decode("I42"); got != "42" {
		t.Fatalf("got %q, want %q", got, "42")
	}
}

func TestDecodeTuple(t *testing.T) {
	d := newTestDecoder(nil, nil, DefaultMaxDepth)
	got := d.Decode("t2:A3:foo,I1")
	want := "{foo, 1}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeConsListWithHeapRef(t *testing.T) {
	am := map[string]string{"ABC": "I7"}
	d := newTestDecoder(am, nil, DefaultMaxDepth)
	got := d.Decode("lI1|HABC|N")
	want := "[1, 7]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeUnresolvedHeapRef(t *testing.T) {
	d := newTestDecoder(nil, nil, DefaultMaxDepth)
	got := d.Decode("HDEAD")
	want := "*U - DEAD"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeRefCountedBinary(t *testing.T) {
	bi := map[string]int64{"A1": 10}
	d := newTestDecoder(nil, bi, DefaultMaxDepth)
	got := d.Decode("Yca1:0:10")
	want := "<<ref-counted bin addr=A1 off=0 sz=10 len=10>>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeSubBinaryOutOfBounds(t *testing.T) {
	bi := map[string]int64{"A1": 4}
	d := newTestDecoder(nil, bi, DefaultMaxDepth)
	got := d.Decode("Ysa1:2:10")
	want := "<<sub bin addr=A1 off=2 sz=10 len=4: out of bounds>>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestDecodeCycleTerminates mirrors spec.md §8 scenario 7: a cyclic
// AddressMap (A -> B -> C -> A) must terminate and produce exactly one
// depth-bound marker, never recurse forever.
func TestDecodeCycleTerminates(t *testing.T) {
	am := map[string]string{"A": "HB", "B": "HC", "C": "HA"}
	d := newTestDecoder(am, nil, 2)
	got := d.Decode("HA")
	want := "(*HA)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeDeterministic(t *testing.T) {
	am := map[string]string{"A": "I5"}
	d := newTestDecoder(am, nil, DefaultMaxDepth)
	s := "t2:HA,A3:foo"
	first := d.Decode(s)
	second := d.Decode(s)
	if first != second {
		t.Fatalf("decode not deterministic: %q vs %q", first, second)
	}
}

func TestDecodeEmptyList(t *testing.T) {
	d := newTestDecoder(nil, nil, DefaultMaxDepth)
	if got := d.Decode("N"); got != "[]" {
		t.Fatalf("got %q, want %q", got, "[]")
	}
}

func TestDecodeImproperList(t *testing.T) {
	d := newTestDecoder(nil, nil, DefaultMaxDepth)
	got := d.Decode("lI1|I2")
	want := "[1 | 2]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
