// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import (
	"strings"
	"testing"
)

func TestScanBasic(t *testing.T) {
	text := "=erl_crash_dump:0.5\n" +
		"Wed Jul 29 2026\n" +
		"=proc:<0.1.0>\n" +
		"State: Running\n" +
		"=end\n"
	refs, err := scan(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 3 {
		t.Fatalf("got %d refs, want 3: %+v", len(refs), refs)
	}
	if refs[0].Kind != KindPreamble || refs[0].Offset != 0 {
		t.Fatalf("unexpected first ref: %+v", refs[0])
	}
	if refs[1].Kind != KindProc || refs[1].ID != "<0.1.0>" {
		t.Fatalf("unexpected second ref: %+v", refs[1])
	}
	if refs[1].Offset != int64(len("=erl_crash_dump:0.5\nWed Jul 29 2026\n")) {
		t.Fatalf("unexpected offset for second ref: %d", refs[1].Offset)
	}
}

func TestScanUnknownTagBucketedAsOther(t *testing.T) {
	text := "=erl_crash_dump:0.5\n=totally_unknown_tag\n"
	refs, err := scan(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	if refs[1].Kind != KindOther {
		t.Fatalf("want KindOther, got %v", refs[1].Kind)
	}
	if refs[1].Tag != "totally_unknown_tag" {
		t.Fatalf("want tag preserved verbatim, got %q", refs[1].Tag)
	}
}

func TestScanBinaryNullAborts(t *testing.T) {
	text := "=erl_crash_dump:0.5\nfoo\x00bar\n"
	_, err := scan(strings.NewReader(text))
	if err == nil {
		t.Fatal("expected FormatError on null byte, got nil")
	}
}
