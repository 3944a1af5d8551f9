// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "testing"

func TestDecodeChainLength(t *testing.T) {
	cl := decodeChainLength("1.5 4 0 0.8 0.7")
	if cl.Avg != 1.5 || cl.Max != 4 || cl.Min != 0 || cl.StdDev != 0.8 || cl.ExpectedStdDev != 0.7 {
		t.Fatalf("unexpected chain length stats: %+v", cl)
	}
}

func TestDecodeEtsInfo(t *testing.T) {
	kv := map[string]string{
		"Owner":       "<0.50.0>",
		"Table":       "my_table",
		"Buckets":     "16",
		"Chain Length": "1.0 2 0 0.1 0.1",
		"Fixed":       "false",
		"Objects":     "10",
		"Words":       "40",
		"Type":        "set",
		"Protection":  "protected",
	}
	e := decodeEtsInfo("123", kv)
	if e.TableID != "123" || e.Pid != "<0.50.0>" || e.Name != "my_table" {
		t.Fatalf("unexpected ets info: %+v", e)
	}
	if e.Buckets != 16 || e.Objects != 10 || e.Words != 40 {
		t.Fatalf("unexpected numeric fields: %+v", e)
	}
	if e.Fixed {
		t.Fatalf("expected Fixed=false")
	}
}
