// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "testing"

func TestDecodeLoadedModulesInfo(t *testing.T) {
	kv := map[string]string{
		"Current code": "123456",
		"Old code":     "0",
	}
	lines := []string{
		"lists 4096 2048",
		"kernel 8192",
		"",
	}
	info := decodeLoadedModulesInfo(kv, lines)
	if info.CurrentCode != 123456 || info.OldCode != 0 {
		t.Fatalf("unexpected totals: %+v", info)
	}
	if len(info.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d: %+v", len(info.Modules), info.Modules)
	}
	if info.Modules[0].Name != "lists" || info.Modules[0].CurrentSize != 4096 || info.Modules[0].OldSize != 2048 {
		t.Fatalf("unexpected first module: %+v", info.Modules[0])
	}
	if info.Modules[1].Name != "kernel" || info.Modules[1].CurrentSize != 8192 || info.Modules[1].OldSize != 0 {
		t.Fatalf("unexpected second module: %+v", info.Modules[1])
	}
}
