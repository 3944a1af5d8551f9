// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "strings"

// decodeLoadedModulesInfo builds the single LoadedModulesInfo section
// from its kv totals and a "Name Current OldSize?" per-module line list
// (SPEC_FULL.md §4.12).
func decodeLoadedModulesInfo(kv map[string]string, lines []string) LoadedModulesInfo {
	info := LoadedModulesInfo{
		CurrentCode: atoiDefault(kv["Current code"]),
		OldCode:     atoiDefault(kv["Old code"]),
	}
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		m := ModuleInfo{Name: fields[0]}
		if len(fields) > 1 {
			m.CurrentSize = atoiDefault(fields[1])
		}
		if len(fields) > 2 {
			m.OldSize = atoiDefault(fields[2])
		}
		info.Modules = append(info.Modules, m)
	}
	return info
}
