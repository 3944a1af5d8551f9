// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

// decodeMemoryTotals builds the single MemoryTotals section from its kv
// lines (spec.md §6: total, processes, processes_used, system, atom,
// atom_used, binary, code, ets).
func decodeMemoryTotals(kv map[string]string) MemoryTotals {
	return MemoryTotals{
		Total:          atoiDefault(kv["total"]),
		ProcessesTotal: atoiDefault(kv["processes"]),
		ProcessesUsed:  atoiDefault(kv["processes_used"]),
		System:         atoiDefault(kv["system"]),
		AtomTotal:      atoiDefault(kv["atom"]),
		AtomUsed:       atoiDefault(kv["atom_used"]),
		Binary:         atoiDefault(kv["binary"]),
		Code:           atoiDefault(kv["code"]),
		Ets:            atoiDefault(kv["ets"]),
	}
}
