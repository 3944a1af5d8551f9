// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "sort"

// rootFor walks spawned_by pointers upward from pid until it reaches a
// process with a non-empty name (a registered root) or runs out of
// ancestors. Cycles in spawned_by are impossible in a well-formed dump
// but the walk is bounded at len(procs) anyway (spec.md §4.9).
func rootFor(pid string, procs map[string]ProcInfo) string {
	seen := 0
	cur := pid
	for seen < len(procs) {
		p, ok := procs[cur]
		if !ok {
			return cur
		}
		if p.Name != "" {
			return cur
		}
		if p.SpawnedBy == "" {
			return cur
		}
		cur = p.SpawnedBy
		seen++
	}
	return cur
}

// buildGroups aggregates every process into the group rooted at its
// nearest named ancestor, computing per-group memory totals
// (SPEC_FULL.md §4.9).
func buildGroups(procs map[string]ProcInfo) []GroupInfo {
	groups := make(map[string]*GroupInfo)
	order := make([]string, 0, len(procs))

	pids := make([]string, 0, len(procs))
	for pid := range procs {
		pids = append(pids, pid)
	}
	sort.Strings(pids)

	for _, pid := range pids {
		root := rootFor(pid, procs)
		g, ok := groups[root]
		if !ok {
			g = &GroupInfo{RootPid: root}
			if rp, ok := procs[root]; ok {
				g.RootName = rp.Name
			}
			groups[root] = g
			order = append(order, root)
		}
		p := procs[pid]
		g.Children = append(g.Children, pid)
		g.TotalMemorySize += p.Memory
		g.TotalHeapSize += p.OldBinVHeap + p.BinVHeap + p.StackHeap + p.OldHeap
	}

	out := make([]GroupInfo, 0, len(order))
	for _, root := range order {
		out = append(out, *groups[root])
	}
	return out
}
