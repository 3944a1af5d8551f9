// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import (
	"regexp"
	"strconv"
	"strings"
)

// pcRegexp matches "0xHEX (mod:fn/arity + off)" program counter lines.
var pcRegexp = regexp.MustCompile(`^(0[xX][0-9a-fA-F]+)\s*\(([^:]+):([^/]+)/(\d+)\s*\+\s*(\w+)\)`)

// parseProgramCounter parses the "Program counter" kv value.
func parseProgramCounter(v string) ProgramCounter {
	m := pcRegexp.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return ProgramCounter{Address: strings.TrimSpace(v)}
	}
	arity, _ := strconv.Atoi(m[4])
	offset, _ := strconv.ParseInt(m[5], 16, 64)
	return ProgramCounter{
		Address:  m[1],
		Module:   m[2],
		Function: m[3],
		Arity:    arity,
		Offset:   offset,
	}
}

// parseBracketList parses "[a,b,c]" into its comma-separated elements.
// An empty or malformed list yields nil.
func parseBracketList(v string) []string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "[")
	v = strings.TrimSuffix(v, "]")
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// parsePipeList splits a pipe-separated "Internal State" value.
func parsePipeList(v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func atoiDefault(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func atoiIntDefault(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// decodeProcInfo turns a proc section's kv map into a ProcInfo. Every
// numeric field defaults to 0 when the kv line is missing — the dump
// omits them for processes spawned but never scheduled
// (SPEC_FULL.md §4.8).
func decodeProcInfo(pid string, kv map[string]string) ProcInfo {
	p := ProcInfo{
		Pid:                pid,
		State:              kv["State"],
		Name:               kv["Name"],
		SpawnedAs:          kv["Spawned as"],
		SpawnedBy:          kv["Spawned by"],
		MessageQueueLength: atoiDefault(kv["Message queue length"]),
		HeapFragments: HeapFragments{
			Count: atoiDefault(kv["Number of heap fragments"]),
			Data:  atoiDefault(kv["Heap fragment data"]),
		},
		Links:             parseBracketList(kv["Link list"]),
		Reductions:        atoiDefault(kv["Reductions"]),
		StackHeap:         atoiDefault(kv["Stack+heap"]),
		OldHeap:           atoiDefault(kv["OldHeap"]),
		HeapUnused:        atoiDefault(kv["Heap unused"]),
		OldHeapUnused:     atoiDefault(kv["OldHeap unused"]),
		BinVHeap:          atoiDefault(kv["BinVHeap"]),
		OldBinVHeap:       atoiDefault(kv["OldBinVHeap"]),
		BinVHeapUnused:    atoiDefault(kv["BinVHeap unused"]),
		OldBinVHeapUnused: atoiDefault(kv["OldBinVHeap unused"]),
		Memory:            atoiDefault(kv["Memory"]),
		Arity:             atoiIntDefault(kv["Arity"]),
		InternalState:     parsePipeList(kv["Internal State"]),
	}
	if pc, ok := kv["Program counter"]; ok {
		p.ProgramCounter = parseProgramCounter(pc)
	}
	return p
}
