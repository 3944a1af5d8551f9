// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import (
	"context"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Options configures Load. MaxDepth bounds the term decoder's recursion
// (spec.md §4.7); Parallelism bounds the number of concurrent eager
// section-parsing workers (0 or less sets no limit: every eager section
// gets its own goroutine at once).
type Options struct {
	MaxDepth    int
	Parallelism int
}

// DefaultOptions returns the Options Load uses when none are given.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// CrashDump is the root aggregate produced by Load: the decoded eager
// sections, the address and binary maps, the term decoder bound to
// them, and the Index for lazy retrieval of on-demand sections
// (spec.md §3).
type CrashDump struct {
	path    string
	index   *Index
	decoder *Decoder

	Preamble Preamble
	Memory   MemoryTotals
	Abort    *Abort

	Procs          map[string]ProcInfo
	Allocators     []AllocatorInfo
	Schedulers     []SchedulerInfo
	EtsTables      []EtsInfo
	Ports          []PortInfo
	Nodes          []NodeInfo
	Timers         []TimerInfo
	LoadedModules  LoadedModulesInfo
	Groups         []GroupInfo

	AddressMap  *AddressMap
	BinaryIndex *BinaryIndex
}

// Load parses the crash dump at path: scan, index, parallel eager
// section parsing, then ancestry aggregation (spec.md §2, §5).
func Load(ctx context.Context, path string, opts Options) (*CrashDump, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, wrapIO(err, "opening %s", path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, wrapIO(err, "stat %s", path)
	}

	refs, err := scan(f)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, formatErrorf("no section headers found in %s", path)
	}

	idx, err := buildIndex(refs, fi.Size())
	if err != nil {
		return nil, err
	}

	if a := idx.Lookup(KindAbort); len(a) > 0 {
		ab := decodeAbort(a[0].ID)
		return &CrashDump{path: path, index: idx, Abort: &ab}, nil
	}

	cd := &CrashDump{
		path:  path,
		index: idx,
		Procs: make(map[string]ProcInfo),
	}

	amb := newAddressMapBuilder(func(format string, args ...interface{}) {
		logWarnf(format, args...)
	})
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	if opts.Parallelism > 0 {
		g.SetLimit(opts.Parallelism)
	}

	parseOne := func(entry *IndexEntry, fn func(src *source, text string) error) {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			src, err := openSource(path)
			if err != nil {
				return err
			}
			defer src.Close()
			text, err := src.load(entry)
			if err != nil {
				return err
			}
			return fn(src, text)
		})
	}

	// Preamble and Memory: unkeyed, exactly one each.
	if preambleEntries := idx.Lookup(KindPreamble); len(preambleEntries) > 0 {
		e := preambleEntries[0]
		parseOne(e, func(_ *source, text string) error {
			sec := parseSection(KindPreamble, "erl_crash_dump", e.ID, text)
			mu.Lock()
			cd.Preamble = decodePreamble(e.ID, sec.Lines, sec.KV)
			mu.Unlock()
			return nil
		})
	}
	for _, e := range idx.Lookup(KindMemory) {
		e := e
		parseOne(e, func(_ *source, text string) error {
			sec := parseSection(KindMemory, "memory", "", text)
			mu.Lock()
			cd.Memory = decodeMemoryTotals(sec.KV)
			mu.Unlock()
			return nil
		})
	}

	// Proc: eager, builds Procs map.
	for _, e := range idx.LookupAllID(KindProc) {
		e := e
		parseOne(e, func(_ *source, text string) error {
			sec := parseSection(KindProc, "proc", e.ID, text)
			p := decodeProcInfo(e.ID, sec.KV)
			mu.Lock()
			cd.Procs[e.ID] = p
			mu.Unlock()
			return nil
		})
	}

	// ProcHeap, Literals, PersistentTerms: address-yielding, eager.
	for _, e := range idx.LookupAllID(KindProcHeap) {
		e := e
		parseOne(e, func(_ *source, text string) error {
			sec := parseSection(KindProcHeap, "proc_heap", e.ID, text)
			amb.addFromRawLines(sec.Lines, ':')
			return nil
		})
	}
	for _, e := range idx.Lookup(KindLiterals) {
		e := e
		parseOne(e, func(_ *source, text string) error {
			sec := parseSection(KindLiterals, "literals", "", text)
			amb.addFromRawLines(sec.Lines, ':')
			return nil
		})
	}
	for _, e := range idx.Lookup(KindPersistentTerms) {
		e := e
		parseOne(e, func(_ *source, text string) error {
			sec := parseSection(KindPersistentTerms, "persistent_terms", "", text)
			amb.addFromRawLines(sec.Lines, '|')
			return nil
		})
	}

	// Allocator, Scheduler, Ets, Port, Node, Timer, LoadedModules.
	for _, e := range idx.LookupAllID(KindAllocator) {
		e := e
		parseOne(e, func(_ *source, text string) error {
			sec := parseSection(KindAllocator, "allocator", e.ID, text)
			a := decodeAllocatorInfo(e.ID, e.ID, sec.KV)
			mu.Lock()
			cd.Allocators = append(cd.Allocators, a)
			mu.Unlock()
			return nil
		})
	}
	for _, e := range idx.LookupAllID(KindScheduler) {
		e := e
		parseOne(e, func(_ *source, text string) error {
			sec := parseSection(KindScheduler, "scheduler", e.ID, text)
			s := decodeSchedulerInfo(e.ID, sec.KV, sec.Lines)
			mu.Lock()
			cd.Schedulers = append(cd.Schedulers, s)
			mu.Unlock()
			return nil
		})
	}
	for _, e := range idx.LookupAllID(KindEts) {
		e := e
		parseOne(e, func(_ *source, text string) error {
			sec := parseSection(KindEts, "ets", e.ID, text)
			et := decodeEtsInfo(e.ID, sec.KV)
			mu.Lock()
			cd.EtsTables = append(cd.EtsTables, et)
			mu.Unlock()
			return nil
		})
	}
	for _, e := range idx.LookupAllID(KindPort) {
		e := e
		parseOne(e, func(_ *source, text string) error {
			sec := parseSection(KindPort, "port", e.ID, text)
			po := decodePortInfo(e.ID, sec.KV)
			mu.Lock()
			cd.Ports = append(cd.Ports, po)
			mu.Unlock()
			return nil
		})
	}
	for _, kind := range []Kind{KindVisibleNode, KindHiddenNode, KindNotConnected, KindNoDistribution} {
		kind := kind
		entries := idx.Lookup(kind)
		if kind.IsKeyed() {
			entries = idx.LookupAllID(kind)
		}
		for _, e := range entries {
			e := e
			parseOne(e, func(_ *source, text string) error {
				sec := parseSection(kind, string(kind), e.ID, text)
				n := decodeNodeInfo(kind, e.ID, sec.KV, sec.Lines)
				mu.Lock()
				cd.Nodes = append(cd.Nodes, n)
				mu.Unlock()
				return nil
			})
		}
	}
	for _, e := range idx.LookupAllID(KindTimer) {
		e := e
		parseOne(e, func(_ *source, text string) error {
			sec := parseSection(KindTimer, "timer", e.ID, text)
			t := decodeTimerInfo(sec.KV)
			mu.Lock()
			cd.Timers = append(cd.Timers, t)
			mu.Unlock()
			return nil
		})
	}
	if loadedModulesEntries := idx.Lookup(KindLoadedModules); len(loadedModulesEntries) > 0 {
		e := loadedModulesEntries[0]
		parseOne(e, func(_ *source, text string) error {
			sec := parseSection(KindLoadedModules, "loaded_modules", "", text)
			mu.Lock()
			cd.LoadedModules = decodeLoadedModulesInfo(sec.KV, sec.Lines)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ErrCancelled
		}
		return nil, err
	}

	cd.AddressMap = amb.freeze()
	cd.BinaryIndex = buildBinaryIndex(idx.LookupAllID(KindBinary))
	cd.decoder = NewDecoder(cd.AddressMap, cd.BinaryIndex, opts.MaxDepth)
	cd.Groups = buildGroups(cd.Procs)

	if len(idx.Lookup(KindEnd)) == 0 {
		cd.Preamble.Truncated = true
		logWarnf("%s: truncated dump: no =end section found", path)
	}

	return cd, nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
