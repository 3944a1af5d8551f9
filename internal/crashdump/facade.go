// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "sort"

// Model is the read-only query façade over a loaded CrashDump, the
// interface an external TUI (or internal/browse) consumes (spec.md
// §4.10; additions in SPEC_FULL.md §4.13). All methods are safe for
// concurrent use: the underlying CrashDump never mutates after Load
// returns.
type Model struct {
	cd *CrashDump
}

// NewModel wraps a loaded CrashDump in its façade.
func NewModel(cd *CrashDump) *Model { return &Model{cd: cd} }

// Preamble returns the single erl_crash_dump section.
func (m *Model) Preamble() Preamble { return m.cd.Preamble }

// Memory returns the single memory totals section.
func (m *Model) Memory() MemoryTotals { return m.cd.Memory }

// Abort returns the dump's abort record, if the VM aborted before
// producing a full dump.
func (m *Model) Abort() *Abort { return m.cd.Abort }

// ProcessesSortedBy returns every pid ordered descending by the named
// metric ("bin_vheap", "memory", "reductions", "stack_heap"). An
// unrecognized metric sorts by pid for determinism.
func (m *Model) ProcessesSortedBy(metric string) []string {
	pids := make([]string, 0, len(m.cd.Procs))
	for pid := range m.cd.Procs {
		pids = append(pids, pid)
	}
	key := func(p ProcInfo) int64 {
		switch metric {
		case "bin_vheap":
			return p.TotalBinVHeap()
		case "memory":
			return p.Memory
		case "reductions":
			return p.Reductions
		case "stack_heap":
			return p.StackHeap
		default:
			return 0
		}
	}
	sort.Slice(pids, func(i, j int) bool {
		pi, pj := m.cd.Procs[pids[i]], m.cd.Procs[pids[j]]
		if metric == "" {
			return pids[i] < pids[j]
		}
		ki, kj := key(pi), key(pj)
		if ki != kj {
			return ki > kj
		}
		return pids[i] < pids[j]
	})
	return pids
}

// GetProc returns the ProcInfo for pid and whether it exists.
func (m *Model) GetProc(pid string) (ProcInfo, bool) {
	p, ok := m.cd.Procs[pid]
	return p, ok
}

// GetStack decodes the named process's ProcStack section on demand and
// renders it as displayable text, one frame per line.
func (m *Model) GetStack(pid string) (string, error) {
	e := m.cd.index.LookupID(KindProcStack, pid)
	if e == nil {
		return "", nil
	}
	text, err := m.loadSection(e)
	if err != nil {
		return "", err
	}
	sec := parseSection(KindProcStack, "proc_stack", pid, text)
	frames := decodeProcStack(sec.Lines)
	return renderStack(frames), nil
}

// GetHeap decodes the named process's ProcHeap section on demand,
// running every ADDR:TERM line through the term decoder.
func (m *Model) GetHeap(pid string) (string, error) {
	e := m.cd.index.LookupID(KindProcHeap, pid)
	if e == nil {
		return "", nil
	}
	text, err := m.loadSection(e)
	if err != nil {
		return "", err
	}
	sec := parseSection(KindProcHeap, "proc_heap", pid, text)
	return renderAddressTermLines(sec.Lines, m.cd.decoder), nil
}

// GetMessages decodes the named process's pending message queue on
// demand.
func (m *Model) GetMessages(pid string) (ProcMessages, error) {
	e := m.cd.index.LookupID(KindProcMessages, pid)
	if e == nil {
		return ProcMessages{Pid: pid}, nil
	}
	text, err := m.loadSection(e)
	if err != nil {
		return ProcMessages{}, err
	}
	sec := parseSection(KindProcMessages, "proc_messages", pid, text)
	return decodeProcMessages(pid, sec.Lines), nil
}

// GroupsSortedByMemory returns every ancestry group ordered descending
// by total_memory_size.
func (m *Model) GroupsSortedByMemory() []GroupInfo {
	out := make([]GroupInfo, len(m.cd.Groups))
	copy(out, m.cd.Groups)
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalMemorySize != out[j].TotalMemorySize {
			return out[i].TotalMemorySize > out[j].TotalMemorySize
		}
		return out[i].RootPid < out[j].RootPid
	})
	return out
}

// Allocators returns every decoded allocator section.
func (m *Model) Allocators() []AllocatorInfo { return m.cd.Allocators }

// Schedulers returns every decoded scheduler section.
func (m *Model) Schedulers() []SchedulerInfo { return m.cd.Schedulers }

// EtsTables returns every decoded ets section.
func (m *Model) EtsTables() []EtsInfo { return m.cd.EtsTables }

// Ports returns every decoded port section.
func (m *Model) Ports() []PortInfo { return m.cd.Ports }

// Nodes returns every decoded node-kind section.
func (m *Model) Nodes() []NodeInfo { return m.cd.Nodes }

// Timers returns every decoded timer section.
func (m *Model) Timers() []TimerInfo { return m.cd.Timers }

// LoadedModules returns the single loaded_modules section.
func (m *Model) LoadedModules() LoadedModulesInfo { return m.cd.LoadedModules }

// GetSchedulerStack renders a scheduler's embedded current-process
// stack trace the same way GetStack does for an ordinary process.
func (m *Model) GetSchedulerStack(id string) string {
	for _, s := range m.cd.Schedulers {
		if s.ID == id && s.CurrentProcess != nil {
			return renderStack(s.CurrentProcess.StackTrace)
		}
	}
	return ""
}

func (m *Model) loadSection(e *IndexEntry) (string, error) {
	src, err := openSource(m.cd.path)
	if err != nil {
		return "", err
	}
	defer src.Close()
	return src.load(e)
}

// renderStack renders decoded stack frames as one line per frame,
// dropping the state machine's synthetic leading base frame (see
// SPEC_FULL.md §9).
func renderStack(frames []StackFrame) string {
	var b []byte
	for _, f := range frames {
		if f.Synthetic {
			continue
		}
		b = append(b, renderFrame(f)...)
		b = append(b, '\n')
	}
	return string(b)
}

func renderFrame(f StackFrame) string {
	if f.Module == "" {
		return f.Address + ": " + f.Function
	}
	return f.Address + ": " + f.Module + ":" + f.Function
}

// renderAddressTermLines decodes every "ADDR:TERM" raw line through d
// and joins the results, one per line.
func renderAddressTermLines(lines []string, d *Decoder) string {
	var b []byte
	for _, line := range lines {
		i := indexByte(line, ':')
		if i < 0 {
			continue
		}
		addr, term := line[:i], line[i+1:]
		b = append(b, addr...)
		b = append(b, ": "...)
		b = append(b, d.Decode(term)...)
		b = append(b, '\n')
	}
	return string(b)
}
