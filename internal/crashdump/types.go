// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crashdump parses Erlang/OTP crash dump files and reconstructs a
// browsable model of the VM state at crash time: processes and their
// supervision ancestry, per-process memory accounting, decoded stacks and
// message queues, and on-demand reconstructed process heaps.
//
// The package does not interpret the dump as a schema to validate against;
// it recovers as much structure as it can and downgrades gracefully on
// anything it doesn't understand.
package crashdump

// Kind identifies the tag of a crash dump section.
type Kind string

// The closed enumeration of section kinds this engine understands by name.
// Unrecognized tags are preserved verbatim under KindOther rather than
// rejected.
const (
	KindPreamble        Kind = "erl_crash_dump"
	KindAbort           Kind = "abort"
	KindMemory          Kind = "memory"
	KindProc            Kind = "proc"
	KindProcHeap        Kind = "proc_heap"
	KindProcStack       Kind = "proc_stack"
	KindProcMessages    Kind = "proc_messages"
	KindProcDictionary  Kind = "proc_dictionary"
	KindBinary          Kind = "binary"
	KindLiterals        Kind = "literals"
	KindPersistentTerms Kind = "persistent_terms"
	KindAtoms           Kind = "atoms"
	KindFun             Kind = "fun"
	KindEts             Kind = "ets"
	KindPort            Kind = "port"
	KindScheduler       Kind = "scheduler"
	KindAllocator       Kind = "allocator"
	KindAllocatedAreas  Kind = "allocated_areas"
	KindInstrData       Kind = "instr_data"
	KindOldInstrData    Kind = "old_instr_data"
	KindIndexTable      Kind = "index_table"
	KindHashTable       Kind = "hash_table"
	KindInternalEts     Kind = "internal_ets"
	KindMemoryMap       Kind = "memory_map"
	KindMemoryStatus    Kind = "memory_status"
	KindMod             Kind = "mod"
	KindNode            Kind = "node"
	KindVisibleNode     Kind = "visible_node"
	KindHiddenNode      Kind = "hidden_node"
	KindNotConnected    Kind = "not_connected"
	KindNoDistribution Kind = "no_distribution"
	KindLoadedModules   Kind = "loaded_modules"
	KindTimer           Kind = "timer"
	KindDirtyCPUSched   Kind = "dirty_cpu_scheduler"
	KindDirtyCPURunQ    Kind = "dirty_cpu_run_queue"
	KindDirtyIOSched    Kind = "dirty_io_scheduler"
	KindDirtyIORunQ     Kind = "dirty_io_run_queue"
	KindEnd             Kind = "end"
	KindOther           Kind = "other"
)

// keyedKinds carries one instance per id (a pid, a hex address, a node
// name, ...). Kinds not in this set are unkeyed: at most one instance is
// expected per dump, or instances are distinguished only by file order.
var keyedKinds = map[Kind]bool{
	KindProc:           true,
	KindProcHeap:       true,
	KindProcStack:      true,
	KindProcMessages:   true,
	KindProcDictionary: true,
	KindBinary:         true,
	KindEts:            true,
	KindPort:           true,
	KindScheduler:      true,
	KindAllocator:      true,
	KindMod:            true,
	KindVisibleNode:    true,
	KindHiddenNode:     true,
	KindTimer:          true,
}

// IsKeyed reports whether sections of kind k carry a distinguishing id.
func (k Kind) IsKeyed() bool {
	return keyedKinds[k]
}

// normalizeTag maps the literal tag text from a section header to its
// Kind, bucketing anything unrecognized as KindOther rather than failing.
func normalizeTag(tag string) Kind {
	k := Kind(tag)
	switch k {
	case KindPreamble, KindAbort, KindMemory, KindProc, KindProcHeap,
		KindProcStack, KindProcMessages, KindProcDictionary, KindBinary,
		KindLiterals, KindPersistentTerms, KindAtoms, KindFun, KindEts,
		KindPort, KindScheduler, KindAllocator, KindAllocatedAreas,
		KindInstrData, KindOldInstrData, KindIndexTable, KindHashTable,
		KindInternalEts, KindMemoryMap, KindMemoryStatus, KindMod,
		KindNode, KindVisibleNode, KindHiddenNode, KindNotConnected,
		KindNoDistribution, KindLoadedModules, KindTimer,
		KindDirtyCPUSched, KindDirtyCPURunQ, KindDirtyIOSched,
		KindDirtyIORunQ, KindEnd:
		return k
	default:
		return KindOther
	}
}

// IndexEntry is a byte range within the dump file belonging to one
// section instance.
type IndexEntry struct {
	Kind   Kind
	ID     string // empty for unkeyed sections
	Tag    string // the literal tag text, for KindOther
	Start  int64
	Length int64
}

// Preamble is the single `=erl_crash_dump` section.
type Preamble struct {
	Version       string
	Timestamp     string
	Slogan        string
	ErtsBanner    string
	Taints        []string
	AtomCount     int64
	CallingThread string
	Truncated     bool // true when the dump has no `=end` section
}

// MemoryTotals is the single `=memory` section.
type MemoryTotals struct {
	Total           int64
	ProcessesTotal  int64
	ProcessesUsed   int64
	System          int64
	AtomTotal       int64
	AtomUsed        int64
	Binary          int64
	Code            int64
	Ets             int64
}

// ProgramCounter is a decoded `0xHEX (mod:fn/arity + off)` reference.
type ProgramCounter struct {
	Address  string
	Module   string
	Function string
	Arity    int
	Offset   int64
}

// HeapFragments tracks a process's unattached heap fragments.
type HeapFragments struct {
	Count int64
	Data  int64
}

// ProcInfo is one `=proc:<pid>` section.
//
// MessageQueueLength corresponds to types.rs's message_queue_length field
// (spec.md calls it msgq_len; both names refer to the same "Message
// queue length" kv line).
type ProcInfo struct {
	Pid             string
	State           string
	Name            string
	SpawnedAs       string
	SpawnedBy       string
	MessageQueueLength int64
	HeapFragments   HeapFragments
	Links           []string
	Reductions      int64
	StackHeap       int64
	OldHeap         int64
	HeapUnused      int64
	OldHeapUnused   int64
	BinVHeap        int64
	OldBinVHeap     int64
	BinVHeapUnused  int64
	OldBinVHeapUnused int64
	Memory          int64
	Arity           int
	ProgramCounter  ProgramCounter
	InternalState   []string
}

// TotalBinVHeap is the derived invariant bin_vheap + old_bin_vheap.
func (p ProcInfo) TotalBinVHeap() int64 {
	return p.BinVHeap + p.OldBinVHeap
}

// StackFrame is one frame of a decoded ProcStack.
type StackFrame struct {
	Address    string
	ReturnAddr string
	Module     string
	Function   string
	Arity      int
	Offset     int64
	Variables  []string // raw encoded term strings, in y-register order
	Synthetic  bool      // true for the state machine's leading base frame
}

// ProcMessages is the ordered `addr -> encoded value` mapping of one
// process's pending message queue.
type ProcMessages struct {
	Pid     string
	Entries []MessageEntry
}

// MessageEntry is one pending message, in file order.
type MessageEntry struct {
	Address string
	Value   string // still-encoded term string
}

// AllocatorInfo is one `=allocator:<name>` section.
type AllocatorInfo struct {
	Name          string
	InstanceID    string
	Version       string
	Options       map[string]string
	MBCSBlocks    map[string]BlockStats
	MBCSCarriers  CarrierStats
	SBCSBlocks    map[string]BlockStats
	SBCSCarriers  CarrierStats
	Calls         AllocCalls
}

// BlockStats is the {count, size} triple reported per block class.
type BlockStats struct {
	Count [3]int64
	Size  [3]int64
}

// CarrierStats is the per-carrier-class summary reported by an allocator.
type CarrierStats struct {
	Count         int64
	MsegCount     int64
	SysAllocCount int64
	Size          [3]int64
	MsegSize      int64
	SysAllocSize  int64
}

// AllocCalls counts the allocator's lifetime operation totals.
type AllocCalls struct {
	Alloc        int64
	Free         int64
	Realloc      int64
	MsegAlloc    int64
	MsegDealloc  int64
	MsegRealloc  int64
	SysAlloc     int64
	SysFree      int64
	SysRealloc   int64
}

// RunQueueInfo is a scheduler's run queue length snapshot.
type RunQueueInfo struct {
	MaxLength    int64
	HighLength   int64
	NormalLength int64
	LowLength    int64
	PortLength   int64
	Flags        []string
}

// SleepInfo is a scheduler's sleep/aux-work flag snapshot.
type SleepInfo struct {
	Flags   []string
	AuxWork []string
}

// CurrentProcessInfo is a scheduler's inline snapshot of the process it
// was running at the time of the dump.
type CurrentProcessInfo struct {
	Pid            string
	State          string
	InternalState  []string
	ProgramCounter ProgramCounter
	StackTrace     []StackFrame
}

// SchedulerInfo is one `=scheduler:<id>` section.
type SchedulerInfo struct {
	ID             string
	SleepInfo      SleepInfo
	CurrentPort    string
	RunQueue       RunQueueInfo
	CurrentProcess *CurrentProcessInfo
}

// ChainLengthStats is an ETS table's hash chain length summary.
type ChainLengthStats struct {
	Avg             float64
	Max             int64
	Min             int64
	StdDev          float64
	ExpectedStdDev  float64
}

// EtsInfo is one `=ets:<id>` section.
type EtsInfo struct {
	Pid               string
	Slot              int64
	TableID           string
	Name              string
	Buckets           int64
	ChainLength       ChainLengthStats
	Fixed             bool
	Objects           int64
	Words             int64
	Kind              string
	Protection        string
	Compressed        bool
	WriteConcurrency  bool
	ReadConcurrency   bool
}

// PortInfo is one `=port:<id>` section.
type PortInfo struct {
	ID             string
	State          []string
	Slot           int64
	Connected      string
	Links          []string
	RegisteredAs   string
	ExternalProcess string
	Input          int64
	Output         int64
	Queue          int64
}

// NodeInfo covers the `visible_node`/`hidden_node`/`not_connected`/
// `no_distribution` section family.
type NodeInfo struct {
	Name   string
	Kind   Kind
	Status string
}

// ModuleInfo is one entry in a LoadedModulesInfo's module list.
type ModuleInfo struct {
	Name        string
	CurrentSize int64
	OldSize     int64
}

// LoadedModulesInfo is the single `=loaded_modules` section.
type LoadedModulesInfo struct {
	CurrentCode int64
	OldCode     int64
	Modules     []ModuleInfo
}

// TimerInfo is one `=timer:<id>` section.
type TimerInfo struct {
	Owner       string
	Message     string // still-encoded term string
	TimeLeftMs  int64
}

// GroupInfo is the aggregated process-ancestry group rooted at a named
// process.
type GroupInfo struct {
	RootPid         string
	RootName        string
	Children        []string // includes RootPid when the root is a process in the dump
	TotalHeapSize   int64
	TotalBinarySize int64 // reserved, always 0 (see SPEC_FULL.md §9)
	TotalMemorySize int64
}

// Abort is the single `=abort:<reason>` section, present instead of the
// normal section set when the VM aborted before producing a full dump.
type Abort struct {
	Reason string
}

// GenericSection is one section split by parseSection into its
// key-value pairs and unmatched lines; the typed decoders read from it.
// Load does not retain GenericSections: sections of kinds without a
// typed decoder (allocated_areas, instr_data, hash_table, ...) are
// indexed but neither decoded nor kept on the CrashDump, and the typed
// decoders never fail, so nothing falls back to this form.
type GenericSection struct {
	Tag  string
	ID   string
	KV   map[string]string
	Lines []string
}
