// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

// currentProcessSentinel is the kv key that marks a scheduler section as
// carrying an embedded CurrentProcessInfo block (SPEC_FULL.md §4.11):
// when a "Stack+heap" key is present, the "Current Process ..." keys are
// decoded into CurrentProcessInfo; without it CurrentProcess stays nil.
// The SchedulerInfo fields are read from the kv map either way.
const currentProcessSentinel = "Stack+heap"

// decodeSchedulerInfo builds a SchedulerInfo from a scheduler section's
// kv map plus its raw lines (the embedded stack trace, decoded with the
// same state machine as ProcStack).
func decodeSchedulerInfo(id string, kv map[string]string, lines []string) SchedulerInfo {
	s := SchedulerInfo{
		ID:          id,
		CurrentPort: kv["Current Port"],
		SleepInfo: SleepInfo{
			Flags:   parseBracketList(kv["Sleep Info Flags"]),
			AuxWork: parseBracketList(kv["Sleep Info Aux Work"]),
		},
		RunQueue: RunQueueInfo{
			MaxLength:    atoiDefault(kv["Run Queue Max Length"]),
			HighLength:   atoiDefault(kv["Run Queue High Length"]),
			NormalLength: atoiDefault(kv["Run Queue Normal Length"]),
			LowLength:    atoiDefault(kv["Run Queue Low Length"]),
			PortLength:   atoiDefault(kv["Run Queue Port Length"]),
			Flags:        parseBracketList(kv["Run Queue Flags"]),
		},
	}

	if _, ok := kv[currentProcessSentinel]; ok {
		s.CurrentProcess = &CurrentProcessInfo{
			Pid:            kv["Current Process"],
			State:          kv["Current Process State"],
			InternalState:  parsePipeList(kv["Current Process Internal State"]),
			ProgramCounter: parseProgramCounter(kv["Current Process Program counter"]),
			StackTrace:     decodeProcStack(lines),
		}
	}
	return s
}
