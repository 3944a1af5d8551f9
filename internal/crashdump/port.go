// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

// decodePortInfo builds a PortInfo from a port section's kv map, the
// same bracket/comma and pipe-separated conventions ProcInfo uses
// (SPEC_FULL.md §4.12).
func decodePortInfo(id string, kv map[string]string) PortInfo {
	return PortInfo{
		ID:              id,
		State:           parsePipeList(kv["State"]),
		Slot:            atoiDefault(kv["Slot"]),
		Connected:       kv["Connected"],
		Links:           parseBracketList(kv["Links"]),
		RegisteredAs:    kv["Registered as"],
		ExternalProcess: kv["Port controls linked process"],
		Input:           atoiDefault(kv["Input"]),
		Output:          atoiDefault(kv["Output"]),
		Queue:           atoiDefault(kv["Queue"]),
	}
}
