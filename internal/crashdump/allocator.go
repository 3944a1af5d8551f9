// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "strings"

// parseSextet splits a whitespace-separated kv value into up to six
// int64 fields, returning a count-triple and a size-triple. Missing
// fields default to 0.
func parseSextet(v string) (count, size [3]int64) {
	fields := strings.Fields(v)
	for i := 0; i < 3 && i < len(fields); i++ {
		count[i] = atoiDefault(fields[i])
	}
	for i := 0; i < 3 && i+3 < len(fields); i++ {
		size[i] = atoiDefault(fields[i+3])
	}
	return
}

// decodeCarrierStats reads the "<prefix>.carriers: C1 C2 S1" triple plus
// its count/mseg_count/sys_alloc_count companions (SPEC_FULL.md §4.11).
func decodeCarrierStats(kv map[string]string, prefix string) CarrierStats {
	return CarrierStats{
		Count:         atoiDefault(kv[prefix+".count"]),
		MsegCount:     atoiDefault(kv[prefix+".mseg_count"]),
		SysAllocCount: atoiDefault(kv[prefix+".sys_alloc_count"]),
		Size:          parseTriple(kv[prefix+".carriers"]),
		MsegSize:      atoiDefault(kv[prefix+".mseg_size"]),
		SysAllocSize:  atoiDefault(kv[prefix+".sys_alloc_size"]),
	}
}

func parseTriple(v string) [3]int64 {
	var out [3]int64
	fields := strings.Fields(v)
	for i := 0; i < 3 && i < len(fields); i++ {
		out[i] = atoiDefault(fields[i])
	}
	return out
}

// decodeBlockMap collects "<prefix>.<name>: C1 C2 C3 S1 S2 S3" lines into
// a per-block-class map, the nested stanza shape SPEC_FULL.md §4.11
// describes.
func decodeBlockMap(kv map[string]string, prefix string) map[string]BlockStats {
	out := make(map[string]BlockStats)
	p := prefix + "."
	for k, v := range kv {
		if !strings.HasPrefix(k, p) {
			continue
		}
		name := strings.TrimPrefix(k, p)
		if name == "carriers" || name == "count" || name == "mseg_count" ||
			name == "sys_alloc_count" || name == "mseg_size" || name == "sys_alloc_size" {
			continue
		}
		count, size := parseSextet(v)
		out[name] = BlockStats{Count: count, Size: size}
	}
	return out
}

// decodeAllocatorInfo builds an AllocatorInfo from an allocator section's
// kv map. Option lines accumulate into Options; carrier/block stanzas
// follow the "KEY: V1 V2 V3" triple shape described in SPEC_FULL.md §4.11.
// Missing fields default to 0, consistent with ProcInfo's policy (§4.8).
func decodeAllocatorInfo(name, instanceID string, kv map[string]string) AllocatorInfo {
	opts := make(map[string]string)
	for k, v := range kv {
		if strings.HasPrefix(k, "option ") {
			opts[strings.TrimPrefix(k, "option ")] = v
		}
	}
	return AllocatorInfo{
		Name:         name,
		InstanceID:   instanceID,
		Version:      kv["version"],
		Options:      opts,
		MBCSBlocks:   decodeBlockMap(kv, "mbcs_block"),
		MBCSCarriers: decodeCarrierStats(kv, "mbcs"),
		SBCSBlocks:   decodeBlockMap(kv, "sbcs_block"),
		SBCSCarriers: decodeCarrierStats(kv, "sbcs"),
		Calls: AllocCalls{
			Alloc:       atoiDefault(kv["calls.alloc"]),
			Free:        atoiDefault(kv["calls.free"]),
			Realloc:     atoiDefault(kv["calls.realloc"]),
			MsegAlloc:   atoiDefault(kv["calls.mseg_alloc"]),
			MsegDealloc: atoiDefault(kv["calls.mseg_dealloc"]),
			MsegRealloc: atoiDefault(kv["calls.mseg_realloc"]),
			SysAlloc:    atoiDefault(kv["calls.sys_alloc"]),
			SysFree:     atoiDefault(kv["calls.sys_free"]),
			SysRealloc:  atoiDefault(kv["calls.sys_realloc"]),
		},
	}
}
