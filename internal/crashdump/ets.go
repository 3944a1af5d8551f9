// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import (
	"strconv"
	"strings"
)

func parseFloatDefault(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseBoolYesNo(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true") || strings.EqualFold(strings.TrimSpace(s), "yes")
}

// decodeChainLength parses the six-number "Avg Max Min StdDev
// ExpectedStdDev" sextet the "Chain Length" kv line carries
// (SPEC_FULL.md §4.12). Trailing count fields beyond the five stats are
// ignored; missing fields default to 0.
func decodeChainLength(v string) ChainLengthStats {
	f := strings.Fields(v)
	get := func(i int) string {
		if i < len(f) {
			return f[i]
		}
		return ""
	}
	return ChainLengthStats{
		Avg:            parseFloatDefault(get(0)),
		Max:            atoiDefault(get(1)),
		Min:            atoiDefault(get(2)),
		StdDev:         parseFloatDefault(get(3)),
		ExpectedStdDev: parseFloatDefault(get(4)),
	}
}

// decodeEtsInfo builds an EtsInfo from an ets section's kv map.
func decodeEtsInfo(id string, kv map[string]string) EtsInfo {
	return EtsInfo{
		Pid:              kv["Owner"],
		Slot:             atoiDefault(kv["Slot"]),
		TableID:          id,
		Name:             kv["Table"],
		Buckets:          atoiDefault(kv["Buckets"]),
		ChainLength:      decodeChainLength(kv["Chain Length"]),
		Fixed:            parseBoolYesNo(kv["Fixed"]),
		Objects:          atoiDefault(kv["Objects"]),
		Words:            atoiDefault(kv["Words"]),
		Kind:             kv["Type"],
		Protection:       kv["Protection"],
		Compressed:       parseBoolYesNo(kv["Compressed"]),
		WriteConcurrency: parseBoolYesNo(kv["Write Concurrency"]),
		ReadConcurrency:  parseBoolYesNo(kv["Read Concurrency"]),
	}
}
