// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "strings"

// decodeNodeInfo builds a NodeInfo for one node-kind section instance
// (visible_node, hidden_node, not_connected, no_distribution). name is
// the section id for keyed kinds or empty for the two unkeyed marker
// kinds (SPEC_FULL.md §4.12).
func decodeNodeInfo(kind Kind, name string, kv map[string]string, lines []string) NodeInfo {
	status := kv["Connection type"]
	if status == "" && len(lines) > 0 {
		status = strings.TrimSpace(lines[0])
	}
	return NodeInfo{
		Name:   name,
		Kind:   kind,
		Status: status,
	}
}
