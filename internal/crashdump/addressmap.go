// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import (
	"strings"
	"sync"
)

// AddressMap is the process-wide hex_address -> encoded_term_string
// dictionary assembled from ProcHeap, Literals, and PersistentTerms
// sections. It is build-then-freeze: only mutated during construction
// under addressMapBuilder's lock, read-only afterward.
type AddressMap struct {
	m map[string]string
}

// Resolve returns the encoded term bound to addr and whether it was
// found. Lookup is case-insensitive on the hex digits: addr is
// uppercased here, matching the uppercased keys the builder stores.
func (am *AddressMap) Resolve(addr string) (string, bool) {
	v, ok := am.m[strings.ToUpper(addr)]
	return v, ok
}

func (am *AddressMap) Len() int { return len(am.m) }

// addressMapBuilder accumulates address->term bindings from concurrent
// workers (SPEC_FULL.md §5: build-then-freeze under concurrent-map
// discipline) and freezes into an AddressMap.
type addressMapBuilder struct {
	mu sync.Mutex
	m  map[string]string
	warn func(format string, args ...interface{})
}

func newAddressMapBuilder(warn func(string, ...interface{})) *addressMapBuilder {
	return &addressMapBuilder{m: make(map[string]string), warn: warn}
}

// addFromRawLines splits each raw line on sep (once) and inserts
// address -> term. Duplicate addresses across sources or within one
// source are a non-fatal warning; last write wins (§4.5).
func (b *addressMapBuilder) addFromRawLines(lines []string, sep byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, line := range lines {
		i := strings.IndexByte(line, sep)
		if i < 0 {
			continue
		}
		addr := strings.ToUpper(strings.TrimSpace(line[:i]))
		term := line[i+1:]
		if addr == "" {
			continue
		}
		if _, dup := b.m[addr]; dup && b.warn != nil {
			b.warn("address %s redefined, last write wins", addr)
		}
		b.m[addr] = term
	}
}

func (b *addressMapBuilder) freeze() *AddressMap {
	return &AddressMap{m: b.m}
}

// BinaryIndex is the hex_address -> byte_length dictionary derived from
// Binary section entries. Only the length is recorded; payload bytes are
// never read, here or by the façade.
type BinaryIndex struct {
	m map[string]int64
}

func (bi *BinaryIndex) Len(addr string) (int64, bool) {
	v, ok := bi.m[strings.ToUpper(addr)]
	return v, ok
}

func (bi *BinaryIndex) Count() int { return len(bi.m) }

// buildBinaryIndex maps each Binary IndexEntry's id to its payload
// length. The payload itself is never read here (§4.6).
func buildBinaryIndex(entries []*IndexEntry) *BinaryIndex {
	m := make(map[string]int64, len(entries))
	for _, e := range entries {
		addr := strings.ToUpper(e.ID)
		// The entry's byte range includes the "=binary:ID\n" header
		// line; subtract it so Length reflects only the payload.
		headerLen := int64(len("=binary:") + len(e.ID) + 1)
		payload := e.Length - headerLen
		if payload < 0 {
			payload = 0
		}
		m[addr] = payload
	}
	return &BinaryIndex{m: m}
}
