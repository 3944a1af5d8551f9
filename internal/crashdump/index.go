// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashdump

import "sort"

// Index is an immutable lookup from section kind to the byte ranges of
// its instances. It is built once from the scanner's output and never
// mutated afterward.
type Index struct {
	keyed   map[Kind]map[string]*IndexEntry
	unkeyed map[Kind][]*IndexEntry
	// order preserves file order across all entries, for callers that
	// want to walk the dump linearly (see All).
	order []*IndexEntry
}

// buildIndex converts the scanner's header list into an Index. Window
// [offset_i, offset_{i+1}) becomes entry i's range; the last entry
// extends to fileLength. Keyed kinds with a duplicate id are a
// FormatError (§4.2).
func buildIndex(refs []headerRef, fileLength int64) (*Index, error) {
	idx := &Index{
		keyed:   make(map[Kind]map[string]*IndexEntry),
		unkeyed: make(map[Kind][]*IndexEntry),
	}

	for i, ref := range refs {
		start := ref.Offset
		var length int64
		if i+1 < len(refs) {
			length = refs[i+1].Offset - start
		} else {
			length = fileLength - start
		}
		entry := &IndexEntry{
			Kind:   ref.Kind,
			ID:     ref.ID,
			Tag:    ref.Tag,
			Start:  start,
			Length: length,
		}
		idx.order = append(idx.order, entry)

		if ref.Kind.IsKeyed() {
			m, ok := idx.keyed[ref.Kind]
			if !ok {
				m = make(map[string]*IndexEntry)
				idx.keyed[ref.Kind] = m
			}
			if _, dup := m[ref.ID]; dup {
				return nil, &DuplicateIDError{Kind: ref.Kind, ID: ref.ID}
			}
			m[ref.ID] = entry
		} else {
			idx.unkeyed[ref.Kind] = append(idx.unkeyed[ref.Kind], entry)
		}
	}
	return idx, nil
}

// Lookup returns the unkeyed entries of kind k, in file order.
func (idx *Index) Lookup(k Kind) []*IndexEntry {
	return idx.unkeyed[k]
}

// LookupID returns the keyed entry of kind k with the given id, or nil
// if none exists.
func (idx *Index) LookupID(k Kind, id string) *IndexEntry {
	return idx.keyed[k][id]
}

// LookupAllID returns every keyed entry of kind k, sorted by id for
// deterministic iteration.
func (idx *Index) LookupAllID(k Kind) []*IndexEntry {
	m := idx.keyed[k]
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*IndexEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

// Count returns the number of entries of kind k, keyed or not.
func (idx *Index) Count(k Kind) int {
	if n := len(idx.unkeyed[k]); n > 0 {
		return n
	}
	return len(idx.keyed[k])
}

// Kind reports whether any entries of kind k exist in the index.
func (idx *Index) Kind(k Kind) bool {
	return len(idx.unkeyed[k]) > 0 || len(idx.keyed[k]) > 0
}

// All returns every entry in the index, in file order.
func (idx *Index) All() []*IndexEntry {
	return idx.order
}
