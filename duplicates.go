// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package sequence

import (
	"encoding/binary"
	"slices"

	"github.com/bits-and-blooms/bloom/v3"
)

// falsePositiveRate sizes the prefilter used by HasDuplicateFiltered.  A
// false positive only costs a map entry, never a wrong answer.
const falsePositiveRate = 0.01

// HasDuplicate reports whether the same item is stored at two different
// indices.  It compares every pair of items and needs no extra memory.
func (s *Sequence) HasDuplicate() bool {
	for i := 0; i < s.length; i++ {
		a := s.items.Get(uint(i))
		for j := i + 1; j < s.length; j++ {
			if a == s.items.Get(uint(j)) {
				return true
			}
		}
	}
	return false
}

// HasDuplicateSorted answers like HasDuplicate by sorting a copy of the
// items and comparing neighbours
func (s *Sequence) HasDuplicateSorted() bool {
	items := s.ToArray()
	slices.Sort(items)
	for i := 1; i < len(items); i++ {
		if items[i] == items[i-1] {
			return true
		}
	}
	return false
}

// HasDuplicateFiltered answers like HasDuplicate.  A bloom filter picks
// out the values which may repeat, then only those are counted exactly.
func (s *Sequence) HasDuplicateFiltered() bool {
	if s.length < 2 {
		return false
	}
	bf := bloom.NewWithEstimates(uint(s.length), falsePositiveRate)
	var key [8]byte
	candidates := map[int]int{}
	for i := 0; i < s.length; i++ {
		v := s.items.Get(uint(i))
		binary.LittleEndian.PutUint64(key[:], uint64(v))
		if bf.TestAndAdd(key[:]) {
			candidates[v] = 0
		}
	}
	if len(candidates) == 0 {
		return false
	}
	for i := 0; i < s.length; i++ {
		v := s.items.Get(uint(i))
		seen, ok := candidates[v]
		if !ok {
			continue
		}
		if seen > 0 {
			return true
		}
		candidates[v] = seen + 1
	}
	return false
}
