// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

// Package sequence implements a sequence of integers indexed from 1
// which supports:
//  1. insertion and removal at any position
//  2. dynamic doubling when full, halving when mostly empty
//  3. packed or unpacked representations (choose time or space)
//  4. search, extrema and duplicate detection
//
// A Sequence is not safe for concurrent use.
package sequence

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Sequence is a resizable, 1-indexed sequence of integers
type Sequence struct {
	length   int
	capacity int
	items    Vector
	bits     uint
	allocfn  VectorAllocateFn
	config   Config
	logger   zerolog.Logger
}

// New returns an empty sequence with DefaultCapacity slots
func New() *Sequence {
	s, err := NewWithConfig(Config{Capacity: DefaultCapacity})
	if err != nil {
		panic("internal inconsistency")
	}
	return s
}

// NewWithItems returns a sequence holding a copy of items, backed by
// 'capacity' slots.  It fails if capacity cannot hold every item.
func NewWithItems(capacity int, items []int) (*Sequence, error) {
	return NewWithConfig(Config{Capacity: capacity}, items...)
}

// NewWithConfig returns a sequence built from c, holding a copy of items
func NewWithConfig(c Config, items ...int) (*Sequence, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Capacity < len(items) {
		return nil, fmt.Errorf("%w: capacity %d is smaller than item count %d",
			ErrInvalidArgument, c.Capacity, len(items))
	}

	s := Sequence{
		capacity: c.Capacity,
		bits:     c.bits(),
		allocfn:  c.allocFn(),
		config:   c,
		logger:   zerolog.Nop(),
	}
	if c.Logger != nil {
		s.logger = *c.Logger
	}
	s.items = s.allocfn(s.bits, uint(s.capacity))
	for i, v := range items {
		if !s.items.Fits(v) {
			return nil, fmt.Errorf("%w: item %d (%d) does not fit in %d bits",
				ErrInvalidArgument, i+1, v, s.bits)
		}
		s.items.Set(uint(i), v)
	}
	s.length = len(items)
	return &s, nil
}

// Len returns the number of items in the sequence
func (s *Sequence) Len() int {
	return s.length
}

// Cap returns the number of slots currently allocated
func (s *Sequence) Cap() int {
	return s.capacity
}

func checkIndex(op string, index, upper int) error {
	if index < 1 || index > upper {
		return fmt.Errorf("%w: %s index %d outside [1, %d]", ErrInvalidArgument, op, index, upper)
	}
	return nil
}

// Get returns the item stored at index, starting at 1
func (s *Sequence) Get(index int) (int, error) {
	if err := checkIndex("get", index, s.length); err != nil {
		return 0, err
	}
	return s.items.Get(uint(index - 1)), nil
}

// Insert places item at index, shifting the item previously at index
// and every following item one step to the right.  index may be one
// past the last item, which appends.
func (s *Sequence) Insert(item, index int) error {
	if err := checkIndex("insert", index, s.length+1); err != nil {
		return err
	}
	if !s.items.Fits(item) {
		return fmt.Errorf("%w: item %d does not fit in %d bits", ErrInvalidArgument, item, s.bits)
	}

	if s.length == s.capacity {
		s.grow()
	}

	// walk right to left so every slot is read before it is overwritten
	for i := s.length; i >= index; i-- {
		s.items.Set(uint(i), s.items.Get(uint(i-1)))
	}
	s.items.Set(uint(index-1), item)
	s.length++
	return nil
}

// Remove drops the item at index, shifting every following item one
// step to the left
func (s *Sequence) Remove(index int) error {
	if err := checkIndex("remove", index, s.length); err != nil {
		return err
	}

	for i := index - 1; i < s.length-1; i++ {
		s.items.Set(uint(i), s.items.Get(uint(i+1)))
	}
	s.length--
	s.items.Set(uint(s.length), 0)

	if s.length > 0 && s.length <= s.capacity/4 {
		s.shrink()
	}
	return nil
}

func (s *Sequence) grow() {
	newCapacity := s.capacity * 2
	if newCapacity < 1 {
		newCapacity = 1
	}
	s.resize(newCapacity, "grow")
}

func (s *Sequence) shrink() {
	s.resize(s.capacity/2, "shrink")
}

// resize reallocates the backing vector, keeping the live items in place
func (s *Sequence) resize(newCapacity int, event string) {
	nv := s.allocfn(s.bits, uint(newCapacity))
	copyVector(nv, s.items, uint(s.length))
	s.logger.Debug().
		Int("from", s.capacity).
		Int("to", newCapacity).
		Int("length", s.length).
		Msg(event)
	s.items = nv
	s.capacity = newCapacity
}

// Search returns the index of the first occurrence of item, or 0 if
// it is not present.
//
// Only live items are scanned unless the sequence was configured with
// ScanUnusedCapacity, in which case unused slots (which hold 0) are
// scanned too.
func (s *Sequence) Search(item int) int {
	limit := s.length
	if s.config.ScanUnusedCapacity {
		limit = s.capacity
	}
	for i := 0; i < limit; i++ {
		if s.items.Get(uint(i)) == item {
			return i + 1
		}
	}
	return 0
}

// Extrema returns the smallest and the largest item
func (s *Sequence) Extrema() (min, max int, err error) {
	if s.length == 0 {
		return 0, 0, fmt.Errorf("%w: no items in sequence", ErrInvalidState)
	}
	min = s.items.Get(0)
	max = min
	for i := 1; i < s.length; i++ {
		item := s.items.Get(uint(i))
		if item < min {
			min = item
		}
		if item > max {
			max = item
		}
	}
	return min, max, nil
}

// ToArray returns a copy of the items in order.  The copy does not
// share storage with the sequence.
func (s *Sequence) ToArray() []int {
	out := make([]int, s.length)
	for i := range out {
		out[i] = s.items.Get(uint(i))
	}
	return out
}

// CheckConsistency verifies the internal invariants of the sequence
func (s *Sequence) CheckConsistency() error {
	if s.length < 0 || s.length > s.capacity {
		return fmt.Errorf("length %d outside [0, %d]", s.length, s.capacity)
	}
	if s.items.Len() != uint(s.capacity) {
		return fmt.Errorf("capacity is %d but %d slots are allocated", s.capacity, s.items.Len())
	}
	for i := s.length; i < s.capacity; i++ {
		if v := s.items.Get(uint(i)); v != 0 {
			return fmt.Errorf("unused slot %d holds %d", i, v)
		}
	}
	return nil
}

// DebugDump writes a textual representation of the backing slots to w
func (s *Sequence) DebugDump(w io.Writer) {
	fmt.Fprintf(w, "\n  length %d, capacity %d\n", s.length, s.capacity)
	fmt.Fprintf(w, "\n    slot  value->\n")
	for i := 0; i < s.length; i++ {
		fmt.Fprintf(w, "%8d  %d\n", i, s.items.Get(uint(i)))
	}
	if unused := s.capacity - s.length; unused > 0 {
		fmt.Fprintf(w, "          ... (%d unused)\n", unused)
	}
}
