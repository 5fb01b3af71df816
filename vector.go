// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package sequence

// VectorAllocateFn allocates a fixed size Vector capable of storing
// 'size' integers of 'bits' width
type VectorAllocateFn func(bits uint, size uint) Vector

// Vector stores a fixed size contiguous array of integer data.  A
// freshly allocated Vector holds zero in every slot.
type Vector interface {
	// Set element ix to the specified value
	Set(ix uint, val int)
	// Swap val in ix and return previous value
	Swap(ix uint, val int) int
	// Get the current value stored at element ix
	Get(ix uint) int
	// Len is the number of slots
	Len() uint
	// Fits reports whether val can be stored without loss
	Fits(val int) bool
}

// copyVector copies the first n slots of src into dst
func copyVector(dst, src Vector, n uint) {
	for i := uint(0); i < n; i++ {
		dst.Set(i, src.Get(i))
	}
}
