// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package sequence

type unpacked []int

var _ Vector = (unpacked)(nil)

// UnpackedVectorAllocate allocates one machine int per slot.  bits is
// ignored, every int fits.
func UnpackedVectorAllocate(bits uint, size uint) Vector {
	return make(unpacked, size)
}

func (v unpacked) Set(ix uint, val int) {
	v[ix] = val
}

func (v unpacked) Swap(ix uint, val int) (oldval int) {
	v[ix], oldval = val, v[ix]
	return
}

func (v unpacked) Get(ix uint) (val int) {
	return v[ix]
}

func (v unpacked) Len() uint {
	return uint(len(v))
}

func (v unpacked) Fits(int) bool {
	return true
}
