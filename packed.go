// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package sequence

import (
	"fmt"
)

// packed stores signed integers zigzag encoded in fixed width bit
// fields, so small magnitudes of either sign need few bits
type packed struct {
	forbiddenMask uint64
	bits          uint8
	space         []uint64
	size          uint
}

var _ Vector = (*packed)(nil)

// BitPackedVectorAllocate allocates 'size' slots of 'bits' width packed
// into 64 bit words
func BitPackedVectorAllocate(bits uint, size uint) Vector {
	if bits == 0 || bits > BitsPerWord {
		panic(fmt.Sprintf("bit size of %d is not within [1, %d], not supported",
			bits, BitsPerWord))
	}
	return newPacked(uint8(bits), size)
}

func newPacked(bits uint8, size uint) *packed {
	var forbiddenMask uint64
	bit := uint64(1)
	for i := 0; i < int(bits); i++ {
		forbiddenMask |= bit
		bit <<= 1
	}
	forbiddenMask = ^forbiddenMask

	return &packed{forbiddenMask, bits, make([]uint64, packedWords(uint(bits), size)), size}
}

// packedWords is the number of words backing 'size' slots of 'bits' width
func packedWords(bits uint, size uint) uint {
	return (size * bits / 64) + 1
}

func zigzag(v int) uint64 {
	x := int64(v)
	return uint64((x << 1) ^ (x >> 63))
}

func unzigzag(u uint64) int {
	return int(int64(u>>1) ^ -int64(u&1))
}

func (p *packed) Set(ix uint, val int) {
	p.set(ix, zigzag(val))
}

func (p *packed) Swap(ix uint, val int) int {
	return unzigzag(p.set(ix, zigzag(val)))
}

func (p *packed) Get(ix uint) int {
	return unzigzag(p.get(ix))
}

func (p *packed) Len() uint {
	return p.size
}

func (p *packed) Fits(val int) bool {
	return zigzag(val)&p.forbiddenMask == 0
}

//                 | bitoff, the bit offset into the word
//                 V
//                   1 1 1 1 1 1 1 1 1 1 2 2 2 2 2 2 2 2 2 2 3 3 3
// 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2
//                 \---------------/
//                    getbits - the number of interesting bits in this
//                              word
func (p *packed) set(ix uint, val uint64) (oldval uint64) {
	if ix >= p.size {
		panic(fmt.Sprintf("slot %d out of range, vector holds %d", ix, p.size))
	}
	if val&p.forbiddenMask != 0 {
		panic(fmt.Sprintf("attempt to store out of range value.  numeric overflow: %x (%x)", (val & p.forbiddenMask), val))
	}
	oldval = p.get(ix)
	bitstart := ix * uint(p.bits)
	word := bitstart / 64
	bitoff := bitstart % 64
	getbits := 64 - (bitoff)
	if getbits > uint(p.bits) {
		getbits = uint(p.bits)
	}
	// zero
	p.space[word] =
		((p.space[word] >> (bitoff + getbits)) << (bitoff + getbits)) |
			(p.space[word] << (64 - bitoff) >> (64 - bitoff))

	// or in val
	p.space[word] |= (val << bitoff)

	if getbits < uint(p.bits) {
		remainder := uint(p.bits) - getbits
		p.space[word+1] = ((p.space[word+1] >> remainder) << remainder) | val>>getbits
	}
	return
}

func (p *packed) get(ix uint) (val uint64) {
	if ix >= p.size {
		panic(fmt.Sprintf("slot %d out of range, vector holds %d", ix, p.size))
	}
	bitstart := ix * uint(p.bits)
	word := bitstart / 64
	bitoff := bitstart % 64
	getbits := 64 - (bitoff)
	if getbits > uint(p.bits) {
		getbits = uint(p.bits)
	}
	// now get 'getbits' from 'word' starting at 'bitoff'
	sl := (64 - getbits - bitoff)
	val = (p.space[word] << sl)
	sr := (64 - getbits)
	val >>= sr
	if getbits < uint(p.bits) {
		remainder := uint(p.bits) - getbits
		x := (p.space[word+1] << (64 - remainder)) >> (64 - remainder)
		val |= x << getbits
	}
	return val
}
