// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package sequence

import (
	"testing"

	"fmt"
	"math/rand"
	"strconv"

	"github.com/stretchr/testify/assert"
)

func TestBitPacking(t *testing.T) {
	r := rand.NewSource(77) //intentionally fixed seed
	for bits := uint(1); bits <= 64; bits++ {
		n := uint(100)
		p := BitPackedVectorAllocate(bits, n).(*packed)
		expected := make([]int, n)
		for j := 0; j < 100; j++ {
			for i := uint(0); i < n; i++ {
				v := unzigzag(uint64(r.Int63()) & ^p.forbiddenMask)
				if !assert.True(t, p.Fits(v)) {
					return
				}
				p.Set(i, v)
				expected[i] = v
				if !assert.Equal(t, v, p.Get(i), "failed to write %s into %d", strconv.FormatUint(zigzag(v), 2), i) {
					for i, x := range p.space {
						fmt.Printf("[%2d] %d) %s\n", j, i, strconv.FormatUint(uint64(x), 2))
					}
					return
				}
			}
			// neighbouring slots survive every write
			for i := uint(0); i < n; i++ {
				if !assert.Equal(t, expected[i], p.Get(i), "%d bits, slot %d clobbered", bits, i) {
					return
				}
			}
		}
	}
}

func TestPackedFits(t *testing.T) {
	p := BitPackedVectorAllocate(4, 8)
	for _, v := range []int{-8, -1, 0, 1, 7} {
		assert.True(t, p.Fits(v), "%d", v)
	}
	for _, v := range []int{-9, 8, 1 << 40} {
		assert.False(t, p.Fits(v), "%d", v)
	}

	wide := BitPackedVectorAllocate(64, 1)
	assert.True(t, wide.Fits(-1<<63))
	assert.True(t, wide.Fits(1<<63-1))
	wide.Set(0, -1<<63)
	assert.Equal(t, -1<<63, wide.Get(0))
}

func TestPackedSwap(t *testing.T) {
	p := BitPackedVectorAllocate(9, 10)
	assert.Equal(t, 0, p.Swap(3, -200))
	assert.Equal(t, -200, p.Swap(3, 255))
	assert.Equal(t, 255, p.Get(3))
	assert.Equal(t, uint(10), p.Len())
}

func TestPackedPanics(t *testing.T) {
	p := BitPackedVectorAllocate(4, 2)
	assert.Panics(t, func() { p.Set(0, 100) })
	assert.Panics(t, func() { p.Set(2, 1) })
	assert.Panics(t, func() { p.Get(2) })
	assert.Panics(t, func() { BitPackedVectorAllocate(0, 2) })
	assert.Panics(t, func() { BitPackedVectorAllocate(65, 2) })
}

func TestUnpacked(t *testing.T) {
	v := UnpackedVectorAllocate(BitsPerWord, 3)
	assert.Equal(t, uint(3), v.Len())
	assert.True(t, v.Fits(-1<<63))
	assert.Equal(t, 0, v.Swap(1, 5))
	assert.Equal(t, 5, v.Swap(1, 6))
	assert.Equal(t, 6, v.Get(1))

	dst := UnpackedVectorAllocate(BitsPerWord, 4)
	copyVector(dst, v, v.Len())
	assert.Equal(t, 6, dst.Get(1))
	assert.Equal(t, 0, dst.Get(3))
}

func TestZigzag(t *testing.T) {
	for _, v := range []int{0, 1, -1, 2, -2, 1000, -1000, 1<<63 - 1, -1 << 63} {
		assert.Equal(t, v, unzigzag(zigzag(v)))
	}
	assert.Equal(t, uint64(0), zigzag(0))
	assert.Equal(t, uint64(1), zigzag(-1))
	assert.Equal(t, uint64(2), zigzag(1))
}
