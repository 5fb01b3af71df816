// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package sequence

import (
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultCapacity is the number of slots allocated by New
const DefaultCapacity = 100

// BitsPerWord is the width of an unpacked slot, and the widest slot a
// packed representation supports
const BitsPerWord = 64

const bytesPerWord = BitsPerWord / 8

// Config controls the behavior of a sequence
type Config struct {
	// The number of slots to allocate up front.  Zero is allowed, the
	// first insert will then grow the sequence to a single slot
	Capacity int
	// Whether to store items bit-packed rather than one machine word
	// per slot
	BitPacked bool
	// The width of a packed slot.  Required when BitPacked is set,
	// ignored otherwise
	BitsPerItem uint
	// When set, Search walks every allocated slot instead of only
	// the live ones, and so may report a match in unused capacity
	ScanUnusedCapacity bool
	// Receives debug events when the sequence grows or shrinks.  nil
	// disables logging
	Logger *zerolog.Logger
}

// Validate reports whether the configuration can be used to build a
// sequence
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, c.Capacity)
	}
	if c.BitPacked && (c.BitsPerItem == 0 || c.BitsPerItem > BitsPerWord) {
		return fmt.Errorf("%w: %d bits per item, must be within [1, %d]",
			ErrInvalidArgument, c.BitsPerItem, BitsPerWord)
	}
	return nil
}

func (c *Config) bits() uint {
	if c.BitPacked {
		return c.BitsPerItem
	}
	return BitsPerWord
}

func (c *Config) allocFn() VectorAllocateFn {
	if c.BitPacked {
		return BitPackedVectorAllocate
	}
	return UnpackedVectorAllocate
}

// BytesRequired reports the approximate amount of ram needed for the
// configured capacity
func (c *Config) BytesRequired() uint {
	if c.Capacity <= 0 {
		return 0
	}
	if c.BitPacked {
		return packedWords(c.BitsPerItem, uint(c.Capacity)) * bytesPerWord
	}
	return uint(c.Capacity) * bytesPerWord
}

// ExplainIndent will print an indented summary of the configuration to stdout
func (c *Config) ExplainIndent(indent string) {
	fmt.Printf("%s%5d slots allocated up front\n", indent, c.Capacity)
	if c.BitPacked {
		fmt.Printf("%s%5d bits per item (bit packed)\n", indent, c.BitsPerItem)
	} else {
		fmt.Printf("%s%5d bits per item (unpacked)\n", indent, BitsPerWord)
	}
	if c.ScanUnusedCapacity {
		fmt.Printf("%s      search scans unused capacity\n", indent)
	}
	fmt.Printf("%s      %s storage size expected\n", indent, humanBytes(c.BytesRequired()))
}

// Explain will print a summary of the configuration to stdout
func (c *Config) Explain() {
	c.ExplainIndent("")
}

func humanBytes(bytes uint) string {
	v := float64(bytes)
	suffix := "bytes"
	if v > 1024 {
		v /= 1024.
		suffix = "KB"
		if v > 1024. {
			suffix = "MB"
			v /= 1024.0
			if v > 1024. {
				suffix = "GB"
				v /= 1024.
			}
		}
	}
	if v < 10 {
		return fmt.Sprintf("%0.2f %s", v, suffix)
	} else if v < 100 {
		return fmt.Sprintf("%0.1f %s", v, suffix)
	} else {
		return fmt.Sprintf("%0.0f %s", v, suffix)
	}
}
