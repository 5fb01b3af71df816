// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package sequence

import (
	"encoding/binary"

	murmur "github.com/aviddiviner/go-murmur"
)

const fingerprintSeed = uint64(0)

// Fingerprint hashes the items in order with 64 bit murmur 2.  Two
// sequences holding the same items have the same fingerprint whatever
// their capacity or representation.
func (s *Sequence) Fingerprint() uint64 {
	buf := make([]byte, s.length*bytesPerWord)
	for i := 0; i < s.length; i++ {
		binary.LittleEndian.PutUint64(buf[i*bytesPerWord:], uint64(s.items.Get(uint(i))))
	}
	return murmur.MurmurHash64A(buf, fingerprintSeed)
}
