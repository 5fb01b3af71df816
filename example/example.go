// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"fmt"
	"os"

	sequence "github.com/facebookincubator/go-sequence"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// small values fit in a few bits, so pack them.  Otherwise, just
	// use New()
	config := sequence.Config{
		Capacity:    2,
		BitPacked:   true,
		BitsPerItem: 8,
		Logger:      &logger,
	}
	config.Explain()

	seq, err := sequence.NewWithConfig(config, 5, 7)
	if err != nil {
		logger.Fatal().Err(err).Msg("building sequence")
	}
	for i, v := range []int{9, -3, 42, 7} {
		if err := seq.Insert(v, i+1); err != nil {
			logger.Fatal().Err(err).Msg("insert")
		}
	}
	fmt.Printf("items: %v (capacity %d)\n", seq.ToArray(), seq.Cap())

	for _, v := range []int{7, 42, 100} {
		fmt.Printf("%d: found at %d\n", v, seq.Search(v))
	}
	if min, max, err := seq.Extrema(); err == nil {
		fmt.Printf("extrema: %d %d\n", min, max)
	}
	fmt.Printf("has duplicate: %t\n", seq.HasDuplicate())

	// 1000 does not fit in 8 bits
	if err := seq.Insert(1000, 1); err != nil {
		fmt.Printf("rejected: %s\n", err)
	}

	for seq.Len() > 1 {
		if err := seq.Remove(1); err != nil {
			logger.Fatal().Err(err).Msg("remove")
		}
	}

	// Dump the whole sequence in textual form
	seq.DebugDump(os.Stdout)
}
