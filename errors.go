// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package sequence

import "errors"

var (
	// ErrInvalidArgument is returned for out of range indices, impossible
	// capacities and values a packed representation cannot hold.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is returned when an operation needs at least one
	// item and the sequence is empty.
	ErrInvalidState = errors.New("invalid state")
)
