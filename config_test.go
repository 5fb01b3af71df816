// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{Capacity: 10, BitPacked: true, BitsPerItem: 64}).Validate())
	// width is only meaningful when packing
	assert.NoError(t, (&Config{BitsPerItem: 500}).Validate())

	for _, c := range []Config{
		{Capacity: -1},
		{BitPacked: true},
		{BitPacked: true, BitsPerItem: 65},
	} {
		assert.ErrorIs(t, c.Validate(), ErrInvalidArgument, "%+v", c)
		_, err := NewWithConfig(c)
		assert.ErrorIs(t, err, ErrInvalidArgument, "%+v", c)
	}
}

func TestSizeEstimate(t *testing.T) {
	c := Config{Capacity: 100}
	assert.Equal(t, uint(800), c.BytesRequired())

	c = Config{Capacity: 100, BitPacked: true, BitsPerItem: 8}
	assert.Equal(t, uint(104), c.BytesRequired())

	c = Config{}
	assert.Equal(t, uint(0), c.BytesRequired())
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "800 bytes", humanBytes(800))
	assert.Equal(t, "2.00 KB", humanBytes(2048))
	assert.Equal(t, "1.50 MB", humanBytes(1536*1024))
}
