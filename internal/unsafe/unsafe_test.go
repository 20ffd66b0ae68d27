// SPDX-License-Identifier: Unlicense OR MIT

package unsafe

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesView(t *testing.T) {
	v := []float32{1, 2, 3}
	b := BytesView(v)
	require.Len(t, b, 12)
	assert.Equal(t, math.Float32bits(2), binary.NativeEndian.Uint32(b[4:8]))

	v[0] = 4
	assert.Equal(t, math.Float32bits(4), binary.NativeEndian.Uint32(b[0:4]), "view must alias the slice")
}

func TestBytesViewEmpty(t *testing.T) {
	assert.Nil(t, BytesView([]uint16(nil)))
	assert.Nil(t, BytesView([]uint16{}))
}

func TestSliceOf(t *testing.T) {
	v := [4]byte{1, 2, 3, 4}
	assert.Equal(t, []byte{1, 2, 3}, SliceOf(unsafe.Pointer(&v[0]), 3))
	assert.Nil(t, SliceOf(nil, 3))
}
