// SPDX-License-Identifier: Unlicense OR MIT

package glbuf

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/glbuf/driver"
)

func TestNewBuffer(t *testing.T) {
	dev, _ := newTestDevice(t)
	b := NewBuffer(dev, driver.TargetArray)
	defer b.Release()

	assert.True(t, b.Valid())
	assert.Equal(t, driver.TargetArray, b.Target())
	assert.Equal(t, 0, b.Size())
	assert.Equal(t, driver.UsageNone, b.Usage())
	_, hasLoc := b.Location()
	assert.False(t, hasLoc)
	obj, ok := b.Object()
	require.True(t, ok)
	assert.NotNil(t, dev.Buffer(obj))
	assert.Equal(t, 1, dev.BuffersCreated)
}

func TestTypedBuffers(t *testing.T) {
	dev, _ := newTestDevice(t)
	for _, test := range []struct {
		b      *Buffer
		target driver.BufferTarget
	}{
		{NewArrayBuffer(dev), driver.TargetArray},
		{NewElementBuffer(dev), driver.TargetElementArray},
		{NewStorageBuffer(dev), driver.TargetShaderStorage},
	} {
		assert.Equal(t, test.target, test.b.Target())
		test.b.Release()
	}
	assert.Equal(t, 0, dev.LiveBuffers())
}

func TestNewBufferAllocationFailure(t *testing.T) {
	dev, _ := newTestDevice(t)
	dev.FailAlloc = true
	assert.Panics(t, func() { NewBuffer(dev, driver.TargetArray) })
}

func TestSetTarget(t *testing.T) {
	dev, _ := newTestDevice(t)
	b := NewBuffer(dev, driver.TargetArray)
	defer b.Release()

	prev := b.SetTarget(driver.TargetShaderStorage)
	assert.Equal(t, driver.TargetArray, prev)
	assert.Equal(t, driver.TargetShaderStorage, b.Target())
	assert.Equal(t, driver.Object(0), dev.Bound(driver.TargetArray))
	assert.Equal(t, driver.Object(0), dev.Bound(driver.TargetShaderStorage))

	ctx := b.Bind()
	defer ctx.Unbind()
	obj, _ := b.Object()
	assert.Equal(t, obj, dev.Bound(driver.TargetShaderStorage))
}

func TestBindUnbind(t *testing.T) {
	dev, _ := newTestDevice(t)
	b := NewArrayBuffer(dev)
	defer b.Release()
	obj, _ := b.Object()

	ctx := b.Bind()
	assert.Same(t, b, ctx.Buffer())
	assert.Equal(t, obj, dev.Bound(driver.TargetArray))
	ctx.Unbind()
	assert.Equal(t, driver.Object(0), dev.Bound(driver.TargetArray))
	// A second Unbind must not clobber other bindings.
	other := NewArrayBuffer(dev)
	defer other.Release()
	octx := other.Bind()
	defer octx.Unbind()
	ctx.Unbind()
	oobj, _ := other.Object()
	assert.Equal(t, oobj, dev.Bound(driver.TargetArray))
}

func TestUploadNonIncreasingSizesReusesStorage(t *testing.T) {
	dev, _ := newTestDevice(t)
	b := NewArrayBuffer(dev)
	defer b.Release()
	obj, _ := b.Object()

	ctx := b.Bind()
	defer ctx.Unbind()
	for _, n := range []int{1024, 1024, 512, 100, 0} {
		ctx.Upload(bytesOf(n), driver.UsageDynamicDraw)
		assert.Equal(t, 1, dev.Buffer(obj).Allocs, "upload of %d bytes", n)
		assert.Equal(t, 1024, b.Size(), "upload of %d bytes", n)
	}
	assert.Equal(t, 3, dev.PartialUpdates)
	assert.Equal(t, bytesOf(100), dev.Buffer(obj).Data[:100])
	assert.Empty(t, dev.Errors)
}

func TestUploadGrows(t *testing.T) {
	dev, _ := newTestDevice(t)
	b := NewArrayBuffer(dev)
	defer b.Release()

	ctx := b.Bind()
	ctx.Upload(bytesOf(16), driver.UsageStaticDraw).Upload(bytesOf(32), driver.UsageStaticDraw)
	ctx.Unbind()
	assert.Equal(t, 2, dev.Reallocations)
	assert.Equal(t, 32, b.Size())
}

func TestUploadUsageChangeReallocates(t *testing.T) {
	dev, _ := newTestDevice(t)
	b := NewArrayBuffer(dev)
	defer b.Release()
	obj, _ := b.Object()

	ctx := b.Bind()
	defer ctx.Unbind()
	ctx.Upload(bytesOf(64), driver.UsageStaticDraw)
	ctx.Upload(bytesOf(64), driver.UsageDynamicDraw)
	assert.Equal(t, 2, dev.Reallocations)
	assert.Equal(t, 0, dev.PartialUpdates)
	assert.Equal(t, driver.UsageDynamicDraw, b.Usage())
	assert.Equal(t, driver.UsageDynamicDraw, dev.Buffer(obj).Usage)
	// A smaller upload with another usage shrinks the allocation.
	ctx.Upload(bytesOf(8), driver.UsageStreamDraw)
	assert.Equal(t, 8, b.Size())
	assert.Len(t, dev.Buffer(obj).Data, 8)
}

func TestReserve(t *testing.T) {
	dev, _ := newTestDevice(t)
	b := NewStorageBuffer(dev)
	defer b.Release()
	obj, _ := b.Object()

	ctx := b.Bind()
	defer ctx.Unbind()
	ctx.Reserve(256, driver.UsageDynamicCopy)
	assert.Equal(t, 256, b.Size())
	assert.Equal(t, driver.UsageDynamicCopy, b.Usage())
	assert.Equal(t, make([]byte, 256), dev.Buffer(obj).Data)

	ctx.Reserve(64, driver.UsageDynamicCopy)
	assert.Equal(t, 64, b.Size())
	assert.Equal(t, 2, dev.Reallocations)
}

func TestUpdateNeverReallocates(t *testing.T) {
	dev, _ := newTestDevice(t)
	b := NewArrayBuffer(dev)
	defer b.Release()
	obj, _ := b.Object()

	ctx := b.Bind()
	defer ctx.Unbind()
	ctx.Reserve(64, driver.UsageStaticDraw).Update(16, []byte{1, 2, 3, 4}).Update(60, []byte{9, 9, 9, 9})
	assert.Equal(t, 1, dev.Reallocations)
	assert.Equal(t, 64, b.Size())
	assert.Equal(t, driver.UsageStaticDraw, b.Usage())
	data := dev.Buffer(obj).Data
	assert.Equal(t, []byte{1, 2, 3, 4}, data[16:20])
	assert.Equal(t, []byte{9, 9, 9, 9}, data[60:64])

	// Empty updates don't reach the driver.
	ctx.Update(0, nil)
	assert.Equal(t, 2, dev.PartialUpdates)
}

func TestUploadPointer(t *testing.T) {
	dev, _ := newTestDevice(t)
	b := NewArrayBuffer(dev)
	defer b.Release()
	obj, _ := b.Object()

	v := [3]float32{1, 2, 3}
	ctx := b.Bind()
	defer ctx.Unbind()
	ctx.UploadPointer(int(unsafe.Sizeof(v)), unsafe.Pointer(&v[0]), driver.UsageStaticDraw)
	require.Equal(t, 12, b.Size())
	data := dev.Buffer(obj).Data
	assert.Equal(t, math.Float32bits(3), binary.NativeEndian.Uint32(data[8:]))

	w := float32(5)
	ctx.UpdatePointer(4, 4, unsafe.Pointer(&w))
	assert.Equal(t, math.Float32bits(5), binary.NativeEndian.Uint32(data[4:]))
	// The source is copied, not retained.
	v[0] = 7
	assert.Equal(t, math.Float32bits(1), binary.NativeEndian.Uint32(data[0:]))
}

func TestUploadSlice(t *testing.T) {
	dev, _ := newTestDevice(t)
	b := NewArrayBuffer(dev)
	defer b.Release()
	obj, _ := b.Object()

	type vertex struct {
		X, Y, U, V float32
	}
	verts := []vertex{{0, 0, 0, 0}, {1, 0, 1, 0}, {0, 1, 0, 1}}
	ctx := b.Bind()
	defer ctx.Unbind()
	UploadSlice(ctx, verts, driver.UsageStaticDraw)
	assert.Equal(t, 3*16, b.Size())

	UpdateSlice(ctx, 16, []float32{2})
	data := dev.Buffer(obj).Data
	assert.Equal(t, math.Float32bits(2), binary.NativeEndian.Uint32(data[16:]))
	assert.Equal(t, 1, dev.Reallocations)
}

func TestUploadIndices(t *testing.T) {
	dev, _ := newTestDevice(t)
	b := NewElementBuffer(dev)
	defer b.Release()

	_, ok := b.IndexType()
	assert.False(t, ok)

	ctx := b.Bind()
	defer ctx.Unbind()
	UploadIndices(ctx, []uint16{0, 1, 2, 2, 1, 3}, driver.UsageStaticDraw)
	typ, ok := b.IndexType()
	assert.True(t, ok)
	assert.Equal(t, driver.DataTypeUnsignedShort, typ)
	assert.Equal(t, 12, b.Size())

	UploadIndices(ctx, []uint32{0, 1, 2}, driver.UsageStaticDraw)
	typ, _ = b.IndexType()
	assert.Equal(t, driver.DataTypeUnsignedInt, typ)

	UploadIndices(ctx, []uint8{0, 1, 2}, driver.UsageStaticDraw)
	typ, _ = b.IndexType()
	assert.Equal(t, driver.DataTypeUnsignedByte, typ)

	assert.Panics(t, func() { UploadIndices(ctx, []uint64{0}, driver.UsageStaticDraw) })
}

func TestMove(t *testing.T) {
	dev, _ := newTestDevice(t)
	src := NewArrayBuffer(dev)
	obj, _ := src.Object()
	ctx := src.Bind()
	ctx.Upload(bytesOf(32), driver.UsageStaticDraw)
	ctx.Unbind()

	dst := src.Move()
	assert.False(t, src.Valid())
	_, ok := src.Object()
	assert.False(t, ok)
	assert.Equal(t, 0, src.Size())
	dobj, ok := dst.Object()
	assert.True(t, ok)
	assert.Equal(t, obj, dobj)
	assert.Equal(t, 32, dst.Size())
	assert.Equal(t, driver.UsageStaticDraw, dst.Usage())

	src.Release()
	assert.Equal(t, 0, dev.BuffersDeleted)
	dst.Release()
	assert.Equal(t, 1, dev.BuffersDeleted)
	dst.Release()
	src.Release()
	assert.Equal(t, 1, dev.BuffersDeleted)
	assert.Equal(t, 0, dev.RedundantDelete)
	assert.Equal(t, 0, dev.LiveHandles())
}

func TestBindBase(t *testing.T) {
	dev, _ := newTestDevice(t)
	u := NewUniformBuffer(dev, 2)
	defer u.Release()
	obj, _ := u.Object()

	loc, ok := u.Location()
	assert.True(t, ok)
	assert.Equal(t, 2, loc)
	assert.Equal(t, obj, dev.BoundBase(driver.TargetUniform, 2))

	s := NewStorageBuffer(dev)
	defer s.Release()
	ctx := s.Bind()
	ctx.Reserve(128, driver.UsageDynamicDraw)
	ctx.Unbind()
	s.BindBase(1)
	sobj, _ := s.Object()
	assert.Equal(t, sobj, dev.BoundBase(driver.TargetShaderStorage, 1))

	moved := s.Move()
	defer moved.Release()
	loc, ok = moved.Location()
	assert.True(t, ok)
	assert.Equal(t, 1, loc)
	assert.Empty(t, dev.Errors)
}

func TestReleaseLogs(t *testing.T) {
	dev, rec := newTestDevice(t)
	b := NewArrayBuffer(dev)
	b.Release()
	assert.Len(t, rec.records, 2)
	assert.Empty(t, rec.warnings())
}
