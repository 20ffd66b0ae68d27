// SPDX-License-Identifier: Unlicense OR MIT

package glbuf

import (
	"gioui.org/glbuf/driver"
)

// Buffer owns a driver buffer object.
type Buffer struct {
	noCopy noCopy

	dev    driver.Device
	h      handle
	target driver.BufferTarget
	// size and usage describe the last allocation.
	size  int
	usage driver.Usage
	// location is the indexed binding point, or -1.
	location  int
	indexType driver.DataType
	hasIndex  bool
}

// NewBuffer allocates a buffer object for target. It panics if the
// driver fails to allocate it.
func NewBuffer(d driver.Device, target driver.BufferTarget) *Buffer {
	obj := d.CreateBuffer()
	if obj == 0 {
		fatal("driver failed to allocate a %v buffer", target)
	}
	if debugEnabled() {
		Logger().Debug("glbuf: buffer created", "buffer", obj, "target", target)
	}
	return &Buffer{
		dev:      d,
		h:        someHandle(obj),
		target:   target,
		location: -1,
	}
}

// NewArrayBuffer allocates a vertex data buffer.
func NewArrayBuffer(d driver.Device) *Buffer {
	return NewBuffer(d, driver.TargetArray)
}

// NewElementBuffer allocates an index buffer.
func NewElementBuffer(d driver.Device) *Buffer {
	return NewBuffer(d, driver.TargetElementArray)
}

// NewStorageBuffer allocates a shader storage buffer.
func NewStorageBuffer(d driver.Device) *Buffer {
	return NewBuffer(d, driver.TargetShaderStorage)
}

// NewUniformBuffer allocates a uniform buffer bound to the indexed
// binding point location.
func NewUniformBuffer(d driver.Device, location int) *Buffer {
	b := NewBuffer(d, driver.TargetUniform)
	b.BindBase(location)
	return b
}

// SetTarget changes the target the buffer binds to and returns the
// previous target. It doesn't touch driver state.
func (b *Buffer) SetTarget(t driver.BufferTarget) driver.BufferTarget {
	prev := b.target
	b.target = t
	return prev
}

// Bind binds the buffer to its target and returns the context for
// mutating it. A graphics context must be current.
func (b *Buffer) Bind() *BufferContext {
	if contractsEnabled {
		contract(b.dev.CurrentContext(), "expected an active graphics context")
		contract(b.h.valid, "expected %v buffer to have an associated object (was it moved or released?)", b.target)
	}
	c := &BufferContext{buf: b, target: b.target}
	c.bind()
	return c
}

// BindBase binds the buffer to the indexed binding point location of
// its target, which must be a uniform, shader storage, atomic counter
// or transform feedback target.
func (b *Buffer) BindBase(location int) {
	if contractsEnabled {
		contract(b.dev.CurrentContext(), "expected an active graphics context")
		contract(b.h.valid, "expected %v buffer to have an associated object (was it moved or released?)", b.target)
		contract(b.target.Indexed(), "%v buffers have no indexed binding points", b.target)
		contract(location >= 0, "negative binding point %d", location)
	}
	b.location = location
	b.dev.BindBufferBase(b.target, location, b.h.obj)
	record(BufferSlot(b.target), b.h.obj)
}

// Move transfers the driver object and its bookkeeping to a new
// Buffer. b is left without an object.
func (b *Buffer) Move() *Buffer {
	nb := &Buffer{
		dev:       b.dev,
		h:         b.h.take(),
		target:    b.target,
		size:      b.size,
		usage:     b.usage,
		location:  b.location,
		indexType: b.indexType,
		hasIndex:  b.hasIndex,
	}
	b.size = 0
	b.usage = driver.UsageNone
	b.location = -1
	b.hasIndex = false
	return nb
}

// Release frees the driver object. It does nothing for a released or
// moved-from buffer.
func (b *Buffer) Release() {
	obj, ok := b.h.get()
	if !ok {
		return
	}
	forget(BufferSlot(b.target), obj)
	b.dev.DeleteBuffer(obj)
	b.h = handle{}
	b.size = 0
	if debugEnabled() {
		Logger().Debug("glbuf: buffer released", "buffer", obj, "target", b.target)
	}
}

// Valid reports whether the buffer owns a driver object.
func (b *Buffer) Valid() bool {
	return b.h.valid
}

// Object returns the driver object, if any.
func (b *Buffer) Object() (driver.Object, bool) {
	return b.h.get()
}

// Target returns the buffer target.
func (b *Buffer) Target() driver.BufferTarget {
	return b.target
}

// Size returns the byte size of the last allocation.
func (b *Buffer) Size() int {
	return b.size
}

// Usage returns the usage hint of the last allocation.
func (b *Buffer) Usage() driver.Usage {
	return b.usage
}

// Location returns the indexed binding point set by BindBase.
func (b *Buffer) Location() (int, bool) {
	return b.location, b.location >= 0
}

// IndexType returns the index element type recorded by
// UploadIndices.
func (b *Buffer) IndexType() (driver.DataType, bool) {
	return b.indexType, b.hasIndex
}
