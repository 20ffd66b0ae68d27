// SPDX-License-Identifier: Unlicense OR MIT

package glbuf

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"gioui.org/glbuf/driver"
	gunsafe "gioui.org/glbuf/internal/unsafe"
)

// BufferContext is the proof that a buffer is bound to its target.
// It is valid from Buffer.Bind until Unbind, provided no other buffer
// is bound to the same target in between. Its methods return the
// context for chaining.
type BufferContext struct {
	buf    *Buffer
	target driver.BufferTarget
	active bool
}

func (c *BufferContext) bind() {
	obj := c.buf.h.obj
	c.buf.dev.BindBuffer(c.target, obj)
	record(BufferSlot(c.target), obj)
	c.active = true
}

// Rebind binds the buffer again. It is rarely needed: Bind has
// already bound it.
func (c *BufferContext) Rebind() *BufferContext {
	if contractsEnabled {
		contract(c.active, "Rebind of an unbound buffer context")
		contract(c.buf.h.valid, "expected %v buffer to have an associated object (was it moved or released?)", c.target)
	}
	c.bind()
	return c
}

// Unbind binds no buffer to the target and ends the context. Further
// calls do nothing.
func (c *BufferContext) Unbind() {
	if !c.active {
		return
	}
	c.active = false
	if contractsEnabled && c.target == driver.TargetElementArray && observer.Bound(VertexArraySlot) != 0 {
		// The element array binding is vertex array state.
		Logger().Warn("glbuf: unbinding an element buffer detaches it from the bound vertex array",
			"buffer", c.buf.h.obj, "vertexArray", observer.Bound(VertexArraySlot))
	}
	c.buf.dev.BindBuffer(c.target, 0)
	record(BufferSlot(c.target), 0)
}

// Buffer returns the bound buffer.
func (c *BufferContext) Buffer() *Buffer {
	return c.buf
}

func (c *BufferContext) check(op string) {
	if !contractsEnabled {
		return
	}
	contract(c.active, "%s on an unbound buffer context", op)
	obj, ok := c.buf.h.get()
	contract(ok, "%s: expected %v buffer to have an associated object (was it moved or released?)", op, c.target)
	contract(isBound(BufferSlot(c.target), obj), "%s: buffer %d is not bound to the %v target (bound: %d)",
		op, obj, c.target, observer.Bound(BufferSlot(c.target)))
}

// Reserve allocates size bytes of uninitialized storage, replacing
// any previous allocation.
func (c *BufferContext) Reserve(size int, usage driver.Usage) *BufferContext {
	c.check("Reserve")
	if contractsEnabled {
		contract(size >= 0, "Reserve: negative size %d", size)
	}
	c.allocate(size, nil, usage)
	return c
}

// Upload copies data into the buffer. The buffer is reallocated to
// exactly len(data) bytes if usage differs from the usage of the last
// allocation or if data doesn't fit; otherwise the existing storage is
// updated in place from offset 0.
func (c *BufferContext) Upload(data []byte, usage driver.Usage) *BufferContext {
	c.check("Upload")
	b := c.buf
	if usage != b.usage || len(data) > b.size {
		c.allocate(len(data), data, usage)
	} else {
		c.subData(0, data)
	}
	return c
}

// UploadPointer is like Upload for size bytes starting at p. The
// memory is copied before UploadPointer returns.
func (c *BufferContext) UploadPointer(size int, p unsafe.Pointer, usage driver.Usage) *BufferContext {
	return c.Upload(gunsafe.SliceOf(p, size), usage)
}

// Update copies data into the existing storage at offset. It never
// reallocates; the range must lie within the last allocation.
func (c *BufferContext) Update(offset int, data []byte) *BufferContext {
	c.check("Update")
	if contractsEnabled {
		contract(offset >= 0 && offset+len(data) <= c.buf.size,
			"Update: range [%d,%d) exceeds the %d byte allocation", offset, offset+len(data), c.buf.size)
	}
	c.subData(offset, data)
	return c
}

// UpdatePointer is like Update for size bytes starting at p.
func (c *BufferContext) UpdatePointer(offset, size int, p unsafe.Pointer) *BufferContext {
	return c.Update(offset, gunsafe.SliceOf(p, size))
}

func (c *BufferContext) allocate(size int, data []byte, usage driver.Usage) {
	b := c.buf
	b.dev.BufferData(c.target, size, data, usage)
	prevSize, prevUsage := b.size, b.usage
	b.size = size
	b.usage = usage
	if debugEnabled() {
		Logger().Debug("glbuf: buffer allocated", "buffer", b.h.obj, "target", c.target,
			"size", size, "usage", usage, "prevSize", prevSize, "prevUsage", prevUsage)
	}
}

func (c *BufferContext) subData(offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	c.buf.dev.BufferSubData(c.target, offset, data)
}

// UploadSlice uploads the memory of s, as Upload.
func UploadSlice[T any](c *BufferContext, s []T, usage driver.Usage) *BufferContext {
	return c.Upload(gunsafe.BytesView(s), usage)
}

// UpdateSlice copies the memory of s to the byte offset, as Update.
func UpdateSlice[T any](c *BufferContext, offset int, s []T) *BufferContext {
	return c.Update(offset, gunsafe.BytesView(s))
}

// UploadIndices uploads indices, as Upload, and records their type
// for drawing. T must be 1, 2 or 4 bytes wide.
func UploadIndices[T constraints.Unsigned](c *BufferContext, indices []T, usage driver.Usage) *BufferContext {
	var zero T
	var typ driver.DataType
	switch unsafe.Sizeof(zero) {
	case 1:
		typ = driver.DataTypeUnsignedByte
	case 2:
		typ = driver.DataTypeUnsignedShort
	case 4:
		typ = driver.DataTypeUnsignedInt
	default:
		panic(errors.AssertionFailedf("glbuf: unsupported %d byte index type", unsafe.Sizeof(zero)))
	}
	c.Upload(gunsafe.BytesView(indices), usage)
	c.buf.indexType = typ
	c.buf.hasIndex = true
	return c
}
