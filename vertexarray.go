// SPDX-License-Identifier: Unlicense OR MIT

package glbuf

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"gioui.org/glbuf/driver"
)

// VertexArray owns a driver vertex array object and the buffers
// attached to it.
type VertexArray struct {
	noCopy noCopy

	dev     driver.Device
	h       handle
	storage []*Storage
}

// Storage is a buffer owned by a vertex array, together with the
// attribute indices it provides.
type Storage struct {
	buf *Buffer
	// attrs is nil until the first attribute pointer.
	attrs mapset.Set[int]
}

// NewVertexArray allocates a vertex array object. It panics if the
// driver fails to allocate it.
func NewVertexArray(d driver.Device) *VertexArray {
	obj := d.CreateVertexArray()
	if obj == 0 {
		fatal("driver failed to allocate a vertex array")
	}
	if debugEnabled() {
		Logger().Debug("glbuf: vertex array created", "vertexArray", obj)
	}
	return &VertexArray{dev: d, h: someHandle(obj)}
}

// Bind binds the vertex array and returns the context for attaching
// buffers to it. A graphics context must be current.
func (v *VertexArray) Bind() *VertexArrayContext {
	if contractsEnabled {
		contract(v.dev.CurrentContext(), "expected an active graphics context")
		contract(v.h.valid, "expected vertex array to have an associated object (was it moved or released?)")
	}
	c := &VertexArrayContext{va: v}
	c.bind()
	return c
}

// AttributeBuffer returns the buffer providing attribute index. The
// lookup is a linear scan over the attached buffers.
func (v *VertexArray) AttributeBuffer(index int) (*Buffer, bool) {
	for _, s := range v.storage {
		if s.HasAttribute(index) {
			return s.buf, true
		}
	}
	return nil, false
}

// TargetBuffer returns the first attached buffer with the target. The
// lookup is a linear scan over the attached buffers.
func (v *VertexArray) TargetBuffer(t driver.BufferTarget) (*Buffer, bool) {
	for _, s := range v.storage {
		if s.buf.target == t {
			return s.buf, true
		}
	}
	return nil, false
}

// ElementBuffer returns the first attached element buffer. The lookup
// is a linear scan over the attached buffers.
func (v *VertexArray) ElementBuffer() (*Buffer, bool) {
	for _, s := range v.storage {
		if s.IsElement() {
			return s.buf, true
		}
	}
	return nil, false
}

// Len returns the number of attached buffers.
func (v *VertexArray) Len() int {
	return len(v.storage)
}

// Storage returns the i'th attached buffer in attachment order.
func (v *VertexArray) Storage(i int) *Storage {
	return v.storage[i]
}

// Move transfers the driver object and the attached buffers to a new
// VertexArray. v is left empty and without an object.
func (v *VertexArray) Move() *VertexArray {
	nv := &VertexArray{dev: v.dev, h: v.h.take(), storage: v.storage}
	v.storage = nil
	return nv
}

// Release frees the attached buffers, most recently attached first,
// then the vertex array object. It does nothing for a released or
// moved-from vertex array.
func (v *VertexArray) Release() {
	obj, ok := v.h.get()
	if !ok {
		return
	}
	for i := len(v.storage) - 1; i >= 0; i-- {
		v.storage[i].buf.Release()
	}
	v.storage = nil
	forget(VertexArraySlot, obj)
	v.dev.DeleteVertexArray(obj)
	v.h = handle{}
	if debugEnabled() {
		Logger().Debug("glbuf: vertex array released", "vertexArray", obj)
	}
}

// Valid reports whether the vertex array owns a driver object.
func (v *VertexArray) Valid() bool {
	return v.h.valid
}

// Object returns the driver object, if any.
func (v *VertexArray) Object() (driver.Object, bool) {
	return v.h.get()
}

// Buffer returns the owned buffer.
func (s *Storage) Buffer() *Buffer {
	return s.buf
}

// IsElement reports whether the buffer is the index buffer of the
// vertex array.
func (s *Storage) IsElement() bool {
	return s.buf.target == driver.TargetElementArray
}

// HasAttribute reports whether the buffer provides attribute index.
func (s *Storage) HasAttribute(index int) bool {
	return s.attrs != nil && s.attrs.Contains(index)
}

// Attributes returns the attribute indices provided by the buffer in
// increasing order.
func (s *Storage) Attributes() []int {
	if s.attrs == nil {
		return nil
	}
	idx := s.attrs.ToSlice()
	sort.Ints(idx)
	return idx
}

func (s *Storage) addAttribute(index int) {
	if s.attrs == nil {
		s.attrs = mapset.NewThreadUnsafeSet[int]()
	}
	s.attrs.Add(index)
}
