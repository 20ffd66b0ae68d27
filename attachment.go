// SPDX-License-Identifier: Unlicense OR MIT

package glbuf

import (
	"gioui.org/glbuf/driver"
)

// Attachment declares the vertex attributes read from a buffer just
// attached to a vertex array. Its methods return the attachment for
// chaining; Done ends it.
//
// An attachment that ends without attributes, without being silenced
// and without being an element buffer is reported as a warning: data
// was uploaded that nothing reads.
type Attachment struct {
	va      *VertexArray
	ctx     *VertexArrayContext
	storage *Storage
	// declared lists the attribute indices declared through this
	// attachment, in declaration order.
	declared []int
	silenced bool
	done     bool
}

func (a *Attachment) check(op string) {
	if !contractsEnabled {
		return
	}
	contract(!a.done, "%s on a done attachment", op)
	a.ctx.check(op)
	b := a.storage.buf
	obj, ok := b.h.get()
	contract(ok, "%s: attached buffer has no associated object", op)
	contract(isBound(BufferSlot(b.target), obj), "%s: attached buffer %d is not bound to the %v target (bound: %d)",
		op, obj, b.target, observer.Bound(BufferSlot(b.target)))
}

// AttributePointer declares that attribute index reads size
// components of typ from the buffer, stride bytes apart (0 for
// tightly packed), starting offset bytes into each vertex. Integer
// types are read as integers. The attribute is enabled.
func (a *Attachment) AttributePointer(index, size int, typ driver.DataType, stride, offset int) *Attachment {
	a.check("AttributePointer")
	a.checkLayout(index, size, stride, offset)
	dev := a.va.dev
	if typ.Integer() {
		dev.VertexAttribIPointer(index, size, typ, stride, offset)
	} else {
		dev.VertexAttribPointer(index, size, typ, false, stride, offset)
	}
	a.enable(index)
	return a
}

// NormalizedPointer is like AttributePointer for integer or packed
// types whose values are normalized to [0, 1] (unsigned) or [-1, 1]
// (signed) floats.
func (a *Attachment) NormalizedPointer(index, size int, typ driver.DataType, stride, offset int) *Attachment {
	a.check("NormalizedPointer")
	a.checkLayout(index, size, stride, offset)
	if contractsEnabled {
		contract(typ.Integer() || typ.Packed(), "NormalizedPointer: %v attributes can't be normalized", typ)
	}
	a.va.dev.VertexAttribPointer(index, size, typ, true, stride, offset)
	a.enable(index)
	return a
}

func (a *Attachment) checkLayout(index, size, stride, offset int) {
	if !contractsEnabled {
		return
	}
	contract(a.storage.buf.target == driver.TargetArray, "attribute %d: attributes must be read from an array buffer, not %v",
		index, a.storage.buf.target)
	contract(index >= 0, "negative attribute index %d", index)
	contract(size >= 1 && size <= 4, "attribute %d: %d components, expected 1 to 4", index, size)
	contract(stride >= 0, "attribute %d: negative stride %d", index, stride)
	contract(offset >= 0, "attribute %d: negative offset %d", index, offset)
}

func (a *Attachment) enable(index int) {
	a.va.dev.EnableVertexAttribArray(index)
	a.storage.addAttribute(index)
	for _, idx := range a.declared {
		if idx == index {
			return
		}
	}
	a.declared = append(a.declared, index)
}

// PerInstance makes the attributes declared so far advance once per
// instance instead of once per vertex.
func (a *Attachment) PerInstance() *Attachment {
	return a.Divisor(1)
}

// Divisor sets the instance divisor of the attributes declared so
// far: they advance every n instances, or every vertex for n == 0.
func (a *Attachment) Divisor(n int) *Attachment {
	a.check("Divisor")
	if contractsEnabled {
		contract(len(a.declared) > 0, "Divisor: no attributes declared")
		contract(n >= 0, "Divisor: negative divisor %d", n)
	}
	for _, idx := range a.declared {
		a.va.dev.VertexAttribDivisor(idx, n)
	}
	return a
}

// Silence marks the attachment as intentionally without attributes,
// such as a buffer only accessed by compute shaders.
func (a *Attachment) Silence() *Attachment {
	a.silenced = true
	return a
}

// AsElement documents that the attachment is the index buffer. It
// does nothing; element buffers need no attributes.
func (a *Attachment) AsElement() *Attachment {
	return a
}

// Storage returns the storage entry of the attached buffer.
func (a *Attachment) Storage() *Storage {
	return a.storage
}

// Done ends the attachment. Further calls do nothing.
func (a *Attachment) Done() {
	if a.done {
		return
	}
	a.done = true
	a.ctx.close(a)
	s := a.storage
	if a.silenced || s.IsElement() || (s.attrs != nil && s.attrs.Cardinality() > 0) {
		return
	}
	vobj, _ := a.va.h.get()
	bobj, _ := s.buf.h.get()
	Logger().Warn("glbuf: buffer attached without attributes, its data is never read; declare attributes or call Silence",
		"vertexArray", vobj, "buffer", bobj, "target", s.buf.target, "size", s.buf.size)
}
