// SPDX-License-Identifier: Unlicense OR MIT

package glbuf

// VertexArrayContext is the proof that a vertex array is bound. It is
// valid from VertexArray.Bind until Unbind, provided no other vertex
// array is bound in between.
type VertexArrayContext struct {
	va     *VertexArray
	active bool
	// open lists the attachments not yet done.
	open []*Attachment
}

func (c *VertexArrayContext) bind() {
	obj := c.va.h.obj
	c.va.dev.BindVertexArray(obj)
	record(VertexArraySlot, obj)
	c.active = true
}

// Rebind binds the vertex array again.
func (c *VertexArrayContext) Rebind() *VertexArrayContext {
	if contractsEnabled {
		contract(c.active, "Rebind of an unbound vertex array context")
		contract(c.va.h.valid, "expected vertex array to have an associated object (was it moved or released?)")
	}
	c.bind()
	return c
}

// Unbind finishes the open attachments, binds no vertex array and
// ends the context. Further calls do nothing.
func (c *VertexArrayContext) Unbind() {
	if !c.active {
		return
	}
	for len(c.open) > 0 {
		c.open[0].Done()
	}
	c.active = false
	c.va.dev.BindVertexArray(0)
	record(VertexArraySlot, 0)
}

// VertexArray returns the bound vertex array.
func (c *VertexArrayContext) VertexArray() *VertexArray {
	return c.va
}

func (c *VertexArrayContext) check(op string) {
	if !contractsEnabled {
		return
	}
	contract(c.active, "%s on an unbound vertex array context", op)
	obj, ok := c.va.h.get()
	contract(ok, "%s: expected vertex array to have an associated object (was it moved or released?)", op)
	contract(isBound(VertexArraySlot, obj), "%s: vertex array %d is not bound (bound: %d)",
		op, obj, observer.Bound(VertexArraySlot))
}

// Attach moves b into the vertex array, binds it and returns the
// attachment for declaring the attributes it provides. b is left
// without an object; the vertex array releases the buffer when it is
// released itself.
func (c *VertexArrayContext) Attach(b *Buffer) *Attachment {
	c.check("Attach")
	if contractsEnabled {
		contract(b.h.valid, "Attach: expected %v buffer to have an associated object (was it moved or released?)", b.target)
		contract(b.dev == c.va.dev, "Attach: buffer and vertex array belong to different devices")
	}
	s := &Storage{buf: b.Move()}
	c.va.storage = append(c.va.storage, s)
	obj := s.buf.h.obj
	c.va.dev.BindBuffer(s.buf.target, obj)
	record(BufferSlot(s.buf.target), obj)
	a := &Attachment{va: c.va, ctx: c, storage: s}
	c.open = append(c.open, a)
	return a
}

func (c *VertexArrayContext) close(a *Attachment) {
	for i, o := range c.open {
		if o == a {
			c.open = append(c.open[:i], c.open[i+1:]...)
			return
		}
	}
}

