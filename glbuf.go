// SPDX-License-Identifier: Unlicense OR MIT

/*
Package glbuf manages the ownership and binding of GPU buffers and
vertex arrays.

Buffers and vertex arrays own exactly one driver object each. They are
always used through pointers and change owner with Move; a moved-from
or released value holds no object and all of its operations are
contract failures.

Mutating a buffer or a vertex array is only possible through a bind
context, a value proving that the object is bound to its slot. Bind
returns the context and Unbind ends it:

	ctx := vbo.Bind()
	ctx.Upload(vertices, driver.UsageStaticDraw)
	ctx.Unbind()

	vctx := vao.Bind()
	defer vctx.Unbind()
	vctx.Attach(vbo).AttributePointer(0, 3, driver.DataTypeFloat, 12, 0).Done()

Attach moves the buffer into the vertex array, which releases it
together with itself.

Contracts

Building with the glcontracts tag enables contract checking: the
package tracks the object bound to every slot in an Observer and
panics when an operation is issued against an object that isn't
bound, has no driver object, or runs without a current graphics
context. Without the tag the checks are compiled out and the same
calls proceed unverified.

Contexts are not safe for concurrent use. Every call must happen on
the thread owning the graphics context.
*/
package glbuf

// noCopy makes go vet report copies of values that own driver
// objects.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
