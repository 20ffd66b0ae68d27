// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin || linux || freebsd || windows

// Package opengl implements driver.Device for desktop OpenGL.
package opengl

import (
	"github.com/cockroachdb/errors"

	"gioui.org/glbuf/driver"
	"gioui.org/glbuf/internal/gl"
)

// ErrNoContext is returned by NewDevice when no OpenGL context is
// current on the calling thread.
var ErrNoContext = errors.New("opengl: no current OpenGL context")

// Device implements driver.Device.
type Device struct {
	funcs *gl.Functions

	glver    [2]int
	renderer string
}

var _ driver.Device = (*Device)(nil)

// NewDevice returns a device for the OpenGL context current on the
// calling thread. The context must be at least OpenGL 3.3.
func NewDevice() (*Device, error) {
	if !gl.CurrentContext() {
		return nil, ErrNoContext
	}
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "opengl: loading functions")
	}
	f := new(gl.Functions)
	ver, gles, err := gl.ParseGLVersion(f.GetString(gl.VERSION))
	if err != nil {
		return nil, errors.Wrap(err, "opengl")
	}
	if gles {
		return nil, errors.Newf("opengl: OpenGL ES %d.%d contexts are not supported", ver[0], ver[1])
	}
	if ver[0] < 3 || (ver[0] == 3 && ver[1] < 3) {
		return nil, errors.Newf("opengl: OpenGL %d.%d is too old, 3.3 or newer required", ver[0], ver[1])
	}
	d := &Device{
		funcs:    f,
		glver:    ver,
		renderer: f.GetString(gl.RENDERER),
	}
	return d, nil
}

// Version returns the major and minor OpenGL version.
func (d *Device) Version() [2]int {
	return d.glver
}

// Renderer returns the GL_RENDERER string.
func (d *Device) Renderer() string {
	return d.renderer
}

// Err returns and clears the pending OpenGL error, if any.
func (d *Device) Err() error {
	return glErr(d.funcs)
}

func glErr(f *gl.Functions) error {
	if st := f.GetError(); st != gl.NO_ERROR {
		return errors.Newf("glGetError: %#x", st)
	}
	return nil
}

func (d *Device) CurrentContext() bool {
	return gl.CurrentContext()
}

func (d *Device) CreateBuffer() driver.Object {
	return driver.Object(d.funcs.CreateBuffer().V)
}

func (d *Device) DeleteBuffer(b driver.Object) {
	d.funcs.DeleteBuffer(gl.Buffer{V: uint(b)})
}

func (d *Device) BindBuffer(target driver.BufferTarget, b driver.Object) {
	d.funcs.BindBuffer(toGLBufferTarget(target), gl.Buffer{V: uint(b)})
}

func (d *Device) BindBufferBase(target driver.BufferTarget, index int, b driver.Object) {
	d.funcs.BindBufferBase(toGLBufferTarget(target), index, gl.Buffer{V: uint(b)})
}

func (d *Device) BufferData(target driver.BufferTarget, size int, data []byte, usage driver.Usage) {
	d.funcs.BufferData(toGLBufferTarget(target), size, data, toGLUsage(usage))
}

func (d *Device) BufferSubData(target driver.BufferTarget, offset int, data []byte) {
	d.funcs.BufferSubData(toGLBufferTarget(target), offset, data)
}

func (d *Device) CreateVertexArray() driver.Object {
	return driver.Object(d.funcs.CreateVertexArray().V)
}

func (d *Device) DeleteVertexArray(a driver.Object) {
	d.funcs.DeleteVertexArray(gl.VertexArray{V: uint(a)})
}

func (d *Device) BindVertexArray(a driver.Object) {
	d.funcs.BindVertexArray(gl.VertexArray{V: uint(a)})
}

func (d *Device) EnableVertexAttribArray(index int) {
	d.funcs.EnableVertexAttribArray(gl.Attrib(index))
}

func (d *Device) VertexAttribPointer(index, size int, typ driver.DataType, normalized bool, stride, offset int) {
	d.funcs.VertexAttribPointer(gl.Attrib(index), size, toGLDataType(typ), normalized, stride, offset)
}

func (d *Device) VertexAttribIPointer(index, size int, typ driver.DataType, stride, offset int) {
	d.funcs.VertexAttribIPointer(gl.Attrib(index), size, toGLDataType(typ), stride, offset)
}

func (d *Device) VertexAttribDivisor(index, divisor int) {
	d.funcs.VertexAttribDivisor(gl.Attrib(index), divisor)
}

// BoundBuffer queries the driver for the buffer bound to the array or
// element array target.
func (d *Device) BoundBuffer(target driver.BufferTarget) driver.Object {
	switch target {
	case driver.TargetArray:
		return driver.Object(d.funcs.GetBinding(gl.ARRAY_BUFFER_BINDING).V)
	case driver.TargetElementArray:
		return driver.Object(d.funcs.GetBinding(gl.ELEMENT_ARRAY_BUFFER_BINDING).V)
	default:
		panic("unsupported buffer binding query")
	}
}

// BoundVertexArray queries the driver for the bound vertex array.
func (d *Device) BoundVertexArray() driver.Object {
	return driver.Object(d.funcs.GetBinding(gl.VERTEX_ARRAY_BINDING).V)
}
