// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin || linux || freebsd || windows

package gl

import (
	"unsafe"

	gogl "github.com/go-gl/gl/v4.1-core/gl"
)

// Functions calls the OpenGL entry points loaded by Init. A GL
// context must be current on the calling thread.
type Functions struct {
	// Query caches.
	uints [1]uint32
	ints  [1]int32
}

// Init loads the OpenGL entry points of the current context.
func Init() error {
	return gogl.Init()
}

func (f *Functions) BindBuffer(target Enum, b Buffer) {
	gogl.BindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BindBufferBase(target Enum, index int, b Buffer) {
	gogl.BindBufferBase(uint32(target), uint32(index), uint32(b.V))
}

func (f *Functions) BindVertexArray(a VertexArray) {
	gogl.BindVertexArray(uint32(a.V))
}

// BufferData allocates size bytes. src is nil or size bytes long.
func (f *Functions) BufferData(target Enum, size int, src []byte, usage Enum) {
	var p unsafe.Pointer
	if len(src) > 0 {
		p = unsafe.Pointer(&src[0])
	}
	gogl.BufferData(uint32(target), size, p, uint32(usage))
}

func (f *Functions) BufferSubData(target Enum, offset int, src []byte) {
	if len(src) == 0 {
		return
	}
	gogl.BufferSubData(uint32(target), offset, len(src), unsafe.Pointer(&src[0]))
}

func (f *Functions) CreateBuffer() Buffer {
	gogl.GenBuffers(1, &f.uints[0])
	return Buffer{uint(f.uints[0])}
}

func (f *Functions) CreateVertexArray() VertexArray {
	gogl.GenVertexArrays(1, &f.uints[0])
	return VertexArray{uint(f.uints[0])}
}

func (f *Functions) DeleteBuffer(v Buffer) {
	f.uints[0] = uint32(v.V)
	gogl.DeleteBuffers(1, &f.uints[0])
}

func (f *Functions) DeleteVertexArray(v VertexArray) {
	f.uints[0] = uint32(v.V)
	gogl.DeleteVertexArrays(1, &f.uints[0])
}

func (f *Functions) EnableVertexAttribArray(a Attrib) {
	gogl.EnableVertexAttribArray(uint32(a))
}

func (f *Functions) GetError() Enum {
	return Enum(gogl.GetError())
}

func (f *Functions) GetInteger(pname Enum) int {
	gogl.GetIntegerv(uint32(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) GetBinding(pname Enum) Object {
	return Object{uint(f.GetInteger(pname))}
}

func (f *Functions) GetString(pname Enum) string {
	str := gogl.GetString(uint32(pname))
	if str == nil {
		return ""
	}
	return gogl.GoStr(str)
}

func (f *Functions) VertexAttribDivisor(dst Attrib, divisor int) {
	gogl.VertexAttribDivisor(uint32(dst), uint32(divisor))
}

func (f *Functions) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride int, offset int) {
	gogl.VertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), gogl.PtrOffset(offset))
}

func (f *Functions) VertexAttribIPointer(dst Attrib, size int, ty Enum, stride int, offset int) {
	gogl.VertexAttribIPointer(uint32(dst), int32(size), uint32(ty), int32(stride), gogl.PtrOffset(offset))
}
