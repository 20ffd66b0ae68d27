// SPDX-License-Identifier: Unlicense OR MIT

// Package drivertest implements an in-memory driver.Device for tests.
// It keeps the slot keyed binding state of a GL context, the storage
// of every buffer and the attribute layout of every vertex array, and
// counts allocations and frees.
package drivertest

import (
	"fmt"

	"gioui.org/glbuf/driver"
)

// Device is a fake driver.Device. The zero value is not usable; use
// New.
type Device struct {
	// Context is returned by CurrentContext.
	Context bool
	// FailAlloc makes CreateBuffer and CreateVertexArray return the
	// zero object.
	FailAlloc bool

	next     driver.Object
	buffers  map[driver.Object]*Buffer
	arrays   map[driver.Object]*VertexArray
	bindings [16]driver.Object
	indexed  map[indexedSlot]driver.Object
	vertArr  driver.Object

	// Counters.
	BuffersCreated  int
	BuffersDeleted  int
	ArraysCreated   int
	ArraysDeleted   int
	Reallocations   int
	PartialUpdates  int
	RedundantDelete int
	// Deleted lists deleted buffers and vertex arrays in
	// deletion order.
	Deleted []driver.Object

	// Errors collects driver errors, in the spirit of glGetError.
	Errors []error
}

// Buffer is the driver side state of a buffer object.
type Buffer struct {
	Data   []byte
	Usage  driver.Usage
	Allocs int
}

// VertexArray is the driver side state of a vertex array object.
type VertexArray struct {
	Attribs map[int]*Attrib
}

// Attrib is the state of one vertex attribute slot.
type Attrib struct {
	Buffer     driver.Object
	Size       int
	Type       driver.DataType
	Normalized bool
	Integer    bool
	Stride     int
	Offset     int
	Enabled    bool
	Divisor    int
}

type indexedSlot struct {
	target driver.BufferTarget
	index  int
}

var _ driver.Device = (*Device)(nil)

// New returns a device with a current context.
func New() *Device {
	return &Device{
		Context: true,
		buffers: make(map[driver.Object]*Buffer),
		arrays:  make(map[driver.Object]*VertexArray),
		indexed: make(map[indexedSlot]driver.Object),
	}
}

func (d *Device) errorf(format string, args ...interface{}) {
	d.Errors = append(d.Errors, fmt.Errorf(format, args...))
}

func (d *Device) CurrentContext() bool {
	return d.Context
}

func (d *Device) CreateBuffer() driver.Object {
	if d.FailAlloc {
		return 0
	}
	d.next++
	d.buffers[d.next] = new(Buffer)
	d.BuffersCreated++
	return d.next
}

func (d *Device) DeleteBuffer(b driver.Object) {
	if _, ok := d.buffers[b]; !ok {
		d.RedundantDelete++
		return
	}
	delete(d.buffers, b)
	d.BuffersDeleted++
	d.Deleted = append(d.Deleted, b)
	for i, obj := range d.bindings {
		if obj == b {
			d.bindings[i] = 0
		}
	}
	for k, obj := range d.indexed {
		if obj == b {
			delete(d.indexed, k)
		}
	}
}

func (d *Device) BindBuffer(target driver.BufferTarget, b driver.Object) {
	if b != 0 {
		if _, ok := d.buffers[b]; !ok {
			d.errorf("bind of unknown buffer %d", b)
			return
		}
	}
	d.bindings[target] = b
}

func (d *Device) BindBufferBase(target driver.BufferTarget, index int, b driver.Object) {
	if !target.Indexed() {
		d.errorf("%v is not an indexed target", target)
		return
	}
	d.indexed[indexedSlot{target, index}] = b
	d.bindings[target] = b
}

func (d *Device) BufferData(target driver.BufferTarget, size int, data []byte, usage driver.Usage) {
	buf := d.bound(target)
	if buf == nil {
		return
	}
	if data != nil && len(data) != size {
		d.errorf("BufferData: %d bytes given for a %d byte allocation", len(data), size)
		return
	}
	buf.Data = make([]byte, size)
	copy(buf.Data, data)
	buf.Usage = usage
	buf.Allocs++
	d.Reallocations++
}

func (d *Device) BufferSubData(target driver.BufferTarget, offset int, data []byte) {
	buf := d.bound(target)
	if buf == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(buf.Data) {
		d.errorf("BufferSubData: [%d,%d) out of range of %d bytes", offset, offset+len(data), len(buf.Data))
		return
	}
	copy(buf.Data[offset:], data)
	d.PartialUpdates++
}

func (d *Device) CreateVertexArray() driver.Object {
	if d.FailAlloc {
		return 0
	}
	d.next++
	d.arrays[d.next] = &VertexArray{Attribs: make(map[int]*Attrib)}
	d.ArraysCreated++
	return d.next
}

func (d *Device) DeleteVertexArray(a driver.Object) {
	if _, ok := d.arrays[a]; !ok {
		d.RedundantDelete++
		return
	}
	delete(d.arrays, a)
	d.ArraysDeleted++
	d.Deleted = append(d.Deleted, a)
	if d.vertArr == a {
		d.vertArr = 0
	}
}

func (d *Device) BindVertexArray(a driver.Object) {
	if a != 0 {
		if _, ok := d.arrays[a]; !ok {
			d.errorf("bind of unknown vertex array %d", a)
			return
		}
	}
	d.vertArr = a
}

func (d *Device) EnableVertexAttribArray(index int) {
	if a := d.attrib(index); a != nil {
		a.Enabled = true
	}
}

func (d *Device) VertexAttribPointer(index, size int, typ driver.DataType, normalized bool, stride, offset int) {
	d.attribPointer(index, size, typ, normalized, false, stride, offset)
}

func (d *Device) VertexAttribIPointer(index, size int, typ driver.DataType, stride, offset int) {
	d.attribPointer(index, size, typ, false, true, stride, offset)
}

func (d *Device) VertexAttribDivisor(index, divisor int) {
	if a := d.attrib(index); a != nil {
		a.Divisor = divisor
	}
}

func (d *Device) attribPointer(index, size int, typ driver.DataType, normalized, integer bool, stride, offset int) {
	buf := d.bindings[driver.TargetArray]
	if buf == 0 {
		d.errorf("attribute %d: no array buffer bound", index)
		return
	}
	a := d.attrib(index)
	if a == nil {
		return
	}
	a.Buffer = buf
	a.Size = size
	a.Type = typ
	a.Normalized = normalized
	a.Integer = integer
	a.Stride = stride
	a.Offset = offset
}

func (d *Device) attrib(index int) *Attrib {
	arr, ok := d.arrays[d.vertArr]
	if !ok {
		d.errorf("attribute %d: no vertex array bound", index)
		return nil
	}
	a, ok := arr.Attribs[index]
	if !ok {
		a = new(Attrib)
		arr.Attribs[index] = a
	}
	return a
}

func (d *Device) bound(target driver.BufferTarget) *Buffer {
	obj := d.bindings[target]
	buf, ok := d.buffers[obj]
	if !ok {
		d.errorf("no buffer bound to %v", target)
		return nil
	}
	return buf
}

// Bound returns the buffer bound to target.
func (d *Device) Bound(target driver.BufferTarget) driver.Object {
	return d.bindings[target]
}

// BoundBase returns the buffer bound to an indexed binding point.
func (d *Device) BoundBase(target driver.BufferTarget, index int) driver.Object {
	return d.indexed[indexedSlot{target, index}]
}

// BoundVertexArray returns the bound vertex array.
func (d *Device) BoundVertexArray() driver.Object {
	return d.vertArr
}

// Buffer returns the state of a live buffer, or nil.
func (d *Device) Buffer(b driver.Object) *Buffer {
	return d.buffers[b]
}

// VertexArray returns the state of a live vertex array, or nil.
func (d *Device) VertexArray(a driver.Object) *VertexArray {
	return d.arrays[a]
}

// LiveBuffers returns the number of buffers not yet deleted.
func (d *Device) LiveBuffers() int {
	return len(d.buffers)
}

// LiveVertexArrays returns the number of vertex arrays not yet deleted.
func (d *Device) LiveVertexArrays() int {
	return len(d.arrays)
}

// LiveHandles returns the number of objects not yet deleted.
func (d *Device) LiveHandles() int {
	return len(d.buffers) + len(d.arrays)
}
