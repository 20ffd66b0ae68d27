// SPDX-License-Identifier: Unlicense OR MIT

// Package driver defines the narrow graphics driver surface used by
// glbuf, and the closed enumerations of buffer targets, usage hints
// and vertex attribute element types.
package driver

// Object is a driver assigned object name. Drivers never assign 0 to
// a live object.
type Object uint

// Device represents the bind-then-mutate driver state of a single
// graphics context. All methods must be called on the thread that
// owns the context.
type Device interface {
	// CurrentContext reports whether a graphics context is current on
	// the calling thread.
	CurrentContext() bool

	CreateBuffer() Object
	DeleteBuffer(b Object)
	BindBuffer(target BufferTarget, b Object)
	BindBufferBase(target BufferTarget, index int, b Object)
	// BufferData allocates size bytes for the buffer bound to target.
	// data is either nil or exactly size bytes long.
	BufferData(target BufferTarget, size int, data []byte, usage Usage)
	BufferSubData(target BufferTarget, offset int, data []byte)

	CreateVertexArray() Object
	DeleteVertexArray(a Object)
	BindVertexArray(a Object)
	EnableVertexAttribArray(index int)
	VertexAttribPointer(index, size int, typ DataType, normalized bool, stride, offset int)
	VertexAttribIPointer(index, size int, typ DataType, stride, offset int)
	VertexAttribDivisor(index, divisor int)
}

// BufferTarget is a buffer binding slot.
type BufferTarget uint8

// Usage is the memory usage hint of a buffer allocation.
type Usage uint8

// DataType is the element type of a vertex attribute component.
type DataType uint8

const (
	TargetArray BufferTarget = iota
	TargetElementArray
	TargetUniform
	TargetShaderStorage
	TargetCopyRead
	TargetCopyWrite
	TargetPixelPack
	TargetPixelUnpack
	TargetTexture
	TargetTransformFeedback
	TargetDrawIndirect
	TargetDispatchIndirect
	TargetAtomicCounter
	TargetQuery

	targetCount
)

const (
	// UsageNone is the usage of a buffer that was never allocated.
	UsageNone Usage = iota
	UsageStreamDraw
	UsageStreamRead
	UsageStreamCopy
	UsageStaticDraw
	UsageStaticRead
	UsageStaticCopy
	UsageDynamicDraw
	UsageDynamicRead
	UsageDynamicCopy
)

const (
	DataTypeByte DataType = iota
	DataTypeUnsignedByte
	DataTypeShort
	DataTypeUnsignedShort
	DataTypeInt
	DataTypeUnsignedInt
	DataTypeHalfFloat
	DataTypeFloat
	DataTypeDouble
	DataTypeFixed
	DataTypeInt2101010Rev
	DataTypeUnsignedInt2101010Rev
	DataTypeUnsignedInt10F11F11FRev
)

// Targets lists every buffer target.
func Targets() []BufferTarget {
	t := make([]BufferTarget, targetCount)
	for i := range t {
		t[i] = BufferTarget(i)
	}
	return t
}

// Indexed reports whether the target has indexed binding points
// usable with BindBufferBase.
func (t BufferTarget) Indexed() bool {
	switch t {
	case TargetUniform, TargetShaderStorage, TargetAtomicCounter, TargetTransformFeedback:
		return true
	}
	return false
}

func (t BufferTarget) String() string {
	switch t {
	case TargetArray:
		return "array"
	case TargetElementArray:
		return "element array"
	case TargetUniform:
		return "uniform"
	case TargetShaderStorage:
		return "shader storage"
	case TargetCopyRead:
		return "copy read"
	case TargetCopyWrite:
		return "copy write"
	case TargetPixelPack:
		return "pixel pack"
	case TargetPixelUnpack:
		return "pixel unpack"
	case TargetTexture:
		return "texture"
	case TargetTransformFeedback:
		return "transform feedback"
	case TargetDrawIndirect:
		return "draw indirect"
	case TargetDispatchIndirect:
		return "dispatch indirect"
	case TargetAtomicCounter:
		return "atomic counter"
	case TargetQuery:
		return "query"
	}
	return "unknown target"
}

func (u Usage) String() string {
	switch u {
	case UsageNone:
		return "none"
	case UsageStreamDraw:
		return "stream draw"
	case UsageStreamRead:
		return "stream read"
	case UsageStreamCopy:
		return "stream copy"
	case UsageStaticDraw:
		return "static draw"
	case UsageStaticRead:
		return "static read"
	case UsageStaticCopy:
		return "static copy"
	case UsageDynamicDraw:
		return "dynamic draw"
	case UsageDynamicRead:
		return "dynamic read"
	case UsageDynamicCopy:
		return "dynamic copy"
	}
	return "unknown usage"
}

// Integer reports whether the type is read as integers by shaders
// when not normalized.
func (t DataType) Integer() bool {
	switch t {
	case DataTypeByte, DataTypeUnsignedByte, DataTypeShort, DataTypeUnsignedShort, DataTypeInt, DataTypeUnsignedInt:
		return true
	}
	return false
}

// Packed reports whether a single packed value holds all components.
func (t DataType) Packed() bool {
	switch t {
	case DataTypeInt2101010Rev, DataTypeUnsignedInt2101010Rev, DataTypeUnsignedInt10F11F11FRev:
		return true
	}
	return false
}

// Size returns the byte size of one component, or of the whole packed
// value for packed types.
func (t DataType) Size() int {
	switch t {
	case DataTypeByte, DataTypeUnsignedByte:
		return 1
	case DataTypeShort, DataTypeUnsignedShort, DataTypeHalfFloat:
		return 2
	case DataTypeDouble:
		return 8
	default:
		return 4
	}
}

func (t DataType) String() string {
	switch t {
	case DataTypeByte:
		return "byte"
	case DataTypeUnsignedByte:
		return "unsigned byte"
	case DataTypeShort:
		return "short"
	case DataTypeUnsignedShort:
		return "unsigned short"
	case DataTypeInt:
		return "int"
	case DataTypeUnsignedInt:
		return "unsigned int"
	case DataTypeHalfFloat:
		return "half float"
	case DataTypeFloat:
		return "float"
	case DataTypeDouble:
		return "double"
	case DataTypeFixed:
		return "fixed"
	case DataTypeInt2101010Rev:
		return "int 2_10_10_10 rev"
	case DataTypeUnsignedInt2101010Rev:
		return "unsigned int 2_10_10_10 rev"
	case DataTypeUnsignedInt10F11F11FRev:
		return "unsigned int 10F_11F_11F rev"
	}
	return "unknown type"
}
