// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"gioui.org/glbuf/driver"
	"gioui.org/glbuf/internal/gl"
)

func toGLBufferTarget(t driver.BufferTarget) gl.Enum {
	switch t {
	case driver.TargetArray:
		return gl.ARRAY_BUFFER
	case driver.TargetElementArray:
		return gl.ELEMENT_ARRAY_BUFFER
	case driver.TargetUniform:
		return gl.UNIFORM_BUFFER
	case driver.TargetShaderStorage:
		return gl.SHADER_STORAGE_BUFFER
	case driver.TargetCopyRead:
		return gl.COPY_READ_BUFFER
	case driver.TargetCopyWrite:
		return gl.COPY_WRITE_BUFFER
	case driver.TargetPixelPack:
		return gl.PIXEL_PACK_BUFFER
	case driver.TargetPixelUnpack:
		return gl.PIXEL_UNPACK_BUFFER
	case driver.TargetTexture:
		return gl.TEXTURE_BUFFER
	case driver.TargetTransformFeedback:
		return gl.TRANSFORM_FEEDBACK_BUFFER
	case driver.TargetDrawIndirect:
		return gl.DRAW_INDIRECT_BUFFER
	case driver.TargetDispatchIndirect:
		return gl.DISPATCH_INDIRECT_BUFFER
	case driver.TargetAtomicCounter:
		return gl.ATOMIC_COUNTER_BUFFER
	case driver.TargetQuery:
		return gl.QUERY_BUFFER
	default:
		panic("unsupported buffer target")
	}
}

func toGLUsage(u driver.Usage) gl.Enum {
	switch u {
	case driver.UsageStreamDraw:
		return gl.STREAM_DRAW
	case driver.UsageStreamRead:
		return gl.STREAM_READ
	case driver.UsageStreamCopy:
		return gl.STREAM_COPY
	case driver.UsageStaticDraw:
		return gl.STATIC_DRAW
	case driver.UsageStaticRead:
		return gl.STATIC_READ
	case driver.UsageStaticCopy:
		return gl.STATIC_COPY
	case driver.UsageDynamicDraw:
		return gl.DYNAMIC_DRAW
	case driver.UsageDynamicRead:
		return gl.DYNAMIC_READ
	case driver.UsageDynamicCopy:
		return gl.DYNAMIC_COPY
	default:
		panic("unsupported buffer usage")
	}
}

func toGLDataType(t driver.DataType) gl.Enum {
	switch t {
	case driver.DataTypeByte:
		return gl.BYTE
	case driver.DataTypeUnsignedByte:
		return gl.UNSIGNED_BYTE
	case driver.DataTypeShort:
		return gl.SHORT
	case driver.DataTypeUnsignedShort:
		return gl.UNSIGNED_SHORT
	case driver.DataTypeInt:
		return gl.INT
	case driver.DataTypeUnsignedInt:
		return gl.UNSIGNED_INT
	case driver.DataTypeHalfFloat:
		return gl.HALF_FLOAT
	case driver.DataTypeFloat:
		return gl.FLOAT
	case driver.DataTypeDouble:
		return gl.DOUBLE
	case driver.DataTypeFixed:
		return gl.FIXED
	case driver.DataTypeInt2101010Rev:
		return gl.INT_2_10_10_10_REV
	case driver.DataTypeUnsignedInt2101010Rev:
		return gl.UNSIGNED_INT_2_10_10_10_REV
	case driver.DataTypeUnsignedInt10F11F11FRev:
		return gl.UNSIGNED_INT_10F_11F_11F_REV
	default:
		panic("unsupported attribute type")
	}
}
