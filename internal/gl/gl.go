// SPDX-License-Identifier: Unlicense OR MIT

// Package gl wraps the subset of desktop OpenGL used by glbuf.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ARRAY_BUFFER              = 0x8892
	ATOMIC_COUNTER_BUFFER     = 0x92C0
	COPY_READ_BUFFER          = 0x8F36
	COPY_WRITE_BUFFER         = 0x8F37
	DISPATCH_INDIRECT_BUFFER  = 0x90EE
	DRAW_INDIRECT_BUFFER      = 0x8F3F
	ELEMENT_ARRAY_BUFFER      = 0x8893
	PIXEL_PACK_BUFFER         = 0x88EB
	PIXEL_UNPACK_BUFFER       = 0x88EC
	QUERY_BUFFER              = 0x9192
	SHADER_STORAGE_BUFFER     = 0x90D2
	TEXTURE_BUFFER            = 0x8C2A
	TRANSFORM_FEEDBACK_BUFFER = 0x8C8E
	UNIFORM_BUFFER            = 0x8A11

	STREAM_DRAW  = 0x88E0
	STREAM_READ  = 0x88E1
	STREAM_COPY  = 0x88E2
	STATIC_DRAW  = 0x88E4
	STATIC_READ  = 0x88E5
	STATIC_COPY  = 0x88E6
	DYNAMIC_DRAW = 0x88E8
	DYNAMIC_READ = 0x88E9
	DYNAMIC_COPY = 0x88EA

	BYTE                         = 0x1400
	UNSIGNED_BYTE                = 0x1401
	SHORT                        = 0x1402
	UNSIGNED_SHORT               = 0x1403
	INT                          = 0x1404
	UNSIGNED_INT                 = 0x1405
	FLOAT                        = 0x1406
	DOUBLE                       = 0x140A
	HALF_FLOAT                   = 0x140B
	FIXED                        = 0x140C
	INT_2_10_10_10_REV           = 0x8D9F
	UNSIGNED_INT_2_10_10_10_REV  = 0x8368
	UNSIGNED_INT_10F_11F_11F_REV = 0x8C3B

	ARRAY_BUFFER_BINDING         = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING = 0x8895
	VERTEX_ARRAY_BINDING         = 0x85B5
	MAX_VERTEX_ATTRIBS           = 0x8869

	NO_ERROR = 0x0
	VERSION  = 0x1f02
	RENDERER = 0x1F01
)
