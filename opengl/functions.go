package opengl

import "github.com/gogpu/artist"

// Functions is the fixed native-API surface the adapter's components call.
// It mirrors the GL entry points this layer needs, addressed by opaque
// handles, so components never touch the gl package directly and tests can
// substitute a recording fake.
//
// Status and info-log pairs are folded into one call each: the components
// only ever branch on success and fetch the log on failure.
type Functions interface {
	// Shader objects.
	CreateShader(kind artist.ShaderKind) artist.Handle
	ShaderSource(shader artist.Handle, src string)
	CompileShader(shader artist.Handle)
	CompileStatus(shader artist.Handle) bool
	ShaderInfoLog(shader artist.Handle) string
	DeleteShader(shader artist.Handle)

	// Program objects.
	CreateProgram() artist.Handle
	AttachShader(program, shader artist.Handle)
	LinkProgram(program artist.Handle)
	LinkStatus(program artist.Handle) bool
	ProgramInfoLog(program artist.Handle) string
	DeleteProgram(program artist.Handle)
	UseProgram(program artist.Handle)

	// Program introspection.
	ActiveUniformCount(program artist.Handle) int
	ActiveUniform(program artist.Handle, index int) (name string, size int32, glType uint32)
	UniformLocation(program artist.Handle, name string) int32
	ActiveAttributeCount(program artist.Handle) int
	ActiveAttribute(program artist.Handle, index int) (name string, size int32, glType uint32)
	AttributeLocation(program artist.Handle, name string) int32

	// Uniform value calls, one per supported kind.
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform1d(location int32, v float64)
	Uniform2f(location int32, x, y float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix2f(location int32, m [4]float32)
	UniformMatrix3f(location int32, m [9]float32)
	UniformMatrix4f(location int32, m [16]float32)

	// Vertex buffers and attribute slots.
	GenBuffer() artist.Handle
	DeleteBuffer(buffer artist.Handle)
	BindArrayBuffer(buffer artist.Handle)
	BufferData(data []float32)
	EnableVertexAttrib(location int32)
	DisableVertexAttrib(location int32)
	VertexAttribPointer(location int32, components int32)
}
