package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/artist"
)

// glComputeShader is GL_COMPUTE_SHADER, which entered core in GL 4.3 and is
// absent from the 4.1 core binding's constants.
const glComputeShader = 0x91B9

// native implements Functions over go-gl. A GL context must be current on
// the calling thread.
type native struct{}

// Native returns the go-gl backed function table.
func Native() Functions { return native{} }

func kindToGL(kind artist.ShaderKind) uint32 {
	switch kind {
	case artist.ShaderVertex:
		return gl.VERTEX_SHADER
	case artist.ShaderFragment:
		return gl.FRAGMENT_SHADER
	case artist.ShaderGeometry:
		return gl.GEOMETRY_SHADER
	case artist.ShaderTessControl:
		return gl.TESS_CONTROL_SHADER
	case artist.ShaderTessEvaluation:
		return gl.TESS_EVALUATION_SHADER
	case artist.ShaderCompute:
		return glComputeShader
	default:
		return gl.VERTEX_SHADER
	}
}

func (native) CreateShader(kind artist.ShaderKind) artist.Handle {
	return artist.Handle(gl.CreateShader(kindToGL(kind)))
}

func (native) ShaderSource(shader artist.Handle, src string) {
	csources, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(uint32(shader), 1, csources, nil)
}

func (native) CompileShader(shader artist.Handle) {
	gl.CompileShader(uint32(shader))
}

func (native) CompileStatus(shader artist.Handle) bool {
	var status int32
	gl.GetShaderiv(uint32(shader), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (native) ShaderInfoLog(shader artist.Handle) string {
	var logLen int32
	gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := make([]byte, logLen+1)
	gl.GetShaderInfoLog(uint32(shader), logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (native) DeleteShader(shader artist.Handle) {
	gl.DeleteShader(uint32(shader))
}

func (native) CreateProgram() artist.Handle {
	return artist.Handle(gl.CreateProgram())
}

func (native) AttachShader(program, shader artist.Handle) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (native) LinkProgram(program artist.Handle) {
	gl.LinkProgram(uint32(program))
}

func (native) LinkStatus(program artist.Handle) bool {
	var status int32
	gl.GetProgramiv(uint32(program), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (native) ProgramInfoLog(program artist.Handle) string {
	var logLen int32
	gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := make([]byte, logLen+1)
	gl.GetProgramInfoLog(uint32(program), logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (native) DeleteProgram(program artist.Handle) {
	gl.DeleteProgram(uint32(program))
}

func (native) UseProgram(program artist.Handle) {
	gl.UseProgram(uint32(program))
}

func (native) ActiveUniformCount(program artist.Handle) int {
	var count int32
	gl.GetProgramiv(uint32(program), gl.ACTIVE_UNIFORMS, &count)
	return int(count)
}

const nameBufSize = 256

func (native) ActiveUniform(program artist.Handle, index int) (string, int32, uint32) {
	var (
		nameLen int32
		size    int32
		xtype   uint32
	)
	name := make([]byte, nameBufSize)
	gl.GetActiveUniform(uint32(program), uint32(index), nameBufSize, &nameLen, &size, &xtype, &name[0])
	return string(name[:nameLen]), size, xtype
}

func (native) UniformLocation(program artist.Handle, name string) int32 {
	return gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
}

func (native) ActiveAttributeCount(program artist.Handle) int {
	var count int32
	gl.GetProgramiv(uint32(program), gl.ACTIVE_ATTRIBUTES, &count)
	return int(count)
}

func (native) ActiveAttribute(program artist.Handle, index int) (string, int32, uint32) {
	var (
		nameLen int32
		size    int32
		xtype   uint32
	)
	name := make([]byte, nameBufSize)
	gl.GetActiveAttrib(uint32(program), uint32(index), nameBufSize, &nameLen, &size, &xtype, &name[0])
	return string(name[:nameLen]), size, xtype
}

func (native) AttributeLocation(program artist.Handle, name string) int32 {
	return gl.GetAttribLocation(uint32(program), gl.Str(name+"\x00"))
}

func (native) Uniform1i(location, v int32)            { gl.Uniform1i(location, v) }
func (native) Uniform1f(location int32, v float32)    { gl.Uniform1f(location, v) }
func (native) Uniform1d(location int32, v float64)    { gl.Uniform1d(location, v) }
func (native) Uniform2f(location int32, x, y float32) { gl.Uniform2f(location, x, y) }
func (native) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}
func (native) Uniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

func (native) UniformMatrix2f(location int32, m [4]float32) {
	gl.UniformMatrix2fv(location, 1, false, &m[0])
}

func (native) UniformMatrix3f(location int32, m [9]float32) {
	gl.UniformMatrix3fv(location, 1, false, &m[0])
}

func (native) UniformMatrix4f(location int32, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (native) GenBuffer() artist.Handle {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return artist.Handle(buf)
}

func (native) DeleteBuffer(buffer artist.Handle) {
	buf := uint32(buffer)
	gl.DeleteBuffers(1, &buf)
}

func (native) BindArrayBuffer(buffer artist.Handle) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buffer))
}

func (native) BufferData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

func (native) EnableVertexAttrib(location int32) {
	gl.EnableVertexAttribArray(uint32(location))
}

func (native) DisableVertexAttrib(location int32) {
	gl.DisableVertexAttribArray(uint32(location))
}

func (native) VertexAttribPointer(location, components int32) {
	gl.VertexAttribPointer(uint32(location), components, gl.FLOAT, false, 0, gl.PtrOffset(0))
}
