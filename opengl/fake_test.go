package opengl

import (
	"fmt"

	"github.com/gogpu/artist"
)

type fakeVar struct {
	name   string
	size   int32
	glType uint32
}

// fakeGL is a recording Functions implementation. Every entry point appends
// to calls so tests can assert exact driver traffic; compile and link
// outcomes are switchable per test.
type fakeGL struct {
	calls []string

	compileOK bool
	linkOK    bool
	shaderLog string
	linkLog   string

	nextShader  artist.Handle
	nextProgram artist.Handle
	nextBuffer  artist.Handle

	uniforms   []fakeVar
	attributes []fakeVar
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		compileOK:   true,
		linkOK:      true,
		nextShader:  1,
		nextProgram: 100,
		nextBuffer:  200,
	}
}

func (f *fakeGL) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// count returns how many recorded calls equal the given call string.
func (f *fakeGL) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeGL) CreateShader(kind artist.ShaderKind) artist.Handle {
	h := f.nextShader
	f.nextShader++
	f.record("CreateShader %s -> %d", kind, h)
	return h
}

func (f *fakeGL) ShaderSource(shader artist.Handle, src string) {
	f.record("ShaderSource %d", shader)
}

func (f *fakeGL) CompileShader(shader artist.Handle) {
	f.record("CompileShader %d", shader)
}

func (f *fakeGL) CompileStatus(shader artist.Handle) bool { return f.compileOK }

func (f *fakeGL) ShaderInfoLog(shader artist.Handle) string {
	f.record("ShaderInfoLog %d", shader)
	return f.shaderLog
}

func (f *fakeGL) DeleteShader(shader artist.Handle) {
	f.record("DeleteShader %d", shader)
}

func (f *fakeGL) CreateProgram() artist.Handle {
	h := f.nextProgram
	f.nextProgram++
	f.record("CreateProgram -> %d", h)
	return h
}

func (f *fakeGL) AttachShader(program, shader artist.Handle) {
	f.record("AttachShader %d %d", program, shader)
}

func (f *fakeGL) LinkProgram(program artist.Handle) {
	f.record("LinkProgram %d", program)
}

func (f *fakeGL) LinkStatus(program artist.Handle) bool { return f.linkOK }

func (f *fakeGL) ProgramInfoLog(program artist.Handle) string {
	f.record("ProgramInfoLog %d", program)
	return f.linkLog
}

func (f *fakeGL) DeleteProgram(program artist.Handle) {
	f.record("DeleteProgram %d", program)
}

func (f *fakeGL) UseProgram(program artist.Handle) {
	f.record("UseProgram %d", program)
}

func (f *fakeGL) ActiveUniformCount(program artist.Handle) int { return len(f.uniforms) }

func (f *fakeGL) ActiveUniform(program artist.Handle, index int) (string, int32, uint32) {
	u := f.uniforms[index]
	return u.name, u.size, u.glType
}

func (f *fakeGL) UniformLocation(program artist.Handle, name string) int32 {
	for i, u := range f.uniforms {
		if u.name == name {
			return int32(i)
		}
	}
	return -1
}

func (f *fakeGL) ActiveAttributeCount(program artist.Handle) int { return len(f.attributes) }

func (f *fakeGL) ActiveAttribute(program artist.Handle, index int) (string, int32, uint32) {
	a := f.attributes[index]
	return a.name, a.size, a.glType
}

func (f *fakeGL) AttributeLocation(program artist.Handle, name string) int32 {
	for i, a := range f.attributes {
		if a.name == name {
			return int32(i)
		}
	}
	return -1
}

func (f *fakeGL) Uniform1i(location, v int32)         { f.record("Uniform1i %d %d", location, v) }
func (f *fakeGL) Uniform1f(location int32, v float32) { f.record("Uniform1f %d %g", location, v) }
func (f *fakeGL) Uniform1d(location int32, v float64) { f.record("Uniform1d %d %g", location, v) }
func (f *fakeGL) Uniform2f(location int32, x, y float32) {
	f.record("Uniform2f %d %g %g", location, x, y)
}
func (f *fakeGL) Uniform3f(location int32, x, y, z float32) {
	f.record("Uniform3f %d %g %g %g", location, x, y, z)
}
func (f *fakeGL) Uniform4f(location int32, x, y, z, w float32) {
	f.record("Uniform4f %d %g %g %g %g", location, x, y, z, w)
}
func (f *fakeGL) UniformMatrix2f(location int32, m [4]float32) {
	f.record("UniformMatrix2f %d", location)
}
func (f *fakeGL) UniformMatrix3f(location int32, m [9]float32) {
	f.record("UniformMatrix3f %d", location)
}
func (f *fakeGL) UniformMatrix4f(location int32, m [16]float32) {
	f.record("UniformMatrix4f %d", location)
}

func (f *fakeGL) GenBuffer() artist.Handle {
	h := f.nextBuffer
	f.nextBuffer++
	f.record("GenBuffer -> %d", h)
	return h
}

func (f *fakeGL) DeleteBuffer(buffer artist.Handle) {
	f.record("DeleteBuffer %d", buffer)
}

func (f *fakeGL) BindArrayBuffer(buffer artist.Handle) {
	f.record("BindArrayBuffer %d", buffer)
}

func (f *fakeGL) BufferData(data []float32) {
	f.record("BufferData %d floats", len(data))
}

func (f *fakeGL) EnableVertexAttrib(location int32) {
	f.record("EnableVertexAttrib %d", location)
}

func (f *fakeGL) DisableVertexAttrib(location int32) {
	f.record("DisableVertexAttrib %d", location)
}

func (f *fakeGL) VertexAttribPointer(location, components int32) {
	f.record("VertexAttribPointer %d %d", location, components)
}
