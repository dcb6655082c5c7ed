package opengl

import (
	"fmt"

	"github.com/gogpu/artist"
)

// shaderAttacher links the pass's compiled shaders into a program. After a
// successful link the standalone shader objects are redundant and deleted.
type shaderAttacher struct {
	gl Functions
}

func (a shaderAttacher) Attach(ctx *artist.PassContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	program := a.gl.CreateProgram()
	for _, sc := range ctx.Shaders() {
		a.gl.AttachShader(program, sc.Handle())
	}
	a.gl.LinkProgram(program)
	if !a.gl.LinkStatus(program) {
		log := a.gl.ProgramInfoLog(program)
		a.gl.DeleteProgram(program)
		return fmt.Errorf("%w: program link: %s", artist.ErrCompilationFailed, log)
	}
	for _, sc := range ctx.Shaders() {
		if sc.Handle() != 0 {
			a.gl.DeleteShader(sc.Handle())
			sc.SetHandle(0)
		}
	}
	ctx.SetProgram(program)
	return nil
}

// uniformReader enumerates the linked program's active uniforms.
type uniformReader struct {
	gl Functions
}

func (r uniformReader) ReadUniforms(ctx *artist.PassContext) ([]*artist.UniformContext, error) {
	if ctx == nil || ctx.Program() == 0 {
		return nil, fmt.Errorf("%w: pass has no linked program", artist.ErrNonValidContext)
	}
	program := ctx.Program()
	count := r.gl.ActiveUniformCount(program)
	uniforms := make([]*artist.UniformContext, 0, count)
	for i := 0; i < count; i++ {
		name, size, glType := r.gl.ActiveUniform(program, i)
		location := r.gl.UniformLocation(program, name)
		uniforms = append(uniforms, artist.NewUniformContext(name, location, glType, size))
	}
	return uniforms, nil
}

// attributeReader enumerates the linked program's active attributes.
type attributeReader struct {
	gl Functions
}

func (r attributeReader) ReadAttributes(ctx *artist.PassContext) ([]*artist.AttributeContext, error) {
	if ctx == nil || ctx.Program() == 0 {
		return nil, fmt.Errorf("%w: pass has no linked program", artist.ErrNonValidContext)
	}
	program := ctx.Program()
	count := r.gl.ActiveAttributeCount(program)
	attributes := make([]*artist.AttributeContext, 0, count)
	for i := 0; i < count; i++ {
		name, size, glType := r.gl.ActiveAttribute(program, i)
		location := r.gl.AttributeLocation(program, name)
		attributes = append(attributes, artist.NewAttributeContext(name, location, glType, size))
	}
	return attributes, nil
}

// passFreer deletes the linked program, guarded against double deletes.
type passFreer struct {
	gl Functions
}

func (f passFreer) Free(ctx *artist.PassContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	if ctx.Program() == 0 {
		return nil
	}
	f.gl.DeleteProgram(ctx.Program())
	ctx.SetProgram(0)
	return nil
}

// passUser makes the pass's program current.
type passUser struct {
	gl Functions
}

func (u passUser) Use(ctx *artist.PassContext) error {
	if ctx == nil || ctx.Program() == 0 {
		return fmt.Errorf("%w: pass has no linked program", artist.ErrNonValidContext)
	}
	u.gl.UseProgram(ctx.Program())
	return nil
}
