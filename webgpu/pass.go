package webgpu

import (
	"fmt"

	"github.com/gogpu/artist"
)

// shaderAttacher assembles the pass's vertex and fragment modules into a
// render pipeline. A render pipeline needs exactly those two stages; once it
// exists the standalone modules are redundant and destroyed.
type shaderAttacher struct {
	driver Driver
}

func (a shaderAttacher) Attach(ctx *artist.PassContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	var vertex, fragment *artist.ShaderContext
	for _, sc := range ctx.Shaders() {
		switch sc.Kind() {
		case artist.ShaderVertex:
			vertex = sc
		case artist.ShaderFragment:
			fragment = sc
		}
	}
	if vertex == nil || fragment == nil {
		return fmt.Errorf("%w: render pipeline needs a vertex and a fragment shader",
			artist.ErrConfiguration)
	}

	pipeline, err := a.driver.CreateRenderPipeline("pass", vertex.Handle(), fragment.Handle())
	if err != nil {
		return fmt.Errorf("%w: %v", artist.ErrCompilationFailed, err)
	}
	for _, sc := range ctx.Shaders() {
		if sc.Handle() != 0 {
			a.driver.DestroyShaderModule(sc.Handle())
			sc.SetHandle(0)
		}
	}
	ctx.SetProgram(pipeline)
	return nil
}

// uniformReader scans the pass's WGSL sources for var<uniform> declarations.
// A uniform declared in more than one stage is reported once; its binding
// index takes the location slot.
type uniformReader struct{}

func (uniformReader) ReadUniforms(ctx *artist.PassContext) ([]*artist.UniformContext, error) {
	if ctx == nil || ctx.Program() == 0 {
		return nil, fmt.Errorf("%w: pass has no render pipeline", artist.ErrNonValidContext)
	}
	seen := make(map[string]bool)
	var uniforms []*artist.UniformContext
	for _, sc := range ctx.Shaders() {
		for _, u := range scanUniforms(sc.Source()) {
			if seen[u.name] {
				continue
			}
			seen[u.name] = true
			uniforms = append(uniforms,
				artist.NewUniformContext(u.name, u.binding, wgslTypeTag(u.typ), 1))
		}
	}
	return uniforms, nil
}

// attributeReader scans the vertex stage's WGSL source for the entry point's
// @location inputs.
type attributeReader struct{}

func (attributeReader) ReadAttributes(ctx *artist.PassContext) ([]*artist.AttributeContext, error) {
	if ctx == nil || ctx.Program() == 0 {
		return nil, fmt.Errorf("%w: pass has no render pipeline", artist.ErrNonValidContext)
	}
	var attributes []*artist.AttributeContext
	for _, sc := range ctx.Shaders() {
		if sc.Kind() != artist.ShaderVertex {
			continue
		}
		for _, in := range scanVertexInputs(sc.Source()) {
			attributes = append(attributes,
				artist.NewAttributeContext(in.name, in.location, wgslTypeTag(in.typ), 1))
		}
	}
	return attributes, nil
}

// passFreer destroys the render pipeline, guarded against double frees.
type passFreer struct {
	driver Driver
}

func (f passFreer) Free(ctx *artist.PassContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	if ctx.Program() == 0 {
		return nil
	}
	f.driver.DestroyRenderPipeline(ctx.Program())
	ctx.SetProgram(0)
	return nil
}

// passUser makes the pass's render pipeline the active one.
type passUser struct {
	driver Driver
}

func (u passUser) Use(ctx *artist.PassContext) error {
	if ctx == nil || ctx.Program() == 0 {
		return fmt.Errorf("%w: pass has no render pipeline", artist.ErrNonValidContext)
	}
	return u.driver.SetPipeline(ctx.Program())
}
