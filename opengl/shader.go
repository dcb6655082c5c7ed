package opengl

import (
	"fmt"
	"os"

	"github.com/gogpu/artist"
)

// shaderReader reads GLSL source from the context's path into its cache.
type shaderReader struct{}

func (shaderReader) Read(ctx *artist.ShaderContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	data, err := os.ReadFile(ctx.Path())
	if err != nil {
		return fmt.Errorf("opengl: read shader source %q: %w", ctx.Path(), err)
	}
	ctx.SetSource(string(data))
	return nil
}

// shaderLoader compiles the cached source and stores the shader handle.
type shaderLoader struct {
	gl Functions
}

func (l shaderLoader) Load(ctx *artist.ShaderContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	shader := l.gl.CreateShader(ctx.Kind())
	l.gl.ShaderSource(shader, ctx.Source())
	l.gl.CompileShader(shader)
	if !l.gl.CompileStatus(shader) {
		log := l.gl.ShaderInfoLog(shader)
		l.gl.DeleteShader(shader)
		return fmt.Errorf("%w: %s shader %q: %s",
			artist.ErrCompilationFailed, ctx.Kind(), ctx.Path(), log)
	}
	ctx.SetHandle(shader)
	return nil
}

// shaderFreer deletes the shader object. The zero-handle guard makes a
// second free a no-op instead of a delete with a stale handle.
type shaderFreer struct {
	gl Functions
}

func (f shaderFreer) Free(ctx *artist.ShaderContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	if ctx.Handle() == 0 {
		return nil
	}
	f.gl.DeleteShader(ctx.Handle())
	ctx.SetHandle(0)
	return nil
}
