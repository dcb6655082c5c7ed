package webgpu

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/naga"

	"github.com/gogpu/artist"
)

// shaderReader reads WGSL source from the context's path into its cache.
type shaderReader struct{}

func (shaderReader) Read(ctx *artist.ShaderContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	data, err := os.ReadFile(ctx.Path())
	if err != nil {
		return fmt.Errorf("webgpu: read shader source %q: %w", ctx.Path(), err)
	}
	ctx.SetSource(string(data))
	return nil
}

// shaderLoader compiles the cached WGSL through naga and creates the shader
// module from the resulting SPIR-V. The translator's diagnostics travel in
// the returned error the same way a driver's compile log would.
type shaderLoader struct {
	driver Driver
}

func (l shaderLoader) Load(ctx *artist.ShaderContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	words, err := compileWGSL(ctx.Source())
	if err != nil {
		return fmt.Errorf("%w: %s shader %q: %v",
			artist.ErrCompilationFailed, ctx.Kind(), ctx.Path(), err)
	}
	module, err := l.driver.CreateShaderModule(filepath.Base(ctx.Path()), words)
	if err != nil {
		return fmt.Errorf("%w: %s shader %q: %v",
			artist.ErrCompilationFailed, ctx.Kind(), ctx.Path(), err)
	}
	ctx.SetHandle(module)
	return nil
}

// compileWGSL translates WGSL to SPIR-V words. SPIR-V is little-endian
// 32-bit words.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// shaderFreer destroys the shader module, guarded against double frees.
type shaderFreer struct {
	driver Driver
}

func (f shaderFreer) Free(ctx *artist.ShaderContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	if ctx.Handle() == 0 {
		return nil
	}
	f.driver.DestroyShaderModule(ctx.Handle())
	ctx.SetHandle(0)
	return nil
}
