package pipeline

import (
	"github.com/gogpu/artist"
	"github.com/gogpu/artist/component"
)

// Shader is one programmable stage, identified by its source path and kind.
// It owns its ShaderContext exclusively; the registry-resolved role table
// does the actual driver work.
type Shader struct {
	roles *component.Set
	ctx   *artist.ShaderContext
}

// NewShader creates a shader for the given (API, Profile) pair. The pair
// must have a validated component set registered; otherwise construction
// fails with artist.ErrConfiguration and no entity is created.
func NewShader(api artist.API, profile artist.Profile, path string, kind artist.ShaderKind) (*Shader, error) {
	roles, err := component.Resolve(api, profile)
	if err != nil {
		return nil, err
	}
	return &Shader{
		roles: roles,
		ctx:   artist.NewShaderContext(path, kind),
	}, nil
}

// Load reads the shader source if the cache is empty, then compiles it.
// Any step failing aborts the load and propagates untouched; the shader
// remains destructible but unusable.
func (s *Shader) Load() error {
	if s.ctx.Source() == "" {
		if err := s.roles.ShaderReader.Read(s.ctx); err != nil {
			return err
		}
	}
	if err := s.roles.ShaderLoader.Load(s.ctx); err != nil {
		return err
	}
	artist.Logger().Debug("shader loaded",
		"path", s.ctx.Path(), "kind", s.ctx.Kind().String())
	return nil
}

// Free releases the native shader resource. Freers guard the handle, so
// calling Free on an already-freed shader is a no-op.
func (s *Shader) Free() error {
	return s.roles.ShaderFreer.Free(s.ctx)
}

// Close frees the shader. Teardown never propagates failures: an error from
// the freer is logged at Warn and suppressed.
func (s *Shader) Close() {
	if err := s.Free(); err != nil {
		artist.Logger().Warn("shader free failed during close",
			"path", s.ctx.Path(), "error", err)
	}
}

// Context returns the shader's context.
func (s *Shader) Context() *artist.ShaderContext { return s.ctx }
