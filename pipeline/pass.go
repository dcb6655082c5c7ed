package pipeline

import (
	"fmt"

	"github.com/gogpu/artist"
	"github.com/gogpu/artist/component"
)

// Pass is an ordered, construction-time-fixed collection of shaders plus the
// uniforms and attributes reflected from their linked program. The shader
// sequence cannot change after construction; the uniform and attribute maps
// are empty until Load completes.
type Pass struct {
	roles   *component.Set
	ctx     *artist.PassContext
	shaders []*Shader

	uniforms   map[string]*Uniform
	attributes map[string]*Attribute
}

// NewPass creates a pass owning the given shaders, in order. All shaders
// must belong to the same (API, Profile) pair as the pass; the pair must
// have a validated component set registered.
func NewPass(api artist.API, profile artist.Profile, shaders ...*Shader) (*Pass, error) {
	roles, err := component.Resolve(api, profile)
	if err != nil {
		return nil, err
	}
	ctxs := make([]*artist.ShaderContext, len(shaders))
	for i, s := range shaders {
		ctxs[i] = s.Context()
	}
	return &Pass{
		roles:   roles,
		ctx:     artist.NewPassContext(ctxs...),
		shaders: shaders,
	}, nil
}

// Load runs the fixed pass lifecycle: load every shader, attach and link the
// program, then reflect uniforms and attributes. Attachment must follow
// shader compilation and the reads must follow link success, so the order
// never varies. Any failing step aborts the whole load.
func (p *Pass) Load() error {
	for _, s := range p.shaders {
		if err := s.Load(); err != nil {
			return err
		}
	}
	if err := p.roles.ShaderAttacher.Attach(p.ctx); err != nil {
		return err
	}

	uniformCtxs, err := p.roles.UniformReader.ReadUniforms(p.ctx)
	if err != nil {
		return err
	}
	p.uniforms = make(map[string]*Uniform, len(uniformCtxs))
	for _, uc := range uniformCtxs {
		p.uniforms[uc.Name()] = newUniform(p.roles, uc)
	}

	attributeCtxs, err := p.roles.AttributeReader.ReadAttributes(p.ctx)
	if err != nil {
		return err
	}
	p.attributes = make(map[string]*Attribute, len(attributeCtxs))
	for _, ac := range attributeCtxs {
		p.attributes[ac.Name()] = newAttribute(p.roles, ac)
	}

	artist.Logger().Debug("pass loaded",
		"shaders", len(p.shaders),
		"uniforms", len(p.uniforms),
		"attributes", len(p.attributes))
	return nil
}

// Use makes the pass's linked program the active one on the driver.
func (p *Pass) Use() error {
	return p.roles.PassUser.Use(p.ctx)
}

// WithUniform sets the named uniform's value and returns the pass for
// chaining. The name must exist in the map populated by Load; an absent
// name fails with artist.ErrUniformNotFound and mutates nothing.
func (p *Pass) WithUniform(name string, v artist.Value) (*Pass, error) {
	u, ok := p.uniforms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", artist.ErrUniformNotFound, name)
	}
	if err := u.Set(v); err != nil {
		return nil, err
	}
	return p, nil
}

// Uniform returns the named uniform, or artist.ErrUniformNotFound.
func (p *Pass) Uniform(name string) (*Uniform, error) {
	u, ok := p.uniforms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", artist.ErrUniformNotFound, name)
	}
	return u, nil
}

// Attribute returns the named attribute, or artist.ErrAttributeNotFound.
func (p *Pass) Attribute(name string) (*Attribute, error) {
	a, ok := p.attributes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", artist.ErrAttributeNotFound, name)
	}
	return a, nil
}

// Uniforms returns the name-keyed uniform map, nil until Load completes.
func (p *Pass) Uniforms() map[string]*Uniform { return p.uniforms }

// Attributes returns the name-keyed attribute map, nil until Load completes.
func (p *Pass) Attributes() map[string]*Attribute { return p.attributes }

// Shaders returns the owned shaders in attachment order.
func (p *Pass) Shaders() []*Shader { return p.shaders }

// Free releases the linked program and every owned shader's native
// resource, bottom-up. Shader handles are normally already released by the
// attacher after link; the freers guard against double deletes either way.
func (p *Pass) Free() error {
	if err := p.roles.PassFreer.Free(p.ctx); err != nil {
		return err
	}
	for _, s := range p.shaders {
		if err := s.Free(); err != nil {
			return err
		}
	}
	return nil
}

// Close frees the pass and its shaders, logging and suppressing any failure.
func (p *Pass) Close() {
	if err := p.Free(); err != nil {
		artist.Logger().Warn("pass free failed during close", "error", err)
	}
}

// Context returns the pass's context.
func (p *Pass) Context() *artist.PassContext { return p.ctx }
