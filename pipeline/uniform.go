package pipeline

import (
	"github.com/gogpu/artist"
	"github.com/gogpu/artist/component"
)

// Uniform is one active uniform variable of a loaded pass. Uniforms are
// constructed by Pass.Load from the UniformReader's reflection output; they
// are not created directly.
type Uniform struct {
	roles *component.Set
	ctx   *artist.UniformContext
}

func newUniform(roles *component.Set, ctx *artist.UniformContext) *Uniform {
	return &Uniform{roles: roles, ctx: ctx}
}

// Name returns the uniform name reported by the driver.
func (u *Uniform) Name() string { return u.ctx.Name() }

// Set stores the value and issues the driver call for its kind. A value
// whose kind differs from a previously stored one fails with
// artist.ErrTypeMismatch; a kind the adapter has no setter for fails with
// artist.ErrUnsupportedType before any driver call.
func (u *Uniform) Set(v artist.Value) error {
	if err := u.ctx.SetValue(v); err != nil {
		return err
	}
	return u.roles.UniformSetter.Set(u.ctx)
}

// Value returns the stored value. Read it back through the same typed
// accessor used to set it; mismatched accessors fail with
// artist.ErrTypeMismatch.
func (u *Uniform) Value() artist.Value { return u.ctx.Value() }

// Context returns the uniform's context.
func (u *Uniform) Context() *artist.UniformContext { return u.ctx }
