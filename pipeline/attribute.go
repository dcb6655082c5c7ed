package pipeline

import (
	"github.com/gogpu/artist"
	"github.com/gogpu/artist/component"
)

// Attribute is one active vertex attribute of a loaded pass. Attributes are
// constructed by Pass.Load from the AttributeReader's reflection output.
// The usage cycle is Bind, Set per draw, Unbind.
type Attribute struct {
	roles *component.Set
	ctx   *artist.AttributeContext
}

func newAttribute(roles *component.Set, ctx *artist.AttributeContext) *Attribute {
	return &Attribute{roles: roles, ctx: ctx}
}

// Name returns the attribute name reported by the driver.
func (a *Attribute) Name() string { return a.ctx.Name() }

// Bind binds the backing buffer and enables the vertex-input slot, creating
// the buffer on first bind.
func (a *Attribute) Bind() error {
	return a.roles.AttributeBinder.Bind(a.ctx)
}

// Set stores the value and uploads it through the adapter's setter. Kind
// guards match Uniform.Set: re-tagging is artist.ErrTypeMismatch, a kind
// with no setter is artist.ErrUnsupportedType with no driver call issued.
func (a *Attribute) Set(v artist.Value) error {
	if err := a.ctx.SetValue(v); err != nil {
		return err
	}
	return a.roles.AttributeSetter.Set(a.ctx)
}

// Unbind disables the vertex-input slot and unbinds the buffer.
func (a *Attribute) Unbind() error {
	return a.roles.AttributeUnbinder.Unbind(a.ctx)
}

// Value returns the stored value.
func (a *Attribute) Value() artist.Value { return a.ctx.Value() }

// Context returns the attribute's context.
func (a *Attribute) Context() *artist.AttributeContext { return a.ctx }
