package opengl

import (
	"fmt"

	"github.com/gogpu/artist"
)

// attributeBinder binds the backing buffer and enables the vertex-input
// slot, creating the buffer on first bind.
type attributeBinder struct {
	gl Functions
}

func (b attributeBinder) Bind(ctx *artist.AttributeContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	if ctx.Buffer() == 0 {
		ctx.SetBuffer(b.gl.GenBuffer())
	}
	b.gl.BindArrayBuffer(ctx.Buffer())
	b.gl.EnableVertexAttrib(ctx.Location())
	return nil
}

// attributeSetter uploads the stored value to the array buffer and
// describes the vertex layout. Only float vector kinds have a vertex
// representation; everything else is unsupported and issues no GL call.
type attributeSetter struct {
	gl Functions
}

func (s attributeSetter) Set(ctx *artist.AttributeContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	v := ctx.Value()
	switch v.Kind() {
	case artist.KindFloat, artist.KindVec2, artist.KindVec3, artist.KindVec4:
	default:
		return fmt.Errorf("%w: attribute %q: %s",
			artist.ErrUnsupportedType, ctx.Name(), v.Kind())
	}
	if ctx.Buffer() == 0 {
		ctx.SetBuffer(s.gl.GenBuffer())
	}
	components := int32(v.Kind().Components())
	if components == 0 {
		// KindFloat: a single component, not a vector.
		components = 1
	}
	data := v.Floats()
	if data == nil {
		f, _ := v.Float()
		data = []float32{f}
	}
	s.gl.BindArrayBuffer(ctx.Buffer())
	s.gl.BufferData(data)
	s.gl.VertexAttribPointer(ctx.Location(), components)
	return nil
}

// attributeUnbinder disables the vertex-input slot and unbinds the buffer.
type attributeUnbinder struct {
	gl Functions
}

func (u attributeUnbinder) Unbind(ctx *artist.AttributeContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	u.gl.DisableVertexAttrib(ctx.Location())
	u.gl.BindArrayBuffer(0)
	return nil
}
