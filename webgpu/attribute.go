package webgpu

import (
	"fmt"

	"github.com/gogpu/artist"
)

const defaultVertexBufferSize = 64 * 1024

// attributeBinder binds the attribute's backing vertex buffer to its input
// slot, creating the buffer on first bind.
type attributeBinder struct {
	driver Driver
}

func (b attributeBinder) Bind(ctx *artist.AttributeContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	if ctx.Buffer() == 0 {
		buf, err := b.driver.CreateVertexBuffer(ctx.Name(), defaultVertexBufferSize)
		if err != nil {
			return fmt.Errorf("webgpu: attribute %q: %w", ctx.Name(), err)
		}
		ctx.SetBuffer(buf)
	}
	return b.driver.BindVertexBuffer(uint32(ctx.Location()), ctx.Buffer())
}

// attributeSetter uploads the stored value to the vertex buffer. Only float
// vector kinds have a vertex representation; everything else is rejected
// before any driver call.
type attributeSetter struct {
	driver Driver
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
	data, err := encodeValue(v)
	if err != nil {
		return fmt.Errorf("%w: attribute %q: %s",
			artist.ErrUnsupportedType, ctx.Name(), v.Kind())
	}
	if ctx.Buffer() == 0 {
		buf, err := s.driver.CreateVertexBuffer(ctx.Name(), defaultVertexBufferSize)
		if err != nil {
			return fmt.Errorf("webgpu: attribute %q: %w", ctx.Name(), err)
		}
		ctx.SetBuffer(buf)
	}
	if err := s.driver.WriteBuffer(ctx.Buffer(), data); err != nil {
		return fmt.Errorf("webgpu: attribute %q: %w", ctx.Name(), err)
	}
	return nil
}

// attributeUnbinder releases the attribute's input slot.
type attributeUnbinder struct {
	driver Driver
}

func (u attributeUnbinder) Unbind(ctx *artist.AttributeContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	u.driver.UnbindVertexBuffer(uint32(ctx.Location()))
	return nil
}
