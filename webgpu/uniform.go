package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/artist"
)

// uniformSetter encodes the stored value into little-endian bytes and writes
// it to the uniform's backing buffer, creating the buffer on first set. WGSL
// has no 64-bit float type, so KindDouble is unsupported here and rejected
// before any driver call.
type uniformSetter struct {
	driver Driver
}

func (s uniformSetter) Set(ctx *artist.UniformContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	data, err := encodeValue(ctx.Value())
	if err != nil {
		return fmt.Errorf("%w: uniform %q: %s",
			artist.ErrUnsupportedType, ctx.Name(), ctx.Value().Kind())
	}
	if ctx.Buffer() == 0 {
		buf, err := s.driver.CreateUniformBuffer(ctx.Name(), uint64(len(data)))
		if err != nil {
			return fmt.Errorf("webgpu: uniform %q: %w", ctx.Name(), err)
		}
		ctx.SetBuffer(buf)
	}
	if err := s.driver.WriteBuffer(ctx.Buffer(), data); err != nil {
		return fmt.Errorf("webgpu: uniform %q: %w", ctx.Name(), err)
	}
	return nil
}

// encodeValue converts a typed value to the little-endian byte layout WGSL
// expects. Kinds with no WGSL representation return an error.
func encodeValue(v artist.Value) ([]byte, error) {
	switch v.Kind() {
	case artist.KindInt:
		i, _ := v.Int()
		data := make([]byte, 4)
		binary.LittleEndian.PutUint32(data, uint32(i))
		return data, nil
	case artist.KindFloat:
		f, _ := v.Float()
		data := make([]byte, 4)
		binary.LittleEndian.PutUint32(data, math.Float32bits(f))
		return data, nil
	case artist.KindVec2, artist.KindVec3, artist.KindVec4,
		artist.KindMat2, artist.KindMat3, artist.KindMat4:
		floats := v.Floats()
		data := make([]byte, 4*len(floats))
		for i, f := range floats {
			binary.LittleEndian.PutUint32(data[4*i:], math.Float32bits(f))
		}
		return data, nil
	default:
		return nil, fmt.Errorf("no WGSL representation for %s", v.Kind())
	}
}
