package opengl

import (
	"fmt"

	"github.com/gogpu/artist"
)

// uniformSetter issues the glUniform* overload matching the stored value's
// kind. The kind switch runs before any driver call, so an unsupported kind
// touches nothing.
type uniformSetter struct {
	gl Functions
}

func (s uniformSetter) Set(ctx *artist.UniformContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	v := ctx.Value()
	location := ctx.Location()
	switch v.Kind() {
	case artist.KindInt:
		i, _ := v.Int()
		s.gl.Uniform1i(location, i)
	case artist.KindFloat:
		f, _ := v.Float()
		s.gl.Uniform1f(location, f)
	case artist.KindDouble:
		d, _ := v.Double()
		s.gl.Uniform1d(location, d)
	case artist.KindVec2:
		vec, _ := v.Vec2()
		s.gl.Uniform2f(location, vec[0], vec[1])
	case artist.KindVec3:
		vec, _ := v.Vec3()
		s.gl.Uniform3f(location, vec[0], vec[1], vec[2])
	case artist.KindVec4:
		vec, _ := v.Vec4()
		s.gl.Uniform4f(location, vec[0], vec[1], vec[2], vec[3])
	case artist.KindMat2:
		m, _ := v.Mat2()
		s.gl.UniformMatrix2f(location, m)
	case artist.KindMat3:
		m, _ := v.Mat3()
		s.gl.UniformMatrix3f(location, m)
	case artist.KindMat4:
		m, _ := v.Mat4()
		s.gl.UniformMatrix4f(location, m)
	default:
		return fmt.Errorf("%w: uniform %q: %s",
			artist.ErrUnsupportedType, ctx.Name(), v.Kind())
	}
	return nil
}
