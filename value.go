package artist

import "fmt"

// ValueKind tags the concrete type held by a Value. The set of kinds is the
// closed set of native value types the composition layer can carry to a
// driver; a kind with no setter in a given adapter is an UNSUPPORTED_TYPE
// case, not a reflection failure.
type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindInt
	KindFloat
	KindDouble
	KindVec2
	KindVec3
	KindVec4
	KindMat2
	KindMat3
	KindMat4
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	case KindMat2:
		return "mat2"
	case KindMat3:
		return "mat3"
	case KindMat4:
		return "mat4"
	default:
		return "invalid"
	}
}

// Components returns the number of float32 components carried by vector and
// matrix kinds, and zero for scalars and KindInvalid.
func (k ValueKind) Components() int {
	switch k {
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4:
		return 4
	case KindMat2:
		return 4
	case KindMat3:
		return 9
	case KindMat4:
		return 16
	default:
		return 0
	}
}

// Value is a tagged union over the supported uniform/attribute payload types.
// The zero Value has KindInvalid and matches nothing.
//
// A Value set with kind T reads back only through the kind-T accessor;
// any other accessor fails with ErrTypeMismatch rather than coercing.
type Value struct {
	kind ValueKind
	i    int32
	d    float64
	f    [16]float32
}

// IntValue wraps an int32.
func IntValue(v int32) Value { return Value{kind: KindInt, i: v} }

// FloatValue wraps a float32.
func FloatValue(v float32) Value {
	val := Value{kind: KindFloat}
	val.f[0] = v
	return val
}

// DoubleValue wraps a float64.
func DoubleValue(v float64) Value { return Value{kind: KindDouble, d: v} }

// Vec2Value wraps a 2-component float vector.
func Vec2Value(x, y float32) Value {
	val := Value{kind: KindVec2}
	val.f[0], val.f[1] = x, y
	return val
}

// Vec3Value wraps a 3-component float vector.
func Vec3Value(x, y, z float32) Value {
	val := Value{kind: KindVec3}
	val.f[0], val.f[1], val.f[2] = x, y, z
	return val
}

// Vec4Value wraps a 4-component float vector.
func Vec4Value(x, y, z, w float32) Value {
	val := Value{kind: KindVec4}
	val.f[0], val.f[1], val.f[2], val.f[3] = x, y, z, w
	return val
}

// Mat2Value wraps a column-major 2x2 float matrix.
func Mat2Value(m [4]float32) Value {
	val := Value{kind: KindMat2}
	copy(val.f[:], m[:])
	return val
}

// Mat3Value wraps a column-major 3x3 float matrix.
func Mat3Value(m [9]float32) Value {
	val := Value{kind: KindMat3}
	copy(val.f[:], m[:])
	return val
}

// Mat4Value wraps a column-major 4x4 float matrix.
func Mat4Value(m [16]float32) Value {
	val := Value{kind: KindMat4}
	copy(val.f[:], m[:])
	return val
}

// Kind returns the tag of the stored value.
func (v Value) Kind() ValueKind { return v.kind }

// IsValid reports whether the Value holds anything.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) mismatch(want ValueKind) error {
	return fmt.Errorf("%w: stored %s, requested %s", ErrTypeMismatch, v.kind, want)
}

// Int returns the stored int32.
func (v Value) Int() (int32, error) {
	if v.kind != KindInt {
		return 0, v.mismatch(KindInt)
	}
	return v.i, nil
}

// Float returns the stored float32.
func (v Value) Float() (float32, error) {
	if v.kind != KindFloat {
		return 0, v.mismatch(KindFloat)
	}
	return v.f[0], nil
}

// Double returns the stored float64.
func (v Value) Double() (float64, error) {
	if v.kind != KindDouble {
		return 0, v.mismatch(KindDouble)
	}
	return v.d, nil
}

// Vec2 returns the stored 2-component vector.
func (v Value) Vec2() ([2]float32, error) {
	if v.kind != KindVec2 {
		return [2]float32{}, v.mismatch(KindVec2)
	}
	return [2]float32{v.f[0], v.f[1]}, nil
}

// Vec3 returns the stored 3-component vector.
func (v Value) Vec3() ([3]float32, error) {
	if v.kind != KindVec3 {
		return [3]float32{}, v.mismatch(KindVec3)
	}
	return [3]float32{v.f[0], v.f[1], v.f[2]}, nil
}

// Vec4 returns the stored 4-component vector.
func (v Value) Vec4() ([4]float32, error) {
	if v.kind != KindVec4 {
		return [4]float32{}, v.mismatch(KindVec4)
	}
	return [4]float32{v.f[0], v.f[1], v.f[2], v.f[3]}, nil
}

// Mat2 returns the stored 2x2 matrix.
func (v Value) Mat2() ([4]float32, error) {
	if v.kind != KindMat2 {
		return [4]float32{}, v.mismatch(KindMat2)
	}
	var m [4]float32
	copy(m[:], v.f[:4])
	return m, nil
}

// Mat3 returns the stored 3x3 matrix.
func (v Value) Mat3() ([9]float32, error) {
	if v.kind != KindMat3 {
		return [9]float32{}, v.mismatch(KindMat3)
	}
	var m [9]float32
	copy(m[:], v.f[:9])
	return m, nil
}

// Mat4 returns the stored 4x4 matrix.
func (v Value) Mat4() ([16]float32, error) {
	if v.kind != KindMat4 {
		return [16]float32{}, v.mismatch(KindMat4)
	}
	var m [16]float32
	copy(m[:], v.f[:])
	return m, nil
}

// Floats returns the raw float32 components for vector and matrix kinds, in
// declaration order. Scalar and invalid kinds return nil. Setters use this
// for driver uploads without switching twice.
func (v Value) Floats() []float32 {
	n := v.kind.Components()
	if n == 0 {
		return nil
	}
	out := make([]float32, n)
	copy(out, v.f[:n])
	return out
}
