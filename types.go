package artist

// API identifies one concrete back-end (a native graphics driver interface)
// for which context state and capability components are supplied. Adapters
// declare their own API constant; the entity layer treats the value as an
// opaque registry key.
type API string

// Profile names a behavioral variant of pipeline/pass/shader/attribute/
// uniform handling, orthogonal to the API. Both axes are required to resolve
// a concrete component set.
type Profile string

// ProfileClassic is the single-program-per-pass profile implemented by the
// built-in adapters.
const ProfileClassic Profile = "classic"

// Handle is an opaque native resource identifier (shader, program, buffer).
// Zero means "no resource"; adapters that address resources by object map
// them to non-zero handles internally.
type Handle uint64

// ShaderKind identifies a programmable pipeline stage.
type ShaderKind int

const (
	ShaderVertex ShaderKind = iota
	ShaderFragment
	ShaderGeometry
	ShaderTessControl
	ShaderTessEvaluation
	ShaderCompute
)

// String returns the stage name.
func (k ShaderKind) String() string {
	switch k {
	case ShaderVertex:
		return "vertex"
	case ShaderFragment:
		return "fragment"
	case ShaderGeometry:
		return "geometry"
	case ShaderTessControl:
		return "tess-control"
	case ShaderTessEvaluation:
		return "tess-evaluation"
	case ShaderCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// NoPass is the Pipeline cursor sentinel: no pass is logically active.
const NoPass = -1
