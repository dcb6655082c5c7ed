package artist

import "errors"

// Error taxonomy for the composition layer. Capability components and
// entities wrap these sentinels with fmt.Errorf("%w: ...") to carry
// diagnostic detail (compile logs, names, kinds); callers match with
// errors.Is.
var (
	// ErrConfiguration is returned when a required capability component is
	// missing for an (API, Profile) pair, or when no component set is
	// registered for the pair at all.
	ErrConfiguration = errors.New("artist: incomplete component configuration")

	// ErrCompilationFailed is returned when the driver rejects a shader
	// compile or a program link. The wrapped message carries the driver's
	// diagnostic log.
	ErrCompilationFailed = errors.New("artist: shader compilation failed")

	// ErrUniformNotFound is returned when a uniform name is absent from a
	// loaded pass.
	ErrUniformNotFound = errors.New("artist: uniform not found")

	// ErrAttributeNotFound is returned when an attribute name is absent from
	// a loaded pass.
	ErrAttributeNotFound = errors.New("artist: attribute not found")

	// ErrTypeMismatch is returned when a stored value is read back, or
	// overwritten, with a kind other than the one it was stored with.
	ErrTypeMismatch = errors.New("artist: value type mismatch")

	// ErrUnsupportedType is returned when no setter exists for the kind of
	// the stored value. No driver call is issued in this case.
	ErrUnsupportedType = errors.New("artist: unsupported value type")

	// ErrNonValidContext is returned when an operation is invoked with a
	// nil, absent, or inconsistent context.
	ErrNonValidContext = errors.New("artist: context is not valid")

	// ErrPassIndex is returned when a pass index is outside the pipeline's
	// pass sequence.
	ErrPassIndex = errors.New("artist: pass index out of range")
)
