package component

import "github.com/gogpu/artist"

// Capability role interfaces. Each role is a single operation against one
// context kind; implementations are stateless apart from their driver table
// and mutate only the context they are handed.

// ShaderReader fills the context's source cache from its path. Invoked only
// when the cache is empty; a missing or unreadable file is an error, never
// swallowed.
type ShaderReader interface {
	Read(*artist.ShaderContext) error
}

// ShaderLoader submits the cached source to the driver, requests compilation
// and stores the resulting handle. On failure it retrieves the driver's
// diagnostic log, releases the partial resource, and returns
// artist.ErrCompilationFailed carrying the log text.
type ShaderLoader interface {
	Load(*artist.ShaderContext) error
}

// ShaderFreer releases the native shader resource. Safe to invoke on an
// already-freed context.
type ShaderFreer interface {
	Free(*artist.ShaderContext) error
}

// ShaderAttacher creates a program, attaches every owned shader's compiled
// handle, links, then frees the now-redundant standalone shader handles.
// On link failure the program is freed and artist.ErrCompilationFailed is
// returned with the link log.
type ShaderAttacher interface {
	Attach(*artist.PassContext) error
}

// UniformReader enumerates the linked program's active uniforms and returns
// one context per uniform, keyed by driver-reported name.
type UniformReader interface {
	ReadUniforms(*artist.PassContext) ([]*artist.UniformContext, error)
}

// AttributeReader enumerates the linked program's active attributes and
// returns one context per attribute.
type AttributeReader interface {
	ReadAttributes(*artist.PassContext) ([]*artist.AttributeContext, error)
}

// PassFreer releases the pass's linked program. Safe to invoke twice.
type PassFreer interface {
	Free(*artist.PassContext) error
}

// PassUser makes the pass's program the active one on the driver. A nil or
// unlinked context is artist.ErrNonValidContext.
type PassUser interface {
	Use(*artist.PassContext) error
}

// UniformSetter issues the driver call matching the kind of the context's
// stored value. A kind with no corresponding driver call is
// artist.ErrUnsupportedType, detected before any native call.
type UniformSetter interface {
	Set(*artist.UniformContext) error
}

// AttributeBinder binds the attribute's backing buffer and enables its
// vertex-input slot, creating the buffer on first bind.
type AttributeBinder interface {
	Bind(*artist.AttributeContext) error
}

// AttributeSetter uploads the context's stored value to the backing buffer
// and describes the vertex layout. Kinds with no vertex representation are
// artist.ErrUnsupportedType.
type AttributeSetter interface {
	Set(*artist.AttributeContext) error
}

// AttributeUnbinder disables the vertex-input slot and unbinds the buffer.
type AttributeUnbinder interface {
	Unbind(*artist.AttributeContext) error
}

// PipelineUser activates the pipeline's current pass on the driver. A nil
// context or a cursor at artist.NoPass is artist.ErrNonValidContext.
type PipelineUser interface {
	Use(*artist.PipelineContext) error
}

// PipelineResetter returns the cursor to artist.NoPass and deactivates any
// driver program, leaving no pass logically active.
type PipelineResetter interface {
	Reset(*artist.PipelineContext) error
}

// Set bundles one implementation of every role for an (API, Profile) pair.
// A Set must be complete to be registered; Validate reports what is missing.
type Set struct {
	ShaderReader ShaderReader
	ShaderLoader ShaderLoader
	ShaderFreer  ShaderFreer

	ShaderAttacher  ShaderAttacher
	UniformReader   UniformReader
	AttributeReader AttributeReader
	PassFreer       PassFreer
	PassUser        PassUser

	UniformSetter UniformSetter

	AttributeBinder   AttributeBinder
	AttributeSetter   AttributeSetter
	AttributeUnbinder AttributeUnbinder

	PipelineUser     PipelineUser
	PipelineResetter PipelineResetter
}
