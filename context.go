package artist

import "fmt"

// Contexts are the per-API state bags owned by domain entities. They hold
// data only; all behavior lives in capability components, which are the only
// code allowed to mutate a context besides the owning entity.

// ShaderContext holds the state of one shader stage: where its source lives,
// what stage it targets, the cached source text, and the native handle once
// compiled.
type ShaderContext struct {
	path   string
	kind   ShaderKind
	source string
	handle Handle
}

// NewShaderContext creates a context for a shader source file and stage.
func NewShaderContext(path string, kind ShaderKind) *ShaderContext {
	return &ShaderContext{path: path, kind: kind}
}

// Path returns the shader source file path.
func (c *ShaderContext) Path() string { return c.path }

// Kind returns the shader stage.
func (c *ShaderContext) Kind() ShaderKind { return c.kind }

// Source returns the cached shader source, empty until read.
func (c *ShaderContext) Source() string { return c.source }

// SetSource caches the shader source text.
func (c *ShaderContext) SetSource(src string) { c.source = src }

// Handle returns the native shader handle, zero until loaded.
func (c *ShaderContext) Handle() Handle { return c.handle }

// SetHandle stores the native shader handle.
func (c *ShaderContext) SetHandle(h Handle) { c.handle = h }

// UniformContext holds the reflected identity of one active uniform
// (name, location, native type tag, array size) and its typed value slot.
type UniformContext struct {
	name     string
	location int32
	typeTag  uint32
	size     int32
	value    Value
	buffer   Handle
}

// NewUniformContext creates a context for a reflected uniform.
func NewUniformContext(name string, location int32, typeTag uint32, size int32) *UniformContext {
	return &UniformContext{name: name, location: location, typeTag: typeTag, size: size}
}

// Name returns the uniform name reported by the driver.
func (c *UniformContext) Name() string { return c.name }

// Location returns the uniform location (or binding index).
func (c *UniformContext) Location() int32 { return c.location }

// TypeTag returns the adapter-specific native type tag.
func (c *UniformContext) TypeTag() uint32 { return c.typeTag }

// Size returns the array size reported by the driver.
func (c *UniformContext) Size() int32 { return c.size }

// Value returns the stored value; its kind is KindInvalid until set.
func (c *UniformContext) Value() Value { return c.value }

// SetValue stores a typed value. Once a value of some kind is stored, the
// slot is tagged: storing a value of a different kind fails with
// ErrTypeMismatch instead of silently re-tagging.
func (c *UniformContext) SetValue(v Value) error {
	if c.value.IsValid() && c.value.Kind() != v.Kind() {
		return fmt.Errorf("%w: uniform %q holds %s, cannot store %s",
			ErrTypeMismatch, c.name, c.value.Kind(), v.Kind())
	}
	c.value = v
	return nil
}

// Buffer returns the backing uniform buffer handle, if the adapter uses one.
func (c *UniformContext) Buffer() Handle { return c.buffer }

// SetBuffer stores the backing uniform buffer handle.
func (c *UniformContext) SetBuffer(h Handle) { c.buffer = h }

// AttributeContext holds the reflected identity of one active vertex
// attribute plus its binder/setter state: the backing buffer and the typed
// value slot.
type AttributeContext struct {
	name     string
	location int32
	typeTag  uint32
	size     int32
	buffer   Handle
	value    Value
}

// NewAttributeContext creates a context for a reflected attribute.
func NewAttributeContext(name string, location int32, typeTag uint32, size int32) *AttributeContext {
	return &AttributeContext{name: name, location: location, typeTag: typeTag, size: size}
}

// Name returns the attribute name reported by the driver.
func (c *AttributeContext) Name() string { return c.name }

// Location returns the vertex input slot.
func (c *AttributeContext) Location() int32 { return c.location }

// TypeTag returns the adapter-specific native type tag.
func (c *AttributeContext) TypeTag() uint32 { return c.typeTag }

// Size returns the array size reported by the driver.
func (c *AttributeContext) Size() int32 { return c.size }

// Buffer returns the backing vertex buffer handle, zero until bound.
func (c *AttributeContext) Buffer() Handle { return c.buffer }

// SetBuffer stores the backing vertex buffer handle.
func (c *AttributeContext) SetBuffer(h Handle) { c.buffer = h }

// Value returns the stored value; its kind is KindInvalid until set.
func (c *AttributeContext) Value() Value { return c.value }

// SetValue stores a typed value with the same re-tagging guard as
// UniformContext.SetValue.
func (c *AttributeContext) SetValue(v Value) error {
	if c.value.IsValid() && c.value.Kind() != v.Kind() {
		return fmt.Errorf("%w: attribute %q holds %s, cannot store %s",
			ErrTypeMismatch, c.name, c.value.Kind(), v.Kind())
	}
	c.value = v
	return nil
}

// PassContext owns the shader contexts of one pass and the linked program
// handle produced by the ShaderAttacher.
type PassContext struct {
	shaders []*ShaderContext
	program Handle
}

// NewPassContext creates a context owning the given shader contexts, in order.
func NewPassContext(shaders ...*ShaderContext) *PassContext {
	return &PassContext{shaders: shaders}
}

// Shaders returns the owned shader contexts in attachment order.
func (c *PassContext) Shaders() []*ShaderContext { return c.shaders }

// Program returns the linked program handle, zero until attached.
func (c *PassContext) Program() Handle { return c.program }

// SetProgram stores the linked program handle.
func (c *PassContext) SetProgram(h Handle) { c.program = h }

// PipelineContext owns the pass contexts of a pipeline and tracks the
// current-pass cursor. The cursor is always NoPass or a valid index.
type PipelineContext struct {
	passes  []*PassContext
	current int
}

// NewPipelineContext creates a context owning the given pass contexts, with
// the cursor at NoPass.
func NewPipelineContext(passes ...*PassContext) *PipelineContext {
	return &PipelineContext{passes: passes, current: NoPass}
}

// Passes returns the owned pass contexts in sequence order.
func (c *PipelineContext) Passes() []*PassContext { return c.passes }

// PassCount returns the number of passes.
func (c *PipelineContext) PassCount() int { return len(c.passes) }

// Current returns the current-pass cursor, NoPass when none is active.
func (c *PipelineContext) Current() int { return c.current }

// SetCurrent moves the cursor. The value must be NoPass or a valid index;
// out-of-range values are rejected so the invariant cannot be broken even by
// a misbehaving component.
func (c *PipelineContext) SetCurrent(i int) error {
	if i != NoPass && (i < 0 || i >= len(c.passes)) {
		return fmt.Errorf("%w: %d of %d passes", ErrPassIndex, i, len(c.passes))
	}
	c.current = i
	return nil
}

// CurrentPass returns the active pass context, or ErrNonValidContext when
// the cursor is at NoPass.
func (c *PipelineContext) CurrentPass() (*PassContext, error) {
	if c.current == NoPass {
		return nil, fmt.Errorf("%w: no pass active", ErrNonValidContext)
	}
	return c.passes[c.current], nil
}
