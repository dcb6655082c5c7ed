package webgpu

import "github.com/gogpu/artist"

// Driver is the narrow device surface the adapter's components call. It
// addresses GPU objects by opaque handles so components stay independent of
// the hardware abstraction layer's types, and tests can substitute a
// recording fake.
type Driver interface {
	// Shader modules from SPIR-V words.
	CreateShaderModule(label string, spirv []uint32) (artist.Handle, error)
	DestroyShaderModule(module artist.Handle)

	// Render pipelines from a vertex and fragment module pair.
	CreateRenderPipeline(label string, vertex, fragment artist.Handle) (artist.Handle, error)
	DestroyRenderPipeline(pipeline artist.Handle)
	SetPipeline(pipeline artist.Handle) error
	ClearPipeline()

	// Buffers for uniform and vertex data.
	CreateUniformBuffer(label string, size uint64) (artist.Handle, error)
	CreateVertexBuffer(label string, size uint64) (artist.Handle, error)
	WriteBuffer(buffer artist.Handle, data []byte) error
	DestroyBuffer(buffer artist.Handle)

	// Vertex buffer slot bindings for the next draw.
	BindVertexBuffer(slot uint32, buffer artist.Handle) error
	UnbindVertexBuffer(slot uint32)
}
