// Package webgpu adapts the rendering abstraction to the WebGPU hardware
// abstraction layer. Shaders are written in WGSL, compiled to SPIR-V through
// naga, and assembled into render pipelines; uniforms live in GPU buffers
// written through the queue.
//
// The package registers a complete component set for the "webgpu" API and the
// Classic profile on import. The native driver opens the first available
// adapter lazily, on the first call that needs a device, so importing the
// package on a machine without a GPU stays harmless until an entity is
// actually loaded.
//
// WebGPU has no program-object reflection comparable to GL's active-uniform
// queries, so uniform and vertex-input discovery works from the WGSL source
// text of the pass's shaders instead.
package webgpu
