// Package artist provides a capability-validated composition layer for
// multi-pass GPU rendering pipelines.
//
// # Overview
//
// artist models a rendering pipeline as plain domain entities — Pipeline,
// Pass, Shader, Uniform, Attribute — that carry no driver code of their own.
// Every driver-facing operation (reading shader source, compiling, linking,
// binding, setting values, activating a pass) is a capability component
// implemented by a back-end adapter for a given (API, Profile) pair and
// resolved through a registry at construction time.
//
// An API names a back-end (e.g. "opengl", "webgpu"); a Profile names a
// behavioral variant of pipeline handling, orthogonal to the API. A pair is
// usable only after its full component set passes validation, so a pipeline
// can never come up half-wired: registration fails fast at process init if
// any required role is missing.
//
// # Quick start
//
//	import (
//	    "github.com/gogpu/artist"
//	    "github.com/gogpu/artist/opengl"
//	    "github.com/gogpu/artist/pipeline"
//	)
//
//	vert, _ := pipeline.NewShader(opengl.API, artist.ProfileClassic,
//	    "shaders/scene.vert", artist.ShaderVertex)
//	frag, _ := pipeline.NewShader(opengl.API, artist.ProfileClassic,
//	    "shaders/scene.frag", artist.ShaderFragment)
//
//	pass, _ := pipeline.NewPass(opengl.API, artist.ProfileClassic, vert, frag)
//	p, _ := pipeline.NewPipeline(opengl.API, artist.ProfileClassic, pass)
//	defer p.Close()
//
//	if err := p.Load(); err != nil {
//	    // compile/link diagnostics are carried on the error
//	}
//	for more, _ := p.UseNext(); more; more, _ = p.UseNext() {
//	    // draw with the active pass
//	}
//
// # Architecture
//
// The module is organized into:
//   - artist (root): contexts, typed values, error taxonomy, logging
//   - component: role interfaces, the (API, Profile) registry, the Validator
//   - pipeline: domain entities and their lifecycle
//   - opengl, webgpu: back-end adapters supplying component sets
//
// New back-ends or profiles are added purely by registering new component
// sets; the entity layer is never modified.
//
// # Threading
//
// Entities and contexts are single-threaded by contract, matching the state
// machines of the native drivers they front. Callers sharing a pipeline
// across goroutines must serialize access themselves.
package artist
