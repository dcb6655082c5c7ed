// Package pipeline provides the domain entities of the artist composition
// layer: Shader, Uniform, Attribute, Pass and Pipeline.
//
// Entities orchestrate lifecycle only. Each one owns a context (the per-API
// state bag) and a role table resolved from the component registry at
// construction; every operation delegates to the matching capability
// component. Construction fails with artist.ErrConfiguration when no
// validated component set exists for the requested (API, Profile) pair, so
// an entity that exists is always fully wired.
//
// Lifecycle is fixed: Load cascades top-down (Pipeline → Pass → Shader),
// Use and Reset select and deselect the active pass, Free releases native
// resources bottom-up and is safe to repeat. Close is the teardown boundary:
// it frees, and it is the only place where failures are logged and
// suppressed instead of propagated.
package pipeline
