package pipeline

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/artist"
	"github.com/gogpu/artist/component"
)

// registerFake registers a fresh fake back-end under a test-unique API and
// returns it with the API name. The registration is removed on cleanup.
func registerFake(t *testing.T) (*fakeBackend, artist.API) {
	t.Helper()
	f := newFakeBackend()
	api := artist.API("fake-" + t.Name())
	if err := component.Register(api, artist.ProfileClassic, f.set()); err != nil {
		t.Fatalf("Register() = %v", err)
	}
	t.Cleanup(func() { component.Unregister(api, artist.ProfileClassic) })
	return f, api
}

// fakeBackend is a recording in-memory back-end. Every role appends what it
// did to calls, so tests can assert both outcomes and ordering. Failure
// points are switchable per test.
type fakeBackend struct {
	calls []string

	sources map[string]string

	readErr   error
	loadErr   error
	attachErr error
	setErr    error

	nextHandle  artist.Handle
	nextProgram artist.Handle

	uniformNames   []string
	attributeNames []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		sources:     make(map[string]string),
		nextHandle:  1,
		nextProgram: 100,
	}
}

func (f *fakeBackend) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// set assembles a complete component set backed by the fake.
func (f *fakeBackend) set() *component.Set {
	return &component.Set{
		ShaderReader:      fakeShaderReader{f},
		ShaderLoader:      fakeShaderLoader{f},
		ShaderFreer:       fakeShaderFreer{f},
		ShaderAttacher:    fakeShaderAttacher{f},
		UniformReader:     fakeUniformReader{f},
		AttributeReader:   fakeAttributeReader{f},
		PassFreer:         fakePassFreer{f},
		PassUser:          fakePassUser{f},
		UniformSetter:     fakeUniformSetter{f},
		AttributeBinder:   fakeAttributeBinder{f},
		AttributeSetter:   fakeAttributeSetter{f},
		AttributeUnbinder: fakeAttributeUnbinder{f},
		PipelineUser:      fakePipelineUser{f},
		PipelineResetter:  fakePipelineResetter{f},
	}
}

type fakeShaderReader struct{ f *fakeBackend }

func (r fakeShaderReader) Read(ctx *artist.ShaderContext) error {
	r.f.record("read %s", ctx.Path())
	if r.f.readErr != nil {
		return r.f.readErr
	}
	src, ok := r.f.sources[ctx.Path()]
	if !ok {
		return fmt.Errorf("fake: no source for %q", ctx.Path())
	}
	ctx.SetSource(src)
	return nil
}

type fakeShaderLoader struct{ f *fakeBackend }

func (l fakeShaderLoader) Load(ctx *artist.ShaderContext) error {
	l.f.record("load %s", ctx.Path())
	if l.f.loadErr != nil {
		return l.f.loadErr
	}
	ctx.SetHandle(l.f.nextHandle)
	l.f.nextHandle++
	return nil
}

type fakeShaderFreer struct{ f *fakeBackend }

func (fr fakeShaderFreer) Free(ctx *artist.ShaderContext) error {
	if ctx.Handle() == 0 {
		return nil
	}
	fr.f.record("free shader %d", ctx.Handle())
	ctx.SetHandle(0)
	return nil
}

type fakeShaderAttacher struct{ f *fakeBackend }

func (a fakeShaderAttacher) Attach(ctx *artist.PassContext) error {
	a.f.record("attach %d shaders", len(ctx.Shaders()))
	if a.f.attachErr != nil {
		return a.f.attachErr
	}
	ctx.SetProgram(a.f.nextProgram)
	a.f.nextProgram++
	return nil
}

type fakeUniformReader struct{ f *fakeBackend }

func (r fakeUniformReader) ReadUniforms(ctx *artist.PassContext) ([]*artist.UniformContext, error) {
	r.f.record("read uniforms %d", ctx.Program())
	uniforms := make([]*artist.UniformContext, len(r.f.uniformNames))
	for i, name := range r.f.uniformNames {
		uniforms[i] = artist.NewUniformContext(name, int32(i), 0, 1)
	}
	return uniforms, nil
}

type fakeAttributeReader struct{ f *fakeBackend }

func (r fakeAttributeReader) ReadAttributes(ctx *artist.PassContext) ([]*artist.AttributeContext, error) {
	r.f.record("read attributes %d", ctx.Program())
	attributes := make([]*artist.AttributeContext, len(r.f.attributeNames))
	for i, name := range r.f.attributeNames {
		attributes[i] = artist.NewAttributeContext(name, int32(i), 0, 1)
	}
	return attributes, nil
}

type fakePassFreer struct{ f *fakeBackend }

func (fr fakePassFreer) Free(ctx *artist.PassContext) error {
	if ctx.Program() == 0 {
		return nil
	}
	fr.f.record("free program %d", ctx.Program())
	ctx.SetProgram(0)
	return nil
}

type fakePassUser struct{ f *fakeBackend }

func (u fakePassUser) Use(ctx *artist.PassContext) error {
	if ctx.Program() == 0 {
		return artist.ErrNonValidContext
	}
	u.f.record("use program %d", ctx.Program())
	return nil
}

type fakeUniformSetter struct{ f *fakeBackend }

func (s fakeUniformSetter) Set(ctx *artist.UniformContext) error {
	if s.f.setErr != nil {
		return s.f.setErr
	}
	s.f.record("set uniform %s %s", ctx.Name(), ctx.Value().Kind())
	return nil
}

type fakeAttributeBinder struct{ f *fakeBackend }

func (b fakeAttributeBinder) Bind(ctx *artist.AttributeContext) error {
	b.f.record("bind attribute %s", ctx.Name())
	return nil
}

type fakeAttributeSetter struct{ f *fakeBackend }

func (s fakeAttributeSetter) Set(ctx *artist.AttributeContext) error {
	if s.f.setErr != nil {
		return s.f.setErr
	}
	s.f.record("set attribute %s %s", ctx.Name(), ctx.Value().Kind())
	return nil
}

type fakeAttributeUnbinder struct{ f *fakeBackend }

func (u fakeAttributeUnbinder) Unbind(ctx *artist.AttributeContext) error {
	u.f.record("unbind attribute %s", ctx.Name())
	return nil
}

type fakePipelineUser struct{ f *fakeBackend }

func (u fakePipelineUser) Use(ctx *artist.PipelineContext) error {
	pass, err := ctx.CurrentPass()
	if err != nil {
		return err
	}
	if pass.Program() == 0 {
		return artist.ErrNonValidContext
	}
	u.f.record("use pass %d", ctx.Current())
	return nil
}

type fakePipelineResetter struct{ f *fakeBackend }

func (r fakePipelineResetter) Reset(ctx *artist.PipelineContext) error {
	if err := ctx.SetCurrent(artist.NoPass); err != nil {
		return err
	}
	r.f.record("reset")
	return nil
}

var errFakeBackend = errors.New("fake backend failure")
