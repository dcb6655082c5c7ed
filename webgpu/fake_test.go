package webgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/artist"
)

// fakeDriver is a recording Driver. It tracks live handles so destroy calls
// on unknown handles surface as test failures through the call log, and
// failure points are switchable per test.
type fakeDriver struct {
	calls []string

	moduleErr   error
	pipelineErr error
	bufferErr   error
	writeErr    error

	next      artist.Handle
	modules   map[artist.Handle]string
	pipelines map[artist.Handle]string
	buffers   map[artist.Handle]uint64

	active artist.Handle
	slots  map[uint32]artist.Handle
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		next:      1,
		modules:   make(map[artist.Handle]string),
		pipelines: make(map[artist.Handle]string),
		buffers:   make(map[artist.Handle]uint64),
		slots:     make(map[uint32]artist.Handle),
	}
}

func (f *fakeDriver) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeDriver) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeDriver) CreateShaderModule(label string, spirv []uint32) (artist.Handle, error) {
	f.record("CreateShaderModule %s %d words", label, len(spirv))
	if f.moduleErr != nil {
		return 0, f.moduleErr
	}
	h := f.next
	f.next++
	f.modules[h] = label
	return h, nil
}

func (f *fakeDriver) DestroyShaderModule(module artist.Handle) {
	f.record("DestroyShaderModule %d", module)
	delete(f.modules, module)
}

func (f *fakeDriver) CreateRenderPipeline(label string, vertex, fragment artist.Handle) (artist.Handle, error) {
	f.record("CreateRenderPipeline %s %d %d", label, vertex, fragment)
	if f.pipelineErr != nil {
		return 0, f.pipelineErr
	}
	if _, ok := f.modules[vertex]; !ok {
		return 0, fmt.Errorf("fake: unknown vertex module %d", vertex)
	}
	if _, ok := f.modules[fragment]; !ok {
		return 0, fmt.Errorf("fake: unknown fragment module %d", fragment)
	}
	h := f.next
	f.next++
	f.pipelines[h] = label
	return h, nil
}

func (f *fakeDriver) DestroyRenderPipeline(pipeline artist.Handle) {
	f.record("DestroyRenderPipeline %d", pipeline)
	delete(f.pipelines, pipeline)
	if f.active == pipeline {
		f.active = 0
	}
}

func (f *fakeDriver) SetPipeline(pipeline artist.Handle) error {
	f.record("SetPipeline %d", pipeline)
	if _, ok := f.pipelines[pipeline]; !ok {
		return fmt.Errorf("fake: unknown pipeline %d", pipeline)
	}
	f.active = pipeline
	return nil
}

func (f *fakeDriver) ClearPipeline() {
	f.record("ClearPipeline")
	f.active = 0
}

func (f *fakeDriver) CreateUniformBuffer(label string, size uint64) (artist.Handle, error) {
	f.record("CreateUniformBuffer %s %d", label, size)
	if f.bufferErr != nil {
		return 0, f.bufferErr
	}
	h := f.next
	f.next++
	f.buffers[h] = size
	return h, nil
}

func (f *fakeDriver) CreateVertexBuffer(label string, size uint64) (artist.Handle, error) {
	f.record("CreateVertexBuffer %s %d", label, size)
	if f.bufferErr != nil {
		return 0, f.bufferErr
	}
	h := f.next
	f.next++
	f.buffers[h] = size
	return h, nil
}

func (f *fakeDriver) WriteBuffer(buffer artist.Handle, data []byte) error {
	f.record("WriteBuffer %d %d bytes", buffer, len(data))
	if f.writeErr != nil {
		return f.writeErr
	}
	if _, ok := f.buffers[buffer]; !ok {
		return fmt.Errorf("fake: unknown buffer %d", buffer)
	}
	return nil
}

func (f *fakeDriver) DestroyBuffer(buffer artist.Handle) {
	f.record("DestroyBuffer %d", buffer)
	delete(f.buffers, buffer)
}

func (f *fakeDriver) BindVertexBuffer(slot uint32, buffer artist.Handle) error {
	f.record("BindVertexBuffer %d %d", slot, buffer)
	if _, ok := f.buffers[buffer]; !ok {
		return fmt.Errorf("fake: unknown buffer %d", buffer)
	}
	f.slots[slot] = buffer
	return nil
}

func (f *fakeDriver) UnbindVertexBuffer(slot uint32) {
	f.record("UnbindVertexBuffer %d", slot)
	delete(f.slots, slot)
}

var errFakeDriver = errors.New("fake driver failure")
