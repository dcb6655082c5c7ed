package webgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/artist"
)

// nativeDriver implements Driver over the pure-Go WebGPU hardware
// abstraction layer. GPU objects live in a handle table so the components
// above only ever see opaque handles.
//
// The device is opened lazily on first use: GetBackend, instance and adapter
// enumeration run once, preferring a discrete or integrated GPU.
type nativeDriver struct {
	once    sync.Once
	initErr error

	device hal.Device
	queue  hal.Queue

	mu        sync.Mutex
	next      artist.Handle
	modules   map[artist.Handle]hal.ShaderModule
	pipelines map[artist.Handle]renderPipeline
	buffers   map[artist.Handle]hal.Buffer

	active artist.Handle
	slots  map[uint32]artist.Handle
}

type renderPipeline struct {
	pipeline hal.RenderPipeline
	layout   hal.PipelineLayout
}

func newNativeDriver() *nativeDriver {
	return &nativeDriver{
		next:      1,
		modules:   make(map[artist.Handle]hal.ShaderModule),
		pipelines: make(map[artist.Handle]renderPipeline),
		buffers:   make(map[artist.Handle]hal.Buffer),
		slots:     make(map[uint32]artist.Handle),
	}
}

func (d *nativeDriver) ensure() error {
	d.once.Do(func() {
		backend, ok := hal.GetBackend(gputypes.BackendVulkan)
		if !ok {
			d.initErr = fmt.Errorf("webgpu: vulkan backend not available")
			return
		}
		instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
		if err != nil {
			d.initErr = fmt.Errorf("webgpu: create instance: %w", err)
			return
		}

		adapters := instance.EnumerateAdapters(nil)
		if len(adapters) == 0 {
			d.initErr = fmt.Errorf("webgpu: no GPU adapters found")
			return
		}

		var selected *hal.ExposedAdapter
		for i := range adapters {
			if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
				adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
				selected = &adapters[i]
				break
			}
		}
		if selected == nil {
			selected = &adapters[0]
		}

		openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
		if err != nil {
			d.initErr = fmt.Errorf("webgpu: open device: %w", err)
			return
		}
		d.device = openDev.Device
		d.queue = openDev.Queue
		artist.Logger().Debug("webgpu: device opened", "adapter", selected.Info.Name)
	})
	return d.initErr
}

func (d *nativeDriver) allocHandle() artist.Handle {
	h := d.next
	d.next++
	return h
}

func (d *nativeDriver) CreateShaderModule(label string, spirv []uint32) (artist.Handle, error) {
	if err := d.ensure(); err != nil {
		return 0, err
	}
	module, err := d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return 0, fmt.Errorf("webgpu: create shader module %q: %w", label, err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.allocHandle()
	d.modules[h] = module
	return h, nil
}

func (d *nativeDriver) DestroyShaderModule(module artist.Handle) {
	d.mu.Lock()
	m, ok := d.modules[module]
	delete(d.modules, module)
	d.mu.Unlock()
	if ok {
		d.device.DestroyShaderModule(m)
	}
}

func (d *nativeDriver) CreateRenderPipeline(label string, vertex, fragment artist.Handle) (artist.Handle, error) {
	if err := d.ensure(); err != nil {
		return 0, err
	}
	d.mu.Lock()
	vs, okV := d.modules[vertex]
	fs, okF := d.modules[fragment]
	d.mu.Unlock()
	if !okV || !okF {
		return 0, fmt.Errorf("webgpu: create render pipeline %q: unknown shader module", label)
	}

	layout, err := d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: label + "_layout",
	})
	if err != nil {
		return 0, fmt.Errorf("webgpu: create pipeline layout %q: %w", label, err)
	}

	pipeline, err := d.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     vs,
			EntryPoint: "vs_main",
		},
		Fragment: &hal.FragmentState{
			Module:     fs,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8Unorm,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		d.device.DestroyPipelineLayout(layout)
		return 0, fmt.Errorf("webgpu: create render pipeline %q: %w", label, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.allocHandle()
	d.pipelines[h] = renderPipeline{pipeline: pipeline, layout: layout}
	return h, nil
}

func (d *nativeDriver) DestroyRenderPipeline(pipeline artist.Handle) {
	d.mu.Lock()
	p, ok := d.pipelines[pipeline]
	delete(d.pipelines, pipeline)
	if d.active == pipeline {
		d.active = 0
	}
	d.mu.Unlock()
	if ok {
		d.device.DestroyRenderPipeline(p.pipeline)
		d.device.DestroyPipelineLayout(p.layout)
	}
}

func (d *nativeDriver) SetPipeline(pipeline artist.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.pipelines[pipeline]; !ok {
		return fmt.Errorf("webgpu: set pipeline: unknown handle %d", pipeline)
	}
	d.active = pipeline
	return nil
}

func (d *nativeDriver) ClearPipeline() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = 0
}

func (d *nativeDriver) createBuffer(label string, size uint64, usage gputypes.BufferUsage) (artist.Handle, error) {
	if err := d.ensure(); err != nil {
		return 0, err
	}
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage,
	})
	if err != nil {
		return 0, fmt.Errorf("webgpu: create buffer %q: %w", label, err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.allocHandle()
	d.buffers[h] = buf
	return h, nil
}

func (d *nativeDriver) CreateUniformBuffer(label string, size uint64) (artist.Handle, error) {
	return d.createBuffer(label, size, gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
}

func (d *nativeDriver) CreateVertexBuffer(label string, size uint64) (artist.Handle, error) {
	return d.createBuffer(label, size, gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
}

func (d *nativeDriver) WriteBuffer(buffer artist.Handle, data []byte) error {
	d.mu.Lock()
	buf, ok := d.buffers[buffer]
	d.mu.Unlock()
	if !ok {
		return fmt.Errorf("webgpu: write buffer: unknown handle %d", buffer)
	}
	d.queue.WriteBuffer(buf, 0, data)
	return nil
}

func (d *nativeDriver) DestroyBuffer(buffer artist.Handle) {
	d.mu.Lock()
	buf, ok := d.buffers[buffer]
	delete(d.buffers, buffer)
	d.mu.Unlock()
	if ok {
		d.device.DestroyBuffer(buf)
	}
}

func (d *nativeDriver) BindVertexBuffer(slot uint32, buffer artist.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.buffers[buffer]; !ok {
		return fmt.Errorf("webgpu: bind vertex buffer: unknown handle %d", buffer)
	}
	d.slots[slot] = buffer
	return nil
}

func (d *nativeDriver) UnbindVertexBuffer(slot uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.slots, slot)
}
