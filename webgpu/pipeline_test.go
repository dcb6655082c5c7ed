package webgpu

import (
	"errors"
	"testing"

	"github.com/gogpu/artist"
	"github.com/gogpu/artist/component"
)

func TestNativeSetRegisteredOnImport(t *testing.T) {
	if !component.Registered(API, artist.ProfileClassic) {
		t.Errorf("no component set registered for %s/%s", API, artist.ProfileClassic)
	}
}

func TestNewComponentSetIsComplete(t *testing.T) {
	if err := component.Validate(NewComponentSet(newFakeDriver())); err != nil {
		t.Errorf("Validate(NewComponentSet()) = %v", err)
	}
}

func TestPipelineUserActivatesCurrentPass(t *testing.T) {
	driver := newFakeDriver()
	pass := modulesPassContext(t, driver)
	if err := (shaderAttacher{driver: driver}).Attach(pass); err != nil {
		t.Fatalf("Attach() = %v", err)
	}
	ctx := artist.NewPipelineContext(pass)
	if err := ctx.SetCurrent(0); err != nil {
		t.Fatalf("SetCurrent() = %v", err)
	}

	if err := (pipelineUser{driver: driver}).Use(ctx); err != nil {
		t.Fatalf("Use() = %v", err)
	}
	if driver.active != pass.Program() {
		t.Errorf("active pipeline = %d, want %d", driver.active, pass.Program())
	}
}

func TestPipelineUserNoActivePass(t *testing.T) {
	driver := newFakeDriver()
	ctx := artist.NewPipelineContext(artist.NewPassContext())

	if err := (pipelineUser{driver: driver}).Use(ctx); !errors.Is(err, artist.ErrNonValidContext) {
		t.Errorf("Use() at NoPass = %v, want ErrNonValidContext", err)
	}
	if len(driver.calls) != 0 {
		t.Errorf("invalid use reached the driver: %v", driver.calls)
	}
}

func TestPipelineResetterClearsActivePipeline(t *testing.T) {
	driver := newFakeDriver()
	pass := modulesPassContext(t, driver)
	if err := (shaderAttacher{driver: driver}).Attach(pass); err != nil {
		t.Fatalf("Attach() = %v", err)
	}
	ctx := artist.NewPipelineContext(pass)
	if err := ctx.SetCurrent(0); err != nil {
		t.Fatalf("SetCurrent() = %v", err)
	}
	if err := (pipelineUser{driver: driver}).Use(ctx); err != nil {
		t.Fatalf("Use() = %v", err)
	}

	if err := (pipelineResetter{driver: driver}).Reset(ctx); err != nil {
		t.Fatalf("Reset() = %v", err)
	}
	if ctx.Current() != artist.NoPass {
		t.Errorf("Current() = %d after reset, want NoPass", ctx.Current())
	}
	if driver.active != 0 {
		t.Errorf("active pipeline = %d after reset, want 0", driver.active)
	}
}
