package webgpu

import (
	"errors"
	"testing"

	"github.com/gogpu/artist"
)

func TestAttributeBinderCreatesBufferOnce(t *testing.T) {
	driver := newFakeDriver()
	ctx := artist.NewAttributeContext("position", 0, wgslTagVec3, 1)
	b := attributeBinder{driver: driver}

	if err := b.Bind(ctx); err != nil {
		t.Fatalf("Bind() = %v", err)
	}
	if ctx.Buffer() == 0 {
		t.Fatal("Buffer() = 0 after bind")
	}
	if driver.slots[0] != ctx.Buffer() {
		t.Errorf("slot 0 = %d, want %d", driver.slots[0], ctx.Buffer())
	}

	if err := b.Bind(ctx); err != nil {
		t.Fatalf("second Bind() = %v", err)
	}
	if len(driver.buffers) != 1 {
		t.Errorf("driver holds %d buffers, want 1", len(driver.buffers))
	}
}

func TestAttributeSetterUploads(t *testing.T) {
	driver := newFakeDriver()
	ctx := artist.NewAttributeContext("position", 0, wgslTagVec3, 1)
	if err := ctx.SetValue(artist.Vec3Value(1, 2, 3)); err != nil {
		t.Fatal(err)
	}

	if err := (attributeSetter{driver: driver}).Set(ctx); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	if ctx.Buffer() == 0 {
		t.Fatal("Buffer() = 0 after set")
	}
	if n := driver.count("WriteBuffer 1 12 bytes"); n != 1 {
		t.Errorf("calls = %v, want one 12-byte write", driver.calls)
	}
}

func TestAttributeSetterUnsupportedKind(t *testing.T) {
	for _, v := range []artist.Value{
		artist.IntValue(1),
		artist.DoubleValue(1),
		artist.Mat3Value([9]float32{}),
	} {
		driver := newFakeDriver()
		ctx := artist.NewAttributeContext("position", 0, 0, 1)
		if err := ctx.SetValue(v); err != nil {
			t.Fatal(err)
		}

		err := attributeSetter{driver: driver}.Set(ctx)
		if !errors.Is(err, artist.ErrUnsupportedType) {
			t.Errorf("Set(%s) = %v, want ErrUnsupportedType", v.Kind(), err)
		}
		if len(driver.calls) != 0 {
			t.Errorf("unsupported %s reached the driver: %v", v.Kind(), driver.calls)
		}
	}
}

func TestAttributeUnbinder(t *testing.T) {
	driver := newFakeDriver()
	ctx := artist.NewAttributeContext("position", 2, 0, 1)
	b := attributeBinder{driver: driver}
	if err := b.Bind(ctx); err != nil {
		t.Fatalf("Bind() = %v", err)
	}

	if err := (attributeUnbinder{driver: driver}).Unbind(ctx); err != nil {
		t.Fatalf("Unbind() = %v", err)
	}
	if _, bound := driver.slots[2]; bound {
		t.Error("slot 2 still bound after unbind")
	}
}
