package pipeline

import (
	"fmt"

	"github.com/gogpu/artist"
	"github.com/gogpu/artist/component"
)

// Pipeline is an ordered sequence of passes with a single current-pass
// cursor. The cursor is artist.NoPass when no pass is active; Use and
// UseNext move it, Reset returns it to the sentinel.
type Pipeline struct {
	roles  *component.Set
	ctx    *artist.PipelineContext
	passes []*Pass
}

// NewPipeline creates a pipeline owning the given passes, in order. The
// (API, Profile) pair must have a validated component set registered.
func NewPipeline(api artist.API, profile artist.Profile, passes ...*Pass) (*Pipeline, error) {
	roles, err := component.Resolve(api, profile)
	if err != nil {
		return nil, err
	}
	ctxs := make([]*artist.PassContext, len(passes))
	for i, p := range passes {
		ctxs[i] = p.Context()
	}
	return &Pipeline{
		roles:  roles,
		ctx:    artist.NewPipelineContext(ctxs...),
		passes: passes,
	}, nil
}

// Load loads every pass, top-down. The first failure aborts the load.
func (p *Pipeline) Load() error {
	for _, pass := range p.passes {
		if err := pass.Load(); err != nil {
			return err
		}
	}
	return nil
}

// Use activates the pass at index i: the cursor moves to i and the
// pipeline's user role makes that pass's program active on the driver.
func (p *Pipeline) Use(i int) error {
	if err := p.ctx.SetCurrent(i); err != nil {
		return err
	}
	return p.roles.PipelineUser.Use(p.ctx)
}

// HasNext reports whether a pass exists after the current one.
func (p *Pipeline) HasNext() bool {
	return p.ctx.Current()+1 < p.ctx.PassCount()
}

// UseNext advances to and activates the next pass, returning whether a
// further pass remains after it. When no next pass exists, the pipeline
// resets instead and returns false, so iterating until UseNext reports
// false activates every pass once, in order, and leaves no pass active.
func (p *Pipeline) UseNext() (bool, error) {
	if p.HasNext() {
		if err := p.Use(p.ctx.Current() + 1); err != nil {
			return false, err
		}
		return p.HasNext(), nil
	}
	return false, p.Reset()
}

// Reset returns the cursor to artist.NoPass, leaving no pass logically
// active.
func (p *Pipeline) Reset() error {
	return p.roles.PipelineResetter.Reset(p.ctx)
}

// Pass returns the pass at index i.
func (p *Pipeline) Pass(i int) (*Pass, error) {
	if i < 0 || i >= len(p.passes) {
		return nil, fmt.Errorf("%w: %d of %d passes", artist.ErrPassIndex, i, len(p.passes))
	}
	return p.passes[i], nil
}

// PassCount returns the number of passes.
func (p *Pipeline) PassCount() int { return len(p.passes) }

// Free releases every pass's native resources, bottom-up.
func (p *Pipeline) Free() error {
	for _, pass := range p.passes {
		if err := pass.Free(); err != nil {
			return err
		}
	}
	return nil
}

// Close tears the pipeline down. Each pass closes independently so one
// failing free cannot leak the rest; failures are logged and suppressed.
func (p *Pipeline) Close() {
	for _, pass := range p.passes {
		pass.Close()
	}
}

// Context returns the pipeline's context.
func (p *Pipeline) Context() *artist.PipelineContext { return p.ctx }
