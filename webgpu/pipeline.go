package webgpu

import (
	"fmt"

	"github.com/gogpu/artist"
)

// pipelineUser activates the current pass's render pipeline.
type pipelineUser struct {
	driver Driver
}

func (u pipelineUser) Use(ctx *artist.PipelineContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	pass, err := ctx.CurrentPass()
	if err != nil {
		return err
	}
	if pass.Program() == 0 {
		return fmt.Errorf("%w: current pass has no render pipeline", artist.ErrNonValidContext)
	}
	return u.driver.SetPipeline(pass.Program())
}

// pipelineResetter returns the cursor to the sentinel and clears the active
// render pipeline.
type pipelineResetter struct {
	driver Driver
}

func (r pipelineResetter) Reset(ctx *artist.PipelineContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	if err := ctx.SetCurrent(artist.NoPass); err != nil {
		return err
	}
	r.driver.ClearPipeline()
	return nil
}
