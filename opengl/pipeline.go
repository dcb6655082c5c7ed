package opengl

import (
	"fmt"

	"github.com/gogpu/artist"
)

// pipelineUser activates the current pass's program.
type pipelineUser struct {
	gl Functions
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
		return fmt.Errorf("%w: current pass has no linked program", artist.ErrNonValidContext)
	}
	u.gl.UseProgram(pass.Program())
	return nil
}

// pipelineResetter returns the cursor to the sentinel and deactivates the
// program so no pass is logically or natively active.
type pipelineResetter struct {
	gl Functions
}

func (r pipelineResetter) Reset(ctx *artist.PipelineContext) error {
	if ctx == nil {
		return artist.ErrNonValidContext
	}
	if err := ctx.SetCurrent(artist.NoPass); err != nil {
		return err
	}
	r.gl.UseProgram(0)
	return nil
}
