package opengl

import (
	"github.com/gogpu/artist"
	"github.com/gogpu/artist/component"
)

// API identifies this adapter in the component registry.
const API = artist.API("opengl")

// NewComponentSet assembles a complete component set over the given function
// table. Passing a fake table is the intended way to test against this
// adapter without a GL context.
func NewComponentSet(gl Functions) *component.Set {
	return &component.Set{
		ShaderReader:      shaderReader{},
		ShaderLoader:      shaderLoader{gl: gl},
		ShaderFreer:       shaderFreer{gl: gl},
		ShaderAttacher:    shaderAttacher{gl: gl},
		UniformReader:     uniformReader{gl: gl},
		AttributeReader:   attributeReader{gl: gl},
		PassFreer:         passFreer{gl: gl},
		PassUser:          passUser{gl: gl},
		UniformSetter:     uniformSetter{gl: gl},
		AttributeBinder:   attributeBinder{gl: gl},
		AttributeSetter:   attributeSetter{gl: gl},
		AttributeUnbinder: attributeUnbinder{gl: gl},
		PipelineUser:      pipelineUser{gl: gl},
		PipelineResetter:  pipelineResetter{gl: gl},
	}
}

func init() {
	component.MustRegister(API, artist.ProfileClassic, NewComponentSet(Native()))
}
