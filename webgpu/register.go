package webgpu

import (
	"github.com/gogpu/artist"
	"github.com/gogpu/artist/component"
)

// API identifies this adapter in the component registry.
const API = artist.API("webgpu")

// NewComponentSet assembles a complete component set over the given driver.
// Passing a fake driver is the intended way to test against this adapter
// without a GPU.
func NewComponentSet(driver Driver) *component.Set {
	return &component.Set{
		ShaderReader:      shaderReader{},
		ShaderLoader:      shaderLoader{driver: driver},
		ShaderFreer:       shaderFreer{driver: driver},
		ShaderAttacher:    shaderAttacher{driver: driver},
		UniformReader:     uniformReader{},
		AttributeReader:   attributeReader{},
		PassFreer:         passFreer{driver: driver},
		PassUser:          passUser{driver: driver},
		UniformSetter:     uniformSetter{driver: driver},
		AttributeBinder:   attributeBinder{driver: driver},
		AttributeSetter:   attributeSetter{driver: driver},
		AttributeUnbinder: attributeUnbinder{driver: driver},
		PipelineUser:      pipelineUser{driver: driver},
		PipelineResetter:  pipelineResetter{driver: driver},
	}
}

func init() {
	component.MustRegister(API, artist.ProfileClassic, NewComponentSet(newNativeDriver()))
}
