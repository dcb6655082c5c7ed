package component

import (
	"fmt"
	"strings"

	"github.com/gogpu/artist"
)

// The Validator is a structural predicate over a Set: for each entity kind it
// checks that every role the kind requires has an implementation. The role
// lists mirror the lifecycle of each entity; interface satisfaction already
// guarantees the single entry point accepts the right context kind, so
// presence is the whole check.

type roleCheck struct {
	role    string
	present func(*Set) bool
}

var shaderRoles = []roleCheck{
	{"ShaderReader", func(s *Set) bool { return s.ShaderReader != nil }},
	{"ShaderLoader", func(s *Set) bool { return s.ShaderLoader != nil }},
	{"ShaderFreer", func(s *Set) bool { return s.ShaderFreer != nil }},
}

var passRoles = []roleCheck{
	{"ShaderAttacher", func(s *Set) bool { return s.ShaderAttacher != nil }},
	{"UniformReader", func(s *Set) bool { return s.UniformReader != nil }},
	{"AttributeReader", func(s *Set) bool { return s.AttributeReader != nil }},
	{"PassFreer", func(s *Set) bool { return s.PassFreer != nil }},
	{"PassUser", func(s *Set) bool { return s.PassUser != nil }},
}

var uniformRoles = []roleCheck{
	{"UniformSetter", func(s *Set) bool { return s.UniformSetter != nil }},
}

var attributeRoles = []roleCheck{
	{"AttributeBinder", func(s *Set) bool { return s.AttributeBinder != nil }},
	{"AttributeSetter", func(s *Set) bool { return s.AttributeSetter != nil }},
	{"AttributeUnbinder", func(s *Set) bool { return s.AttributeUnbinder != nil }},
}

var pipelineRoles = []roleCheck{
	{"PipelineUser", func(s *Set) bool { return s.PipelineUser != nil }},
	{"PipelineResetter", func(s *Set) bool { return s.PipelineResetter != nil }},
}

func validateRoles(s *Set, kind string, roles []roleCheck) error {
	if s == nil {
		return fmt.Errorf("%w: nil component set", artist.ErrConfiguration)
	}
	var missing []string
	for _, r := range roles {
		if !r.present(s) {
			missing = append(missing, r.role)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s requires %s", artist.ErrConfiguration,
			kind, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateShader checks the roles required by the Shader entity.
func ValidateShader(s *Set) error { return validateRoles(s, "shader", shaderRoles) }

// ValidatePass checks the roles required by the Pass entity.
func ValidatePass(s *Set) error { return validateRoles(s, "pass", passRoles) }

// ValidateUniform checks the roles required by the Uniform entity.
func ValidateUniform(s *Set) error { return validateRoles(s, "uniform", uniformRoles) }

// ValidateAttribute checks the roles required by the Attribute entity.
func ValidateAttribute(s *Set) error { return validateRoles(s, "attribute", attributeRoles) }

// ValidatePipeline checks the roles required by the Pipeline entity.
func ValidatePipeline(s *Set) error { return validateRoles(s, "pipeline", pipelineRoles) }

// Validate checks every role required by every entity kind. Register runs
// this before accepting a Set, so an incomplete pair is rejected before any
// entity of that configuration can exist.
func Validate(s *Set) error {
	for _, check := range []func(*Set) error{
		ValidateShader, ValidatePass, ValidateUniform, ValidateAttribute, ValidatePipeline,
	} {
		if err := check(s); err != nil {
			return err
		}
	}
	return nil
}
