package webgpu

import "strings"

// WGSL source scanning. WebGPU exposes no reflection over a created module,
// so uniform and vertex-input discovery reads the declarations straight out
// of the source text: var<uniform> bindings for uniforms and the @location
// parameters of the @vertex entry point for attributes.

// Adapter-specific type tags for reflected WGSL declarations.
const (
	wgslTagUnknown uint32 = iota
	wgslTagF32
	wgslTagI32
	wgslTagU32
	wgslTagVec2
	wgslTagVec3
	wgslTagVec4
	wgslTagMat2
	wgslTagMat3
	wgslTagMat4
)

func wgslTypeTag(typ string) uint32 {
	switch {
	case typ == "f32":
		return wgslTagF32
	case typ == "i32":
		return wgslTagI32
	case typ == "u32":
		return wgslTagU32
	case strings.HasPrefix(typ, "vec2"):
		return wgslTagVec2
	case strings.HasPrefix(typ, "vec3"):
		return wgslTagVec3
	case strings.HasPrefix(typ, "vec4"):
		return wgslTagVec4
	case strings.HasPrefix(typ, "mat2x2"):
		return wgslTagMat2
	case strings.HasPrefix(typ, "mat3x3"):
		return wgslTagMat3
	case strings.HasPrefix(typ, "mat4x4"):
		return wgslTagMat4
	default:
		return wgslTagUnknown
	}
}

type wgslUniform struct {
	name    string
	binding int32
	typ     string
}

type wgslInput struct {
	name     string
	location int32
	typ      string
}

// attrValue extracts the integer argument of an attribute like
// "@binding(2)" from s. The second result is false when the attribute is
// absent or malformed.
func attrValue(s, attr string) (int32, bool) {
	i := strings.Index(s, attr)
	if i < 0 {
		return 0, false
	}
	rest := s[i+len(attr):]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return 0, false
	}
	var n int32
	for _, r := range strings.TrimSpace(rest[:end]) {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int32(r-'0')
	}
	return n, true
}

// splitDecl splits "name: type" into its parts, trimming a trailing
// semicolon or comma.
func splitDecl(s string) (string, string, bool) {
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return "", "", false
	}
	name := strings.TrimSpace(s[:colon])
	typ := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s[colon+1:]), ";,"))
	if name == "" || typ == "" {
		return "", "", false
	}
	return name, typ, true
}

// scanUniforms collects the module-scope var<uniform> declarations in
// source, in declaration order.
func scanUniforms(source string) []wgslUniform {
	var uniforms []wgslUniform
	for _, line := range strings.Split(source, "\n") {
		i := strings.Index(line, "var<uniform>")
		if i < 0 {
			continue
		}
		binding, ok := attrValue(line, "@binding(")
		if !ok {
			continue
		}
		name, typ, ok := splitDecl(line[i+len("var<uniform>"):])
		if !ok {
			continue
		}
		uniforms = append(uniforms, wgslUniform{name: name, binding: binding, typ: typ})
	}
	return uniforms
}

// scanVertexInputs collects the @location inputs of the @vertex entry point:
// both direct parameters and the fields of a parameter struct. @builtin
// parameters carry no vertex data and are skipped.
func scanVertexInputs(source string) []wgslInput {
	params, ok := vertexParams(source)
	if !ok {
		return nil
	}

	var inputs []wgslInput
	for _, param := range params {
		if strings.Contains(param, "@builtin") {
			continue
		}
		if location, ok := attrValue(param, "@location("); ok {
			decl := param[strings.LastIndexByte(param, ')')+1:]
			if name, typ, ok := splitDecl(decl); ok {
				inputs = append(inputs, wgslInput{name: name, location: location, typ: typ})
			}
			continue
		}
		// A bare "name: StructType" parameter: scan the struct's fields.
		if _, typ, ok := splitDecl(param); ok {
			inputs = append(inputs, structInputs(source, typ)...)
		}
	}
	return inputs
}

// vertexParams returns the raw parameter declarations of the @vertex
// function. Attribute arguments like @location(0) nest parentheses inside
// the list, so the closing paren is matched by depth, and only top-level
// commas split parameters.
func vertexParams(source string) ([]string, bool) {
	i := strings.Index(source, "@vertex")
	if i < 0 {
		return nil, false
	}
	rest := source[i:]
	fn := strings.Index(rest, "fn ")
	if fn < 0 {
		return nil, false
	}
	open := strings.IndexByte(rest[fn:], '(')
	if open < 0 {
		return nil, false
	}
	start := fn + open + 1

	var params []string
	depth := 1
	last := start
	for j := start; j < len(rest); j++ {
		switch rest[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				if p := strings.TrimSpace(rest[last:j]); p != "" {
					params = append(params, p)
				}
				if len(params) == 0 {
					return nil, false
				}
				return params, true
			}
		case ',':
			if depth == 1 {
				params = append(params, strings.TrimSpace(rest[last:j]))
				last = j + 1
			}
		}
	}
	return nil, false
}

// structInputs scans the named struct's @location fields.
func structInputs(source, name string) []wgslInput {
	i := strings.Index(source, "struct "+name)
	if i < 0 {
		return nil
	}
	rest := source[i:]
	open := strings.IndexByte(rest, '{')
	if open < 0 {
		return nil
	}
	closing := strings.IndexByte(rest[open:], '}')
	if closing < 0 {
		return nil
	}

	var inputs []wgslInput
	for _, line := range strings.Split(rest[open+1:open+closing], "\n") {
		if strings.Contains(line, "@builtin") {
			continue
		}
		location, ok := attrValue(line, "@location(")
		if !ok {
			continue
		}
		decl := line[strings.LastIndexByte(line, ')')+1:]
		if fieldName, typ, ok := splitDecl(decl); ok {
			inputs = append(inputs, wgslInput{name: fieldName, location: location, typ: typ})
		}
	}
	return inputs
}
