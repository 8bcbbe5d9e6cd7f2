package graphics

import _ "embed"

// Object shader sources used when no shader paths are configured.
var (
	//go:embed shaders/object.vert
	DefaultVertexShader string

	//go:embed shaders/object.frag
	DefaultFragmentShader string
)
