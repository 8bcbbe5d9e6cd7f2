package graphics

import "github.com/go-gl/gl/v4.1-core/gl"

// Pipeline is the current-binding context of a render pass. Every call
// replaces the previous binding; nothing is restored afterwards.
type Pipeline interface {
	BindVertexArray(vao uint32)
	DrawTriangles(count int32)
}

// GLPipeline forwards to the current OpenGL context.
type GLPipeline struct{}

func (GLPipeline) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (GLPipeline) DrawTriangles(count int32) {
	gl.DrawArrays(gl.TRIANGLES, 0, count)
}
