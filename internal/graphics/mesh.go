package graphics

import (
	"fmt"

	"mini-engine/internal/shapes"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is an opaque handle to uploaded vertex data. It is immutable once
// created; the uploader that produced it owns the GPU buffers.
type Mesh struct {
	VAO         uint32
	VertexCount int32
}

// Valid reports whether the handle can be drawn.
func (m Mesh) Valid() bool {
	return m.VAO != 0 && m.VertexCount > 0
}

// MeshUploader turns shape tables into vertex arrays: attribute 0 holds
// positions, 1 colors and 2 texture coordinates when present.
type MeshUploader struct {
	buffers map[uint32][]uint32
}

func NewMeshUploader() *MeshUploader {
	return &MeshUploader{buffers: make(map[uint32][]uint32)}
}

// UploadMesh creates a VAO for the shape.
func (u *MeshUploader) UploadMesh(data shapes.Data) (Mesh, error) {
	if err := data.Validate(); err != nil {
		return Mesh{}, fmt.Errorf("upload mesh: %w", err)
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	vbos := []uint32{
		uploadAttribute(0, 3, data.Vertices),
		uploadAttribute(1, 3, data.Colors),
	}
	if data.Textured() {
		vbos = append(vbos, uploadAttribute(2, 2, data.TexCoords))
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	u.buffers[vao] = vbos
	return Mesh{VAO: vao, VertexCount: int32(data.Count)}, nil
}

func uploadAttribute(index uint32, size int32, values []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(values)*4, gl.Ptr(values), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, size*4, 0)
	gl.EnableVertexAttribArray(index)
	return vbo
}

// Dispose deletes every vertex array and buffer created by this uploader.
func (u *MeshUploader) Dispose() {
	for vao, vbos := range u.buffers {
		gl.DeleteBuffers(int32(len(vbos)), &vbos[0])
		gl.DeleteVertexArrays(1, &vao)
		delete(u.buffers, vao)
	}
}
