package scene

import (
	"errors"
	"sync/atomic"
	"unsafe"

	"mini-engine/internal/graphics"
	"mini-engine/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeShader struct {
	uses     int
	matrices map[string]mgl32.Mat4
	ints     map[string]int32
	bools    map[string]bool
}

func newFakeShader() *fakeShader {
	return &fakeShader{
		matrices: make(map[string]mgl32.Mat4),
		ints:     make(map[string]int32),
		bools:    make(map[string]bool),
	}
}

func (s *fakeShader) Use() { s.uses++ }

func (s *fakeShader) SetMatrix4(name string, value *float32) {
	var m mgl32.Mat4
	copy(m[:], unsafe.Slice(value, 16))
	s.matrices[name] = m
}

func (s *fakeShader) SetVector3(string, float32, float32, float32) {}

func (s *fakeShader) SetInt(name string, value int32) { s.ints[name] = value }

func (s *fakeShader) SetBool(name string, value bool) { s.bools[name] = value }

type fakeTexture struct {
	units []uint32
}

func (t *fakeTexture) Bind(unit uint32) { t.units = append(t.units, unit) }

type drawCall struct {
	vao   uint32
	count int32
}

type recordingPipeline struct {
	bound uint32
	draws []drawCall
}

func (p *recordingPipeline) BindVertexArray(vao uint32) { p.bound = vao }

func (p *recordingPipeline) DrawTriangles(count int32) {
	p.draws = append(p.draws, drawCall{vao: p.bound, count: count})
}

type fakeMeshes struct {
	next uint32
	fail error
}

func (f *fakeMeshes) UploadMesh(data shapes.Data) (graphics.Mesh, error) {
	if f.fail != nil {
		return graphics.Mesh{}, f.fail
	}
	if err := data.Validate(); err != nil {
		return graphics.Mesh{}, err
	}
	f.next++
	return graphics.Mesh{VAO: f.next, VertexCount: int32(data.Count)}, nil
}

var errUpload = errors.New("upload failed")

// nopShader and countingPipeline hold no unguarded state, so they are safe
// to share between goroutines.
type nopShader struct{}

func (nopShader) Use()                                         {}
func (nopShader) SetMatrix4(string, *float32)                  {}
func (nopShader) SetVector3(string, float32, float32, float32) {}
func (nopShader) SetInt(string, int32)                         {}
func (nopShader) SetBool(string, bool)                         {}

type countingPipeline struct {
	draws atomic.Int64
}

func (p *countingPipeline) BindVertexArray(uint32) {}

func (p *countingPipeline) DrawTriangles(int32) { p.draws.Add(1) }
