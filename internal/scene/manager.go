package scene

import (
	"errors"
	"fmt"
	"sync"

	"mini-engine/internal/graphics"
	"mini-engine/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrIndexOutOfRange = errors.New("object index out of range")
	ErrNilShader       = errors.New("object shader is nil")
	ErrInvalidMesh     = errors.New("object mesh is empty")
)

// DefaultCapacity is the number of object slots reserved up front so the
// render pass never sees the backing array reallocate.
const DefaultCapacity = 50000

// MeshProvider uploads shape tables and hands back drawable handles.
type MeshProvider interface {
	UploadMesh(data shapes.Data) (graphics.Mesh, error)
}

// Manager owns every scene object. Objects are addressed by their position
// in creation order; deleting an object shifts every later object down by
// one, so an index is only meaningful until the next Delete or Clear.
//
// The lock is the frame barrier: RenderAll holds it for reading for the
// whole pass and every lifecycle change takes it for writing.
type Manager struct {
	mu      sync.RWMutex
	objects []*Object
	meshes  MeshProvider
}

// NewManager reserves room for capacity objects. A capacity <= 0 falls back
// to DefaultCapacity. meshes may be nil if Spawn is never used.
func NewManager(meshes MeshProvider, capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{
		objects: make([]*Object, 0, capacity),
		meshes:  meshes,
	}
}

// Create appends an object starting from t and returns its index, which
// equals the object count before the call.
func (m *Manager) Create(shader graphics.Uniforms, mesh graphics.Mesh, t Transform) (int, error) {
	if err := checkObject(shader, mesh); err != nil {
		return -1, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.createLocked(shader, mesh, t), nil
}

func checkObject(shader graphics.Uniforms, mesh graphics.Mesh) error {
	if shader == nil {
		return ErrNilShader
	}
	if !mesh.Valid() {
		return fmt.Errorf("create object (vao %d, %d vertices): %w", mesh.VAO, mesh.VertexCount, ErrInvalidMesh)
	}
	return nil
}

// createLocked requires m.mu held for writing.
func (m *Manager) createLocked(shader graphics.Uniforms, mesh graphics.Mesh, t Transform) int {
	m.objects = append(m.objects, newObject(shader, mesh, t))
	return len(m.objects) - 1
}

// Spawn uploads the shape and creates the object with the given scale,
// position and rotation.
func (m *Manager) Spawn(shader graphics.Uniforms, shape shapes.Data, scale, position, rotation mgl32.Vec3) (int, error) {
	if shader == nil {
		return -1, fmt.Errorf("spawn object: %w", ErrNilShader)
	}
	if m.meshes == nil {
		return -1, errors.New("spawn object: manager has no mesh provider")
	}

	mesh, err := m.meshes.UploadMesh(shape)
	if err != nil {
		return -1, fmt.Errorf("spawn object: %w", err)
	}
	if err := checkObject(shader, mesh); err != nil {
		return -1, fmt.Errorf("spawn object: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.createLocked(shader, mesh, Transform{Position: position, Rotation: rotation, Scale: scale}), nil
}

// Get returns the object currently at index.
func (m *Manager) Get(index int) (*Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if index < 0 || index >= len(m.objects) {
		return nil, fmt.Errorf("get object %d of %d: %w", index, len(m.objects), ErrIndexOutOfRange)
	}
	return m.objects[index], nil
}

// MustGet is Get for callers that already know the index is valid. It
// panics otherwise.
func (m *Manager) MustGet(index int) *Object {
	obj, err := m.Get(index)
	if err != nil {
		panic(err)
	}
	return obj
}

// Delete removes the object at index. Every object after it moves down one
// slot. The mesh, shader and texture are left alone.
func (m *Manager) Delete(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.objects) {
		return fmt.Errorf("delete object %d of %d: %w", index, len(m.objects), ErrIndexOutOfRange)
	}

	copy(m.objects[index:], m.objects[index+1:])
	m.objects[len(m.objects)-1] = nil
	m.objects = m.objects[:len(m.objects)-1]
	return nil
}

// Clear removes every object and keeps the reserved capacity.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.objects)
	m.objects = m.objects[:0]
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

// Objects returns a copy of the current object list in storage order.
func (m *Manager) Objects() []*Object {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Object, len(m.objects))
	copy(out, m.objects)
	return out
}

// Each calls fn for every object in storage order. fn may mutate the
// object's transform but must not create, delete or clear.
func (m *Manager) Each(fn func(index int, obj *Object)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i, obj := range m.objects {
		fn(i, obj)
	}
}

// RenderAll draws every object in storage order and returns the number of
// draw calls issued.
func (m *Manager) RenderAll(p graphics.Pipeline) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, obj := range m.objects {
		obj.Render(p)
	}
	return len(m.objects)
}
