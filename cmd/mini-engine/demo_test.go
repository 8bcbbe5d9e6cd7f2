package main

import (
	"testing"

	"mini-engine/internal/config"
	"mini-engine/internal/graphics"
	"mini-engine/internal/scene"
	"mini-engine/internal/shapes"
)

type stubShader struct{}

func (stubShader) Use()                                         {}
func (stubShader) SetMatrix4(string, *float32)                  {}
func (stubShader) SetVector3(string, float32, float32, float32) {}
func (stubShader) SetInt(string, int32)                         {}
func (stubShader) SetBool(string, bool)                         {}

type stubTexture struct{}

func (stubTexture) Bind(uint32) {}

type countingMeshes struct {
	uploads int
}

func (c *countingMeshes) UploadMesh(data shapes.Data) (graphics.Mesh, error) {
	c.uploads++
	return graphics.Mesh{VAO: uint32(c.uploads), VertexCount: int32(data.Count)}, nil
}

func TestBuildDemo(t *testing.T) {
	meshes := &countingMeshes{}
	m := scene.NewManager(meshes, 0)

	cfg := config.Default().Scene
	cfg.Grid = 3
	cfg.Sphere = true

	if err := buildDemo(m, stubShader{}, stubTexture{}, cfg); err != nil {
		t.Fatalf("buildDemo: %v", err)
	}
	if m.Len() != 10 {
		t.Errorf("Len = %d, want 9 grid objects plus a sphere", m.Len())
	}
	for i, obj := range m.Objects() {
		if obj.Texture() == nil {
			t.Errorf("object %d has no texture", i)
		}
	}
}

func TestBuildDemoUnknownShape(t *testing.T) {
	cfg := config.Default().Scene
	cfg.Shape = "torus"
	if err := buildDemo(scene.NewManager(&countingMeshes{}, 0), stubShader{}, nil, cfg); err == nil {
		t.Error("expected an error for an unknown shape")
	}
}

func TestSpinSystem(t *testing.T) {
	m := scene.NewManager(&countingMeshes{}, 0)
	cfg := config.Default().Scene
	cfg.Grid = 1
	cfg.Sphere = false
	cfg.SpinSpeed = 90
	if err := buildDemo(m, stubShader{}, nil, cfg); err != nil {
		t.Fatal(err)
	}

	obj := m.MustGet(0)
	if !obj.HasSystem(SpinSystem) {
		t.Fatal("demo object has no spin system")
	}
	before := obj.Rotation().Y()
	m.RunAll(0.5)
	if got := obj.Rotation().Y() - before; got != 45 {
		t.Errorf("rotated %v degrees, want 45", got)
	}
}

func TestNoSpinWhenSpeedZero(t *testing.T) {
	m := scene.NewManager(&countingMeshes{}, 0)
	cfg := config.Default().Scene
	cfg.Grid = 2
	cfg.SpinSpeed = 0
	if err := buildDemo(m, stubShader{}, nil, cfg); err != nil {
		t.Fatal(err)
	}
	for i, obj := range m.Objects() {
		if obj.HasSystem(SpinSystem) {
			t.Errorf("object %d spins with speed 0", i)
		}
	}
}
