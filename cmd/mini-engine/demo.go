package main

import (
	"fmt"

	"mini-engine/internal/config"
	"mini-engine/internal/graphics"
	"mini-engine/internal/scene"
	"mini-engine/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

// SpinSystem is the name of the rotation system attached to demo objects.
const SpinSystem = "spin"

// buildDemo fills m with a grid of cfg.Shape centered on the origin in the
// XZ plane, one unit below the camera, plus an optional sphere above it.
// Every object spins at cfg.SpinSpeed when it is not zero. tex may be nil.
func buildDemo(m *scene.Manager, shader graphics.Uniforms, tex graphics.Binder, cfg config.SceneConfig) error {
	shape, ok := shapes.ByName(cfg.Shape)
	if !ok {
		return fmt.Errorf("unknown scene shape %q", cfg.Shape)
	}

	one := mgl32.Vec3{1, 1, 1}
	offset := float32(cfg.Grid-1) * cfg.Spacing / 2

	for x := 0; x < cfg.Grid; x++ {
		for z := 0; z < cfg.Grid; z++ {
			pos := mgl32.Vec3{
				float32(x)*cfg.Spacing - offset,
				-1,
				float32(z)*cfg.Spacing - offset - cfg.Spacing*float32(cfg.Grid),
			}
			rot := mgl32.Vec3{0, float32((x + z) * 15), 0}
			i, err := m.Spawn(shader, shape, one, pos, rot)
			if err != nil {
				return err
			}
			decorate(m.MustGet(i), tex, cfg.SpinSpeed)
		}
	}

	if cfg.Sphere {
		pos := mgl32.Vec3{0, 1.5, -cfg.Spacing * float32(cfg.Grid)}
		i, err := m.Spawn(shader, shapes.Sphere(24, 32), mgl32.Vec3{1.5, 1.5, 1.5}, pos, mgl32.Vec3{})
		if err != nil {
			return err
		}
		decorate(m.MustGet(i), tex, cfg.SpinSpeed)
	}
	return nil
}

func decorate(obj *scene.Object, tex graphics.Binder, spinSpeed float32) {
	if tex != nil {
		obj.SetTexture(tex)
	}
	if spinSpeed != 0 {
		obj.AddSystem(SpinSystem, spin(spinSpeed))
	}
}

// spin turns an object around Y at degreesPerSecond.
func spin(degreesPerSecond float32) scene.System {
	return func(obj *scene.Object, dt float32) {
		obj.AddRotation(0, degreesPerSecond*dt, 0)
	}
}
