// Command triangle draws a single uncapped triangle and logs the frame rate
// once a second. It is the smallest program that exercises the whole frame
// loop.
package main

import (
	"runtime"

	"mini-engine/internal/camera"
	"mini-engine/internal/config"
	"mini-engine/internal/engine"
	"mini-engine/internal/graphics"
	"mini-engine/internal/input"
	"mini-engine/internal/logger"
	"mini-engine/internal/movement"
	"mini-engine/internal/scene"
	"mini-engine/internal/shapes"
	"mini-engine/internal/window"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	if err := logger.Init("debug", ""); err != nil {
		closer.Fatalln(err)
	}
	closer.Bind(logger.Sync)

	cfg := config.Default()
	cfg.Window.Title = "mini-engine - single triangle"
	cfg.Window.VSync = false

	win, err := window.Open(cfg.Window, cfg.Render.ClearColor)
	if err != nil {
		closer.Fatalln(err)
	}
	defer win.Destroy()

	shader, err := graphics.NewDefaultShader()
	if err != nil {
		closer.Fatalln(err)
	}
	defer shader.Delete()

	meshes := graphics.NewMeshUploader()
	defer meshes.Dispose()

	objects := scene.NewManager(meshes, 1)
	one := mgl32.Vec3{1, 1, 1}
	if _, err := objects.Spawn(shader, shapes.Triangle(), one, mgl32.Vec3{}, mgl32.Vec3{}); err != nil {
		closer.Fatalln(err)
	}

	cam := camera.New()
	keys := input.NewManager()
	win.Bind(&window.Context{Camera: cam, Input: keys})

	e := engine.New(win, movement.New(keys, cam), cam, objects,
		engine.WithLogger(logger.Named("triangle")))
	e.AddShader(shader)
	e.Run()

	logger.Info("done", zap.Int("frames", e.Frames()))
}
