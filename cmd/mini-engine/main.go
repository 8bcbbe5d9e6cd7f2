package main

import (
	"fmt"
	"runtime"
	"time"

	"mini-engine/internal/camera"
	"mini-engine/internal/config"
	"mini-engine/internal/engine"
	"mini-engine/internal/graphics"
	"mini-engine/internal/input"
	"mini-engine/internal/logger"
	"mini-engine/internal/movement"
	"mini-engine/internal/profiling"
	"mini-engine/internal/scene"
	"mini-engine/internal/window"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		closer.Fatalln("config:", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		closer.Fatalln("logger:", err)
	}
	closer.Bind(logger.Sync)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			closer.Fatalln("save config:", err)
		}
		logger.Info("config saved", zap.String("path", config.DefaultPath()))
	}

	if err := run(cfg); err != nil {
		logger.Error("engine stopped", zap.Error(err))
		closer.Fatalln(err)
	}
}

func run(cfg *config.Config) error {
	win, err := window.Open(cfg.Window, cfg.Render.ClearColor)
	if err != nil {
		return err
	}
	defer win.Destroy()
	logger.Info("window opened",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Bool("fullscreen", cfg.Window.Fullscreen))

	shader, err := loadShader(cfg.Render)
	if err != nil {
		return err
	}
	defer shader.Delete()

	meshes := graphics.NewMeshUploader()
	defer meshes.Dispose()
	textures := graphics.NewTextureCache()
	defer textures.Dispose()

	cam := camera.New(
		camera.WithPosition(mgl32.Vec3(cfg.Camera.Position)),
		camera.WithYaw(cfg.Camera.Yaw),
		camera.WithPitch(cfg.Camera.Pitch),
		camera.WithSpeed(cfg.Camera.Speed),
		camera.WithSensitivity(cfg.Camera.Sensitivity),
	)

	keys := input.NewManager()
	if err := keys.ApplyBindings(cfg.Input.Bindings); err != nil {
		return fmt.Errorf("input bindings: %w", err)
	}
	if err := keys.TrackNames(cfg.Input.Tracked); err != nil {
		return fmt.Errorf("input tracked: %w", err)
	}
	logger.Debug("input ready", zap.Stringers("tracked", keys.Tracked()))
	win.Bind(&window.Context{Camera: cam, Input: keys})

	objects := scene.NewManager(meshes, cfg.Render.MaxObjects)

	var tex graphics.Binder
	if cfg.Scene.Texture != "" {
		t, err := textures.Get(cfg.Scene.Texture)
		if err != nil {
			return err
		}
		tex = t
		logger.Debug("texture loaded", zap.String("path", cfg.Scene.Texture), zap.Int("width", t.Width), zap.Int("height", t.Height))
	}

	stop := profiling.Track("demo.Build")
	if err := buildDemo(objects, shader, tex, cfg.Scene); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	stop()
	logger.Info("scene built", zap.Int("objects", objects.Len()), zap.String("took", profiling.TopN(1)))

	if cfg.Window.VSync && cfg.Window.FPSLimit > 0 {
		logger.Warn("fps_limit set with vsync on; the display rate caps it first", zap.Int("fps_limit", cfg.Window.FPSLimit))
	}
	config.SetFPSLimit(cfg.Window.FPSLimit)
	e := engine.New(win, movement.New(keys, cam), cam, objects,
		engine.WithLogger(logger.Named("engine")),
		engine.WithProjection(engine.Projection{FOV: cfg.Camera.FOV, Near: cfg.Camera.Near, Far: cfg.Camera.Far}),
		engine.WithProfiler(profiling.Default()),
		engine.WithFPSLimit(config.GetFPSLimit),
		engine.WithSlowFrame(time.Duration(cfg.Render.SlowFrame)*time.Millisecond),
	)
	e.AddShader(shader)
	e.OnFrame(objects.RunAll)

	e.Run()
	logger.Info("shutting down", zap.Int("frames", e.Frames()))
	return nil
}

func loadShader(cfg config.RenderConfig) (*graphics.Shader, error) {
	if cfg.VertexShader == "" {
		return graphics.NewDefaultShader()
	}
	return graphics.NewShader(cfg.VertexShader, cfg.FragmentShader)
}
