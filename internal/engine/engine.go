// Package engine runs the fixed-order frame loop.
package engine

import (
	"time"

	"mini-engine/internal/graphics"
	"mini-engine/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Uniform names for the camera matrices.
const (
	ViewUniform       = "view"
	ProjectionUniform = "projection"
)

// Surface is the window side of a frame.
type Surface interface {
	Clear()
	SwapBuffers()
	PollEvents()
	ShouldClose() bool
}

// Updater advances per-frame state and returns the elapsed seconds.
type Updater interface {
	Update() float32
}

// View supplies the camera matrices.
type View interface {
	ViewMatrix() mgl32.Mat4
	ProjectionMatrix(fov, near, far float32) mgl32.Mat4
}

// Scene draws everything it holds.
type Scene interface {
	RenderAll(p graphics.Pipeline) int
}

// Hook runs once per frame after movement and before rendering.
type Hook func(dt float32)

// Projection holds the perspective parameters; angles in degrees.
type Projection struct {
	FOV  float32
	Near float32
	Far  float32
}

func DefaultProjection() Projection {
	return Projection{FOV: 45, Near: 0.1, Far: 100}
}

// Engine owns the frame loop. It must run on the thread that owns the
// graphics context.
type Engine struct {
	surface  Surface
	movement Updater
	view     View
	scene    Scene
	pipeline graphics.Pipeline

	shaders    []graphics.Uniforms
	hooks      []Hook
	projection Projection

	limiter   *FPSLimiter
	profiler  *profiling.Frame
	log       *zap.Logger
	slowFrame time.Duration
	now       func() time.Time

	frames     int
	fpsFrames  int
	lastReport time.Time
	lastDraws  int
}

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option { return func(e *Engine) { e.log = l } }

func WithPipeline(p graphics.Pipeline) Option { return func(e *Engine) { e.pipeline = p } }

func WithProjection(p Projection) Option { return func(e *Engine) { e.projection = p } }

func WithProfiler(f *profiling.Frame) Option { return func(e *Engine) { e.profiler = f } }

// WithFPSLimit reads the frame cap each frame; 0 means uncapped.
func WithFPSLimit(limit func() int) Option {
	return func(e *Engine) { e.limiter = NewFPSLimiter(limit) }
}

// WithSlowFrame logs frames longer than d with their top profiling entries.
// Zero disables the warning.
func WithSlowFrame(d time.Duration) Option { return func(e *Engine) { e.slowFrame = d } }

// New builds an engine; nil collaborators are not allowed.
func New(surface Surface, movement Updater, view View, scene Scene, opts ...Option) *Engine {
	e := &Engine{
		surface:    surface,
		movement:   movement,
		view:       view,
		scene:      scene,
		pipeline:   graphics.GLPipeline{},
		projection: DefaultProjection(),
		limiter:    NewFPSLimiter(nil),
		profiler:   profiling.NewFrame(),
		log:        zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.lastReport = e.now()
	return e
}

// AddShader registers a program that receives the view and projection
// matrices every frame.
func (e *Engine) AddShader(s graphics.Uniforms) {
	e.shaders = append(e.shaders, s)
}

// OnFrame appends a hook. Hooks run in registration order.
func (e *Engine) OnFrame(h Hook) {
	e.hooks = append(e.hooks, h)
}

// Frames returns the number of completed iterations.
func (e *Engine) Frames() int { return e.frames }

// LastDraws returns the draw count of the most recent frame.
func (e *Engine) LastDraws() int { return e.lastDraws }

// Run iterates until the surface asks to close.
func (e *Engine) Run() {
	e.log.Info("frame loop started", zap.Int("shaders", len(e.shaders)), zap.Int("hooks", len(e.hooks)))
	for !e.surface.ShouldClose() {
		e.Step()
	}
	e.log.Info("frame loop stopped", zap.Int("frames", e.frames))
}

// Step runs exactly one frame.
func (e *Engine) Step() {
	e.profiler.Reset()
	start := e.now()

	func() { defer e.profiler.Track("surface.Clear")(); e.surface.Clear() }()

	var dt float32
	func() { defer e.profiler.Track("movement.Update")(); dt = e.movement.Update() }()

	func() {
		defer e.profiler.Track("engine.Hooks")()
		for _, h := range e.hooks {
			h(dt)
		}
	}()

	func() { defer e.profiler.Track("engine.Render")(); e.lastDraws = e.render() }()

	func() { defer e.profiler.Track("surface.SwapBuffers")(); e.surface.SwapBuffers() }()
	func() { defer e.profiler.Track("surface.PollEvents")(); e.surface.PollEvents() }()

	e.frames++
	e.report(start)

	e.limiter.Wait()
}

func (e *Engine) render() int {
	view := e.view.ViewMatrix()
	projection := e.view.ProjectionMatrix(e.projection.FOV, e.projection.Near, e.projection.Far)

	for _, s := range e.shaders {
		s.Use()
		s.SetMatrix4(ViewUniform, &view[0])
		s.SetMatrix4(ProjectionUniform, &projection[0])
	}
	return e.scene.RenderAll(e.pipeline)
}

func (e *Engine) report(start time.Time) {
	now := e.now()
	if e.slowFrame > 0 {
		if took := now.Sub(start); took > e.slowFrame {
			e.log.Warn("slow frame",
				zap.Duration("took", took),
				zap.Duration("tracked", e.profiler.Total()),
				zap.String("top", e.profiler.TopN(3)))
		}
	}

	e.fpsFrames++
	if elapsed := now.Sub(e.lastReport); elapsed >= time.Second {
		e.log.Debug("fps",
			zap.Float64("fps", float64(e.fpsFrames)/elapsed.Seconds()),
			zap.Int("draws", e.lastDraws))
		e.fpsFrames = 0
		e.lastReport = now
	}
}
