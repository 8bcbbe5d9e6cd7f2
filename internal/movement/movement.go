// Package movement couples per-frame key polling to camera motion.
package movement

import (
	"time"

	"mini-engine/internal/camera"
	"mini-engine/internal/input"
)

// Clock is the time source sampled once per Update.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// KeySource answers whether a logical action is currently held.
type KeySource interface {
	IsActive(action input.Action) bool
}

// Keyboard receives the held directions for one frame.
type Keyboard interface {
	ProcessKeyboard(held []camera.Direction, dt float32)
}

// Binding maps a polled action to a camera direction.
type Binding struct {
	Action    input.Action
	Direction camera.Direction
}

// DefaultBindings polls the six movement actions.
var DefaultBindings = []Binding{
	{input.ActionMoveForward, camera.Forward},
	{input.ActionMoveBackward, camera.Backward},
	{input.ActionMoveLeft, camera.Left},
	{input.ActionMoveRight, camera.Right},
	{input.ActionMoveUp, camera.Up},
	{input.ActionMoveDown, camera.Down},
}

// Updater is the single per-frame entry point from input to camera. The
// time of construction is the reference for the first delta.
type Updater struct {
	keys     KeySource
	target   Keyboard
	clock    Clock
	bindings []Binding

	lastTime time.Time
	running  bool
	held     []camera.Direction
}

type Option func(*Updater)

// WithClock replaces the system clock.
func WithClock(c Clock) Option { return func(u *Updater) { u.clock = c } }

// WithBindings replaces DefaultBindings.
func WithBindings(b []Binding) Option { return func(u *Updater) { u.bindings = b } }

func New(keys KeySource, target Keyboard, opts ...Option) *Updater {
	u := &Updater{
		keys:     keys,
		target:   target,
		clock:    SystemClock{},
		bindings: DefaultBindings,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.lastTime = u.clock.Now()
	u.held = make([]camera.Direction, 0, len(u.bindings))
	return u
}

// Update samples the clock, polls every bound action and forwards the
// held directions with the elapsed seconds. It returns that delta.
func (u *Updater) Update() float32 {
	now := u.clock.Now()
	dt := float32(now.Sub(u.lastTime).Seconds())
	u.lastTime = now
	u.running = true

	u.held = u.held[:0]
	for _, b := range u.bindings {
		if u.keys.IsActive(b.Action) {
			u.held = append(u.held, b.Direction)
		}
	}

	u.target.ProcessKeyboard(u.held, dt)
	return dt
}

// Running reports whether Update has been called at least once.
func (u *Updater) Running() bool { return u.running }
