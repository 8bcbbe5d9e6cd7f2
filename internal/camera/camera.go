// Package camera implements a first-person yaw/pitch camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a movement request along the camera basis.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultAspectRatio = 4.0 / 3.0

	DefaultFOV  = 45.0
	DefaultNear = 0.1
	DefaultFar  = 100.0

	// MaxPitch keeps the front vector away from world up.
	MaxPitch = 89.0
)

// Camera owns orientation, position and the derived front/right/up basis.
// The basis is rebuilt every time yaw or pitch changes.
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3

	yaw   float32
	pitch float32

	speed       float32
	sensitivity float32

	aspectRatio float32

	lastX, lastY float64
	firstMouse   bool
}

// Option configures a Camera at construction.
type Option func(*Camera)

func WithPosition(p mgl32.Vec3) Option { return func(c *Camera) { c.position = p } }
func WithWorldUp(up mgl32.Vec3) Option { return func(c *Camera) { c.worldUp = up.Normalize() } }
func WithYaw(deg float32) Option       { return func(c *Camera) { c.yaw = deg } }
func WithPitch(deg float32) Option     { return func(c *Camera) { c.pitch = clampPitch(deg) } }

// WithSpeed sets movement speed in world units per second.
func WithSpeed(s float32) Option {
	return func(c *Camera) {
		if s > 0 {
			c.speed = s
		}
	}
}

// WithSensitivity sets degrees of rotation per cursor pixel.
func WithSensitivity(s float32) Option {
	return func(c *Camera) {
		if s > 0 {
			c.sensitivity = s
		}
	}
}

// New creates a camera at (0,0,3) looking down -Z unless overridden.
func New(opts ...Option) *Camera {
	c := &Camera{
		position:    mgl32.Vec3{0, 0, 3},
		worldUp:     mgl32.Vec3{0, 1, 0},
		right:       mgl32.Vec3{1, 0, 0},
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		speed:       DefaultSpeed,
		sensitivity: DefaultSensitivity,
		aspectRatio: DefaultAspectRatio,
		firstMouse:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.updateVectors()
	return c
}

func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, -MaxPitch, MaxPitch)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()

	right := front.Cross(c.worldUp)
	// Looking straight along world up (unconstrained pitch): keep the last
	// right vector, it is still perpendicular to front.
	if right.Len() < 1e-6 {
		right = c.right
	}
	right = right.Normalize()

	c.front = front
	c.right = right
	c.up = right.Cross(front)
}

func (c *Camera) move(dir mgl32.Vec3, velocity float32) {
	c.position = c.position.Add(dir.Mul(velocity))
}

// ProcessKeyboard moves the camera for every held direction. Calls with a
// non-positive or non-finite dt are ignored.
func (c *Camera) ProcessKeyboard(held []Direction, dt float32) {
	d := float64(dt)
	if dt <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return
	}

	velocity := c.speed * dt
	for _, dir := range held {
		switch dir {
		case Forward:
			c.move(c.front, velocity)
		case Backward:
			c.move(c.front, -velocity)
		case Left:
			c.move(c.right, -velocity)
		case Right:
			c.move(c.right, velocity)
		case Up:
			c.move(c.up, velocity)
		case Down:
			c.move(c.up, -velocity)
		}
	}
}

// ProcessMouseMovement turns the camera by cursor deltas scaled by sensitivity.
func (c *Camera) ProcessMouseMovement(dx, dy float32, constrainPitch bool) {
	c.yaw += dx * c.sensitivity
	c.pitch += dy * c.sensitivity

	if constrainPitch {
		c.pitch = clampPitch(c.pitch)
	}

	c.updateVectors()
}

// MouseMoved feeds an absolute cursor position. The first sample after
// construction or ResetMouse only records the position.
func (c *Camera) MouseMoved(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
	}

	xoffset := xpos - c.lastX
	yoffset := c.lastY - ypos // screen y grows downwards
	c.lastX = xpos
	c.lastY = ypos

	c.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)
}

// ResetMouse re-arms the first-sample guard, e.g. after the cursor is recaptured.
func (c *Camera) ResetMouse() {
	c.firstMouse = true
}

// SetAspectRatio ignores non-positive and non-finite ratios.
func (c *Camera) SetAspectRatio(ratio float32) {
	r := float64(ratio)
	if ratio <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return
	}
	c.aspectRatio = ratio
}

func (c *Camera) AspectRatio() float32 { return c.aspectRatio }

func (c *Camera) Position() mgl32.Vec3 { return c.position }

func (c *Camera) SetPosition(p mgl32.Vec3) { c.position = p }

func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Right() mgl32.Vec3 { return c.right }
func (c *Camera) Up() mgl32.Vec3    { return c.up }

func (c *Camera) Yaw() float32   { return c.yaw }
func (c *Camera) Pitch() float32 { return c.pitch }

func (c *Camera) Speed() float32       { return c.speed }
func (c *Camera) Sensitivity() float32 { return c.sensitivity }

// ViewMatrix looks from the camera position along front.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix builds a perspective projection; fov is in degrees.
func (c *Camera) ProjectionMatrix(fov, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fov), c.aspectRatio, near, far)
}

// DefaultProjection uses a 45 degree fov with planes at 0.1 and 100.
func (c *Camera) DefaultProjection() mgl32.Mat4 {
	return c.ProjectionMatrix(DefaultFOV, DefaultNear, DefaultFar)
}
