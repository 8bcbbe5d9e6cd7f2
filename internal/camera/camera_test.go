package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func assertOrthonormal(t *testing.T, c *Camera) {
	t.Helper()
	f, r, u := c.Front(), c.Right(), c.Up()

	for name, v := range map[string]mgl32.Vec3{"front": f, "right": r, "up": u} {
		if !near(v.Len(), 1) {
			t.Errorf("%s not unit length: %v (len %f)", name, v, v.Len())
		}
	}
	if !near(f.Dot(r), 0) || !near(f.Dot(u), 0) || !near(r.Dot(u), 0) {
		t.Errorf("basis not orthogonal: f·r=%f f·u=%f r·u=%f", f.Dot(r), f.Dot(u), r.Dot(u))
	}
	// right × front == up for a right-handed basis
	if !near(r.Cross(f).Dot(u), 1) {
		t.Errorf("basis not right-handed: (r×f)·u = %f", r.Cross(f).Dot(u))
	}
}

func TestDefaultCamera(t *testing.T) {
	c := New()

	if !c.Front().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps) {
		t.Errorf("Expected front (0,0,-1), got %v", c.Front())
	}
	if !c.Right().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("Expected right (1,0,0), got %v", c.Right())
	}
	if !c.Up().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, eps) {
		t.Errorf("Expected up (0,1,0), got %v", c.Up())
	}
	if c.Position() != (mgl32.Vec3{0, 0, 3}) {
		t.Errorf("Expected position (0,0,3), got %v", c.Position())
	}
	assertOrthonormal(t, c)
}

func TestProcessMouseMovementScalesBySensitivity(t *testing.T) {
	c := New()
	c.ProcessMouseMovement(90, 0, true)

	want := float32(-90 + 90*DefaultSensitivity)
	if !near(c.Yaw(), want) {
		t.Errorf("Expected yaw %f, got %f", want, c.Yaw())
	}
	if c.Pitch() != 0 {
		t.Errorf("Expected pitch unchanged, got %f", c.Pitch())
	}
	assertOrthonormal(t, c)
}

func TestBasisStaysOrthonormal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := New()
	for i := 0; i < 1000; i++ {
		dx := rng.Float32()*400 - 200
		dy := rng.Float32()*400 - 200
		c.ProcessMouseMovement(dx, dy, true)
		assertOrthonormal(t, c)
		if t.Failed() {
			t.Fatalf("failed after %d updates (yaw=%f pitch=%f)", i+1, c.Yaw(), c.Pitch())
		}
	}
}

func TestPitchClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := New()
	for i := 0; i < 500; i++ {
		c.ProcessMouseMovement(0, rng.Float32()*4000-2000, true)
		if c.Pitch() < -MaxPitch || c.Pitch() > MaxPitch {
			t.Fatalf("pitch %f escaped [-89, 89]", c.Pitch())
		}
	}

	c.ProcessMouseMovement(0, 1e6, true)
	if c.Pitch() != MaxPitch {
		t.Errorf("Expected pitch %f, got %f", float32(MaxPitch), c.Pitch())
	}
	c.ProcessMouseMovement(0, -1e6, true)
	if c.Pitch() != -MaxPitch {
		t.Errorf("Expected pitch %f, got %f", float32(-MaxPitch), c.Pitch())
	}
}

func TestPitchUnconstrained(t *testing.T) {
	c := New()
	c.ProcessMouseMovement(0, 1000, false)
	if !near(c.Pitch(), 100) {
		t.Errorf("Expected unconstrained pitch 100, got %f", c.Pitch())
	}
}

func TestProcessKeyboardIgnoresDegenerateDelta(t *testing.T) {
	all := []Direction{Forward, Left, Up}
	for _, dt := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))} {
		c := New()
		before := c.Position()
		c.ProcessKeyboard(all, dt)
		if c.Position() != before {
			t.Errorf("dt=%v moved camera from %v to %v", dt, before, c.Position())
		}
	}
}

func TestProcessKeyboardMovesAlongBasis(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, 3 - 2.5}},
		{Backward, mgl32.Vec3{0, 0, 3 + 2.5}},
		{Left, mgl32.Vec3{-2.5, 0, 3}},
		{Right, mgl32.Vec3{2.5, 0, 3}},
		{Up, mgl32.Vec3{0, 2.5, 3}},
		{Down, mgl32.Vec3{0, -2.5, 3}},
	}

	for _, tt := range tests {
		c := New()
		c.ProcessKeyboard([]Direction{tt.dir}, 1)
		if !c.Position().ApproxEqualThreshold(tt.want, eps) {
			t.Errorf("direction %d: expected %v, got %v", tt.dir, tt.want, c.Position())
		}
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	c := New()
	c.ProcessKeyboard([]Direction{Forward, Backward, Left, Right}, 0.5)
	if !c.Position().ApproxEqualThreshold(mgl32.Vec3{0, 0, 3}, eps) {
		t.Errorf("Expected no net movement, got %v", c.Position())
	}
}

func TestMouseMovedFirstSampleIsZero(t *testing.T) {
	c := New()
	c.MouseMoved(400, 300)
	if c.Yaw() != DefaultYaw || c.Pitch() != DefaultPitch {
		t.Fatalf("first sample rotated camera to yaw=%f pitch=%f", c.Yaw(), c.Pitch())
	}

	// Cursor moves up by 10 px: pitch goes up.
	c.MouseMoved(410, 290)
	if !near(c.Yaw(), -90+10*DefaultSensitivity) {
		t.Errorf("Expected yaw %f, got %f", -90+10*DefaultSensitivity, c.Yaw())
	}
	if !near(c.Pitch(), 10*DefaultSensitivity) {
		t.Errorf("Expected pitch %f, got %f", 10*DefaultSensitivity, c.Pitch())
	}

	c.ResetMouse()
	yaw := c.Yaw()
	c.MouseMoved(0, 0)
	if c.Yaw() != yaw {
		t.Error("ResetMouse should suppress the next jump")
	}
}

func TestSetAspectRatio(t *testing.T) {
	c := New()
	c.SetAspectRatio(16.0 / 9.0)
	if !near(c.AspectRatio(), 16.0/9.0) {
		t.Errorf("Expected 16/9, got %f", c.AspectRatio())
	}
	for _, bad := range []float32{0, -2, float32(math.NaN()), float32(math.Inf(1))} {
		c.SetAspectRatio(bad)
		if !near(c.AspectRatio(), 16.0/9.0) {
			t.Errorf("ratio %v should be ignored, got %f", bad, c.AspectRatio())
		}
	}
}

func TestViewMatrixMapsPositionToOrigin(t *testing.T) {
	c := New(WithPosition(mgl32.Vec3{1, 2, 3}), WithYaw(30), WithPitch(20))
	eye := c.ViewMatrix().Mul4x1(c.Position().Vec4(1))
	if !eye.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-4) {
		t.Errorf("Expected camera position at eye origin, got %v", eye)
	}
	ahead := c.ViewMatrix().Mul4x1(c.Position().Add(c.Front()).Vec4(1))
	if !ahead.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-4) {
		t.Errorf("Expected front to map to -Z, got %v", ahead)
	}
}

func TestProjectionMatrix(t *testing.T) {
	c := New()
	c.SetAspectRatio(2)
	got := c.DefaultProjection()
	want := mgl32.Perspective(mgl32.DegToRad(45), 2, 0.1, 100)
	if !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestOptions(t *testing.T) {
	c := New(WithSpeed(10), WithSensitivity(0.5), WithPitch(200), WithSpeed(-1))
	if c.Speed() != 10 {
		t.Errorf("Expected speed 10, got %f", c.Speed())
	}
	if c.Sensitivity() != 0.5 {
		t.Errorf("Expected sensitivity 0.5, got %f", c.Sensitivity())
	}
	if c.Pitch() != MaxPitch {
		t.Errorf("Expected clamped pitch, got %f", c.Pitch())
	}
	assertOrthonormal(t, c)
}
