package shapes

import (
	"errors"
	"math"
	"testing"
)

func TestTablesValidate(t *testing.T) {
	tests := []struct {
		name  string
		data  Data
		count int
	}{
		{"triangle", Triangle(), 3},
		{"square", Square(), 6},
		{"cube", Cube(), 36},
		{"sphere", Sphere(16, 16), 16 * 16 * 6},
		{"sphere-coarse", Sphere(4, 8), 4 * 8 * 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.data.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if tt.data.Count != tt.count {
				t.Errorf("Expected count %d, got %d", tt.count, tt.data.Count)
			}
			if !tt.data.Textured() {
				t.Errorf("Expected %s to carry texture coordinates", tt.name)
			}
		})
	}
}

func TestSphereRadius(t *testing.T) {
	d := Sphere(8, 8)
	for i := 0; i < d.Count; i++ {
		x, y, z := d.Vertices[i*3], d.Vertices[i*3+1], d.Vertices[i*3+2]
		r := math.Sqrt(float64(x*x + y*y + z*z))
		if math.Abs(r-0.5) > 1e-5 {
			t.Fatalf("vertex %d at radius %f, want 0.5", i, r)
		}
	}
}

func TestSphereClampsSegments(t *testing.T) {
	d := Sphere(0, 0)
	if d.Count != 2*3*6 {
		t.Errorf("Expected clamped sphere count %d, got %d", 2*3*6, d.Count)
	}
}

func TestValidateMismatch(t *testing.T) {
	d := Triangle()
	d.Colors = d.Colors[:6]
	if err := d.Validate(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch, got %v", err)
	}

	d = Triangle()
	d.TexCoords = nil
	if err := d.Validate(); err != nil {
		t.Errorf("Untextured shape should validate, got %v", err)
	}

	if err := (Data{}).Validate(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch for empty data, got %v", err)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"triangle", "square", "cube", "sphere"} {
		if _, ok := ByName(name); !ok {
			t.Errorf("ByName(%q) not found", name)
		}
	}
	if _, ok := ByName("torus"); ok {
		t.Error("ByName(torus) should not resolve")
	}
}
