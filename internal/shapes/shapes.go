// Package shapes holds procedural primitive tables: positions, per-vertex
// colors and texture coordinates laid out as an unindexed triangle list.
package shapes

import (
	"errors"
	"fmt"
	"math"
)

var ErrShapeMismatch = errors.New("shape attribute length mismatch")

// Data is raw, not yet uploaded, vertex data for one mesh.
// Vertices and Colors carry 3 floats per vertex, TexCoords 2 (or none).
type Data struct {
	Vertices  []float32
	Colors    []float32
	TexCoords []float32
	Count     int
}

// Validate checks that every attribute array agrees with Count.
func (d Data) Validate() error {
	if d.Count <= 0 {
		return fmt.Errorf("vertex count %d: %w", d.Count, ErrShapeMismatch)
	}
	if len(d.Vertices) != d.Count*3 {
		return fmt.Errorf("vertices: want %d floats, got %d: %w", d.Count*3, len(d.Vertices), ErrShapeMismatch)
	}
	if len(d.Colors) != d.Count*3 {
		return fmt.Errorf("colors: want %d floats, got %d: %w", d.Count*3, len(d.Colors), ErrShapeMismatch)
	}
	if len(d.TexCoords) != 0 && len(d.TexCoords) != d.Count*2 {
		return fmt.Errorf("texcoords: want %d floats, got %d: %w", d.Count*2, len(d.TexCoords), ErrShapeMismatch)
	}
	return nil
}

// Textured reports whether the shape carries texture coordinates.
func (d Data) Textured() bool {
	return len(d.TexCoords) > 0
}

// ByName resolves a shape table from its lower-case name.
func ByName(name string) (Data, bool) {
	switch name {
	case "triangle":
		return Triangle(), true
	case "square":
		return Square(), true
	case "cube":
		return Cube(), true
	case "sphere":
		return Sphere(16, 16), true
	}
	return Data{}, false
}

func Triangle() Data {
	return Data{
		Vertices: []float32{
			0.0, 0.5, 0.0,
			-0.5, 0.0, 0.0,
			0.5, 0.0, 0.0,
		},
		Colors: []float32{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
		TexCoords: []float32{
			0.5, 1.0,
			0.0, 0.0,
			1.0, 0.0,
		},
		Count: 3,
	}
}

func Square() Data {
	return Data{
		Vertices: []float32{
			-0.5, 0.5, 0.0, // top-left
			0.5, 0.5, 0.0, // top-right
			-0.5, -0.5, 0.0, // bottom-left

			-0.5, -0.5, 0.0, // bottom-left
			0.5, 0.5, 0.0, // top-right
			0.5, -0.5, 0.0, // bottom-right
		},
		Colors: []float32{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,

			0, 0, 1,
			0, 1, 0,
			1, 1, 0,
		},
		TexCoords: []float32{
			0, 1, 1, 1, 0, 0,
			0, 0, 1, 1, 1, 0,
		},
		Count: 6,
	}
}

// cubeFaceColors is one solid color per face, in cubeFaces order.
var cubeFaceColors = [6][3]float32{
	{1, 0, 0}, // front
	{0, 1, 0}, // back
	{0, 0, 1}, // top
	{1, 1, 0}, // bottom
	{1, 0, 1}, // right
	{0, 1, 1}, // left
}

var cubeFaces = [6][18]float32{
	// front
	{
		-0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
		0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, -0.5, 0.5,
	},
	// back
	{
		-0.5, -0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5, -0.5,
		0.5, 0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5, -0.5,
	},
	// top
	{
		-0.5, 0.5, -0.5, -0.5, 0.5, 0.5, 0.5, 0.5, 0.5,
		0.5, 0.5, 0.5, 0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	},
	// bottom
	{
		-0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, 0.5,
		0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	},
	// right
	{
		0.5, -0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5,
		0.5, 0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	},
	// left
	{
		-0.5, -0.5, -0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5,
	},
}

func Cube() Data {
	d := Data{
		Vertices:  make([]float32, 0, 36*3),
		Colors:    make([]float32, 0, 36*3),
		TexCoords: make([]float32, 0, 36*2),
		Count:     36,
	}
	for i, face := range cubeFaces {
		d.Vertices = append(d.Vertices, face[:]...)
		for v := 0; v < 6; v++ {
			d.Colors = append(d.Colors, cubeFaceColors[i][:]...)
		}
		if i == 0 {
			d.TexCoords = append(d.TexCoords, 0, 0, 1, 0, 1, 1, 1, 1, 0, 1, 0, 0)
		} else {
			d.TexCoords = append(d.TexCoords, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0)
		}
	}
	return d
}

// Sphere builds a UV sphere of radius 0.5. Colors map the unit normal into
// [0,1]; texture coordinates follow longitude/latitude.
func Sphere(latSegments, lonSegments int) Data {
	if latSegments < 2 {
		latSegments = 2
	}
	if lonSegments < 3 {
		lonSegments = 3
	}

	rows := latSegments + 1
	cols := lonSegments + 1
	grid := make([][3]float32, 0, rows*cols)
	uv := make([][2]float32, 0, rows*cols)

	for i := 0; i <= latSegments; i++ {
		theta := float64(i) * math.Pi / float64(latSegments)
		sinTheta, cosTheta := math.Sincos(theta)
		for j := 0; j <= lonSegments; j++ {
			phi := float64(j) * 2 * math.Pi / float64(lonSegments)
			sinPhi, cosPhi := math.Sincos(phi)
			grid = append(grid, [3]float32{
				float32(cosPhi * sinTheta),
				float32(cosTheta),
				float32(sinPhi * sinTheta),
			})
			uv = append(uv, [2]float32{
				float32(j) / float32(lonSegments),
				float32(i) / float32(latSegments),
			})
		}
	}

	count := latSegments * lonSegments * 6
	d := Data{
		Vertices:  make([]float32, 0, count*3),
		Colors:    make([]float32, 0, count*3),
		TexCoords: make([]float32, 0, count*2),
		Count:     count,
	}
	add := func(idx int) {
		n := grid[idx]
		d.Vertices = append(d.Vertices, n[0]*0.5, n[1]*0.5, n[2]*0.5)
		d.Colors = append(d.Colors, (n[0]+1)/2, (n[1]+1)/2, (n[2]+1)/2)
		d.TexCoords = append(d.TexCoords, uv[idx][0], uv[idx][1])
	}

	for i := 0; i < latSegments; i++ {
		for j := 0; j < lonSegments; j++ {
			first := i*cols + j
			second := first + cols

			add(first)
			add(second)
			add(first + 1)

			add(second)
			add(second + 1)
			add(first + 1)
		}
	}
	return d
}
