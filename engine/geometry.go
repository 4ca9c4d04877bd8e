package engine

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const vec3Size = 3 * 4 // three float32

// Geometry is the cpu side of a mesh. Attributes holds one vec3 per
// position, normals for models and colors for the cube.
type Geometry struct {
	Positions  []mgl32.Vec3
	Attributes []mgl32.Vec3
	Indices    []uint32
}

func (g *Geometry) VertexCount() int {
	return len(g.Positions)
}

func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

func (g *Geometry) Empty() bool {
	return g == nil || len(g.Indices) == 0
}

// Packed lays out all positions followed by all attributes in a single
// float buffer. offset is the byte offset of the attribute block.
func (g *Geometry) Packed() (data []float32, offset int) {
	data = make([]float32, 0, 3*(len(g.Positions)+len(g.Attributes)))
	for _, p := range g.Positions {
		data = append(data, p[0], p[1], p[2])
	}
	for _, a := range g.Attributes {
		data = append(data, a[0], a[1], a[2])
	}

	return data, len(g.Positions) * vec3Size
}

// Bounds returns the axis aligned box around all positions.
func (g *Geometry) Bounds() (lo, hi mgl32.Vec3) {
	inf := float32(math.Inf(1))
	lo = mgl32.Vec3{inf, inf, inf}
	hi = mgl32.Vec3{-inf, -inf, -inf}

	for _, p := range g.Positions {
		for i := 0; i < 3; i++ {
			lo[i] = float32(math.Min(float64(lo[i]), float64(p[i])))
			hi[i] = float32(math.Max(float64(hi[i]), float64(p[i])))
		}
	}

	return lo, hi
}

func (g *Geometry) Validate() error {
	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(g.Indices))
	}

	if len(g.Attributes) != len(g.Positions) {
		return fmt.Errorf("%d attributes for %d positions", len(g.Attributes), len(g.Positions))
	}

	n := uint32(len(g.Positions))
	for i, idx := range g.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}

	return nil
}
