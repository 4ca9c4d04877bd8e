package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CubeGeometry is a unit cube centered at the origin with one color per
// corner.
func CubeGeometry() *Geometry {
	return &Geometry{
		Positions: []mgl32.Vec3{
			// front
			{-0.5, -0.5, 0.5},
			{0.5, -0.5, 0.5},
			{0.5, 0.5, 0.5},
			{-0.5, 0.5, 0.5},

			// back
			{-0.5, -0.5, -0.5},
			{0.5, -0.5, -0.5},
			{0.5, 0.5, -0.5},
			{-0.5, 0.5, -0.5},
		},
		Attributes: []mgl32.Vec3{
			// front
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
			{1, 1, 1},

			// back
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
			{1, 1, 1},
		},
		Indices: []uint32{
			// front
			0, 1, 2,
			2, 3, 0,
			// right
			1, 5, 6,
			6, 2, 1,
			// back
			7, 6, 5,
			5, 4, 7,
			// left
			4, 0, 3,
			3, 7, 4,
			// bottom
			4, 5, 1,
			1, 0, 4,
			// top
			3, 2, 6,
			6, 7, 3,
		},
	}
}
