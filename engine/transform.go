package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Spin rotates a model around Axis at a fixed offset, Step degrees per frame.
type Spin struct {
	Translation mgl32.Vec3
	Axis        mgl32.Vec3
	Step        float32

	degrees float32
}

func NewSpin(step float32) *Spin {
	return &Spin{
		Translation: mgl32.Vec3{0, -5, -10},
		Axis:        mgl32.Vec3{0, 1, 0},
		Step:        step,
	}
}

func (s *Spin) Degrees() float32 {
	return s.degrees
}

// Advance moves the rotation one frame forward, wrapping at 360.
func (s *Spin) Advance() {
	s.degrees += s.Step
	if s.degrees >= 360 {
		s.degrees -= 360
	} else if s.degrees < 0 {
		s.degrees += 360
	}
}

// Model translates first, then rotates in the translated frame.
func (s *Spin) Model() mgl32.Mat4 {
	trans := mgl32.Translate3D(s.Translation[0], s.Translation[1], s.Translation[2])
	return trans.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(s.degrees), s.Axis.Normalize()))
}

type Ortho struct {
	Left, Right, Bottom, Top, Near, Far float32
}

func DefaultOrtho() Ortho {
	return Ortho{-10, 10, -10, 10, 0.1, 100}
}

func (o Ortho) Matrix() mgl32.Mat4 {
	return mgl32.Ortho(o.Left, o.Right, o.Bottom, o.Top, o.Near, o.Far)
}

func MVP(projection, model mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(model)
}
