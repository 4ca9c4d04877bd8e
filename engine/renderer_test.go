package engine

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFrameCounter(t *testing.T) {
	start := time.Unix(0, 0)

	tests := []struct {
		Ratio    float64
		Frames   []time.Duration // offsets from start
		Expected float64
	}{
		{0.5, nil, 0},
		{0.5, []time.Duration{0}, 0},
		{0.5, []time.Duration{0, 10 * time.Millisecond}, 100},
		{0.5, []time.Duration{0, 10 * time.Millisecond, 30 * time.Millisecond}, 75},
		{0.01, []time.Duration{0, 20 * time.Millisecond, 40 * time.Millisecond}, 50},
		// identical timestamps are skipped
		{0.5, []time.Duration{0, 0, 10 * time.Millisecond}, 100},
	}

	for i, c := range tests {
		fc := NewFrameCounter(c.Ratio)
		for _, f := range c.Frames {
			fc.Tick(start.Add(f))
		}

		if r := fc.FPS(); math.Abs(r-c.Expected) > 1e-6 {
			t.Errorf("case %v: FPS() != %v (got %v)", i, c.Expected, r)
		}
	}
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		W, H, EW, EH int
	}{
		{800, 600, 800, 600},
		{0, 0, 1, 1},
		{-5, 10, 1, 10},
		{10, -5, 10, 1},
	}

	for _, c := range tests {
		if w, h := clampSize(c.W, c.H); w != c.EW || h != c.EH {
			t.Errorf("clampSize(%v, %v) != %v, %v (got %v, %v)", c.W, c.H, c.EW, c.EH, w, h)
		}
	}
}

func TestRenderer_Uniforms(t *testing.T) {
	tests := []struct {
		Step   float32
		Frames int
	}{
		{0.05, 0},
		{0.05, 1},
		{90, 1},
		{90, 3},
	}

	for _, c := range tests {
		s := NewSpin(c.Step)
		for i := 0; i < c.Frames; i++ {
			s.Advance()
		}
		r := NewRenderer(nil, nil, nil, s, DefaultOrtho(), mgl32.Vec4{})

		projection := DefaultOrtho().Matrix()
		expected := map[string]mgl32.Mat4{
			"modelMatrix":      s.Model(),
			"projectionMatrix": projection,
			"mvpMatrix":        projection.Mul4(s.Model()),
		}

		us := r.uniforms()
		if len(us) != len(expected) {
			t.Errorf("uniforms(%v, %v) len != %v (got %v)", c.Step, c.Frames, len(expected), len(us))
			continue
		}
		for _, u := range us {
			e, ok := expected[u.name]
			if !ok {
				t.Errorf("uniforms(%v, %v) unexpected %q", c.Step, c.Frames, u.name)
				continue
			}
			if !u.value.ApproxEqual(e) {
				t.Errorf("uniforms(%v, %v) %q != \n%v (got \n%v)", c.Step, c.Frames, u.name, e, u.value)
			}
		}
	}
}

func TestContext_Size(t *testing.T) {
	tests := []struct {
		W, H int
	}{
		{800, 600},
		{1, 1},
	}

	for _, c := range tests {
		s := &Context{width: c.W, height: c.H}
		if w, h := s.Size(); w != c.W || h != c.H {
			t.Errorf("Size() != %v, %v (got %v, %v)", c.W, c.H, w, h)
		}
	}
}
