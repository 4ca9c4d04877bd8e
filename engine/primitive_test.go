package engine

import (
	"testing"
)

func TestCubeGeometry(t *testing.T) {
	g := CubeGeometry()

	if len(g.Positions) != 8 || len(g.Attributes) != 8 {
		t.Fatalf("CubeGeometry() vertices != 8 (got %v positions, %v colors)", len(g.Positions), len(g.Attributes))
	}
	if len(g.Indices) != 36 {
		t.Fatalf("CubeGeometry() indices != 36 (got %v)", len(g.Indices))
	}
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}

	for i, p := range g.Positions {
		for _, v := range p {
			if v != 0.5 && v != -0.5 {
				t.Errorf("CubeGeometry() position %v not on a corner: %v", i, p)
			}
		}
	}

	// counter clockwise seen from outside, back faces get culled
	for i := 0; i < len(g.Indices); i += 3 {
		a, b, c := g.Positions[g.Indices[i]], g.Positions[g.Indices[i+1]], g.Positions[g.Indices[i+2]]
		center := a.Add(b).Add(c).Mul(1.0 / 3.0)

		if d := faceNormal(a, b, c).Dot(center); d <= 0 {
			t.Errorf("triangle %v (%v) faces inward", i/3, g.Indices[i:i+3])
		}
	}
}
