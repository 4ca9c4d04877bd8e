package engine

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
)

// LoadModel decodes a wavefront obj file into a triangulated geometry with
// positions and normals. Only the first object with faces is used.
func LoadModel(path string) (*Geometry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	defer file.Close()

	g, err := DecodeModel(file)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}

	return g, nil
}

// DecodeModel reads obj data from r. Materials are not supported, mtllib
// references are ignored.
func DecodeModel(r io.Reader) (*Geometry, error) {
	dec, err := obj.DecodeReader(r, strings.NewReader(""))
	if err != nil {
		return nil, err
	}

	var object *obj.Object
	for i := range dec.Objects {
		if len(dec.Objects[i].Faces) == 0 {
			continue
		}

		if object == nil {
			object = &dec.Objects[i]
		} else {
			log.Printf("ignoring object %q, only one mesh per model", dec.Objects[i].Name)
		}
	}

	if object == nil {
		return nil, fmt.Errorf("no faces found")
	}

	b := newModelBuilder(dec.Vertices, dec.Normals)
	for _, f := range object.Faces {
		if err := b.addFace(f); err != nil {
			return nil, err
		}
	}

	return b.result(), nil
}

// vertex identity inside the obj index space, normal -1 if absent
type vertexKey struct {
	position, normal int
}

type modelBuilder struct {
	positions, normals []float32

	lookup map[vertexKey]uint32
	smooth map[uint32]bool
	out    Geometry
}

func newModelBuilder(positions, normals []float32) *modelBuilder {
	return &modelBuilder{
		positions: positions,
		normals:   normals,
		lookup:    map[vertexKey]uint32{},
		smooth:    map[uint32]bool{},
	}
}

func (b *modelBuilder) vec3(data []float32, idx int) (mgl32.Vec3, bool) {
	if idx < 0 || 3*idx+2 >= len(data) {
		return mgl32.Vec3{}, false
	}
	return mgl32.Vec3{data[3*idx], data[3*idx+1], data[3*idx+2]}, true
}

func (b *modelBuilder) vertex(f obj.Face, i int) (uint32, error) {
	key := vertexKey{position: f.Vertices[i], normal: -1}
	if _, ok := b.vec3(b.positions, key.position); !ok {
		return 0, fmt.Errorf("face vertex index %d out of range", key.position+1)
	}

	if i < len(f.Normals) {
		if _, ok := b.vec3(b.normals, f.Normals[i]); ok {
			key.normal = f.Normals[i]
		}
	}

	if idx, found := b.lookup[key]; found {
		return idx, nil
	}

	g := &b.out
	idx := uint32(len(g.Positions))
	p, _ := b.vec3(b.positions, key.position)
	n, ok := b.vec3(b.normals, key.normal)
	if !ok {
		b.smooth[idx] = true
	}

	g.Positions = append(g.Positions, p)
	g.Attributes = append(g.Attributes, n)
	b.lookup[key] = idx
	return idx, nil
}

// addFace splits polygons into a triangle fan around the first vertex.
func (b *modelBuilder) addFace(f obj.Face) error {
	if len(f.Vertices) < 3 {
		return fmt.Errorf("face with %d vertices", len(f.Vertices))
	}

	corners := make([]uint32, len(f.Vertices))
	for i := range f.Vertices {
		idx, err := b.vertex(f, i)
		if err != nil {
			return err
		}
		corners[i] = idx
	}

	g := &b.out
	for i := 1; i+1 < len(corners); i++ {
		a, c, d := corners[0], corners[i], corners[i+1]
		g.Indices = append(g.Indices, a, c, d)

		// accumulate face normals for vertices without one
		normal := faceNormal(g.Positions[a], g.Positions[c], g.Positions[d])
		for _, v := range [3]uint32{a, c, d} {
			if b.smooth[v] {
				g.Attributes[v] = g.Attributes[v].Add(normal)
			}
		}
	}

	return nil
}

func (b *modelBuilder) result() *Geometry {
	g := &b.out
	for v := range b.smooth {
		if g.Attributes[v].Len() > 0 {
			g.Attributes[v] = g.Attributes[v].Normalize()
		}
	}
	return g
}

// area weighted, counter clockwise winding
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}
