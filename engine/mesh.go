package engine

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Mesh holds the gpu buffers of one geometry. Buffers are never released,
// they live as long as the context.
type Mesh struct {
	VertexArrayObject uint32
	VertexBuffer      uint32
	IndexBuffer       uint32

	Count int32
}

// NewMesh uploads g into a vertex array with a single vertex buffer and an
// index buffer. A nil or empty geometry gives a mesh that draws nothing.
func NewMesh(g *Geometry) *Mesh {
	m := &Mesh{}

	gl.GenVertexArrays(1, &m.VertexArrayObject) // vao
	gl.GenBuffers(1, &m.VertexBuffer)           // vbo
	gl.GenBuffers(1, &m.IndexBuffer)            // ibo

	if g.Empty() {
		return m
	}

	data, offset := g.Packed()

	gl.BindVertexArray(m.VertexArrayObject)

	// {positions, attributes}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointer(PositionAttribute, 3, gl.FLOAT, false, vec3Size, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(PositionAttribute)

	gl.VertexAttribPointer(NormalAttribute, 3, gl.FLOAT, false, vec3Size, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(NormalAttribute)

	// face
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.IndexBuffer)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	m.Count = int32(len(g.Indices))
	return m
}

func (m *Mesh) Draw() {
	if m.Count == 0 {
		return
	}

	gl.BindVertexArray(m.VertexArrayObject)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.IndexBuffer)
	gl.DrawElements(gl.TRIANGLES, m.Count, gl.UNSIGNED_INT, nil)
}
