// Package render serializes quad meshes to STL and Wavefront OBJ and
// rasterizes PNG previews of them.
package render

import (
	"io"

	"github.com/quadric/torus/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle defined by its three vertices.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the triangle normal with right-hand-rule winding.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Renderer streams a model as triangles.
type Renderer interface {
	// ReadTriangles fills dst with up to len(dst) triangles and returns the
	// number read. It returns io.EOF once the model is exhausted.
	ReadTriangles(dst []Triangle3) (n int, err error)
}

// NewMeshRenderer returns a Renderer streaming m's quads as two triangles
// each, winding preserved.
func NewMeshRenderer(m *mesh.Mesh) Renderer {
	return &meshRenderer{tris: m.Triangles()}
}

type meshRenderer struct {
	tris [][3]r3.Vec
	read int
}

func (mr *meshRenderer) ReadTriangles(dst []Triangle3) (int, error) {
	if mr.read >= len(mr.tris) {
		return 0, io.EOF
	}
	n := 0
	for n < len(dst) && mr.read < len(mr.tris) {
		dst[n] = Triangle3{V: mr.tris[mr.read]}
		n++
		mr.read++
	}
	return n, nil
}

// RenderAll reads the full contents of a Renderer and returns the slice
// read. It does not return error on io.EOF.
func RenderAll(r Renderer) ([]Triangle3, error) {
	var err error
	var nt int
	result := make([]Triangle3, 0, 1<<12)
	buf := make([]Triangle3, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
