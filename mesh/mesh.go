// Package mesh assembles generated vertex and face buffers into an indexed
// quad mesh with an optional per-loop UV layer.
package mesh

import (
	"errors"
	"fmt"

	"github.com/quadric/torus/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an indexed mesh of uniform quad faces. Face corners are addressed
// by loop index: corner k of face f is loop 4*f+k, so face f's loops start
// at 4*f and span 4 entries. The UV layer, when present, holds one
// coordinate pair per loop.
type Mesh struct {
	vertices []r3.Vec
	faces    [][4]int
	uv       []r2.Vec
}

// New builds a quad mesh from a vertex buffer and face index list. It
// checks every face for four distinct indices within the vertex range and
// rejects meshes that violate either.
func New(vertices []r3.Vec, faces [][4]int) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, errors.New("empty vertex buffer")
	}
	for fi, f := range faces {
		for k, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d corner %d: vertex index %d out of range [0,%d)", fi, k, idx, len(vertices))
			}
			for _, prev := range f[:k] {
				if prev == idx {
					return nil, fmt.Errorf("face %d: repeated vertex index %d", fi, idx)
				}
			}
		}
	}
	return &Mesh{vertices: vertices, faces: faces}, nil
}

// Vertices returns the flat vertex buffer.
func (m *Mesh) Vertices() []r3.Vec { return m.vertices }

// Faces returns the quad index list.
func (m *Mesh) Faces() [][4]int { return m.faces }

// NumLoops returns the number of face corners, four per face.
func (m *Mesh) NumLoops() int { return 4 * len(m.faces) }

// LoopStart returns the first loop index of a face.
func (m *Mesh) LoopStart(face int) int { return 4 * face }

// SetUV attaches a UV layer keyed by loop index. Its length must equal
// NumLoops.
func (m *Mesh) SetUV(uv []r2.Vec) error {
	if len(uv) != m.NumLoops() {
		return fmt.Errorf("UV layer has %d entries, want %d (4 per face)", len(uv), m.NumLoops())
	}
	m.uv = uv
	return nil
}

// UV returns the UV layer, or nil if none was set.
func (m *Mesh) UV() []r2.Vec { return m.uv }

// Triangles fan-splits every quad (a,b,c,d) into (a,b,c) and (a,c,d),
// preserving winding, for consumers that only understand triangles.
func (m *Mesh) Triangles() [][3]r3.Vec {
	tris := make([][3]r3.Vec, 0, 2*len(m.faces))
	for _, f := range m.faces {
		a, b, c, d := m.vertices[f[0]], m.vertices[f[1]], m.vertices[f[2]], m.vertices[f[3]]
		tris = append(tris, [3]r3.Vec{a, b, c}, [3]r3.Vec{a, c, d})
	}
	return tris
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (m *Mesh) Bounds() d3.Box {
	bb := d3.Box{Min: m.vertices[0], Max: m.vertices[0]}
	for _, v := range m.vertices[1:] {
		bb = bb.Include(v)
	}
	return bb
}

// EdgeFaceCounts returns how many faces share each undirected edge. Edges
// are keyed by their vertex indices in ascending order.
func (m *Mesh) EdgeFaceCounts() map[[2]int]int {
	counts := make(map[[2]int]int, 2*len(m.faces))
	for _, f := range m.faces {
		for k := 0; k < 4; k++ {
			a, b := f[k], f[(k+1)%4]
			if a > b {
				a, b = b, a
			}
			counts[[2]int{a, b}]++
		}
	}
	return counts
}

// IsManifold reports whether every edge is shared by exactly two faces,
// i.e. the mesh is a closed 2-manifold.
func (m *Mesh) IsManifold() bool {
	for _, n := range m.EdgeFaceCounts() {
		if n != 2 {
			return false
		}
	}
	return true
}
