// Package torus generates quad meshes for toruses whose circular
// cross-section may be progressively rotated ("twisted") as it sweeps
// around the major ring.
package torus

import (
	"errors"
	"fmt"
	"math"

	"github.com/quadric/torus/internal/d3"
	"github.com/quadric/torus/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

const tau = 2 * math.Pi

// MaxSegments is the largest accepted major or minor segment count. It also
// caps SectionTwist. Generation cost is O(MajorSegments*MinorSegments) so the
// cap bounds meshes at 65536 vertices.
const MaxSegments = 256

// Params describe a twisted torus. They are consumed by value and never
// mutated; generation is a pure function of Params.
type Params struct {
	// MajorRadius is the distance from the torus center to the center of
	// each cross-section. MinorRadius is the cross-section circle radius.
	// MinorRadius may exceed MajorRadius, yielding a self-intersecting
	// shape. Neither is rejected by Generate.
	MajorRadius float64
	MinorRadius float64
	// MajorSegments is the number of cross-section rings swept around the
	// central axis, minimum 3. MinorSegments is the number of subdivisions
	// of each cross-section circle, minimum 2.
	MajorSegments int
	MinorSegments int
	// SectionAngle is the phase offset of the cross-section in radians.
	SectionAngle float64
	// SectionTwist is the number of minor-segment steps the cross-section
	// rotates over one full sweep of the major ring. The twist also offsets
	// the seam where the last ring wraps back to the first. Values at or
	// above MinorSegments keep their modulo semantics: the seam offset is
	// SectionTwist mod MinorSegments.
	SectionTwist int
}

// Validate reports whether p is accepted by hosts of this package. Generate
// itself performs no validation and assumes Validate passed; garbage
// parameters yield garbage or panics, not errors.
func (p Params) Validate() error {
	switch {
	case math.IsNaN(p.MajorRadius) || math.IsInf(p.MajorRadius, 0) || p.MajorRadius <= 0:
		return fmt.Errorf("major radius %g must be positive and finite", p.MajorRadius)
	case math.IsNaN(p.MinorRadius) || math.IsInf(p.MinorRadius, 0) || p.MinorRadius <= 0:
		return fmt.Errorf("minor radius %g must be positive and finite", p.MinorRadius)
	case p.MajorSegments < 3 || p.MajorSegments > MaxSegments:
		return fmt.Errorf("major segments %d outside range [3,%d]", p.MajorSegments, MaxSegments)
	case p.MinorSegments < 2 || p.MinorSegments > MaxSegments:
		return fmt.Errorf("minor segments %d outside range [2,%d]", p.MinorSegments, MaxSegments)
	case p.SectionTwist < 0 || p.SectionTwist > MaxSegments:
		return fmt.Errorf("section twist %d outside range [0,%d]", p.SectionTwist, MaxSegments)
	case math.IsNaN(p.SectionAngle) || math.IsInf(p.SectionAngle, 0):
		return errors.New("section angle must be finite")
	}
	return nil
}

// FromExteriorInterior converts the exterior/interior radii view of a torus
// to the major/minor radii Params expect. The exterior radius is measured
// from the center to the outermost edge, the interior radius to the hole rim.
func FromExteriorInterior(exterior, interior float64) (major, minor float64) {
	minor = (exterior - interior) * 0.5
	major = interior + minor
	return major, minor
}

// Generate computes all vertex positions and quad faces of the twisted
// torus. Vertices are emitted ring by ring, minor index fastest, so vertex
// (i,j) lives at flat index i*MinorSegments+j. One quad is emitted per
// vertex, connecting it to its minor neighbor and both counterparts on the
// next major ring; faces wrap in both directions, with the major wrap offset
// by SectionTwist minor steps (the twist seam).
//
// Generate is deterministic and side-effect free. It does not validate p;
// see Params.Validate.
func Generate(p Params) (vertices []r3.Vec, faces [][4]int) {
	majorSeg, minorSeg := p.MajorSegments, p.MinorSegments
	// Extra cross-section phase per major ring, distributing the total
	// twist evenly around the torus.
	twistStepAngle := tau / float64(minorSeg) / float64(majorSeg) * float64(p.SectionTwist)
	totVerts := majorSeg * minorSeg

	vertices = make([]r3.Vec, 0, totVerts)
	faces = make([][4]int, 0, totVerts)
	i1 := 0
	for majorIndex := 0; majorIndex < majorSeg; majorIndex++ {
		ringAngle := tau * float64(majorIndex) / float64(majorSeg)
		majorTwistAngle := float64(majorIndex) * twistStepAngle

		for minorIndex := 0; minorIndex < minorSeg; minorIndex++ {
			angle := tau*float64(minorIndex)/float64(minorSeg) + p.SectionAngle + majorTwistAngle
			sin, cos := math.Sincos(angle)
			vertices = append(vertices, d3.RotateZ(r3.Vec{
				X: p.MajorRadius + cos*p.MinorRadius,
				Z: sin * p.MinorRadius,
			}, ringAngle))

			var i2, i3, i4 int
			if minorSeg > 2 && minorIndex+1 == minorSeg {
				// Last minor index: close the cross-section loop back to
				// minor index 0 of the same ring. A 2-gon section has no
				// distinct last index, hence the minorSeg > 2 guard.
				i2 = majorIndex * minorSeg
				i3 = i1 + minorSeg
				i4 = i2 + minorSeg
			} else {
				i2 = i1 + 1
				i3 = i1 + minorSeg
				i4 = i3 + 1
			}
			i2 = seamWrap(i2, totVerts, minorSeg, p.SectionTwist)
			i3 = seamWrap(i3, totVerts, minorSeg, p.SectionTwist)
			i4 = seamWrap(i4, totVerts, minorSeg, p.SectionTwist)

			// Winding (i1,i3,i4,i2) is a fixed contract and determines
			// face orientation.
			faces = append(faces, [4]int{i1, i3, i4, i2})
			i1++
		}
	}
	return vertices, faces
}

// seamWrap wraps a vertex index that refers past the last major ring back
// onto ring 0, offset by twist minor steps. Indices inside the vertex range
// pass through untouched. With twist zero this is an ordinary untwisted
// wrap; twist at or above minorSeg wraps by twist mod minorSeg.
func seamWrap(idx, totVerts, minorSeg, twist int) int {
	if idx >= totVerts {
		return (idx - totVerts + twist) % minorSeg
	}
	return idx
}

// NewMesh generates the twisted torus described by p and assembles it into
// a mesh with the UV layer appropriate for its seam: a grid atlas when the
// twist closes evenly onto the minor grid, a single helical ribbon
// otherwise. This is the whole pipeline most hosts want.
func NewMesh(p Params) (*mesh.Mesh, error) {
	vertices, faces := Generate(p)
	m, err := mesh.New(vertices, faces)
	if err != nil {
		return nil, err
	}
	if err := m.SetUV(UVs(p.MinorSegments, p.MajorSegments, p.SectionTwist)); err != nil {
		return nil, err
	}
	return m, nil
}
