package torus

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// UV layers are flat slices of texture coordinates keyed by loop index:
// corner k of face f is entry 4*f+k, matching the quad winding emitted by
// Generate. Two layouts exist. The grid atlas tiles the unit square one cell
// per face and is only meaningful when the twist seam realigns the minor
// grid exactly (SectionTwist divisible by MinorSegments). Otherwise the
// faces form one continuous helical strip and the ribbon layout applies.

// UVs computes the UV layer for a torus generated from the same segment
// counts and twist, selecting the grid atlas when the twisted seam closes
// evenly onto the minor grid and the ribbon strip otherwise.
func UVs(minorSeg, majorSeg, sectionTwist int) []r2.Vec {
	if sectionTwist%minorSeg == 0 {
		return GridUVs(minorSeg, majorSeg)
	}
	return RibbonUVs(minorSeg, majorSeg, sectionTwist)
}

// GridUVs tiles the unit square into a majorSeg x minorSeg atlas, one cell
// per face: U advances per major ring, V per minor segment, both wrapping
// modulo 1. The initial offset 0.5+mod(0.5,step) centers the atlas so
// segment counts not divisible by 4 still align symmetrically.
func GridUVs(minorSeg, majorSeg int) []r2.Vec {
	uStep := 1.0 / float64(majorSeg)
	vStep := 1.0 / float64(minorSeg)
	uInit := 0.5 + math.Mod(0.5, uStep)
	vInit := 0.5 + math.Mod(0.5, vStep)
	// Wrap just under 1.0 so float error cannot flip the wrap decision
	// exactly at the boundary.
	uWrap := 1.0 - uStep/2
	vWrap := 1.0 - vStep/2

	uv := make([]r2.Vec, 4*majorSeg*minorSeg)
	loop := 0
	uPrev := uInit
	uNext := uPrev + uStep
	for majorIndex := 0; majorIndex < majorSeg; majorIndex++ {
		vPrev := vInit
		vNext := vPrev + vStep
		for minorIndex := 0; minorIndex < minorSeg; minorIndex++ {
			uv[loop+0] = r2.Vec{X: uPrev, Y: vPrev}
			uv[loop+1] = r2.Vec{X: uNext, Y: vPrev}
			uv[loop+2] = r2.Vec{X: uNext, Y: vNext}
			uv[loop+3] = r2.Vec{X: uPrev, Y: vNext}
			if vNext > vWrap {
				vPrev = vNext - 1.0
			} else {
				vPrev = vNext
			}
			vNext = vPrev + vStep
			loop += 4
		}
		if uNext > uWrap {
			uPrev = uNext - 1.0
		} else {
			uPrev = uNext
		}
		uNext = uPrev + uStep
	}
	return uv
}

// RibbonUVs lays all majorSeg*minorSeg faces out as one continuous strip:
// U spans [0,1] uniformly across every face in helical connectivity order
// and V is 0 on one long edge and 1 on the other. Faces are visited track by
// track, each track starting at minor offset (track*sectionTwist) mod
// minorSeg; when sectionTwist shares a factor with minorSeg some tracks
// revisit faces, preserving the modulo semantics of the seam.
func RibbonUVs(minorSeg, majorSeg, sectionTwist int) []r2.Vec {
	count := majorSeg * minorSeg
	uStep := 1.0 / float64(count)
	uv := make([]r2.Vec, 4*count)
	uNext := 0.0
	for offset := 0; offset < minorSeg; offset++ {
		off := offset * sectionTwist % minorSeg
		for idx := 0; idx < majorSeg; idx++ {
			uPrev := uNext
			uNext = uPrev + uStep
			loop := 4 * (idx*minorSeg + off)
			uv[loop+0] = r2.Vec{X: uPrev, Y: 0}
			uv[loop+1] = r2.Vec{X: uNext, Y: 0}
			uv[loop+2] = r2.Vec{X: uNext, Y: 1}
			uv[loop+3] = r2.Vec{X: uPrev, Y: 1}
		}
	}
	return uv
}
