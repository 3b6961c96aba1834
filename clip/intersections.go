package clip

import (
	"github.com/katalvlaran/geokit/geom"
	"github.com/katalvlaran/geokit/internal/assert"
)

// FindIntersections is Phase 1: it walks every ordered pair of original
// edges between a and b, inserts a paired intersection node into each
// ring at every clean crossing, and perturbs a vertex off the opposing
// edge whenever the crossing would otherwise land on it.
//
// The parallel-edge test is |cross| > geom.ParallelEpsilon, rejecting
// near-parallel edges. The original C source this pipeline is ported from
// tested cross < eps || cross > eps, which is equivalent to cross != 0 —
// accepting everything except an exact zero cross product. That reads as
// an unintentional dropped abs(); this package applies the corrected
// absolute-value test instead (see DESIGN.md).
//
// FindIntersections returns false if either ring's backing array ran out
// of room before every crossing could be recorded: it stops at the first
// pair that would overflow, leaving both rings consistent (an intersection
// is only ever inserted into both rings or neither), and the caller should
// treat the result so far as truncated rather than complete.
func FindIntersections(a, b *Ring) bool {
	aCount, bCount := a.OriginalSize, b.OriginalSize
	aPrevIdx := aCount - 1
	for i := 0; i < aCount; aPrevIdx, i = i, i+1 {
		bPrevIdx := bCount - 1
		for j := 0; j < bCount; {
			aCur, aPrev := a.Nodes[i].Pos, a.Nodes[aPrevIdx].Pos
			bCur, bPrev := b.Nodes[j].Pos, b.Nodes[bPrevIdx].Pos
			aDir := aCur.Sub(aPrev)
			bDir := bCur.Sub(bPrev)

			aAlpha, bAlpha, ok := segmentFactors(aPrev, aDir, bPrev, bDir)
			if !ok || aAlpha < 0 || aAlpha > 1 || bAlpha < 0 || bAlpha > 1 {
				bPrevIdx, j = j, j+1
				continue
			}

			switch {
			case aAlpha <= geom.DegenerateLow:
				perturb(&a.Nodes[aPrevIdx].Pos, bDir)
				continue
			case aAlpha >= geom.DegenerateHigh:
				perturb(&a.Nodes[i].Pos, bDir)
				continue
			case bAlpha <= geom.DegenerateLow:
				perturb(&b.Nodes[bPrevIdx].Pos, aDir)
				continue
			case bAlpha >= geom.DegenerateHigh:
				perturb(&b.Nodes[j].Pos, aDir)
				continue
			}

			if a.Size >= a.Capacity() || b.Size >= b.Capacity() {
				assert.That(false, "ring has no room for another intersection")
				return false
			}

			pos := aPrev.Add(aDir.Scale(aAlpha))
			aAnchor := findInsertAnchor(a, a.Nodes[i].Prev, aAlpha)
			bAnchor := findInsertAnchor(b, b.Nodes[j].Prev, bAlpha)
			aNeighbor, bNeighbor := b.Size, a.Size
			if !insertIntersection(a, aAnchor, pos, aNeighbor, aAlpha) ||
				!insertIntersection(b, bAnchor, pos, bNeighbor, bAlpha) {
				return false
			}

			bPrevIdx, j = j, j+1
		}
	}

	return true
}

// segmentFactors solves the 2D segment-segment system for the parametric
// positions of the intersection of line (aOrigin, aOrigin+aDir) with line
// (bOrigin, bOrigin+bDir), along each line respectively. ok is false when
// the two directions are parallel within geom.ParallelEpsilon.
func segmentFactors(aOrigin, aDir, bOrigin, bDir geom.Point) (aAlpha, bAlpha float32, ok bool) {
	cross := aDir.Cross(bDir)
	absCross := cross
	if absCross < 0 {
		absCross = -absCross
	}
	if absCross <= geom.ParallelEpsilon {
		return 0, 0, false
	}

	rel := aOrigin.Sub(bOrigin)
	aAlpha = bDir.Cross(rel) / cross
	bAlpha = aDir.Cross(rel) / cross

	return aAlpha, bAlpha, true
}

// perturb nudges *pos by a 90-degree rotation of dir, scaled by
// geom.PerturbMagnitude, off the edge it was degenerately coincident with.
func perturb(pos *geom.Point, dir geom.Point) {
	*pos = pos.Add(dir.Perp().Scale(geom.PerturbMagnitude))
}

// insertIntersection inserts a new intersection node after anchor in r,
// recording its position, paired-ring neighbor index, and edge alpha. It
// returns false without mutating r if the ring has no room left.
func insertIntersection(r *Ring, anchor int, pos geom.Point, neighbor int, alpha float32) bool {
	idx, ok := r.insertAfter(anchor)
	if !ok {
		return false
	}

	n := &r.Nodes[idx]
	n.Pos = pos
	n.Flags |= FlagIntersection
	n.Neighbor = neighbor
	n.Alpha = alpha

	return true
}
