package clip

import "github.com/katalvlaran/geokit/geom"

// MarkEntryExit is Phase 2: for each ring, it determines whether node 0
// starts inside the other polygon (inverted when its Direction is
// Backward), then walks the ring marking every intersection it meets as
// Exit whenever the running inside/outside parity is currently inside,
// toggling that parity at each one.
func MarkEntryExit(a, b *Ring, dirA, dirB Direction) {
	markEntryExitSingle(a, b, dirA)
	markEntryExitSingle(b, a, dirB)
}

func markEntryExitSingle(current, other *Ring, dir Direction) {
	if current.Size == 0 {
		return
	}

	inside := pointInPolygon(other, current.Nodes[0].Pos)
	if dir != Forward {
		inside = !inside
	}

	for i := current.Nodes[0].Next; i != 0; {
		n := &current.Nodes[i]
		if n.Flags&FlagIntersection != 0 {
			if inside {
				n.Flags |= FlagExit
			}
			inside = !inside
		}
		i = n.Next
	}
}

// pointInPolygon is an even-odd horizontal-ray crossing test over ring's
// original edges (indices [0, OriginalSize)). A ray cast from p along +X
// crosses edge (prev, cur) when p.Y lies in the half-open interval the two
// endpoints span (in either direction) and the crossing's X lies strictly
// to the right of p.
func pointInPolygon(ring *Ring, p geom.Point) bool {
	crossings := 0
	count := ring.OriginalSize
	prevIdx := count - 1
	for i := 0; i < count; prevIdx, i = i, i+1 {
		cur := ring.Nodes[i].Pos
		prev := ring.Nodes[prevIdx].Pos

		if (p.Y <= prev.Y && p.Y > cur.Y) || (p.Y > prev.Y && p.Y <= cur.Y) {
			alpha := (prev.Y - p.Y) / (prev.Y - cur.Y)
			xIntersection := prev.X + alpha*(cur.X-prev.X)
			if p.X < xIntersection {
				crossings++
			}
		}
	}

	return crossings%2 == 1
}
