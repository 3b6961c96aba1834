// SPDX-License-Identifier: MIT
// Package clip contains white-box unit tests for Ring construction and
// node insertion (Phase 0 plumbing exercised directly).
package clip

import (
	"testing"

	"github.com/katalvlaran/geokit/geom"
	"github.com/stretchr/testify/require"
)

func square() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestBuildRing_LinksAndSizes(t *testing.T) {
	t.Parallel()

	backing := make([]Node, 8)
	r := BuildRing(square(), backing)

	require.Equal(t, 4, r.OriginalSize)
	require.Equal(t, 4, r.Size)
	require.Equal(t, 8, r.Capacity())

	for i := 0; i < 4; i++ {
		require.Equal(t, (i+1)%4, r.Nodes[i].Next)
		require.Equal(t, (i-1+4)%4, r.Nodes[i].Prev)
		require.Equal(t, Flags(0), r.Nodes[i].Flags)
	}
}

func TestRing_InsertAfter_SplicesCorrectly(t *testing.T) {
	t.Parallel()

	backing := make([]Node, 8)
	r := BuildRing(square(), backing)

	idx, ok := r.insertAfter(0)
	require.True(t, ok)
	require.Equal(t, 4, idx)
	require.Equal(t, 5, r.Size)

	require.Equal(t, 4, r.Nodes[0].Next)
	require.Equal(t, 0, r.Nodes[4].Prev)
	require.Equal(t, 1, r.Nodes[4].Next)
	require.Equal(t, 4, r.Nodes[1].Prev)
}

func TestRing_InsertAfter_CapacityExhausted(t *testing.T) {
	t.Parallel()

	// Backing array has exactly room for the four original vertices and
	// nothing else: the very first insertAfter must report failure rather
	// than writing past Nodes.
	backing := make([]Node, 4)
	r := BuildRing(square(), backing)

	idx, ok := r.insertAfter(0)
	require.False(t, ok)
	require.Equal(t, 0, idx)
	require.Equal(t, 4, r.Size, "Size must not change on a failed insert")
}

func TestFindInsertAnchor_OrdersByAlpha(t *testing.T) {
	t.Parallel()

	backing := make([]Node, 8)
	r := BuildRing(square(), backing)

	// Insert an intersection at alpha=0.7 after node 0, then another at
	// alpha=0.3: it must anchor before the 0.7 one to preserve ordering.
	first, ok := r.insertAfter(0)
	require.True(t, ok)
	r.Nodes[first].Flags |= FlagIntersection
	r.Nodes[first].Alpha = 0.7

	anchor := findInsertAnchor(&r, first, 0.3)
	require.Equal(t, 0, anchor, "lower alpha must anchor before the existing higher-alpha node")

	anchor2 := findInsertAnchor(&r, first, 0.9)
	require.Equal(t, first, anchor2, "higher alpha anchors after the existing node")
}
