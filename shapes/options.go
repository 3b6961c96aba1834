// SPDX-License-Identifier: MIT
// Package: geokit/shapes
//
// options.go — functional options for shape generators.
//
// Contract (mirrors builder.BuilderOption in the teacher library):
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs; shape
//     generators themselves never panic: a nil or too-small out returns
//     ErrBufferCapacity.
//   • Defaults produce a CCW, axis-aligned, unit-radius shape at the origin.
package shapes

import (
	"math"

	"github.com/katalvlaran/geokit/geom"
)

// Option customizes shape placement and size before generation.
type Option func(*config)

type config struct {
	center     geom.Point
	radius     float32
	rotation   float32 // radians, applied counter-clockwise before centering
	pointCount int      // only consulted by generators that size themselves via WithPointCount
}

// defaultPointCount is the vertex density Annulus uses when WithPointCount
// is not supplied: dense enough that the zigzag reads as a ring outline.
const defaultPointCount = 32

func newConfig(defaultRadius float32, opts ...Option) config {
	cfg := config{center: geom.Point{}, radius: defaultRadius, rotation: 0, pointCount: defaultPointCount}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCenter translates the generated shape so its centroid (for the
// regular generators, its defining center) sits at c.
func WithCenter(c geom.Point) Option {
	return func(cfg *config) {
		cfg.center = c
	}
}

// WithRadius sets the circumradius used by RegularPolygon. Rectangle,
// Square, Star, LShape and Annulus take their dimensions as arguments and
// ignore it. Panics if r <= 0, matching builder's
// WithAmplitude/WithFrequency fail-fast style.
func WithRadius(r float32) Option {
	if r <= 0 {
		panic("shapes: WithRadius(r<=0)")
	}
	return func(cfg *config) {
		cfg.radius = r
	}
}

// WithRotation rotates the generated shape by radians counter-clockwise
// about its center before translation.
func WithRotation(radians float32) Option {
	return func(cfg *config) {
		cfg.rotation = radians
	}
}

// WithPointCount sets the vertex density for generators that size
// themselves from the config rather than a direct argument (Annulus).
// Panics if n < minRegularSides, matching builder's fail-fast option style.
func WithPointCount(n int) Option {
	if n < minRegularSides {
		panic("shapes: WithPointCount(n) too small")
	}
	return func(cfg *config) {
		cfg.pointCount = n
	}
}

func (cfg config) rotate(p geom.Point) geom.Point {
	if cfg.rotation == 0 {
		return p
	}
	cos := float32(math.Cos(float64(cfg.rotation)))
	sin := float32(math.Sin(float64(cfg.rotation)))
	return geom.Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
