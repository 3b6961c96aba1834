// Package geom defines the minimal shared vector contract used by the
// triangulate and clip packages: a two-component floating-point Point,
// the clockwise-orientation predicate both pipelines rely on, and the
// numeric tolerances the Greiner–Hormann pipeline is tuned against.
//
// geom deliberately stays tiny. Vector arithmetic beyond what orientation
// and segment intersection need is an external collaborator per the
// kernel's design: callers bring their own math library and only hand
// geokit flat []Point slices.
package geom
