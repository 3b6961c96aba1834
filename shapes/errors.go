// SPDX-License-Identifier: MIT
// Package: geokit/shapes

package shapes

import "errors"

// ErrTooFewSides indicates a polygon generator was asked for fewer sides
// than it can produce a simple polygon from.
var ErrTooFewSides = errors.New("shapes: too few sides for a simple polygon")

// ErrBufferCapacity indicates out was too small to hold every vertex the
// requested shape produces; generators never write a partial vertex, so
// callers see an error instead of a silently truncated polygon.
var ErrBufferCapacity = errors.New("shapes: output buffer too small")
