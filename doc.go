// Package geokit is a self-contained 2D polygon geometry kernel.
//
// 🚀 What is geokit?
//
//	A small, thread-safe-by-construction library with an allocation-free
//	core, covering:
//
//	  • Triangulation — ear-clip a simple polygon into a graphics-ready
//	    triangle index stream.
//	  • Boolean clipping — Greiner–Hormann intersection, union, and the
//	    two asymmetric differences of two simple polygons.
//
// ✨ Why choose geokit?
//
//   - Zero allocation in the core — every working buffer is caller-supplied.
//   - Deterministic — no goroutines, no global state, no I/O.
//   - Pure Go — no cgo, no hidden dependencies.
//
// Under the hood, everything is organized under four subpackages:
//
//	geom/        — the shared Point type and the orientation predicate
//	triangulate/ — ear-clip triangulation
//	clip/        — the Greiner–Hormann Boolean clipping pipeline
//	shapes/      — canonical polygon generators for fixtures
//
// This root package is a thin, error-returning facade over that core for
// callers who would rather not manage scratch buffers by hand; see
// Triangulate and Clip.
//
//	go get github.com/katalvlaran/geokit
package geokit
