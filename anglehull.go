// Convex hulls and alpha-angle hulls for integer point sets.
//
// This package is the plain-error front door to the geometry engine.
// Given a set of 2D integer points it produces an incrementally
// updatable convex hull, and, for an aperture angle alpha strictly
// between 0 and 180 degrees, the closed path of circular arcs from
// which the set subtends exactly alpha.
//
// Misuse of the engine (alpha out of range, too few hull points)
// surfaces as ordinary error values here; the geometry package itself
// panics with typed errors instead. See the geometry package for the
// full algorithmic surface.
package anglehull

import (
	"github.com/pkg/errors"

	"github.com/hullbert/anglehull/geometry"
)

type Point = geometry.Point
type Angle = geometry.Angle
type ConvexHull = geometry.ConvexHull
type AngleHull = geometry.AngleHull
type Arc = geometry.Arc
type CuttingStrategy = geometry.CuttingStrategy

const (
	Cut   = geometry.Cut
	Uncut = geometry.Uncut
)

// Pt returns the point (x, y).
func Pt(x, y int32) Point {
	return geometry.Pt(x, y)
}

// Deg returns the angle of the given degree value.
func Deg(degrees float64) Angle {
	return geometry.Deg(degrees)
}

// BuildHull computes the convex hull of the given points. The list may
// be empty and may contain duplicates. Use ConvexHull.Update to move
// points afterwards; it reuses unchanged hull regions.
func BuildHull(points []Point) ConvexHull {
	return geometry.Setup(points)
}

// Generate computes the angle hull of a convex hull for the aperture
// angle alpha. It fails when alpha does not lie strictly between 0 and
// 180 degrees, or when the hull has fewer than 4 distinct points.
func Generate(hull ConvexHull, alpha Angle) (result AngleHull, err error) {
	defer func() {
		if e := geometry.RecoverError(recover()); e != nil {
			result = AngleHull{}
			err = e
		}
	}()
	if n := len(hull.Points()); n < 4 {
		return AngleHull{}, errors.Errorf("angle hulls need at least 4 distinct hull points, got %d", n)
	}
	return geometry.GenerateAngleHull(hull, alpha), nil
}
