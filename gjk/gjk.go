// Package gjk implements the boolean variant of the Gilbert-Johnson-Keerthi (GJK)
// algorithm for intersection testing of convex hulls given as point sets.
//
// Two hulls intersect (touching included) if and only if their Minkowski
// difference contains the origin. The algorithm grows a simplex from support
// points of that difference, refining it toward the origin until the origin is
// enclosed by a tetrahedron or a support query proves a separating axis.
//
// The package exposes the search one step at a time: Init starts it and Iterate
// advances it. Both are pure functions of their arguments; callers own the loop,
// and with it any bound on the number of iterations.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"github.com/akmonengine/bgjk/hull"
	"github.com/go-gl/mathgl/mgl32"
)

// Init builds the initial segment of the search.
//
// It returns Separated when the second support point already fails to reach the
// origin, and Continue with a WidthSegment simplex otherwise.
func Init(a, b hull.Hull) Outcome {
	// Any nonzero vector works as a first direction
	c := MinkowskiSupport(a, b, mgl32.Vec3{1, 1, 1})

	// New direction towards the origin from this first point
	direction := Neg(c)
	bp := MinkowskiSupport(a, b, direction)
	if bp.Dot(direction) < 0 {
		return Outcome{Verdict: Separated}
	}

	// Perpendicular to the segment, towards the origin
	direction = DoubleCross(c.Sub(bp), Neg(bp))

	return proceed(Simplex{B: bp, C: c, Width: WidthSegment}, direction)
}

// Iterate performs one support query along the current direction and refines
// the simplex with it.
//
// If the new support point does not pass the origin along the search direction,
// the origin cannot be reached: Separated. A zero projection is not a separation,
// which is what classifies touching hulls as intersecting.
func Iterate(a, b hull.Hull, current Outcome) Outcome {
	if current.Verdict != Continue {
		return current
	}

	newPoint := MinkowskiSupport(a, b, current.Direction)
	if newPoint.Dot(current.Direction) < 0 {
		return Outcome{Verdict: Separated}
	}

	return Step(current.Simplex, newPoint)
}
