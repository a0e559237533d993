// Package bgjk answers one question: do two convex hulls, each given as a set
// of points on (or inside) its boundary, intersect? Touching counts.
//
// It runs the boolean GJK algorithm from package gjk over the Minkowski
// difference of the two hulls. Hulls are read only and never retained; all
// working state lives in a single call, so concurrent queries are safe.
//
// Usage:
//
//	a := hull.Box(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
//	b := hull.Box(mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{1, 1, 1})
//	if bgjk.Intersects(a, b) {
//		// ...
//	}
package bgjk

import (
	"fmt"

	"github.com/akmonengine/bgjk/gjk"
	"github.com/akmonengine/bgjk/hull"
	"github.com/pkg/errors"
)

// DefaultMaxIterations bounds the refinement loop of Intersects.
// Typical queries converge in fewer than 10 iterations.
const DefaultMaxIterations = 256

// ErrNotConverged is returned by Query when the iteration bound is exhausted.
var ErrNotConverged = errors.New("bgjk: no verdict reached")

// Result of an intersection query
type Result int

const (
	Separated Result = iota
	Intersecting
	// Inconclusive means the iteration bound was exhausted before a verdict.
	Inconclusive
)

func (r Result) String() string {
	switch r {
	case Separated:
		return "separated"
	case Intersecting:
		return "intersecting"
	case Inconclusive:
		return "inconclusive"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Intersects reports whether the convex hulls of a and b intersect, touching
// included. An empty hull behaves as a single point at the origin.
//
// The search is bounded by DefaultMaxIterations; a query that exhausts it is
// reported as not intersecting. Use Query to tell the two apart.
func Intersects(a, b hull.Hull) bool {
	result, _ := Query(a, b, DefaultMaxIterations)
	return result == Intersecting
}

// Query runs the search with at most maxIterations refinement steps after the
// initial segment. maxIterations <= 0 removes the bound.
//
// When the bound is exhausted, Query returns Inconclusive and an error wrapping
// ErrNotConverged.
func Query(a, b hull.Hull, maxIterations int) (Result, error) {
	out := gjk.Init(a, b)

	for i := 0; out.Verdict == gjk.Continue; i++ {
		if maxIterations > 0 && i >= maxIterations {
			return Inconclusive, errors.Wrapf(ErrNotConverged, "after %d iterations", i)
		}
		out = gjk.Iterate(a, b, out)
	}

	if out.Verdict == gjk.Intersecting {
		return Intersecting, nil
	}
	return Separated, nil
}
