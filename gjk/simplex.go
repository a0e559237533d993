package gjk

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Simplex widths.
const (
	// WidthSegment: B and C form a segment, the next support point makes a triangle.
	WidthSegment = 2
	// WidthTetrahedron: B, C and D form a triangle facing the origin, the next
	// support point makes a tetrahedron.
	WidthTetrahedron = 3
)

// Simplex is the working point set kept between two support queries.
// B is the most recently kept point. D is only meaningful at WidthTetrahedron.
type Simplex struct {
	B, C, D mgl32.Vec3
	Width   int
}

// Verdict tags an Outcome.
type Verdict int

const (
	// Continue means the search goes on with Outcome.Simplex and Outcome.Direction.
	Continue Verdict = iota
	// Separated means a separating axis was found: the hulls do not intersect.
	Separated
	// Intersecting means the origin is enclosed: the hulls intersect.
	Intersecting
)

func (v Verdict) String() string {
	switch v {
	case Continue:
		return "continue"
	case Separated:
		return "separated"
	case Intersecting:
		return "intersecting"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// Outcome is the result of one refinement. Simplex and Direction are only set
// when Verdict is Continue.
type Outcome struct {
	Verdict   Verdict
	Simplex   Simplex
	Direction mgl32.Vec3
}

func proceed(simplex Simplex, direction mgl32.Vec3) Outcome {
	return Outcome{Verdict: Continue, Simplex: simplex, Direction: direction}
}

// region is where the origin lies relative to a triangle (a, b, c), seen from a.
type region int

const (
	regionFace region = iota // inside the prism spanned by the triangle
	regionAB                 // outside edge ab
	regionAC                 // outside edge ac
)

// straddle locates the origin against the two edges of a triangle meeting at its
// newest vertex a. ao is the vector from a to the origin, ab and ac the edges and
// abc = ab × ac the face normal.
//
// Only a strictly positive projection puts the origin outside an edge.
func straddle(ao, ab, ac, abc mgl32.Vec3) region {
	if ab.Cross(abc).Dot(ao) > 0 {
		return regionAB
	}
	if abc.Cross(ac).Dot(ao) > 0 {
		return regionAC
	}
	return regionFace
}

// Step refines the simplex with the new support point a.
//
// Behavior by width:
//   - WidthSegment: (a, B, C) is a triangle. Reduce to the edge the origin lies
//     beyond, or promote to a tetrahedron candidate facing the origin.
//   - WidthTetrahedron: (a, B, C, D) is a tetrahedron. If the origin is outside
//     one of the three faces touching a, refine that face as a triangle;
//     otherwise the origin is enclosed.
func Step(simplex Simplex, a mgl32.Vec3) Outcome {
	switch simplex.Width {
	case WidthSegment:
		return triangle(a, simplex.B, simplex.C)
	case WidthTetrahedron:
		return tetrahedron(a, simplex.B, simplex.C, simplex.D)
	}
	panic(fmt.Sprintf("gjk: invalid simplex width %d", simplex.Width))
}

// triangle handles the triangle (a, b, c), a being the newest point.
//
// The result never terminates the search:
//   - origin outside ab: keep segment (a, b)
//   - origin outside ac: keep segment (a, c)
//   - otherwise keep the triangle, wound so that its normal faces the origin
func triangle(a, b, c mgl32.Vec3) Outcome {
	ab := b.Sub(a)
	ac := c.Sub(a)
	abc := ab.Cross(ac)
	ao := Neg(a)

	switch straddle(ao, ab, ac, abc) {
	case regionAB:
		return proceed(Simplex{B: a, C: b, Width: WidthSegment}, DoubleCross(ab, ao))
	case regionAC:
		return proceed(Simplex{B: a, C: c, Width: WidthSegment}, DoubleCross(ac, ao))
	}

	if abc.Dot(ao) > 0 {
		return proceed(Simplex{B: a, C: b, D: c, Width: WidthTetrahedron}, abc)
	}
	// Origin below the triangle, reverse the winding
	return proceed(Simplex{B: a, C: c, D: b, Width: WidthTetrahedron}, Neg(abc))
}

// tetrahedron handles the tetrahedron (a, b, c, d), a being the newest point.
//
// The base face (b, c, d) was already known to face the origin, so only the
// faces abc, acd and adb are tested, in that order.
func tetrahedron(a, b, c, d mgl32.Vec3) Outcome {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	ao := Neg(a)

	if ab.Cross(ac).Dot(ao) > 0 {
		return triangle(a, b, c)
	}
	if ac.Cross(ad).Dot(ao) > 0 {
		return triangle(a, c, d)
	}
	if ad.Cross(ab).Dot(ao) > 0 {
		return triangle(a, d, b)
	}

	// The origin is inside the tetrahedron
	return Outcome{Verdict: Intersecting}
}
