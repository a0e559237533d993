package gjk

import "github.com/go-gl/mathgl/mgl32"

// Neg returns -v, negating each component exactly.
func Neg(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{-v[0], -v[1], -v[2]}
}

// TripleCross computes (a × b) × c.
func TripleCross(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return a.Cross(b).Cross(c)
}

// DoubleCross computes (a × b) × a: a vector orthogonal to a, lying in the
// plane of a and b, on the side of b.
//
// With a an edge of the simplex and b the vector from that edge to the origin,
// the result is the search direction from the edge toward the origin.
func DoubleCross(a, b mgl32.Vec3) mgl32.Vec3 {
	return TripleCross(a, b, a)
}
