package gjk

import (
	"github.com/akmonengine/bgjk/hull"
	"github.com/go-gl/mathgl/mgl32"
)

// MinkowskiSupport computes a support point in the Minkowski difference (A - B).
//
// The Minkowski difference A - B is the set of all vectors (a - b) where a ∈ A and b ∈ B.
// Only its extreme points are ever needed:
//
//	furthestPoint(A, direction) - furthestPoint(B, -direction)
//
// Cost is linear in the number of points of both hulls.
func MinkowskiSupport(a, b hull.Hull, direction mgl32.Vec3) mgl32.Vec3 {
	supportA := a.Farthest(direction)
	supportB := b.Farthest(Neg(direction))
	return supportA.Sub(supportB)
}
