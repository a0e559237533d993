// Package hull holds the point-set representation of a convex hull: an ordered
// list of points lying on (or inside) its boundary.
//
// A Hull is never checked for convexity. Queries assume the points describe a
// convex polytope and simply probe them through Farthest.
package hull

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MachineEpsilon is the float32 machine epsilon (2^-23): the gap between 1 and
// the next representable float32.
const MachineEpsilon float32 = 1.0 / (1 << 23)

// Hull is a caller-owned sequence of points. It may be empty, in which case it
// behaves as a single point at the origin.
type Hull []mgl32.Vec3

// Farthest returns the point of the hull maximizing its dot product with
// direction. Ties keep the earliest point. An empty hull yields the origin.
func (h Hull) Farthest(direction mgl32.Vec3) mgl32.Vec3 {
	var farthest mgl32.Vec3
	var best float32

	for i, point := range h {
		d := point.Dot(direction)
		if i == 0 || d > best {
			best = d
			farthest = point
		}
	}

	return farthest
}

// Translate returns a copy of the hull moved by offset.
func (h Hull) Translate(offset mgl32.Vec3) Hull {
	moved := make(Hull, len(h))
	for i, point := range h {
		moved[i] = point.Add(offset)
	}
	return moved
}

// Bounds computes the axis-aligned bounding box of the hull.
// An empty hull gets a zero box at the origin.
func (h Hull) Bounds() AABB {
	if len(h) == 0 {
		return AABB{}
	}

	min := h[0]
	max := h[0]
	for _, point := range h[1:] {
		min[0] = math32.Min(min[0], point[0])
		min[1] = math32.Min(min[1], point[1])
		min[2] = math32.Min(min[2], point[2])

		max[0] = math32.Max(max[0], point[0])
		max[1] = math32.Max(max[1], point[1])
		max[2] = math32.Max(max[2], point[2])
	}

	return AABB{Min: min, Max: max}
}

// Point is a hull made of a single point.
func Point(p mgl32.Vec3) Hull {
	return Hull{p}
}

// Segment is a hull made of the two end points of a line segment.
func Segment(from, to mgl32.Vec3) Hull {
	return Hull{from, to}
}

// Box returns the 8 corners of an axis-aligned box.
func Box(center, halfExtents mgl32.Vec3) Hull {
	hx, hy, hz := halfExtents.X(), halfExtents.Y(), halfExtents.Z()

	corners := Hull{
		{-hx, -hy, -hz},
		{+hx, -hy, -hz},
		{-hx, +hy, -hz},
		{+hx, +hy, -hz},
		{-hx, -hy, +hz},
		{+hx, -hy, +hz},
		{-hx, +hy, +hz},
		{+hx, +hy, +hz},
	}

	return corners.Translate(center)
}

// RegularPolygon approximates a circle of the given radius with n points in a
// plane parallel to z=0 passing through center.
func RegularPolygon(n int, radius float32, center mgl32.Vec3) Hull {
	if n <= 0 {
		return Hull{}
	}

	polygon := make(Hull, n)
	for i := 0; i < n; i++ {
		radian := float32(i) / float32(n) * 2 * math32.Pi
		// angle is computed in float32, the trigonometry itself is rounded once
		cos := float32(math.Cos(float64(radian)))
		sin := float32(math.Sin(float64(radian)))

		polygon[i] = mgl32.Vec3{
			radius*cos + center.X(),
			radius*sin + center.Y(),
			center.Z(),
		}
	}

	return polygon
}
