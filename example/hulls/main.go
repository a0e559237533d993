package main

import (
	"github.com/akmonengine/bgjk"
	"github.com/akmonengine/bgjk/hull"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type scene struct {
	name string
	a, b hull.Hull
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cube := hull.Box(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	disc := hull.RegularPolygon(64, 1, mgl32.Vec3{0, 0, 0})

	scenes := []scene{
		{"overlapping cubes", cube, hull.Box(mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{1, 1, 1})},
		{"touching cubes", cube, hull.Box(mgl32.Vec3{2, 0, 0}, mgl32.Vec3{1, 1, 1})},
		{"separated cubes", cube, hull.Box(mgl32.Vec3{2 + 1e-3, 0, 0}, mgl32.Vec3{1, 1, 1})},
		{"disc through cube", disc.Translate(mgl32.Vec3{0, 0, 0.5}), cube},
		{"disc above cube", disc.Translate(mgl32.Vec3{0, 0, 1.5}), cube},
		{"segment through disc", hull.Segment(mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, 1}), disc},
		{"point in cube", hull.Point(mgl32.Vec3{0.25, -0.5, 0.75}), cube},
	}

	for _, s := range scenes {
		bounds := s.b.Bounds()
		result, err := bgjk.Query(s.a, s.b, bgjk.DefaultMaxIterations)
		if err != nil {
			log.Warnw("query did not converge", "scene", s.name, "error", err)
			continue
		}

		log.Infow("query",
			"scene", s.name,
			"result", result.String(),
			"boundsOverlap", s.a.Bounds().Overlaps(bounds),
			"pointsA", len(s.a),
			"pointsB", len(s.b),
		)
	}
}
