package main

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sandsmark/bostrip"
)

var listColor = color.RGBA{R: 140, G: 140, B: 140, A: 255}

// sceneTriangle is one triangle ready to paint.
type sceneTriangle struct {
	points [3]mgl32.Vec3
	col    color.RGBA
}

type screenTriangle struct {
	xp, yp [3]float32
	depth  float32
	col    color.RGBA
}

// Scene holds the triangles of a built model in draw order.
type Scene struct {
	triangles []sceneTriangle
	strips    int
	lists     int
}

// NewScene expands every mesh's index buffer into triangles. Strip meshes
// are shaded from dark at the head to bright at the tail.
func NewScene(model *bostrip.Model) *Scene {
	s := &Scene{}
	for _, fm := range model.Meshes {
		indices, p := fm.Indices()
		if p == bostrip.TriangleStrip {
			s.strips++
			indices = bostrip.StripToTriangles(indices)
		} else {
			s.lists++
		}
		count := len(indices) / 3
		for k := 0; k < count; k++ {
			var t sceneTriangle
			for c := 0; c < 3; c++ {
				v := fm.Mesh.Points[indices[3*k+c]]
				t.points[c] = mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
			}
			t.col = listColor
			if p == bostrip.TriangleStrip {
				t.col = chainColor(k, count)
			}
			s.triangles = append(s.triangles, t)
		}
	}
	return s
}

// chainColor ramps from blue at the first face of a chain to yellow at the
// last.
func chainColor(k, n int) color.RGBA {
	t := float32(1)
	if n > 1 {
		t = float32(k) / float32(n-1)
	}
	return color.RGBA{
		R: uint8(40 + 215*t),
		G: uint8(60 + 180*t),
		B: uint8(220 - 200*t),
		A: 255,
	}
}

// Project returns the visible triangles in screen space, farthest first.
func (s *Scene) Project(m mgl32.Mat4, width, height int) []screenTriangle {
	out := make([]screenTriangle, 0, len(s.triangles))
next:
	for _, t := range s.triangles {
		var st screenTriangle
		for c, p := range t.points {
			x, y, d, ok := Project(m, p, width, height)
			if !ok {
				continue next
			}
			st.xp[c], st.yp[c] = x, y
			st.depth += d / 3
		}
		st.col = t.col
		out = append(out, st)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].depth > out[j].depth
	})
	return out
}
