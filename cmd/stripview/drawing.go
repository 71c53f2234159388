package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebiten indexes vertices with uint16.
const maxBatchVertices = 65535 / 3 * 3

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func vertexColor(clr color.RGBA) (float32, float32, float32, float32) {
	return float32(clr.R) / 255.0, float32(clr.G) / 255.0, float32(clr.B) / 255.0, float32(clr.A) / 255.0
}

// fillTriangles draws triangles in the given order, batching draw calls.
func fillTriangles(screen *ebiten.Image, tris []screenTriangle) {
	vertices := make([]ebiten.Vertex, 0, min(len(tris)*3, maxBatchVertices))
	indices := make([]uint16, 0, cap(vertices))
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}

	flush := func() {
		if len(vertices) > 0 {
			screen.DrawTriangles(vertices, indices, whiteSub, op)
		}
		vertices = vertices[:0]
		indices = indices[:0]
	}

	for _, t := range tris {
		if len(vertices)+3 > maxBatchVertices {
			flush()
		}
		cr, cg, cb, ca := vertexColor(t.col)
		for c := 0; c < 3; c++ {
			indices = append(indices, uint16(len(vertices)))
			vertices = append(vertices, ebiten.Vertex{
				DstX:   t.xp[c],
				DstY:   t.yp[c],
				SrcX:   1,
				SrcY:   1,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
	}
	flush()
}

// drawTriangleOutline strokes the edges of one triangle.
func drawTriangleOutline(screen *ebiten.Image, t screenTriangle, strokeWidth float32, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(t.xp[0], t.yp[0])
	path.LineTo(t.xp[1], t.yp[1])
	path.LineTo(t.xp[2], t.yp[2])
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: strokeWidth})
	cr, cg, cb, ca := vertexColor(clr)
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}
	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
