package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fovY      = 45.0
	nearPlane = 0.1
)

// Camera orbits the origin at a distance.
type Camera struct {
	angleX   float32
	angleY   float32
	distance float32
	width    int
	height   int
}

func NewCamera(distance float32, width, height int) *Camera {
	return &Camera{
		angleX:   0.4,
		angleY:   0.6,
		distance: distance,
		width:    width,
		height:   height,
	}
}

func (c *Camera) AddAngle(x, y float32) {
	c.angleX += x
	c.angleY += y
	limit := float32(math.Pi / 2)
	c.angleX = mgl32.Clamp(c.angleX, -limit, limit)
}

func (c *Camera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	c.distance *= factor
}

func (c *Camera) Matrix() mgl32.Mat4 {
	aspect := float32(c.width) / float32(c.height)
	far := c.distance*4 + 1
	proj := mgl32.Perspective(mgl32.DegToRad(fovY), aspect, nearPlane, far)
	view := mgl32.Translate3D(0, 0, -c.distance).
		Mul4(mgl32.HomogRotate3DX(c.angleX)).
		Mul4(mgl32.HomogRotate3DY(c.angleY))
	return proj.Mul4(view)
}

// Project maps a model space point to screen coordinates and a depth. ok is
// false for points behind the camera.
func Project(m mgl32.Mat4, p mgl32.Vec3, width, height int) (x, y, depth float32, ok bool) {
	clip := m.Mul4x1(p.Vec4(1))
	if clip.W() <= nearPlane {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) / 2 * float32(width)
	y = (1 - ndc.Y()) / 2 * float32(height)
	return x, y, clip.W(), true
}
