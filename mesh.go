package bostrip

import "github.com/go-gl/mathgl/mgl64"

// Mesh is a pool of vertex positions shared by the faces of a FaceMesh.
type Mesh struct {
	Points     []mgl64.Vec3
	pointIndex map[mgl64.Vec3]int
	weld       bool
}

func NewMesh(weld bool) *Mesh {
	return &Mesh{
		Points:     make([]mgl64.Vec3, 0, 16),
		pointIndex: make(map[mgl64.Vec3]int),
		weld:       weld,
	}
}

// AddPoint returns the index of point, reusing an existing vertex at the
// same position when welding.
func (m *Mesh) AddPoint(point mgl64.Vec3) int {
	if m.weld {
		if index, found := m.pointIndex[point]; found {
			return index
		}
	}
	m.Points = append(m.Points, point)
	newIndex := len(m.Points) - 1
	if _, found := m.pointIndex[point]; !found {
		m.pointIndex[point] = newIndex
	}
	return newIndex
}

func (m *Mesh) PointCount() int {
	return len(m.Points)
}

// Bounds returns the axis aligned box around all points.
func (m *Mesh) Bounds() (mgl64.Vec3, mgl64.Vec3) {
	if len(m.Points) == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}
	lo, hi := m.Points[0], m.Points[0]
	for _, p := range m.Points[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < lo[k] {
				lo[k] = p[k]
			} else if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}
	return lo, hi
}

// Translate moves every point by d.
func (m *Mesh) Translate(d mgl64.Vec3) {
	m.pointIndex = make(map[mgl64.Vec3]int, len(m.Points))
	for i := range m.Points {
		m.Points[i] = m.Points[i].Add(d)
		if _, found := m.pointIndex[m.Points[i]]; !found {
			m.pointIndex[m.Points[i]] = i
		}
	}
}

// Copy must also duplicate the pointIndex map.
func (m *Mesh) Copy() *Mesh {
	newPointIndex := make(map[mgl64.Vec3]int, len(m.pointIndex))
	for key, value := range m.pointIndex {
		newPointIndex[key] = value
	}
	points := make([]mgl64.Vec3, len(m.Points))
	copy(points, m.Points)
	return &Mesh{
		Points:     points,
		pointIndex: newPointIndex,
		weld:       m.weld,
	}
}
