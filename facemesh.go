package bostrip

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/glog"
)

// FaceMesh is one named mesh: a vertex pool, the faces over it and, once
// built, its strip connectivity.
type FaceMesh struct {
	Name      string
	Mesh      *Mesh
	faces     *FaceStore
	adj       *Adjacency
	primitive Primitive
	result    *StripResult
	removed   int
}

func NewFaceMesh(name string, weld bool) *FaceMesh {
	return &FaceMesh{
		Name:  name,
		Mesh:  NewMesh(weld),
		faces: NewFaceStore(),
	}
}

// AddFace adds a triangle by vertex index. Any built strip is dropped.
func (fm *FaceMesh) AddFace(p0, p1, p2 int) int {
	fm.invalidate()
	return fm.faces.AddFace(NewFace(p0, p1, p2))
}

// AddTriangle adds a triangle by position.
func (fm *FaceMesh) AddTriangle(a, b, c mgl64.Vec3) int {
	return fm.AddFace(fm.Mesh.AddPoint(a), fm.Mesh.AddPoint(b), fm.Mesh.AddPoint(c))
}

// AddPolygon fans a convex polygon into triangles around its first point and
// returns how many were added.
func (fm *FaceMesh) AddPolygon(points []mgl64.Vec3) int {
	if len(points) < 3 {
		return 0
	}
	indices := make([]int, len(points))
	for i, p := range points {
		indices[i] = fm.Mesh.AddPoint(p)
	}
	return fm.AddIndexedPolygon(indices)
}

// AddIndexedPolygon fans a convex polygon given by vertex indices.
func (fm *FaceMesh) AddIndexedPolygon(indices []int) int {
	added := 0
	for k := 1; k+1 < len(indices); k++ {
		fm.AddFace(indices[0], indices[k], indices[k+1])
		added++
	}
	return added
}

func (fm *FaceMesh) invalidate() {
	if fm.adj != nil || fm.result != nil {
		fm.faces.Disconnect()
	}
	fm.adj = nil
	fm.result = nil
	fm.primitive = Triangles
}

func (fm *FaceMesh) Faces() *FaceStore {
	return fm.faces
}

func (fm *FaceMesh) FaceCount() int {
	return fm.faces.FaceCount()
}

// Adjacency returns the adjacency index, building it on first use.
func (fm *FaceMesh) Adjacency() *Adjacency {
	if fm.adj == nil {
		fm.adj = BuildAdjacency(fm.faces)
	}
	return fm.adj
}

// Build optionally drops degenerate faces, then searches for a strip.
func (fm *FaceMesh) Build(opts Options) *StripResult {
	if opts.Optimize {
		// Meshes built from bare indices have no positions to check.
		var points []mgl64.Vec3
		if fm.Mesh.PointCount() > 0 {
			points = fm.Mesh.Points
		}
		if removed := OptimizeFaces(fm.faces, points); removed > 0 {
			fm.removed += removed
			fm.adj = nil
		}
	}
	glog.V(2).Infof("mesh %q: %d faces, %d points", fm.Name, fm.faces.FaceCount(), fm.Mesh.PointCount())
	fm.result = BuildStrip(fm.faces, fm.Adjacency(), opts)
	fm.primitive = fm.result.Primitive
	glog.V(1).Infof("mesh %q: %s with %d faces", fm.Name, fm.primitive, fm.faces.FaceCount())
	return fm.result
}

// Copy returns an independent mesh with the same points, faces and strip.
// The adjacency index and build result are read-only and shared.
func (fm *FaceMesh) Copy() *FaceMesh {
	return &FaceMesh{
		Name:      fm.Name,
		Mesh:      fm.Mesh.Copy(),
		faces:     fm.faces.Copy(),
		adj:       fm.adj,
		primitive: fm.primitive,
		result:    fm.result,
		removed:   fm.removed,
	}
}

// Disconnect drops the strip links. The adjacency index is kept since the
// faces have not changed.
func (fm *FaceMesh) Disconnect() {
	fm.faces.Disconnect()
	fm.result = nil
	fm.primitive = Triangles
}

func (fm *FaceMesh) Primitive() Primitive {
	return fm.primitive
}

// Result is the last build's outcome, nil if not built.
func (fm *FaceMesh) Result() *StripResult {
	return fm.result
}

// Removed counts faces dropped as degenerate by builds so far.
func (fm *FaceMesh) Removed() int {
	return fm.removed
}

// Indices returns the index buffer to draw and the primitive to draw it with.
func (fm *FaceMesh) Indices() ([]int, Primitive) {
	indices, p := Indices(fm.faces, fm.primitive)
	if p != fm.primitive {
		fm.Disconnect()
	}
	return indices, p
}
