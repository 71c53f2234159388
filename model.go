package bostrip

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/glog"
)

var (
	ErrUnknownFormat = errors.New("bostrip: unknown model format")
	ErrNoMeshes      = errors.New("bostrip: model has no meshes")
)

// Model is an ordered list of named meshes loaded from one file.
type Model struct {
	Name   string
	Meshes []*FaceMesh
}

type ModelStats struct {
	Meshes      int
	StripMeshes int
	Faces       int
	Points      int
	Removed     int
	// Indices is the total index count as built; ListIndices what the same
	// faces cost drawn as plain triangles.
	Indices     int
	ListIndices int
}

func NewModel(name string) *Model {
	return &Model{Name: name}
}

// MeshNamed returns the mesh with the given name, appending a new one if
// there is none.
func (m *Model) MeshNamed(name string, weld bool) *FaceMesh {
	for _, fm := range m.Meshes {
		if fm.Name == name {
			return fm
		}
	}
	fm := NewFaceMesh(name, weld)
	m.Meshes = append(m.Meshes, fm)
	return fm
}

// Copy deep-copies the model, built strips included.
func (m *Model) Copy() *Model {
	c := &Model{Name: m.Name, Meshes: make([]*FaceMesh, len(m.Meshes))}
	for i, fm := range m.Meshes {
		c.Meshes[i] = fm.Copy()
	}
	return c
}

// Build stripifies every mesh.
func (m *Model) Build(opts Options) []*StripResult {
	results := make([]*StripResult, len(m.Meshes))
	for i, fm := range m.Meshes {
		results[i] = fm.Build(opts)
	}
	return results
}

// Bounds returns the box around the points of all meshes.
func (m *Model) Bounds() (mgl64.Vec3, mgl64.Vec3) {
	var lo, hi mgl64.Vec3
	first := true
	for _, fm := range m.Meshes {
		if fm.Mesh.PointCount() == 0 {
			continue
		}
		mlo, mhi := fm.Mesh.Bounds()
		if first {
			lo, hi = mlo, mhi
			first = false
			continue
		}
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], mlo[k])
			hi[k] = max(hi[k], mhi[k])
		}
	}
	return lo, hi
}

// Centre moves all points so that 0,0,0 is the middle of the bounding box.
func (m *Model) Centre() {
	lo, hi := m.Bounds()
	centre := lo.Add(hi).Mul(0.5)
	if centre.ApproxEqual(mgl64.Vec3{}) {
		return
	}
	for _, fm := range m.Meshes {
		fm.Mesh.Translate(centre.Mul(-1))
	}
}

func (m *Model) Stats() ModelStats {
	var s ModelStats
	s.Meshes = len(m.Meshes)
	for _, fm := range m.Meshes {
		s.Faces += fm.FaceCount()
		s.Points += fm.Mesh.PointCount()
		s.Removed += fm.Removed()
		s.ListIndices += 3 * fm.FaceCount()
		indices, p := fm.Indices()
		s.Indices += len(indices)
		if p == TriangleStrip {
			s.StripMeshes++
		}
	}
	return s
}

// dropEmpty removes meshes without faces.
func (m *Model) dropEmpty() {
	kept := m.Meshes[:0]
	for _, fm := range m.Meshes {
		if fm.FaceCount() > 0 {
			kept = append(kept, fm)
		}
	}
	m.Meshes = kept
}

// LoadModel reads a model, choosing the format from the file extension.
func LoadModel(fileName string, opts Options) (*Model, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open model file %s: %w", fileName, err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	var model *Model
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".dxf":
		model, err = NewModelFromDXF(file, name, opts.Weld)
	case ".obj":
		model, err = NewModelFromOBJ(file, name, opts.Weld)
	case ".ply":
		model, err = NewModelFromPLY(file, name, opts.Weld)
	case StripFileExt:
		model, err = newModelFromStripFile(file, name)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, fileName)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing model file %s: %w", fileName, err)
	}

	model.dropEmpty()
	if len(model.Meshes) == 0 {
		return nil, fmt.Errorf("%s: %w", fileName, ErrNoMeshes)
	}
	if opts.FirstMeshOnly {
		model.Meshes = model.Meshes[:1]
	}
	glog.V(1).Infof("loaded %s: %d meshes", fileName, len(model.Meshes))
	return model, nil
}
