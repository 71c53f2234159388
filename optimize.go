package bostrip

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/glog"
)

// Faces whose doubled area is below this are dropped as degenerate.
const degenerateEpsilon = 1e-12

// OptimizeFaces removes faces that draw nothing: repeated point indices,
// points outside the vertex pool, or zero area. points may be nil to check
// indices only. It returns the number of faces removed; links are cleared.
func OptimizeFaces(fs *FaceStore, points []mgl64.Vec3) int {
	fs.Disconnect()
	kept := fs.faces[:0]
	removed := 0
	for i, f := range fs.faces {
		if reason := degenerate(f, points); reason != "" {
			glog.V(2).Infof("dropping face %d %v: %s", i, f, reason)
			removed++
			continue
		}
		kept = append(kept, f)
	}
	for i := len(kept); i < len(fs.faces); i++ {
		fs.faces[i] = nil
	}
	fs.faces = kept
	if removed > 0 {
		glog.V(1).Infof("removed %d degenerate faces", removed)
	}
	return removed
}

func degenerate(f *Face, points []mgl64.Vec3) string {
	p := f.Points
	if p[0] == p[1] || p[1] == p[2] || p[0] == p[2] {
		return "repeated point"
	}
	if points == nil {
		return ""
	}
	for _, i := range p {
		if i < 0 || i >= len(points) {
			glog.Warningf("face %v refers to missing vertex %d", f, i)
			return "missing vertex"
		}
	}
	a, b, c := points[p[0]], points[p[1]], points[p[2]]
	if b.Sub(a).Cross(c.Sub(a)).Len() <= degenerateEpsilon {
		return "zero area"
	}
	return ""
}
