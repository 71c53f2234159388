package bostrip

import (
	"fmt"

	"github.com/golang/glog"
)

// Primitive is how an index buffer is to be drawn.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "TRIANGLES"
	case TriangleStrip:
		return "TRIANGLE_STRIP"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// ListIndices emits three indices per face in input order.
func ListIndices(fs *FaceStore) []int {
	indices := make([]int, 0, 3*fs.FaceCount())
	for i := 0; i < fs.FaceCount(); i++ {
		indices = append(indices, fs.GetFace(i).Points[:]...)
	}
	return indices
}

// StripIndices walks the chain from its head: three vertices for the head in
// their encoded order, then the relevant point of each following face.
func StripIndices(fs *FaceStore) ([]int, error) {
	head := fs.Head()
	if head == None {
		return nil, fmt.Errorf("%w: no strip head", ErrBadRelevantPoint)
	}
	chain := fs.Chain(head)
	if len(chain) != fs.FaceCount() {
		return nil, fmt.Errorf("chain covers %d of %d faces", len(chain), fs.FaceCount())
	}

	hf := fs.GetFace(head)
	a, b, c, err := DecodeRelevantPoints(hf.RelevantPoint())
	if err != nil {
		return nil, fmt.Errorf("head face %d: %w", head, err)
	}
	indices := make([]int, 0, len(chain)+2)
	indices = append(indices, hf.Points[a], hf.Points[b], hf.Points[c])

	for _, i := range chain[1:] {
		f := fs.GetFace(i)
		r := f.RelevantPoint()
		if r < 0 || r > 2 {
			return nil, fmt.Errorf("%w: face %d has %d", ErrBadRelevantPoint, i, r)
		}
		prev := fs.GetFace(f.Previous())
		if prev.FindPointIndex(f.Points[r]) != None {
			return nil, fmt.Errorf("%w: face %d repeats a point of face %d", ErrBadRelevantPoint, i, f.Previous())
		}
		indices = append(indices, f.Points[r])
	}
	return indices, nil
}

// Indices flattens fs for drawing with primitive p. A strip that cannot be
// walked is reported and drawn as a list instead.
func Indices(fs *FaceStore, p Primitive) ([]int, Primitive) {
	if p != TriangleStrip {
		return ListIndices(fs), Triangles
	}
	indices, err := StripIndices(fs)
	if err != nil {
		glog.Warningf("corrupt strip, drawing as triangles: %v", err)
		return ListIndices(fs), Triangles
	}
	return indices, TriangleStrip
}

// StripToTriangles expands a strip index stream into a triangle list. Every
// second triangle is flipped so all keep the winding of the first.
func StripToTriangles(strip []int) []int {
	if len(strip) < 3 {
		return nil
	}
	tris := make([]int, 0, 3*(len(strip)-2))
	for k := 0; k+2 < len(strip); k++ {
		if k%2 == 0 {
			tris = append(tris, strip[k], strip[k+1], strip[k+2])
		} else {
			tris = append(tris, strip[k+1], strip[k], strip[k+2])
		}
	}
	return tris
}
