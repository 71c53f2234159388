package bostrip

import (
	"errors"
	"fmt"
)

// None marks a missing link or an unset relevant point.
const None = -1

var ErrBadRelevantPoint = errors.New("bostrip: invalid relevant point")

// Face is one triangle of a mesh. Points are indices into the mesh's vertex
// pool. Links are arena indices into the owning FaceStore.
type Face struct {
	Points   [3]int
	relevant int
	previous int
	next     int
}

func NewFace(p0, p1, p2 int) *Face {
	f := &Face{previous: None, next: None, relevant: None}
	f.SetFace(p0, p1, p2)
	return f
}

func (f *Face) SetFace(p0, p1, p2 int) {
	f.Points = [3]int{p0, p1, p2}
}

func (f *Face) Previous() int {
	return f.previous
}

func (f *Face) Next() int {
	return f.next
}

func (f *Face) RelevantPoint() int {
	return f.relevant
}

func (f *Face) SetRelevantPoint(p int) {
	f.relevant = p
}

// FindPointIndex returns the local slot holding vertex v, or -1.
func (f *Face) FindPointIndex(v int) int {
	for i, p := range f.Points {
		if p == v {
			return i
		}
	}
	return None
}

// Copy returns a detached duplicate; links still refer to the source store's
// indices.
func (f *Face) Copy() *Face {
	return &Face{
		Points:   f.Points,
		relevant: f.relevant,
		previous: f.previous,
		next:     f.next,
	}
}

func (f *Face) String() string {
	return fmt.Sprintf("(%d,%d,%d)", f.Points[0], f.Points[1], f.Points[2])
}

// SharedPoints counts the distinct vertex indices two faces have in common.
func SharedPoints(a, b *Face) int {
	count := 0
	for i, p := range a.Points {
		if a.FindPointIndex(p) != i {
			continue
		}
		if b.FindPointIndex(p) != None {
			count++
		}
	}
	return count
}

// IsAdjacent reports whether a and b share exactly one edge. Identical faces
// share three points and are not adjacent.
func IsAdjacent(a, b *Face) bool {
	return SharedPoints(a, b) == 2
}

// The first face of a strip emits all three of its points. Their order is
// packed two bits per slot into the face's relevant point.
const relevantShift = 2

func EncodeRelevantPoints(first, second, third int) int {
	return first | second<<relevantShift | third<<(2*relevantShift)
}

func DecodeRelevantPoints(code int) (int, int, int, error) {
	if code < 0 {
		return 0, 0, 0, fmt.Errorf("%w: code %d", ErrBadRelevantPoint, code)
	}
	first := code & 3
	second := (code >> relevantShift) & 3
	third := (code >> (2 * relevantShift)) & 3
	if code>>(3*relevantShift) != 0 || first > 2 || second > 2 || third > 2 ||
		first == second || first == third || second == third {
		return 0, 0, 0, fmt.Errorf("%w: code %d is not a slot permutation", ErrBadRelevantPoint, code)
	}
	return first, second, third, nil
}
