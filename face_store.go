package bostrip

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
)

var ErrLinkConflict = errors.New("bostrip: conflicting face link")

// FaceStore owns the faces of one mesh. Strip links between faces are arena
// indices, so the store is the only place faces live.
type FaceStore struct {
	faces []*Face
}

func NewFaceStore() *FaceStore {
	return &FaceStore{faces: make([]*Face, 0, 10)}
}

func (fs *FaceStore) AddFace(f *Face) int {
	fs.faces = append(fs.faces, f)
	return len(fs.faces) - 1
}

func (fs *FaceStore) GetFace(i int) *Face {
	return fs.faces[i]
}

func (fs *FaceStore) FaceCount() int {
	return len(fs.faces)
}

// Copy duplicates every face. Links are arena indices, so the copy keeps the
// same chain.
func (fs *FaceStore) Copy() *FaceStore {
	c := &FaceStore{faces: make([]*Face, len(fs.faces))}
	for i, f := range fs.faces {
		c.faces[i] = f.Copy()
	}
	return c
}

func (fs *FaceStore) valid(i int) bool {
	return i >= 0 && i < len(fs.faces)
}

// SetNext links i -> j. j may be None to make i a tail. The link is refused if
// j already has a different predecessor.
func (fs *FaceStore) SetNext(i, j int) error {
	if !fs.valid(i) || (j != None && !fs.valid(j)) || i == j {
		return fmt.Errorf("%w: %d -> %d out of range", ErrLinkConflict, i, j)
	}
	if j != None {
		if p := fs.faces[j].previous; p != None && p != i {
			glog.Warningf("face %d already follows %d, refusing to link it after %d", j, p, i)
			return fmt.Errorf("%w: %d already has previous %d", ErrLinkConflict, j, p)
		}
	}
	if old := fs.faces[i].next; old != None && old != j {
		fs.faces[old].previous = None
	}
	fs.faces[i].next = j
	if j != None {
		fs.faces[j].previous = i
	}
	return nil
}

// SetPrevious links j -> i. The link is refused if j already has a different
// successor.
func (fs *FaceStore) SetPrevious(i, j int) error {
	if !fs.valid(i) || (j != None && !fs.valid(j)) || i == j {
		return fmt.Errorf("%w: %d <- %d out of range", ErrLinkConflict, i, j)
	}
	if j != None {
		if n := fs.faces[j].next; n != None && n != i {
			glog.Warningf("face %d is already followed by %d, refusing to link %d after it", j, n, i)
			return fmt.Errorf("%w: %d already has next %d", ErrLinkConflict, j, n)
		}
	}
	if old := fs.faces[i].previous; old != None && old != j {
		fs.faces[old].next = None
	}
	fs.faces[i].previous = j
	if j != None {
		fs.faces[j].next = i
	}
	return nil
}

// DelNode splices face i out of its chain, joining its neighbours.
func (fs *FaceStore) DelNode(i int) {
	if !fs.valid(i) {
		return
	}
	f := fs.faces[i]
	prev, next := f.previous, f.next
	if prev != None {
		fs.faces[prev].next = next
	}
	if next != None {
		fs.faces[next].previous = prev
	}
	f.previous = None
	f.next = None
}

// Disconnect clears every link and relevant point.
func (fs *FaceStore) Disconnect() {
	for _, f := range fs.faces {
		f.previous = None
		f.next = None
		f.relevant = None
	}
}

// Head returns the first face with no predecessor that starts a chain, or
// None if no face is linked.
func (fs *FaceStore) Head() int {
	for i, f := range fs.faces {
		if f.previous == None && f.next != None {
			return i
		}
	}
	if len(fs.faces) == 1 && fs.faces[0].relevant != None {
		return 0
	}
	return None
}

// Chain walks the links from head. The walk stops early if it revisits a
// face.
func (fs *FaceStore) Chain(head int) []int {
	if !fs.valid(head) {
		return nil
	}
	chain := make([]int, 0, len(fs.faces))
	seen := make([]bool, len(fs.faces))
	for i := head; i != None; i = fs.faces[i].next {
		if seen[i] {
			glog.Warningf("face chain loops back to face %d", i)
			break
		}
		seen[i] = true
		chain = append(chain, i)
	}
	return chain
}
