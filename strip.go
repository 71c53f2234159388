package bostrip

import (
	"github.com/golang/glog"
	"github.com/zyedidia/generic/mapset"
)

// StripResult describes the outcome of one strip build.
type StripResult struct {
	Primitive Primitive
	// Faces in the chain; zero in list mode.
	Faces      int
	Steps      int
	LimitHit   bool
	Duplicates [][2]int
}

// frame is one placed face of the chain being searched. Popping a frame is
// the whole undo of its placement.
type frame struct {
	face     int
	relevant int
	cursor   int
}

type stripSearch struct {
	store     *FaceStore
	adj       *Adjacency
	remaining mapset.Set[int]
	path      []frame
	first     int
	headLast  int
	steps     int
	maxSteps  int
	limitHit  bool
}

// BuildStrip tries to order every face of fs into one triangle strip. On
// success the faces are linked head to tail with their relevant points set.
// Otherwise all links are cleared and the result is in list mode. It never
// fails from the caller's point of view.
func BuildStrip(fs *FaceStore, adj *Adjacency, opts Options) *StripResult {
	fs.Disconnect()
	n := fs.FaceCount()
	res := &StripResult{Primitive: Triangles, Duplicates: adj.Duplicates()}
	if n == 0 {
		return res
	}

	s := &stripSearch{
		store:    fs,
		adj:      adj,
		maxSteps: opts.maxSteps(n),
		path:     make([]frame, 0, n),
	}

	heads, ok := s.heads()
	if ok {
	search:
		for _, head := range heads {
			for first := 0; first < 3; first++ {
				if s.run(head, first) {
					break search
				}
				if s.limitHit {
					break search
				}
			}
		}
	}

	res.Steps = s.steps
	res.LimitHit = s.limitHit
	if s.limitHit {
		glog.Warningf("strip search gave up after %d steps on %d faces", s.steps, n)
	}
	if !ok || len(s.path) != n || s.limitHit {
		fs.Disconnect()
		glog.V(1).Infof("no strip covers all %d faces, using triangles", n)
		return res
	}
	if !s.commit() {
		fs.Disconnect()
		return res
	}
	res.Primitive = TriangleStrip
	res.Faces = n
	glog.V(2).Infof("strip of %d faces found in %d steps", n, s.steps)
	return res
}

// heads returns the faces worth starting from. A face with a single
// neighbour can only sit at an end of the chain, and a reversed strip is
// still a strip, so when such faces exist only they are tried.
func (s *stripSearch) heads() ([]int, bool) {
	n := s.adj.FaceCount()
	if n == 1 {
		return []int{0}, true
	}
	var ends []int
	for _, i := range s.adj.Adjacent(None) {
		switch len(s.adj.Adjacent(i)) {
		case 0:
			return nil, false
		case 1:
			ends = append(ends, i)
		}
	}
	if len(ends) > 2 || !s.connected() {
		return nil, false
	}
	if len(ends) > 0 {
		return ends, true
	}
	return s.adj.Adjacent(None), true
}

func (s *stripSearch) connected() bool {
	n := s.adj.FaceCount()
	seen := mapset.New[int]()
	seen.Put(0)
	queue := []int{0}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, j := range s.adj.Adjacent(i) {
			if !seen.Has(j) {
				seen.Put(j)
				queue = append(queue, j)
			}
		}
	}
	return seen.Size() == n
}

// run searches for a strip starting at head with the given slot emitted
// first.
func (s *stripSearch) run(head, first int) bool {
	s.remaining = mapset.New[int]()
	for _, i := range s.adj.Adjacent(None) {
		if i != head {
			s.remaining.Put(i)
		}
	}
	s.path = append(s.path[:0], frame{face: head, relevant: first})
	s.first = first
	s.headLast = None

	for s.remaining.Size() > 0 {
		if s.advance() {
			continue
		}
		if s.limitHit || len(s.path) == 1 {
			return false
		}
		last := s.path[len(s.path)-1]
		s.path = s.path[:len(s.path)-1]
		s.remaining.Put(last.face)
	}
	return true
}

// advance places the next feasible neighbour of the chain's tail.
func (s *stripSearch) advance() bool {
	top := len(s.path) - 1
	candidates := s.adj.Adjacent(s.path[top].face)
	for s.path[top].cursor < len(candidates) {
		cand := candidates[s.path[top].cursor]
		s.path[top].cursor++
		if !s.remaining.Has(cand) {
			continue
		}
		relevant, headLast, ok := s.continuation(cand)
		if !ok {
			continue
		}
		if s.steps >= s.maxSteps {
			s.limitHit = true
			return false
		}
		s.steps++
		if len(s.path) == 2 {
			s.headLast = headLast
		}
		s.remaining.Remove(cand)
		s.path = append(s.path, frame{face: cand, relevant: relevant})
		return true
	}
	return false
}

// continuation checks whether cand can follow the current tail. The last two
// emitted vertices must both be points of cand; its remaining point is the
// new one. While the tail directly follows the head, the head's last two
// vertices are still unordered and cand decides which of them went last.
func (s *stripSearch) continuation(cand int) (int, int, bool) {
	c := s.store.GetFace(cand)
	tail := s.path[len(s.path)-1]
	tf := s.store.GetFace(tail.face)
	headLast := None

	switch len(s.path) {
	case 1:
		for k := 1; k <= 2; k++ {
			if c.FindPointIndex(tf.Points[(s.first+k)%3]) == None {
				return None, None, false
			}
		}
	case 2:
		if c.FindPointIndex(tf.Points[tail.relevant]) == None {
			return None, None, false
		}
		head := s.store.GetFace(s.path[0].face)
		for k := 1; k <= 2; k++ {
			slot := (s.first + k) % 3
			if c.FindPointIndex(head.Points[slot]) == None {
				continue
			}
			if headLast != None {
				return None, None, false
			}
			headLast = slot
		}
		if headLast == None {
			return None, None, false
		}
	default:
		pred := s.path[len(s.path)-2]
		pf := s.store.GetFace(pred.face)
		if c.FindPointIndex(pf.Points[pred.relevant]) == None ||
			c.FindPointIndex(tf.Points[tail.relevant]) == None {
			return None, None, false
		}
	}

	relevant := None
	for slot, p := range c.Points {
		if tf.FindPointIndex(p) != None {
			continue
		}
		if relevant != None {
			return None, None, false
		}
		relevant = slot
	}
	if relevant == None {
		return None, None, false
	}
	return relevant, headLast, true
}

// commit writes the found path into the store as links and relevant points.
func (s *stripSearch) commit() bool {
	head := s.store.GetFace(s.path[0].face)
	second, third := (s.first+1)%3, (s.first+2)%3
	if len(s.path) > 2 && s.headLast == second {
		second, third = third, second
	}
	head.SetRelevantPoint(EncodeRelevantPoints(s.first, second, third))

	for k := 1; k < len(s.path); k++ {
		s.store.GetFace(s.path[k].face).SetRelevantPoint(s.path[k].relevant)
		if err := s.store.SetNext(s.path[k-1].face, s.path[k].face); err != nil {
			glog.Warningf("could not link strip: %v", err)
			return false
		}
	}
	return true
}
