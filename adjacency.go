package bostrip

import (
	"slices"

	"github.com/golang/glog"
)

// Adjacency lists, for every face of a store, the faces sharing an edge with
// it. It is built once and never modified by the strip search.
type Adjacency struct {
	lists      [][]int
	all        []int
	duplicates [][2]int
}

// BuildAdjacency tests each unordered pair of faces once. Lists keep face
// input order.
func BuildAdjacency(fs *FaceStore) *Adjacency {
	n := fs.FaceCount()
	a := &Adjacency{
		lists: make([][]int, n),
		all:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		a.all[i] = i
		fi := fs.GetFace(i)
		for j := i + 1; j < n; j++ {
			switch SharedPoints(fi, fs.GetFace(j)) {
			case 2:
				a.lists[i] = append(a.lists[i], j)
				a.lists[j] = append(a.lists[j], i)
			case 3:
				glog.Warningf("faces %d %v and %d %v are identical", i, fi, j, fs.GetFace(j))
				a.duplicates = append(a.duplicates, [2]int{i, j})
			}
		}
	}
	return a
}

// Adjacent returns the faces adjacent to face i. For None it returns every
// face, which is the candidate pool when no chain has been started; that list
// is a fresh copy. Per-face lists are shared and must not be modified.
func (a *Adjacency) Adjacent(i int) []int {
	if i == None {
		return slices.Clone(a.all)
	}
	if i < 0 || i >= len(a.lists) {
		return nil
	}
	return a.lists[i]
}

func (a *Adjacency) IsAdjacent(i, j int) bool {
	for _, k := range a.Adjacent(i) {
		if k == j {
			return true
		}
	}
	return false
}

// Duplicates returns the pairs of faces that share all three points.
func (a *Adjacency) Duplicates() [][2]int {
	return a.duplicates
}

func (a *Adjacency) FaceCount() int {
	return len(a.lists)
}

// Isolated counts faces without any neighbour.
func (a *Adjacency) Isolated() int {
	count := 0
	for _, l := range a.lists {
		if len(l) == 0 {
			count++
		}
	}
	return count
}
