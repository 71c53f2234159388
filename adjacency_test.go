package bostrip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// gridFaces triangulates a w by h grid of quads, two faces per quad.
func gridFaces(w, h int) [][3]int {
	var faces [][3]int
	at := func(x, y int) int { return y*(w+1) + x }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a, b, c, d := at(x, y), at(x+1, y), at(x, y+1), at(x+1, y+1)
			faces = append(faces, [3]int{a, c, b}, [3]int{b, c, d})
		}
	}
	return faces
}

func TestAdjacencySymmetricAndExact(t *testing.T) {
	meshes := map[string][][3]int{
		"grid":        gridFaces(3, 2),
		"tetrahedron": {{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}},
		"with duplicate": {{0, 1, 2}, {1, 2, 3}, {0, 1, 2}, {5, 6, 7}},
	}
	for name, faces := range meshes {
		t.Run(name, func(t *testing.T) {
			fs := newTestStore(faces...)
			adj := BuildAdjacency(fs)
			for i := range faces {
				for j := range faces {
					if i == j {
						assert.False(t, adj.IsAdjacent(i, j))
						continue
					}
					shared := SharedPoints(fs.GetFace(i), fs.GetFace(j))
					assert.Equal(t, shared == 2, adj.IsAdjacent(i, j), "faces %d %d", i, j)
					assert.Equal(t, adj.IsAdjacent(i, j), adj.IsAdjacent(j, i), "faces %d %d", i, j)
				}
			}
		})
	}
}

func TestAdjacencyOrderAndPool(t *testing.T) {
	fs := newTestStore([3]int{0, 1, 2}, [3]int{1, 2, 3}, [3]int{2, 3, 4}, [3]int{1, 2, 9})
	adj := BuildAdjacency(fs)
	assert.Equal(t, []int{1, 3}, adj.Adjacent(0))
	assert.Equal(t, []int{0, 2, 3}, adj.Adjacent(1))
	assert.Equal(t, []int{1}, adj.Adjacent(2))
	assert.Equal(t, []int{0, 1, 2, 3}, adj.Adjacent(None))
	assert.Nil(t, adj.Adjacent(10))
	assert.Equal(t, 0, adj.Isolated())
}

func TestAdjacencyPoolIsACopy(t *testing.T) {
	adj := BuildAdjacency(newTestStore([3]int{0, 1, 2}, [3]int{1, 2, 3}))
	pool := adj.Adjacent(None)
	pool[0] = 7
	_ = append(pool[:1], 9)
	assert.Equal(t, []int{0, 1}, adj.Adjacent(None))
}

func TestAdjacencyRepeatedIndexIsNotDuplicate(t *testing.T) {
	fs := newTestStore([3]int{0, 0, 1}, [3]int{0, 1, 2})
	adj := BuildAdjacency(fs)
	assert.Empty(t, adj.Duplicates())
	assert.Equal(t, []int{1}, adj.Adjacent(0))
	assert.Equal(t, []int{0}, adj.Adjacent(1))
}

func TestAdjacencyDuplicates(t *testing.T) {
	fs := newTestStore([3]int{0, 1, 2}, [3]int{2, 1, 0}, [3]int{7, 8, 9})
	adj := BuildAdjacency(fs)
	assert.Equal(t, [][2]int{{0, 1}}, adj.Duplicates())
	assert.Empty(t, adj.Adjacent(0))
	assert.Empty(t, adj.Adjacent(1))
	assert.Equal(t, 3, adj.Isolated())
}

func TestAdjacencyEmpty(t *testing.T) {
	adj := BuildAdjacency(NewFaceStore())
	assert.Equal(t, 0, adj.FaceCount())
	assert.Empty(t, adj.Adjacent(None))
}
