package bostrip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(faces ...[3]int) *FaceStore {
	fs := NewFaceStore()
	for _, f := range faces {
		fs.AddFace(NewFace(f[0], f[1], f[2]))
	}
	return fs
}

// assertLinksConsistent checks that every next link has a matching previous
// link and the other way round.
func assertLinksConsistent(t *testing.T, fs *FaceStore) {
	t.Helper()
	for i := 0; i < fs.FaceCount(); i++ {
		f := fs.GetFace(i)
		if n := f.Next(); n != None {
			assert.Equal(t, i, fs.GetFace(n).Previous(), "face %d -> %d", i, n)
		}
		if p := f.Previous(); p != None {
			assert.Equal(t, i, fs.GetFace(p).Next(), "face %d <- %d", i, p)
		}
	}
}

func TestSetNextAndPrevious(t *testing.T) {
	fs := newTestStore([3]int{0, 1, 2}, [3]int{1, 2, 3}, [3]int{2, 3, 4})
	require.NoError(t, fs.SetNext(0, 1))
	require.NoError(t, fs.SetPrevious(2, 1))
	assertLinksConsistent(t, fs)
	assert.Equal(t, 0, fs.Head())
	assert.Equal(t, []int{0, 1, 2}, fs.Chain(0))
}

func TestSetNextRefusesConflict(t *testing.T) {
	fs := newTestStore([3]int{0, 1, 2}, [3]int{1, 2, 3}, [3]int{2, 3, 4})
	require.NoError(t, fs.SetNext(0, 2))

	err := fs.SetNext(1, 2)
	assert.ErrorIs(t, err, ErrLinkConflict)
	assert.Equal(t, 0, fs.GetFace(2).Previous())
	assert.Equal(t, None, fs.GetFace(1).Next())
	assertLinksConsistent(t, fs)
}

func TestSetPreviousRefusesConflict(t *testing.T) {
	fs := newTestStore([3]int{0, 1, 2}, [3]int{1, 2, 3}, [3]int{2, 3, 4})
	require.NoError(t, fs.SetNext(0, 1))

	err := fs.SetPrevious(2, 0)
	assert.ErrorIs(t, err, ErrLinkConflict)
	assert.Equal(t, 1, fs.GetFace(0).Next())
	assert.Equal(t, None, fs.GetFace(2).Previous())
	assertLinksConsistent(t, fs)
}

func TestSetNextOutOfRange(t *testing.T) {
	fs := newTestStore([3]int{0, 1, 2})
	assert.ErrorIs(t, fs.SetNext(0, 5), ErrLinkConflict)
	assert.ErrorIs(t, fs.SetNext(0, 0), ErrLinkConflict)
}

func TestRelinkClearsOldPartner(t *testing.T) {
	fs := newTestStore([3]int{0, 1, 2}, [3]int{1, 2, 3}, [3]int{2, 3, 4})
	require.NoError(t, fs.SetNext(0, 1))
	require.NoError(t, fs.SetNext(0, 2))
	assert.Equal(t, None, fs.GetFace(1).Previous())
	assertLinksConsistent(t, fs)
}

func TestDelNode(t *testing.T) {
	testCases := []struct {
		name     string
		remove   int
		expected []int
		head     int
	}{
		{"middle", 1, []int{0, 2, 3}, 0},
		{"head", 0, []int{1, 2, 3}, 1},
		{"tail", 3, []int{0, 1, 2}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs := newTestStore([3]int{0, 1, 2}, [3]int{1, 2, 3}, [3]int{2, 3, 4}, [3]int{3, 4, 5})
			for i := 0; i < 3; i++ {
				require.NoError(t, fs.SetNext(i, i+1))
			}
			fs.DelNode(tc.remove)
			removed := fs.GetFace(tc.remove)
			assert.Equal(t, None, removed.Previous())
			assert.Equal(t, None, removed.Next())
			assertLinksConsistent(t, fs)
			assert.Equal(t, tc.head, fs.Head())
			assert.Equal(t, tc.expected, fs.Chain(tc.head))
		})
	}
}

func TestDisconnect(t *testing.T) {
	fs := newTestStore([3]int{0, 1, 2}, [3]int{1, 2, 3})
	require.NoError(t, fs.SetNext(0, 1))
	fs.GetFace(1).SetRelevantPoint(2)
	fs.Disconnect()
	for i := 0; i < fs.FaceCount(); i++ {
		f := fs.GetFace(i)
		assert.Equal(t, None, f.Previous())
		assert.Equal(t, None, f.Next())
		assert.Equal(t, None, f.RelevantPoint())
	}
	assert.Equal(t, None, fs.Head())
}

func TestChainStopsOnLoop(t *testing.T) {
	fs := newTestStore([3]int{0, 1, 2}, [3]int{1, 2, 3}, [3]int{2, 3, 4})
	require.NoError(t, fs.SetNext(0, 1))
	require.NoError(t, fs.SetNext(1, 2))
	// Close the loop behind the store's back.
	fs.GetFace(2).next = 0
	assert.Equal(t, []int{0, 1, 2}, fs.Chain(0))
}

func TestFaceStoreCopy(t *testing.T) {
	fs := newTestStore([3]int{0, 1, 2}, [3]int{1, 2, 3}, [3]int{2, 3, 4})
	require.NoError(t, fs.SetNext(0, 1))
	c := fs.Copy()
	assert.Equal(t, []int{0, 1}, c.Chain(0))

	c.Disconnect()
	assert.Equal(t, 1, fs.GetFace(0).Next())
	assert.NotSame(t, fs.GetFace(2), c.GetFace(2))
}
