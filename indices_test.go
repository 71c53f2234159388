package bostrip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveString(t *testing.T) {
	assert.Equal(t, "TRIANGLES", Triangles.String())
	assert.Equal(t, "TRIANGLE_STRIP", TriangleStrip.String())
	assert.Equal(t, "Primitive(7)", Primitive(7).String())
}

func TestListIndices(t *testing.T) {
	fs := newTestStore([3]int{0, 1, 2}, [3]int{5, 4, 3})
	assert.Equal(t, []int{0, 1, 2, 5, 4, 3}, ListIndices(fs))
}

func TestStripToTriangles(t *testing.T) {
	testCases := []struct {
		name     string
		strip    []int
		expected []int
	}{
		{"too short", []int{0, 1}, nil},
		{"one triangle", []int{0, 1, 2}, []int{0, 1, 2}},
		{"two triangles", []int{0, 1, 2, 3}, []int{0, 1, 2, 2, 1, 3}},
		{"three triangles", []int{0, 1, 2, 3, 4}, []int{0, 1, 2, 2, 1, 3, 2, 3, 4}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripToTriangles(tc.strip))
		})
	}
}

func TestIndicesFallsBackOnCorruptStrip(t *testing.T) {
	testCases := []struct {
		name    string
		corrupt func(fs *FaceStore)
	}{
		{"bad head code", func(fs *FaceStore) { fs.GetFace(0).SetRelevantPoint(1) }},
		{"unset relevant point", func(fs *FaceStore) { fs.GetFace(1).SetRelevantPoint(None) }},
		{"relevant point out of range", func(fs *FaceStore) { fs.GetFace(2).SetRelevantPoint(5) }},
		{"relevant point shared with previous", func(fs *FaceStore) { fs.GetFace(1).SetRelevantPoint(0) }},
		{"broken chain", func(fs *FaceStore) { fs.DelNode(1) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			faces := [][3]int{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}
			fs, res := buildTestStrip(faces, DefaultOptions())
			require.Equal(t, TriangleStrip, res.Primitive)

			tc.corrupt(fs)
			_, err := StripIndices(fs)
			assert.Error(t, err)

			indices, p := Indices(fs, res.Primitive)
			assert.Equal(t, Triangles, p)
			assert.Equal(t, []int{0, 1, 2, 1, 2, 3, 2, 3, 4}, indices)
		})
	}
}

func TestStripIndicesWithoutStrip(t *testing.T) {
	fs := newTestStore([3]int{0, 1, 2}, [3]int{1, 2, 3})
	_, err := StripIndices(fs)
	assert.ErrorIs(t, err, ErrBadRelevantPoint)
}
