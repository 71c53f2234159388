package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandsmark/bostrip"
)

const ribbonOBJ = `v 0 0 0
v 0 1 0
v 1 1 0
v 1 0 0
v 2 1 0
v 2 0 0
o ribbon
f 1 2 3 4
f 4 3 5 6
o fan
f 3 2 1
f 3 1 4
f 3 4 6
f 3 6 5
`

func writeModel(t *testing.T, dir string) string {
	t.Helper()
	fileName := filepath.Join(dir, "ribbon.obj")
	require.NoError(t, os.WriteFile(fileName, []byte(ribbonOBJ), 0o644))
	return fileName
}

func TestStripify(t *testing.T) {
	dir := t.TempDir()
	model := writeModel(t, dir)

	var out bytes.Buffer
	require.NoError(t, stripify(&out, []string{model}, bostrip.DefaultOptions(), ""))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ribbon/ribbon: TRIANGLE_STRIP faces=4 indices=6 "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ribbon/fan: TRIANGLES faces=4 indices=12 "), lines[1])
}

func TestStripifyFirstMeshOnly(t *testing.T) {
	model := writeModel(t, t.TempDir())
	opts := bostrip.DefaultOptions()
	opts.FirstMeshOnly = true

	var out bytes.Buffer
	require.NoError(t, stripify(&out, []string{model}, opts, ""))
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
}

func TestStripifySave(t *testing.T) {
	dir := t.TempDir()
	model := writeModel(t, dir)
	saved := filepath.Join(dir, "ribbon.yaml")

	var out bytes.Buffer
	require.NoError(t, stripify(&out, []string{model}, bostrip.DefaultOptions(), saved))
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Contains(t, string(data), "primitive: TRIANGLE_STRIP")
	assert.Contains(t, string(data), "primitive: TRIANGLES")

	err = stripify(&out, []string{model, model}, bostrip.DefaultOptions(), saved)
	assert.Error(t, err)
}

func TestStripifyMissingModel(t *testing.T) {
	var out bytes.Buffer
	err := stripify(&out, []string{filepath.Join(t.TempDir(), "nope.obj")}, bostrip.DefaultOptions(), "")
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
