package bostrip

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

const dxfDefaultLayer = "0"

// dxfFace collects the group codes of one 3DFACE entity.
type dxfFace struct {
	layer   string
	corners [4]mgl64.Vec3
	seen    [4]bool
}

func (f *dxfFace) set(code int, value string) error {
	switch {
	case code == 8:
		f.layer = value
	case code >= 10 && code <= 33 && code%10 <= 3:
		axis, corner := code/10-1, code%10
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("could not parse float value '%s': %w", value, err)
		}
		f.corners[corner][axis] = v
		f.seen[corner] = true
	}
	return nil
}

func (f *dxfFace) points() ([]mgl64.Vec3, error) {
	for c := 0; c < 3; c++ {
		if !f.seen[c] {
			return nil, fmt.Errorf("3DFACE is missing corner %d", c)
		}
	}
	// A triangle repeats its third corner as the fourth.
	if !f.seen[3] || f.corners[3] == f.corners[2] {
		return f.corners[:3], nil
	}
	return f.corners[:], nil
}

// NewModelFromDXF reads the 3DFACE entities of a DXF file. Faces are grouped
// into one mesh per layer, in order of first appearance.
func NewModelFromDXF(reader io.Reader, name string, weld bool) (*Model, error) {
	model := NewModel(name)
	scanner := bufio.NewScanner(reader)
	line := 0

	readPair := func() (int, string, error) {
		var pair [2]string
		for i := range pair {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return 0, "", err
				}
				if i == 1 {
					return 0, "", fmt.Errorf("unexpected end of file after group code on line %d", line)
				}
				return 0, "", io.EOF
			}
			line++
			pair[i] = strings.TrimSpace(scanner.Text())
		}
		code, err := strconv.Atoi(pair[0])
		if err != nil {
			return 0, "", fmt.Errorf("line %d: could not parse group code '%s': %w", line-1, pair[0], err)
		}
		return code, pair[1], nil
	}

	var face *dxfFace
	flush := func() error {
		if face == nil {
			return nil
		}
		points, err := face.points()
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		layer := face.layer
		if layer == "" {
			layer = dxfDefaultLayer
		}
		model.MeshNamed(layer, weld).AddPolygon(points)
		face = nil
		return nil
	}

	for {
		code, value, err := readPair()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading from DXF source: %w", err)
		}
		if code == 0 {
			if err := flush(); err != nil {
				return nil, err
			}
			if value == "3DFACE" {
				face = &dxfFace{}
			}
			continue
		}
		if face != nil {
			if err := face.set(code, value); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return model, nil
}
