package bostrip

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrUnsupportedPLY = errors.New("bostrip: unsupported PLY file")

type plyProperty struct {
	name string
	list bool
}

type plyElement struct {
	name       string
	count      int
	properties []plyProperty
}

func (e *plyElement) property(names ...string) int {
	for i, p := range e.properties {
		for _, name := range names {
			if p.name == name {
				return i
			}
		}
	}
	return None
}

// NewModelFromPLY reads an ASCII PLY file into a model with one mesh. Vertex
// positions come from the x, y and z properties of the vertex element and
// faces from the vertex_indices list of the face element; n-gons are fanned.
// Other elements and properties are skipped.
func NewModelFromPLY(reader io.Reader, name string, weld bool) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	elements, err := readPLYHeader(scanner)
	if err != nil {
		return nil, err
	}

	model := NewModel(name)
	fm := model.MeshNamed(name, weld)
	var pool []int
	for _, e := range elements {
		for i := 0; i < e.count; i++ {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, fmt.Errorf("error reading from PLY source: %w", err)
				}
				return nil, fmt.Errorf("unexpected end of file while reading %s %d", e.name, i)
			}
			fields := strings.Fields(scanner.Text())
			switch e.name {
			case "vertex":
				v, err := plyVertex(e, fields)
				if err != nil {
					return nil, fmt.Errorf("vertex %d: %w", i, err)
				}
				pool = append(pool, fm.Mesh.AddPoint(v))
			case "face":
				indices, err := plyFace(e, fields, pool)
				if err != nil {
					return nil, fmt.Errorf("face %d: %w", i, err)
				}
				fm.AddIndexedPolygon(indices)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from PLY source: %w", err)
	}
	return model, nil
}

func readPLYHeader(scanner *bufio.Scanner) ([]*plyElement, error) {
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "ply" {
		return nil, fmt.Errorf("%w: missing ply magic", ErrUnsupportedPLY)
	}
	var elements []*plyElement
	var current *plyElement
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "format":
			if len(parts) < 2 || parts[1] != "ascii" {
				return nil, fmt.Errorf("%w: format %v", ErrUnsupportedPLY, parts[1:])
			}
		case "element":
			if len(parts) != 3 {
				return nil, fmt.Errorf("bad element line %q", scanner.Text())
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("bad %s count '%s'", parts[1], parts[2])
			}
			current = &plyElement{name: parts[1], count: count}
			elements = append(elements, current)
		case "property":
			if current == nil {
				return nil, fmt.Errorf("property before any element")
			}
			switch {
			case len(parts) == 5 && parts[1] == "list":
				current.properties = append(current.properties, plyProperty{name: parts[4], list: true})
			case len(parts) == 3:
				current.properties = append(current.properties, plyProperty{name: parts[2]})
			default:
				return nil, fmt.Errorf("bad property line %q", scanner.Text())
			}
		case "end_header":
			return elements, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from PLY source: %w", err)
	}
	return nil, fmt.Errorf("%w: no end_header", ErrUnsupportedPLY)
}

func plyVertex(e *plyElement, fields []string) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	if len(fields) < len(e.properties) {
		return v, fmt.Errorf("expected %d values, got %d", len(e.properties), len(fields))
	}
	for k, axis := range []string{"x", "y", "z"} {
		p := e.property(axis)
		if p == None || e.properties[p].list {
			return v, fmt.Errorf("%w: vertex has no scalar %s", ErrUnsupportedPLY, axis)
		}
		f, err := strconv.ParseFloat(fields[p], 64)
		if err != nil {
			return v, fmt.Errorf("could not parse float value '%s': %w", fields[p], err)
		}
		v[k] = f
	}
	return v, nil
}

// plyFace maps the vertex_indices list of one face line to pool indices.
// Scalar properties before the list take one value each.
func plyFace(e *plyElement, fields []string, pool []int) ([]int, error) {
	p := e.property("vertex_indices", "vertex_index")
	if p == None || !e.properties[p].list {
		return nil, fmt.Errorf("%w: face has no vertex_indices list", ErrUnsupportedPLY)
	}
	for _, prop := range e.properties[:p] {
		if prop.list {
			return nil, fmt.Errorf("%w: list %s before vertex_indices", ErrUnsupportedPLY, prop.name)
		}
	}
	if len(fields) <= p {
		return nil, fmt.Errorf("missing vertex count")
	}
	n, err := strconv.Atoi(fields[p])
	if err != nil {
		return nil, fmt.Errorf("could not parse vertex count '%s': %w", fields[p], err)
	}
	if n < 3 || len(fields) < p+1+n {
		return nil, fmt.Errorf("face needs at least three of its %d vertices, got %d values", n, len(fields)-p-1)
	}
	indices := make([]int, n)
	for k := range indices {
		tok := fields[p+1+k]
		i, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex index '%s': %w", tok, err)
		}
		if i < 0 || i >= len(pool) {
			return nil, fmt.Errorf("vertex index %d out of range (%d vertices)", i, len(pool))
		}
		indices[k] = pool[i]
	}
	return indices, nil
}
