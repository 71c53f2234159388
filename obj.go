package bostrip

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

const objDefaultMesh = "default"

// NewModelFromOBJ reads the v and f records of a Wavefront OBJ file. o and g
// records start a new mesh. Polygons are fanned into triangles. Each file
// vertex enters a mesh's pool once, so faces sharing a file index stay
// connected with or without welding.
func NewModelFromOBJ(reader io.Reader, name string, weld bool) (*Model, error) {
	model := NewModel(name)
	scanner := bufio.NewScanner(reader)
	var verts []mgl64.Vec3
	pools := make(map[*FaceMesh]map[int]int)
	current := objDefaultMesh
	line := 0

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs three coordinates", line)
			}
			var v mgl64.Vec3
			for k := 0; k < 3; k++ {
				f, err := strconv.ParseFloat(fields[k+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: could not parse float value '%s': %w", line, fields[k+1], err)
				}
				v[k] = f
			}
			verts = append(verts, v)
		case "o", "g":
			if len(fields) > 1 {
				current = strings.Join(fields[1:], " ")
			} else {
				current = objDefaultMesh
			}
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least three vertices", line)
			}
			fm := model.MeshNamed(current, weld)
			pool, ok := pools[fm]
			if !ok {
				pool = make(map[int]int)
				pools[fm] = pool
			}
			indices := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := objIndex(tok, len(verts))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				p, found := pool[i]
				if !found {
					p = fm.Mesh.AddPoint(verts[i])
					pool[i] = p
				}
				indices = append(indices, p)
			}
			fm.AddIndexedPolygon(indices)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from OBJ source: %w", err)
	}
	return model, nil
}

// objIndex resolves a face token such as "7", "7/2/7" or "-1" to a zero
// based vertex index.
func objIndex(tok string, count int) (int, error) {
	if slash := strings.IndexByte(tok, '/'); slash >= 0 {
		tok = tok[:slash]
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("could not parse vertex index '%s': %w", tok, err)
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += count
	default:
		return 0, fmt.Errorf("vertex index 0 is not valid")
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("vertex index %s out of range (%d vertices)", tok, count)
	}
	return i, nil
}
