package bostrip

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/go-restruct/restruct"
	"gopkg.in/yaml.v3"
)

var ErrBadStripFile = errors.New("bostrip: not a strip file")

const (
	stripFileVersion = 1
	// StripFileExt is the extension of the binary save format.
	StripFileExt = ".bstrip"
)

var stripFileMagic = [4]byte{'B', 'S', 'T', 'R'}

type stripFile struct {
	Magic     [4]byte
	Version   uint16
	MeshCount uint16 `struct:"uint16,sizeof=Meshes"`
	Meshes    []stripFileMesh
}

type stripFileMesh struct {
	Primitive   uint8
	NameLen     uint16 `struct:"uint16,sizeof=Name"`
	Name        []byte
	VertexCount uint32 `struct:"uint32,sizeof=Vertices"`
	Vertices    []stripFileVertex
	IndexCount  uint32 `struct:"uint32,sizeof=Indices"`
	Indices     []uint32
}

type stripFileVertex struct {
	X, Y, Z float32
}

type yamlModel struct {
	Name   string     `yaml:"name"`
	Meshes []yamlMesh `yaml:"meshes"`
}

type yamlMesh struct {
	Name      string       `yaml:"name"`
	Primitive string       `yaml:"primitive"`
	Faces     int          `yaml:"faces"`
	Vertices  [][3]float64 `yaml:"vertices,flow"`
	Indices   []int        `yaml:"indices,flow"`
}

// SaveModel writes the built index buffers of model. .yaml and .yml files get
// a YAML document, anything else the binary strip format.
func SaveModel(fileName string, model *Model) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		data, err = MarshalYAML(model)
	default:
		data, err = MarshalStripFile(model)
	}
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", fileName, err)
	}
	if err := os.WriteFile(fileName, data, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", fileName, err)
	}
	return nil
}

func MarshalYAML(model *Model) ([]byte, error) {
	doc := yamlModel{Name: model.Name}
	for _, fm := range model.Meshes {
		indices, p := fm.Indices()
		ym := yamlMesh{
			Name:      fm.Name,
			Primitive: p.String(),
			Faces:     fm.FaceCount(),
			Vertices:  make([][3]float64, len(fm.Mesh.Points)),
			Indices:   indices,
		}
		for i, v := range fm.Mesh.Points {
			ym.Vertices[i] = [3]float64(v)
		}
		doc.Meshes = append(doc.Meshes, ym)
	}
	return yaml.Marshal(&doc)
}

func MarshalStripFile(model *Model) ([]byte, error) {
	if len(model.Meshes) > 0xffff {
		return nil, fmt.Errorf("too many meshes: %d", len(model.Meshes))
	}
	sf := stripFile{Magic: stripFileMagic, Version: stripFileVersion}
	for _, fm := range model.Meshes {
		indices, p := fm.Indices()
		if len(fm.Name) > 0xffff {
			return nil, fmt.Errorf("mesh name too long: %d bytes", len(fm.Name))
		}
		m := stripFileMesh{
			Primitive: uint8(p),
			Name:      []byte(fm.Name),
			Vertices:  make([]stripFileVertex, len(fm.Mesh.Points)),
			Indices:   make([]uint32, len(indices)),
		}
		for i, v := range fm.Mesh.Points {
			m.Vertices[i] = stripFileVertex{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
		}
		for i, idx := range indices {
			m.Indices[i] = uint32(idx)
		}
		sf.Meshes = append(sf.Meshes, m)
	}
	return restruct.Pack(binary.LittleEndian, &sf)
}

// UnmarshalStripFile rebuilds a model from the binary strip format. Faces are
// recovered from the index buffers; the model still has to be built to get
// strips again.
func UnmarshalStripFile(data []byte, name string) (*Model, error) {
	if len(data) < len(stripFileMagic)+4 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadStripFile, len(data))
	}
	var sf stripFile
	if err := restruct.Unpack(data, binary.LittleEndian, &sf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadStripFile, err)
	}
	if sf.Magic != stripFileMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadStripFile, sf.Magic[:])
	}
	if sf.Version != stripFileVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadStripFile, sf.Version)
	}

	model := NewModel(name)
	for _, m := range sf.Meshes {
		fm := NewFaceMesh(string(m.Name), false)
		for _, v := range m.Vertices {
			fm.Mesh.AddPoint(mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)})
		}
		indices := make([]int, len(m.Indices))
		for i, idx := range m.Indices {
			if int(idx) >= len(m.Vertices) {
				return nil, fmt.Errorf("%w: mesh %q index %d out of range", ErrBadStripFile, m.Name, idx)
			}
			indices[i] = int(idx)
		}
		switch Primitive(m.Primitive) {
		case TriangleStrip:
			indices = StripToTriangles(indices)
		case Triangles:
		default:
			return nil, fmt.Errorf("%w: mesh %q primitive %d", ErrBadStripFile, m.Name, m.Primitive)
		}
		for k := 0; k+2 < len(indices); k += 3 {
			fm.AddFace(indices[k], indices[k+1], indices[k+2])
		}
		model.Meshes = append(model.Meshes, fm)
	}
	return model, nil
}

func newModelFromStripFile(reader io.Reader, name string) (*Model, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return UnmarshalStripFile(data, name)
}
