package bostrip

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultStepsPerFace scales the search budget with the square of the
	// face count.
	DefaultStepsPerFace = 64
	DefaultMinSteps     = 4096
)

// Options control how meshes are prepared and stripified.
type Options struct {
	// MaxSteps bounds the number of tentative face placements of one
	// search. Zero picks a budget from the face count.
	MaxSteps int `yaml:"max_steps"`
	// Optimize drops degenerate faces before building adjacency.
	Optimize bool `yaml:"optimize"`
	// Weld merges vertices with identical positions while loading.
	Weld bool `yaml:"weld"`
	// FirstMeshOnly stops loaders after the first mesh of a model.
	FirstMeshOnly bool `yaml:"first_mesh_only"`
}

func DefaultOptions() Options {
	return Options{
		Optimize: true,
		Weld:     true,
	}
}

func (o Options) maxSteps(faces int) int {
	if o.MaxSteps > 0 {
		return o.MaxSteps
	}
	return DefaultStepsPerFace*faces*faces + DefaultMinSteps
}

// LoadOptions reads options from a YAML file on top of DefaultOptions.
func LoadOptions(fileName string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(fileName)
	if err != nil {
		return opts, fmt.Errorf("could not read options file %s: %w", fileName, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("error parsing options file %s: %w", fileName, err)
	}
	if opts.MaxSteps < 0 {
		return opts, fmt.Errorf("options file %s: max_steps must not be negative", fileName)
	}
	return opts, nil
}
