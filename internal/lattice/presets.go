package lattice

import (
	"fmt"
	"slices"
)

const DefaultPreset = "medium"

var presets = map[string][]int{
	"tiny":       {2, 3, 2},
	"small_343":  {3, 4, 3},
	"medium_454": {4, 5, 4},
	"large_565":  {5, 6, 5},
	"small":      {3, 4, 5, 4, 3},
	"medium":     {4, 5, 6, 7, 6, 5, 4},
	"large":      {5, 6, 7, 8, 9, 8, 7, 6, 5},
	"star":       {1, 4, 3, 4, 1},
}

// Preset - row lengths of a named board shape.
func Preset(name string) ([]int, error) {
	rows, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrMalformedRows, name)
	}
	return slices.Clone(rows), nil
}
