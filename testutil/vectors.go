package testutil

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Vector is a single test vector of a binary interval operation.
// Intervals are written as bound lists: [] is the empty interval and
// [a, b] is the interval from a to b. Infinities are written .inf and -.inf.
type Vector struct {
	Class string    `yaml:"class"`
	X     []float64 `yaml:"x"`
	Y     []float64 `yaml:"y"`
	Want  []float64 `yaml:"want"`
}

// VectorFile is a collection of test vectors for the operation Op.
type VectorFile struct {
	Op      string   `yaml:"op"`
	Vectors []Vector `yaml:"vectors"`
}

// LoadVectors parses the test vectors stored at path.
func LoadVectors(path string) (VectorFile, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return VectorFile{}, err
	}

	var res VectorFile
	if err := yaml.UnmarshalStrict(contents, &res); err != nil {
		return VectorFile{}, fmt.Errorf("%s: %w", path, err)
	}

	for i, v := range res.Vectors {
		for _, bs := range [][]float64{v.X, v.Y, v.Want} {
			if len(bs) != 0 && len(bs) != 2 {
				return VectorFile{}, fmt.Errorf("%s: vector %d (%s): bound list of length %d", path, i, v.Class, len(bs))
			}
		}
	}
	return res, nil
}
