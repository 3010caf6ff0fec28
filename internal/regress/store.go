package regress

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Save writes b to path as YAML.
func Save(path string, b *Baseline) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("regress: encode baseline: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("regress: write baseline: %w", err)
	}
	return nil
}

// Load reads a baseline written by Save.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("regress: read baseline: %w", err)
	}
	var b Baseline
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("regress: decode baseline %s: %w", path, err)
	}
	return &b, nil
}
