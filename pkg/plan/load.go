package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses a layout request from YAML bytes.
func Load(data []byte) (*Request, error) {
	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing request YAML: %w", err)
	}
	return &req, nil
}

// LoadFile reads a layout request from a YAML file.
func LoadFile(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}
	return Load(data)
}
