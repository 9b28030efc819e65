package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// loadVars reads variable definitions from a TOML or YAML file, chosen by the
// file extension. The file is a flat table of names to numbers:
//
//	x = 4.0
//	y = 0.5
func loadVars(path string) (map[string]float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var vars map[string]float64
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &vars)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &vars)
	default:
		return nil, fmt.Errorf("unknown variables file type %q (want .toml, .yaml, or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return vars, nil
}
