package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the top-level structure of a catalog file: destination name to city
// entry.
type File map[string]CityImport

// CityImport defines one destination in the catalog file. Center is an
// optional [lat, lon] pair.
type CityImport struct {
	Center []float64   `json:"center,omitempty" yaml:"center,omitempty"`
	POI    []POIImport `json:"poi" yaml:"poi"`
}

// POIImport defines a point of interest in the catalog file.
type POIImport struct {
	Name        string   `json:"name" yaml:"name"`
	Theme       string   `json:"theme" yaml:"theme"`
	Cost        *float64 `json:"cost,omitempty" yaml:"cost,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty" yaml:"duration_min,omitempty"`
	Rating      *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	Reviews     *int     `json:"reviews,omitempty" yaml:"reviews,omitempty"`
	Lat         *float64 `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty" yaml:"lon,omitempty"`
}

// LoadFile reads a catalog from path. Files ending in .yaml or .yml are
// parsed as YAML, anything else as JSON.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON decodes a JSON catalog.
func ParseJSON(data []byte) (File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return f, nil
}

// ParseYAML decodes a YAML catalog.
func ParseYAML(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return f, nil
}
