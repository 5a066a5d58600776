package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aurceive/loadout_roster/internal/domain"

	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog layout shared by the YAML and JSON forms.
type File struct {
	Items []domain.Item `yaml:"items" json:"items"`
}

// LoadFile reads catalog items from a .yaml/.yml or .json file.
func LoadFile(path string) ([]domain.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog (%s): %w", path, err)
	}
	return Parse(b, filepath.Ext(path))
}

// Parse decodes catalog bytes; ext selects the format.
func Parse(b []byte, ext string) ([]domain.Item, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse catalog yaml: %w", err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse catalog json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (expected .yaml, .yml or .json)", ext)
	}
	return f.Items, nil
}
