// ABOUTME: Local campus document loader for the CLI
// ABOUTME: Reads YAML or JSON files into the shared campus tree model

package campusfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// Extensions lists the file extensions recognized as campus documents.
var Extensions = []string{".yaml", ".yml", ".json"}

// IsCampusFile reports whether the path carries a recognized extension.
func IsCampusFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load reads a campus document from disk. The extension picks the codec;
// anything that is not .json parses as YAML.
func Load(path string) (*models.Campus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read campus file: %w", err)
	}
	return Decode(path, data)
}

// Decode parses already-read document bytes. The path is only consulted for
// its extension and for error messages.
func Decode(path string, data []byte) (*models.Campus, error) {
	var campus models.Campus
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &campus); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return &campus, nil
	}
	if err := yaml.Unmarshal(data, &campus); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &campus, nil
}
