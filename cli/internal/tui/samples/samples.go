// ABOUTME: Discovers sample campus documents shipped with the repo
// ABOUTME: Looks in ./samples or wherever CAMPUS_SAMPLES_PATH points

package samples

import (
	"os"
	"path/filepath"

	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/campusfile"
)

// SampleFile represents a discovered sample document
type SampleFile struct {
	Name string // Filename (e.g., "hyperscale-campus.yaml")
	Path string // Full path to the file
}

// Discover finds all campus documents in the given directory
func Discover(dir string) ([]SampleFile, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []SampleFile{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []SampleFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !campusfile.IsCampusFile(entry.Name()) {
			continue
		}
		files = append(files, SampleFile{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	return files, nil
}

// FindSamplesDir locates the samples directory
// Checks in order:
// 1. CAMPUS_SAMPLES_PATH environment variable
// 2. ./samples/ relative to given base path
func FindSamplesDir(basePath string) string {
	// Check environment variable first
	if envPath := os.Getenv("CAMPUS_SAMPLES_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	// Check relative to base path
	samplesDir := filepath.Join(basePath, "samples")
	if _, err := os.Stat(samplesDir); err == nil {
		return samplesDir
	}

	return ""
}
