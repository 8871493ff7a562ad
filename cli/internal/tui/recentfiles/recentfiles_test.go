// ABOUTME: Tests for recent files management
// ABOUTME: Validates XDG config storage, max limit, and path deduplication

package recentfiles

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	rf := New(tmpDir)

	if rf == nil {
		t.Fatal("New() returned nil")
	}
	if rf.configDir != tmpDir {
		t.Errorf("expected configDir %s, got %s", tmpDir, rf.configDir)
	}
}

func TestLoadEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	rf := New(tmpDir)

	files, err := rf.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty list, got %d files", len(files))
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	rf := New(tmpDir)

	// Create real files for testing
	file1 := filepath.Join(tmpDir, "campus1.yaml")
	file2 := filepath.Join(tmpDir, "campus2.json")
	os.WriteFile(file1, []byte("{}"), 0644)
	os.WriteFile(file2, []byte("{}"), 0644)

	paths := []string{file1, file2}
	if err := rf.Save(paths); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := rf.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 files, got %d", len(loaded))
	}
	if loaded[0] != paths[0] {
		t.Errorf("expected %s, got %s", paths[0], loaded[0])
	}
}

func TestAddMoveToFront(t *testing.T) {
	tmpDir := t.TempDir()
	rf := New(tmpDir)

	file1 := filepath.Join(tmpDir, "campus1.yaml")
	file2 := filepath.Join(tmpDir, "campus2.yaml")
	os.WriteFile(file1, []byte("{}"), 0644)
	os.WriteFile(file2, []byte("{}"), 0644)

	rf.Add(file1)
	rf.Add(file2)

	files, _ := rf.Load()
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	// Most recent should be first
	if files[0] != file2 {
		t.Errorf("expected file2 first, got %s", files[0])
	}

	// Adding file1 again moves it to the front
	rf.Add(file1)
	files, _ = rf.Load()
	if len(files) != 2 {
		t.Fatalf("expected 2 files after re-add, got %d", len(files))
	}
	if files[0] != file1 {
		t.Errorf("expected file1 first after re-add, got %s", files[0])
	}
}

func TestMaxLimit(t *testing.T) {
	tmpDir := t.TempDir()
	rf := New(tmpDir)

	var lastFile string
	for i := 1; i <= 7; i++ {
		f := filepath.Join(tmpDir, "campus"+string(rune('0'+i))+".yaml")
		os.WriteFile(f, []byte("{}"), 0644)
		rf.Add(f)
		lastFile = f
	}

	files, _ := rf.Load()
	if len(files) != MaxRecentFiles {
		t.Errorf("expected %d files max, got %d", MaxRecentFiles, len(files))
	}
	// Most recent should be first
	if files[0] != lastFile {
		t.Errorf("expected %s first, got %s", lastFile, files[0])
	}
}

func TestLoadRemovesStaleFiles(t *testing.T) {
	tmpDir := t.TempDir()
	rf := New(tmpDir)

	realFile := filepath.Join(tmpDir, "real.yaml")
	if err := os.WriteFile(realFile, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	// Save paths including a non-existent file
	paths := []string{"/nonexistent/campus.yaml", realFile}
	rf.Save(paths)

	loaded, err := rf.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("expected 1 file after filtering, got %d", len(loaded))
	}
	if loaded[0] != realFile {
		t.Errorf("expected %s, got %s", realFile, loaded[0])
	}
}

func TestCreatesConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "campusctl")
	rf := New(configDir)

	if _, err := os.Stat(configDir); !os.IsNotExist(err) {
		t.Fatal("config dir should not exist yet")
	}

	// Save should create it
	rf.Add("/path/to/campus.yaml")

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("config dir should have been created")
	}
}

func TestDefaultConfigDir(t *testing.T) {
	dir := DefaultConfigDir()
	if dir == "" {
		t.Error("DefaultConfigDir() returned empty string")
	}
	if filepath.Base(dir) != "campusctl" {
		t.Errorf("expected config dir named campusctl, got %s", dir)
	}
}
