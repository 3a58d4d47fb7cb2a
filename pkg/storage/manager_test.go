package storage

import (
	"os"
	"path/filepath"
	"testing"

	errs "katasync/pkg/errors"
)

func TestManager(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	manager := NewManager(0, 0)

	levelDir := filepath.Join(tempDir, "4kyu")

	exists, err := manager.Exists(levelDir)
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if exists {
		t.Error("Expected level directory not to exist yet")
	}

	if err := manager.CreateDirectory(levelDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	exists, _ = manager.Exists(levelDir)
	if !exists {
		t.Error("Expected level directory to exist after creation")
	}

	target := filepath.Join(levelDir, "foo_v1.py")
	if err := manager.WriteFile(target, "x=1\n"); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(content) != "x=1\n" {
		t.Errorf("Expected content %q, got %q", "x=1\n", string(content))
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Failed to stat written file: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("Expected file mode 0644, got %v", info.Mode().Perm())
	}

	// Overwrite keeps a single file and no temporary leftovers
	if err := manager.WriteFile(target, "x=2\n"); err != nil {
		t.Fatalf("Failed to overwrite file: %v", err)
	}
	entries, err := os.ReadDir(levelDir)
	if err != nil {
		t.Fatalf("Failed to read level directory: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected exactly one entry in level directory, got %d", len(entries))
	}

	if manager.GetWrittenCount() != 1 {
		t.Errorf("Expected written count to be 1, got %d", manager.GetWrittenCount())
	}
}

func TestManagerCreateDirectoryRequiresParent(t *testing.T) {
	tempDir := t.TempDir()
	manager := NewManager(0755, 0644)

	err := manager.CreateDirectory(filepath.Join(tempDir, "missing", "4kyu"))
	if err == nil {
		t.Fatal("Expected error when parent directory is missing")
	}
	if !errs.Is(err, errs.ErrorTypeFilesystem) {
		t.Errorf("Expected filesystem error, got %v", err)
	}
}

func TestManagerCreateDirectoryTwiceFails(t *testing.T) {
	tempDir := t.TempDir()
	manager := NewManager(0755, 0644)

	dir := filepath.Join(tempDir, "8kyu")
	if err := manager.CreateDirectory(dir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := manager.CreateDirectory(dir); err == nil {
		t.Error("Expected second CreateDirectory to fail")
	}
}

func TestManagerWriteFileMissingParent(t *testing.T) {
	tempDir := t.TempDir()
	manager := NewManager(0755, 0644)

	err := manager.WriteFile(filepath.Join(tempDir, "nope", "a.py"), "x")
	if err == nil {
		t.Fatal("Expected error writing into a missing directory")
	}
	if !errs.Is(err, errs.ErrorTypeFilesystem) {
		t.Errorf("Expected filesystem error, got %v", err)
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore("/base")

	if err := store.CreateDirectory("/base/a/b"); err == nil {
		t.Error("Expected MemStore to reject directory with missing parent")
	}
	if err := store.CreateDirectory("/base/a"); err != nil {
		t.Fatalf("CreateDirectory failed: %v", err)
	}
	if err := store.WriteFile("/base/a/x.go", "package x\n"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	exists, _ := store.Exists("/base/a/x.go")
	if !exists {
		t.Error("Expected written file to exist")
	}
	content, ok := store.Content("/base/a/x.go")
	if !ok || content != "package x\n" {
		t.Errorf("Unexpected content %q", content)
	}
	if got := store.CreatedDirectories(); len(got) != 1 || got[0] != "/base/a" {
		t.Errorf("Unexpected created directories %v", got)
	}
	if got := store.Writes(); len(got) != 1 {
		t.Errorf("Expected one write, got %v", got)
	}
}
