package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	errs "katasync/pkg/errors"
)

// FileStore is the persistence surface the materializer and README publisher need.
type FileStore interface {
	Exists(path string) (bool, error)
	CreateDirectory(path string) error
	WriteFile(path, content string) error
}

// Manager implements FileStore on the local filesystem
type Manager struct {
	dirPerm  fs.FileMode
	filePerm fs.FileMode
	written  map[string]bool
	mu       sync.RWMutex
}

// NewManager creates a new storage manager using the given permissions.
// Zero values fall back to 0755 for directories and 0644 for files.
func NewManager(dirPerm, filePerm fs.FileMode) *Manager {
	if dirPerm == 0 {
		dirPerm = 0755
	}
	if filePerm == 0 {
		filePerm = 0644
	}

	return &Manager{
		dirPerm:  dirPerm,
		filePerm: filePerm,
		written:  make(map[string]bool),
	}
}

// Exists reports whether anything is present at path
func (m *Manager) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errs.Wrap(errs.ErrorTypeFilesystem, "stat", path, err)
}

// CreateDirectory creates a single directory. The parent must already exist.
func (m *Manager) CreateDirectory(path string) error {
	if err := os.Mkdir(path, m.dirPerm); err != nil {
		return errs.Wrap(errs.ErrorTypeFilesystem, "create directory", path, err)
	}
	return nil
}

// WriteFile writes content to path, replacing any existing file
func (m *Manager) WriteFile(path, content string) error {
	// Create temporary file next to the target so the rename stays on one filesystem
	tempFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errs.Wrap(errs.ErrorTypeFilesystem, "create temporary file", path, err)
	}
	tempPath := tempFile.Name()

	_, err = tempFile.WriteString(content)
	closeErr := tempFile.Close()

	if err != nil {
		os.Remove(tempPath)
		return errs.Wrap(errs.ErrorTypeFilesystem, "write file", path, err)
	}
	if closeErr != nil {
		os.Remove(tempPath)
		return errs.Wrap(errs.ErrorTypeFilesystem, "close file", path, closeErr)
	}
	if err := os.Chmod(tempPath, m.filePerm); err != nil {
		os.Remove(tempPath)
		return errs.Wrap(errs.ErrorTypeFilesystem, "chmod file", path, err)
	}

	// Atomic rename
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errs.Wrap(errs.ErrorTypeFilesystem, "rename file", path, fmt.Errorf("from %s: %w", tempPath, err))
	}

	m.mu.Lock()
	m.written[path] = true
	m.mu.Unlock()

	return nil
}

// GetWrittenCount returns the number of distinct paths written by this manager
func (m *Manager) GetWrittenCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.written)
}
