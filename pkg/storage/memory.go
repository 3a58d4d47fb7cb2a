package storage

import (
	"path/filepath"
	"sort"
	"sync"

	errs "katasync/pkg/errors"
)

// MemStore implements FileStore in memory for testing purposes.
// Directory creation follows the OS rule that the parent must exist.
type MemStore struct {
	mu     sync.RWMutex
	dirs   map[string]bool
	files  map[string]string
	writes []string
	mkdirs []string

	// Error injection for testing
	CreateDirectoryError error
	WriteError           error
}

// NewMemStore creates a store whose only existing directories are roots.
func NewMemStore(roots ...string) *MemStore {
	m := &MemStore{
		dirs:  make(map[string]bool),
		files: make(map[string]string),
	}
	for _, r := range roots {
		m.dirs[filepath.Clean(r)] = true
	}
	return m
}

// Exists reports whether path is a stored file or directory.
func (m *MemStore) Exists(path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)
	_, isFile := m.files[path]
	return isFile || m.dirs[path], nil
}

// CreateDirectory adds path, failing if it exists or its parent does not.
func (m *MemStore) CreateDirectory(path string) error {
	if m.CreateDirectoryError != nil {
		return m.CreateDirectoryError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if m.dirs[path] {
		return errs.New(errs.ErrorTypeFilesystem, "create directory", "file exists")
	}
	if !m.dirs[filepath.Dir(path)] {
		return errs.New(errs.ErrorTypeFilesystem, "create directory", "parent does not exist")
	}
	m.dirs[path] = true
	m.mkdirs = append(m.mkdirs, path)
	return nil
}

// WriteFile stores content at path. The parent directory must exist.
func (m *MemStore) WriteFile(path, content string) error {
	if m.WriteError != nil {
		return m.WriteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if !m.dirs[filepath.Dir(path)] {
		return errs.New(errs.ErrorTypeFilesystem, "write file", "parent does not exist")
	}
	m.files[path] = content
	m.writes = append(m.writes, path)
	return nil
}

// Content returns the stored content for path.
func (m *MemStore) Content(path string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.files[filepath.Clean(path)]
	return c, ok
}

// Files returns every stored file path, sorted.
func (m *MemStore) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Writes returns every WriteFile call in order.
func (m *MemStore) Writes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.writes...)
}

// CreatedDirectories returns every successful CreateDirectory call in order.
func (m *MemStore) CreatedDirectories() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.mkdirs...)
}
