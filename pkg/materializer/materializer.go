// Package materializer turns a challenge into versioned solution files.
//
// For every challenge it makes sure the level directory exists, computes a
// versioned file name for each solution and writes and commits the files
// that are not on disk yet. Files already present are never rewritten, so
// running it twice over the same input is a no-op the second time.
package materializer

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	"katasync/pkg/extension"
	"katasync/pkg/formatter"
	"katasync/pkg/logger"
	"katasync/pkg/models"
	"katasync/pkg/storage"
	"katasync/pkg/ui"
	"katasync/pkg/vcs"
	"katasync/pkg/version"
)

// Options wires a Materializer to its collaborators. BaseDir and Store are
// required; the others default to no-ops.
type Options struct {
	BaseDir   string
	Store     storage.FileStore
	Committer vcs.Committer
	Formatter formatter.Formatter
	Sink      ui.Sink
	Logger    logger.Logger
}

// Stats counts the effects of every Materialize call so far.
type Stats struct {
	LevelsCreated int
	FilesWritten  int
	FilesSkipped  int
}

// Materializer writes and commits solution files below BaseDir.
type Materializer struct {
	baseDir   string
	store     storage.FileStore
	committer vcs.Committer
	formatter formatter.Formatter
	sink      ui.Sink
	logger    logger.Logger

	mu    sync.Mutex
	stats Stats
}

// New creates a Materializer from opts.
func New(opts Options) (*Materializer, error) {
	if opts.BaseDir == "" {
		return nil, fmt.Errorf("materializer: base directory is required")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("materializer: file store is required")
	}
	if opts.Committer == nil {
		opts.Committer = vcs.Nop{}
	}
	if opts.Formatter == nil {
		opts.Formatter = formatter.Nop{}
	}
	if opts.Sink == nil {
		opts.Sink = ui.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}

	return &Materializer{
		baseDir:   opts.BaseDir,
		store:     opts.Store,
		committer: opts.Committer,
		formatter: opts.Formatter,
		sink:      opts.Sink,
		logger:    opts.Logger.WithField("component", "materializer"),
	}, nil
}

// LevelDir returns the directory holding katas of the given level.
func (m *Materializer) LevelDir(level string) string {
	return filepath.Join(m.baseDir, level)
}

// FileName returns "<title>_v<version><ext>".
func FileName(title string, version int, ext string) string {
	return title + "_v" + strconv.Itoa(version) + ext
}

// Plan returns the target file of every solution, oldest first, without
// touching the store.
func (m *Materializer) Plan(challenge models.Challenge) []models.VersionedFile {
	dir := m.LevelDir(challenge.Level)
	versions := version.Assign(challenge.Solutions)

	files := make([]models.VersionedFile, 0, len(challenge.Solutions))
	for i := len(challenge.Solutions) - 1; i >= 0; i-- {
		sol := challenge.Solutions[i]
		ext := extension.Resolve(sol.Language)
		files = append(files, models.VersionedFile{
			Path:     filepath.Join(dir, FileName(challenge.Title, versions[i], ext)),
			Language: sol.Language,
			Version:  versions[i],
		})
	}
	return files
}

// Materialize writes and commits every solution of challenge that is not on
// disk yet. The first failing collaborator aborts the call.
func (m *Materializer) Materialize(ctx context.Context, challenge models.Challenge) error {
	log := m.logger.WithFields(map[string]interface{}{
		"level": challenge.Level,
		"title": challenge.Title,
	})

	dir := m.LevelDir(challenge.Level)
	exists, err := m.store.Exists(dir)
	if err != nil {
		return fmt.Errorf("check level directory: %w", err)
	}
	if !exists {
		if err := m.store.CreateDirectory(dir); err != nil {
			return fmt.Errorf("create level directory: %w", err)
		}
		m.count(func(s *Stats) { s.LevelsCreated++ })
		log.WithField("dir", dir).Debug("Created level directory")
		m.sink.Info(fmt.Sprintf("Added a directory for level %s katas!", challenge.Level))
	}

	versions := version.Assign(challenge.Solutions)
	for i := len(challenge.Solutions) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return err
		}

		sol := challenge.Solutions[i]
		ext := extension.Resolve(sol.Language)
		if !extension.Known(sol.Language) {
			log.WithField("language", sol.Language).Debug("Unknown language, writing without extension")
		}

		name := FileName(challenge.Title, versions[i], ext)
		path := filepath.Join(dir, name)

		content := sol.Code + "\n"
		if ext == extension.JavaScript {
			content, err = m.formatter.Format(ctx, content)
			if err != nil {
				return fmt.Errorf("format %s: %w", name, err)
			}
		}

		exists, err := m.store.Exists(path)
		if err != nil {
			return fmt.Errorf("check %s: %w", name, err)
		}
		if exists {
			m.count(func(s *Stats) { s.FilesSkipped++ })
			logger.LogFileDecision(log, path, sol.Language, versions[i], false)
			continue
		}

		if err := m.store.WriteFile(path, content); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		if err := m.committer.Commit(ctx, path, "Completed "+challenge.Title); err != nil {
			return fmt.Errorf("commit %s: %w", name, err)
		}

		m.count(func(s *Stats) { s.FilesWritten++ })
		logger.LogFileDecision(log, path, sol.Language, versions[i], true)
		m.sink.Success(name + " has been saved locally and commited to git!")
	}

	return nil
}

// Stats returns the counters accumulated so far.
func (m *Materializer) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

func (m *Materializer) count(f func(*Stats)) {
	m.mu.Lock()
	f(&m.stats)
	m.mu.Unlock()
}
