package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	errs "katasync/pkg/errors"
	"katasync/pkg/logger"
)

// Git commits files by running the git binary against RepoDir.
// Only the given path is staged and committed, so unrelated changes in the
// working tree are left alone.
type Git struct {
	RepoDir     string
	Binary      string
	AuthorName  string
	AuthorEmail string

	// Push runs "git push Remote Branch" after every commit
	Push   bool
	Remote string
	Branch string

	Logger logger.Logger
}

// NewGit returns a Git committer for repoDir using the git found on PATH.
func NewGit(repoDir string) *Git {
	return &Git{RepoDir: repoDir, Binary: "git", Remote: "origin"}
}

// Commit stages and commits path with message. A relative path is taken
// relative to the working directory, not RepoDir.
func (g *Git) Commit(ctx context.Context, path, message string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errs.Wrap(errs.ErrorTypeVCS, "git add", path, err)
	}
	path = abs

	if _, err := g.run(ctx, "add", "--", path); err != nil {
		return errs.Wrap(errs.ErrorTypeVCS, "git add", path, err)
	}

	// Rewriting a file with identical content leaves nothing to commit.
	if _, err := g.run(ctx, "diff", "--cached", "--quiet", "--", path); err == nil && g.hasHead(ctx) {
		g.log().WithField("path", path).Debug("No changes to commit")
		return nil
	}

	out, err := g.run(ctx, "commit", "-m", message, "--", path)
	if err != nil {
		return errs.Wrap(errs.ErrorTypeVCS, "git commit", path, err)
	}

	g.log().WithFields(map[string]interface{}{
		"path":    path,
		"message": message,
		"output":  strings.TrimSpace(out),
	}).Debug("Committed file")

	if !g.Push {
		return nil
	}

	args := []string{"push", g.Remote}
	if g.Branch != "" {
		args = append(args, g.Branch)
	}
	if _, err := g.run(ctx, args...); err != nil {
		return errs.Wrap(errs.ErrorTypeVCS, "git push", g.Remote, err)
	}
	return nil
}

func (g *Git) hasHead(ctx context.Context) bool {
	_, err := g.run(ctx, "rev-parse", "--verify", "--quiet", "HEAD")
	return err == nil
}

// IsRepository reports whether RepoDir is inside a git work tree.
func (g *Git) IsRepository(ctx context.Context) bool {
	out, err := g.run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	full := []string{"-C", g.RepoDir}
	if g.AuthorName != "" {
		full = append(full, "-c", "user.name="+g.AuthorName)
	}
	if g.AuthorEmail != "" {
		full = append(full, "-c", "user.email="+g.AuthorEmail)
	}
	full = append(full, args...)

	binary := g.Binary
	if binary == "" {
		binary = "git"
	}

	//nolint:gosec // G204: binary and repository come from user configuration
	cmd := exec.CommandContext(ctx, binary, full...)
	cmd.Env = os.Environ()

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("%s %s: %w: %s", binary, args[0], err, strings.TrimSpace(out.String()))
	}
	return out.String(), nil
}

func (g *Git) log() logger.Logger {
	if g.Logger == nil {
		return logger.NewNopLogger()
	}
	return g.Logger.WithField("component", "git")
}
