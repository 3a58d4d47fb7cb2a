// Package vcs records saved solutions in version control.
package vcs

import "context"

// Committer records a single file in version control with a message.
type Committer interface {
	Commit(ctx context.Context, path, message string) error
}

// Nop accepts every commit and does nothing. It backs --no-commit and dry runs.
type Nop struct{}

func (Nop) Commit(context.Context, string, string) error { return nil }
