package vcs

import (
	"context"
	"sync"
)

// CommitCall is one Commit invocation captured by a Recorder.
type CommitCall struct {
	Path    string
	Message string
}

// Recorder is a Committer for tests. It remembers every call and returns Err.
type Recorder struct {
	mu    sync.Mutex
	calls []CommitCall

	Err error
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Commit records the call and returns r.Err.
func (r *Recorder) Commit(_ context.Context, path, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, CommitCall{Path: path, Message: message})
	return r.Err
}

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []CommitCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]CommitCall(nil), r.calls...)
}
