// Package ui renders user-facing progress for a sync run.
//
// Progress goes through a Sink, which has two severities. The Terminal sink
// prints them colored to a writer. The Recorder keeps them for assertions.
package ui

// Sink receives user-facing progress messages.
type Sink interface {
	Info(msg string)
	Success(msg string)
}

// Nop discards every message.
type Nop struct{}

func (Nop) Info(string)    {}
func (Nop) Success(string) {}
