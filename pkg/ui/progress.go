package ui

import (
	"fmt"
	"time"
)

// RunSummary holds the counters printed after a sync run.
type RunSummary struct {
	LevelsCreated int
	FilesWritten  int
	FilesSkipped  int
	Elapsed       time.Duration
}

// Headline is the one-line summary printed after a run.
func (s RunSummary) Headline() string {
	switch {
	case s.FilesWritten == 0 && s.LevelsCreated == 0:
		return "Everything is already up to date"
	case s.FilesWritten == 1:
		return "Saved 1 new solution"
	default:
		return fmt.Sprintf("Saved %d new solutions", s.FilesWritten)
	}
}

// Print writes the headline and counters to t.
func (s RunSummary) Print(t *Terminal) {
	t.Success(s.Headline())
	t.Detail("Levels created", s.LevelsCreated)
	t.Detail("Files written", s.FilesWritten)
	t.Detail("Files skipped", s.FilesSkipped)
	t.Detail("Elapsed", s.Elapsed.Round(time.Millisecond))
}
