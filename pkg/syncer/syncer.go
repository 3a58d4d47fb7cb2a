// Package syncer drives a full run: every challenge is materialized in input
// order, then the README is regenerated from the user's profile.
package syncer

import (
	"context"
	"fmt"
	"time"

	"katasync/pkg/logger"
	"katasync/pkg/materializer"
	"katasync/pkg/models"
)

// ProfileSource fetches a user's public profile.
type ProfileSource interface {
	FetchUser(ctx context.Context, username string) (*models.UserProfile, error)
}

// ChallengeMaterializer writes the files of one challenge.
type ChallengeMaterializer interface {
	Materialize(ctx context.Context, challenge models.Challenge) error
	Stats() materializer.Stats
}

// ReadmePublisher writes and commits the README for a profile.
type ReadmePublisher interface {
	Publish(ctx context.Context, profile models.UserProfile) error
}

// Summary describes what a run did.
type Summary struct {
	Challenges    int
	LevelsCreated int
	FilesWritten  int
	FilesSkipped  int
	ReadmeUpdated bool
	Elapsed       time.Duration
}

// Syncer runs the challenge and README steps sequentially.
type Syncer struct {
	materializer ChallengeMaterializer
	publisher    ReadmePublisher
	profiles     ProfileSource
	logger       logger.Logger

	challenges    int
	readmeUpdated bool
	elapsed       time.Duration
}

// New creates a Syncer. publisher and profiles may be nil when the README
// step is never run.
func New(m ChallengeMaterializer, publisher ReadmePublisher, profiles ProfileSource, log logger.Logger) *Syncer {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Syncer{
		materializer: m,
		publisher:    publisher,
		profiles:     profiles,
		logger:       log.WithField("component", "syncer"),
	}
}

// SyncChallenges materializes challenges one at a time. The first failure
// stops the run and is returned with the challenge title.
func (s *Syncer) SyncChallenges(ctx context.Context, challenges []models.Challenge) error {
	for _, c := range challenges {
		if err := s.materializer.Materialize(ctx, c); err != nil {
			s.logger.WithError(err).WithField("title", c.Title).Error("Failed to materialize challenge")
			return fmt.Errorf("challenge %q: %w", c.Title, err)
		}
		s.challenges++
	}
	return nil
}

// SyncReadme fetches username's profile and publishes the README from it.
func (s *Syncer) SyncReadme(ctx context.Context, username string) error {
	if s.profiles == nil || s.publisher == nil {
		return fmt.Errorf("readme: no profile source or publisher configured")
	}

	profile, err := s.profiles.FetchUser(ctx, username)
	if err != nil {
		return fmt.Errorf("fetch profile %q: %w", username, err)
	}
	if err := s.publisher.Publish(ctx, *profile); err != nil {
		return err
	}
	s.readmeUpdated = true
	return nil
}

// Run syncs every challenge and then the README. An empty username skips
// the README step.
func (s *Syncer) Run(ctx context.Context, challenges []models.Challenge, username string) error {
	start := time.Now()
	defer func() { s.elapsed = time.Since(start) }()

	s.logger.WithField("challenges", len(challenges)).Info("Starting sync")

	if err := s.SyncChallenges(ctx, challenges); err != nil {
		return err
	}

	if username != "" {
		if err := s.SyncReadme(ctx, username); err != nil {
			return err
		}
	} else {
		s.logger.Debug("No username configured, skipping README")
	}

	stats := s.materializer.Stats()
	logger.LogRunSummary(s.logger, s.challenges, stats.LevelsCreated, stats.FilesWritten, stats.FilesSkipped, time.Since(start))
	return nil
}

// Result returns the totals of the work done so far.
func (s *Syncer) Result() Summary {
	stats := s.materializer.Stats()
	return Summary{
		Challenges:    s.challenges,
		LevelsCreated: stats.LevelsCreated,
		FilesWritten:  stats.FilesWritten,
		FilesSkipped:  stats.FilesSkipped,
		ReadmeUpdated: s.readmeUpdated,
		Elapsed:       s.elapsed,
	}
}
