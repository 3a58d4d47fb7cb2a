// Package readme renders the repository README from a Codewars profile and
// publishes it next to the level directories.
package readme

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"katasync/pkg/codewars"
	"katasync/pkg/logger"
	"katasync/pkg/models"
	"katasync/pkg/storage"
	"katasync/pkg/ui"
	"katasync/pkg/vcs"
)

// FileName is the README name inside the base directory.
const FileName = "README.md"

const (
	addedMessage   = "Added README.md file!"
	updatedMessage = "Updated README.md file!"
)

// Build renders the README for profile. Languages appear in the order the
// profile lists them.
func Build(profile models.UserProfile) string {
	var b strings.Builder

	b.WriteString("## :trident: Codewars Challenge Repo\n")
	b.WriteString("![Badge](" + badgeURL(profile.Username) + ")\n")
	b.WriteString("### :wolf: Clan: " + profile.Clan + "\n")
	b.WriteString("## :zap: Skills\n")
	for _, lang := range profile.Ranks.Languages {
		b.WriteString("### " + lang.Language + "\n")
		b.WriteString("#### Rank - " + lang.Name + " / Score - " + strconv.Itoa(lang.Score) + "\n")
	}
	b.WriteString("\n")
	b.WriteString("## :chart_with_upwards_trend: Stats\n")
	b.WriteString("### :trophy: Leaderboard Position - " + strconv.Itoa(profile.LeaderboardPosition) + "\n")
	b.WriteString("### :pencil2: Authored Challenges - " + strconv.Itoa(profile.CodeChallenges.TotalAuthored) + "\n")
	b.WriteString("### :muscle: Completed Challenges - " + strconv.Itoa(profile.CodeChallenges.TotalCompleted) + "\n")

	return b.String()
}

func badgeURL(username string) string {
	return codewars.GetProfilePageURL(username) + "/badges/large"
}

// Options wires a Publisher to its collaborators. BaseDir and Store are required.
type Options struct {
	BaseDir   string
	Store     storage.FileStore
	Committer vcs.Committer
	Sink      ui.Sink
	Logger    logger.Logger
}

// Publisher writes and commits the README.
type Publisher struct {
	path      string
	store     storage.FileStore
	committer vcs.Committer
	sink      ui.Sink
	logger    logger.Logger
}

// NewPublisher validates opts and fills unset collaborators with no-ops.
func NewPublisher(opts Options) (*Publisher, error) {
	if opts.BaseDir == "" {
		return nil, fmt.Errorf("readme: base directory is required")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("readme: file store is required")
	}
	if opts.Committer == nil {
		opts.Committer = vcs.Nop{}
	}
	if opts.Sink == nil {
		opts.Sink = ui.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}

	return &Publisher{
		path:      filepath.Join(opts.BaseDir, FileName),
		store:     opts.Store,
		committer: opts.Committer,
		sink:      opts.Sink,
		logger:    opts.Logger.WithField("component", "readme"),
	}, nil
}

// Path returns where the README is written.
func (p *Publisher) Path() string {
	return p.path
}

// Publish overwrites the README with the rendering of profile and commits it.
// Only a newly added README is announced on the sink.
func (p *Publisher) Publish(ctx context.Context, profile models.UserProfile) error {
	existed, err := p.store.Exists(p.path)
	if err != nil {
		return fmt.Errorf("check readme: %w", err)
	}

	message := addedMessage
	if existed {
		message = updatedMessage
	}

	if err := p.store.WriteFile(p.path, Build(profile)); err != nil {
		return fmt.Errorf("write readme: %w", err)
	}
	if err := p.committer.Commit(ctx, p.path, message); err != nil {
		return fmt.Errorf("commit readme: %w", err)
	}

	p.logger.WithFields(map[string]interface{}{
		"path":      p.path,
		"existed":   existed,
		"languages": len(profile.Ranks.Languages),
	}).Info(message)

	if !existed {
		p.sink.Info(message)
	}
	return nil
}
