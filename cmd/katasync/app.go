package main

import (
	"context"
	"fmt"

	"katasync/pkg/codewars"
	"katasync/pkg/config"
	"katasync/pkg/formatter"
	"katasync/pkg/logger"
	"katasync/pkg/materializer"
	"katasync/pkg/readme"
	"katasync/pkg/storage"
	"katasync/pkg/syncer"
	"katasync/pkg/ui"
	"katasync/pkg/vcs"
)

// app holds the collaborators built from the configuration.
type app struct {
	cfg       *config.Config
	log       logger.Logger
	term      *ui.Terminal
	store     *storage.Manager
	committer vcs.Committer
	client    *codewars.Client
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{
		cfg:   cfg,
		log:   logger.GetLogger(),
		term:  newTerminal(cfg),
		store: storage.NewManager(cfg.Output.DirMode(), cfg.Output.FileMode()),
	}

	exists, err := a.store.Exists(cfg.Output.BaseDirectory)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("base directory %s does not exist", cfg.Output.BaseDirectory)
	}

	committer, err := a.buildCommitter(ctx)
	if err != nil {
		return nil, err
	}
	a.committer = committer

	a.client = codewars.NewClient(codewars.Options{
		BaseURL:   cfg.Codewars.BaseURL,
		UserAgent: cfg.Codewars.UserAgent,
		Timeout:   cfg.Codewars.Timeout,
		Logger:    a.log,
	})

	return a, nil
}

func (a *app) buildCommitter(ctx context.Context) (vcs.Committer, error) {
	if !a.cfg.Git.Enabled {
		a.log.Debug("Git disabled, files will not be committed")
		return vcs.Nop{}, nil
	}

	git := &vcs.Git{
		RepoDir:     a.cfg.RepoRoot(),
		Binary:      a.cfg.Git.Binary,
		AuthorName:  a.cfg.Git.AuthorName,
		AuthorEmail: a.cfg.Git.AuthorEmail,
		Push:        a.cfg.Git.Push,
		Remote:      a.cfg.Git.Remote,
		Branch:      a.cfg.Git.Branch,
		Logger:      a.log,
	}
	if !git.IsRepository(ctx) {
		return nil, fmt.Errorf("%s is not a git repository (use --no-commit to skip committing)", git.RepoDir)
	}
	return git, nil
}

func (a *app) buildFormatter() formatter.Formatter {
	if !a.cfg.Formatter.Enabled {
		return formatter.Nop{}
	}
	return formatter.NewPrettier(a.cfg.Formatter.Binary, a.cfg.Formatter.Args)
}

func (a *app) newMaterializer() (*materializer.Materializer, error) {
	return materializer.New(materializer.Options{
		BaseDir:   a.cfg.Output.BaseDirectory,
		Store:     a.store,
		Committer: a.committer,
		Formatter: a.buildFormatter(),
		Sink:      a.term,
		Logger:    a.log,
	})
}

func (a *app) newPublisher() (*readme.Publisher, error) {
	return readme.NewPublisher(readme.Options{
		BaseDir:   a.cfg.Output.BaseDirectory,
		Store:     a.store,
		Committer: a.committer,
		Sink:      a.term,
		Logger:    a.log,
	})
}

func (a *app) newSyncer() (*syncer.Syncer, error) {
	m, err := a.newMaterializer()
	if err != nil {
		return nil, err
	}
	p, err := a.newPublisher()
	if err != nil {
		return nil, err
	}
	return syncer.New(m, p, a.client, a.log), nil
}

func (a *app) printSummary(s syncer.Summary) {
	ui.RunSummary{
		LevelsCreated: s.LevelsCreated,
		FilesWritten:  s.FilesWritten,
		FilesSkipped:  s.FilesSkipped,
		Elapsed:       s.Elapsed,
	}.Print(a.term)
}
