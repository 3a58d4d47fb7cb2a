package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"katasync/pkg/source"
	"katasync/pkg/watch"
)

var debounce time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <challenges-file>",
	Short: "Sync again every time the challenges file changes",
	Long: `Run a sync now and then again whenever the challenges file is saved,
until interrupted with Ctrl-C. A failed sync is reported and the watch keeps
going, so a half-written export does not stop it.`,
	Example: `  katasync watch challenges.yaml --user jdoe`,
	Args:    cobra.ExactArgs(1),
	RunE:    runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&baseDir, "dir", "d", "", "base directory for solutions (overrides DIR_PATH)")
	watchCmd.Flags().StringVarP(&username, "user", "u", "", "Codewars username used for the README")
	watchCmd.Flags().BoolVar(&noCommit, "no-commit", false, "write files without committing them")
	watchCmd.Flags().BoolVar(&noFormat, "no-format", false, "do not run prettier on JavaScript solutions")
	watchCmd.Flags().BoolVar(&skipReadme, "skip-readme", false, "do not regenerate README.md")
	watchCmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "wait this long after the last change before syncing")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(syncFlags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}

	user := strings.TrimSpace(cfg.Codewars.Username)
	if cfg.Output.SkipReadme {
		user = ""
	}

	path := args[0]
	syncOnce := func(ctx context.Context) error {
		challenges, err := source.Load(path)
		if err != nil {
			a.term.Error(err.Error())
			return err
		}

		s, err := a.newSyncer()
		if err != nil {
			return err
		}
		err = s.Run(ctx, challenges, user)
		a.printSummary(s.Result())
		if err != nil {
			a.term.Error(err.Error())
		}
		return err
	}

	if err := syncOnce(ctx); err != nil {
		a.log.WithError(err).Warn("Initial sync failed, waiting for changes")
	}

	a.term.Info("Watching " + path + " for changes (Ctrl-C to stop)")
	return watch.File(ctx, path, debounce, a.log, syncOnce)
}
