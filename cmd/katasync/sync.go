package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"katasync/pkg/logger"
	"katasync/pkg/models"
	"katasync/pkg/source"
)

var (
	// Sync command flags
	baseDir    string
	username   string
	noCommit   bool
	noFormat   bool
	dryRun     bool
	skipReadme bool
	push       bool
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync [challenges-file]",
	Short: "Save new solutions and refresh the README",
	Long: `Save every solution from an exported challenges file into the base
directory and commit each new file to git.

Solutions are grouped by kata level (for example 4kyu/). Each file is named
<title>_v<n><ext>, where n counts consecutive solutions in the same language
starting from the oldest one. Files that already exist are never rewritten,
so running sync again only adds what is new.

After the solutions, README.md is regenerated from your public profile and
committed.`,
	Example: `  # Sync into the directory configured with DIR_PATH
  katasync sync challenges.yaml --user jdoe

  # Write files without committing or formatting them
  katasync sync challenges.json --dir ./katas --no-commit --no-format

  # Show what would be written
  katasync sync challenges.yaml --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVarP(&baseDir, "dir", "d", "", "base directory for solutions (overrides DIR_PATH)")
	syncCmd.Flags().StringVarP(&username, "user", "u", "", "Codewars username used for the README")
	syncCmd.Flags().BoolVar(&noCommit, "no-commit", false, "write files without committing them")
	syncCmd.Flags().BoolVar(&noFormat, "no-format", false, "do not run prettier on JavaScript solutions")
	syncCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the files that would be written and exit")
	syncCmd.Flags().BoolVar(&skipReadme, "skip-readme", false, "do not regenerate README.md")
	syncCmd.Flags().BoolVar(&push, "push", false, "push after every commit")
}

func syncFlags() map[string]interface{} {
	return map[string]interface{}{
		"dir":         baseDir,
		"user":        username,
		"no-commit":   noCommit || dryRun,
		"no-format":   noFormat,
		"skip-readme": skipReadme,
		"push":        push,
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(syncFlags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	path := cfg.Output.ChallengesFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no challenges file given (pass it as an argument or set output.challenges_file)")
	}

	challenges, err := source.Load(path)
	if err != nil {
		return err
	}
	logger.WithFields(map[string]interface{}{
		"file":       path,
		"challenges": len(challenges),
	}).Debug("Loaded challenges")

	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}

	if dryRun {
		return printPlan(a, challenges)
	}

	s, err := a.newSyncer()
	if err != nil {
		return err
	}

	user := strings.TrimSpace(cfg.Codewars.Username)
	if cfg.Output.SkipReadme {
		user = ""
	} else if user == "" {
		a.term.Warning("No Codewars username configured, skipping README.md")
	}

	err = s.Run(ctx, challenges, user)
	a.printSummary(s.Result())
	return err
}

func printPlan(a *app, challenges []models.Challenge) error {
	m, err := a.newMaterializer()
	if err != nil {
		return err
	}

	var pending int
	for _, c := range challenges {
		for _, f := range m.Plan(c) {
			exists, err := a.store.Exists(f.Path)
			if err != nil {
				return err
			}
			if exists {
				a.term.Detail("exists", f.Path)
				continue
			}
			pending++
			a.term.Info("would write " + f.Path)
		}
	}

	a.term.Success(fmt.Sprintf("%d file(s) would be written", pending))
	return nil
}
