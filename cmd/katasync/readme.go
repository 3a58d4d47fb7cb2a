package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// readmeCmd represents the readme command
var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Regenerate README.md from your Codewars profile",
	Long: `Fetch your public Codewars profile and rewrite README.md in the base
directory with your clan, per-language ranks and challenge stats. The new
README is committed unless --no-commit is given.`,
	Example: `  katasync readme --user jdoe
  katasync readme --user jdoe --dir ./katas --no-commit`,
	Args: cobra.NoArgs,
	RunE: runReadme,
}

func init() {
	rootCmd.AddCommand(readmeCmd)

	readmeCmd.Flags().StringVarP(&baseDir, "dir", "d", "", "base directory holding README.md (overrides DIR_PATH)")
	readmeCmd.Flags().StringVarP(&username, "user", "u", "", "Codewars username")
	readmeCmd.Flags().BoolVar(&noCommit, "no-commit", false, "write README.md without committing it")
	readmeCmd.Flags().BoolVar(&push, "push", false, "push after committing")
}

func runReadme(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(map[string]interface{}{
		"dir":       baseDir,
		"user":      username,
		"no-commit": noCommit,
		"push":      push,
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	user := strings.TrimSpace(cfg.Codewars.Username)
	if user == "" {
		return fmt.Errorf("no Codewars username configured (use --user or codewars.username)")
	}

	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}

	s, err := a.newSyncer()
	if err != nil {
		return err
	}
	if err := s.SyncReadme(ctx, user); err != nil {
		return err
	}

	a.term.Success("README.md is up to date")
	return nil
}
