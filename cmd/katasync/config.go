package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"katasync/pkg/config"
	"katasync/pkg/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage katasync configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (DIR_PATH, KATASYNC_*), including a .env file
  - Configuration file
  - Default values (lowest priority)`,
}

// initCmd represents the config init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Create a configuration file holding every option at its default value.

The file is created as '.katasync.yaml' in the current directory unless a
different path is given with --config.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// showCmd represents the config show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Show the effective configuration after merging defaults, the
configuration file, environment variables and flags.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

// validateCmd represents the config validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long: `Load the configuration and check it for invalid values.

Besides the field rules, this also checks that the base directory exists and
that the git and prettier binaries can be found when they are enabled.`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(validateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := configFile
	if configPath == "" {
		configPath = ".katasync.yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}

	term := ui.NewTerminal(os.Stdout, false, noColor)
	term.Success("Configuration file created: " + configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("1. Set output.base_directory to your solutions repository")
	fmt.Println("2. Set codewars.username to your Codewars username")
	fmt.Println("3. Run 'katasync config validate' to check the configuration")
	fmt.Println("4. Run 'katasync sync <challenges-file>'")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format configuration: %w", err)
	}

	fmt.Print(string(data))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	term := newTerminal(cfg)
	problems := config.CheckEnvironment(cfg)
	for _, p := range problems {
		term.Warning(p)
	}
	if len(problems) > 0 {
		return fmt.Errorf("configuration has %d problem(s)", len(problems))
	}

	term.Success("Configuration is valid")
	term.Detail("Base directory", cfg.Output.BaseDirectory)
	term.Detail("Username", cfg.Codewars.Username)
	term.Detail("Git", cfg.Git.Enabled)
	term.Detail("Prettier", cfg.Formatter.Enabled)
	term.Detail("Log level", cfg.Logging.Level)
	return nil
}
