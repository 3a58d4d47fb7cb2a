package config

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for katasync
type Config struct {
	// Codewars account and API access
	Codewars CodewarsConfig `yaml:"codewars" json:"codewars"`

	// Where solutions and the README are written
	Output OutputConfig `yaml:"output" json:"output"`

	// Version control of the output tree
	Git GitConfig `yaml:"git" json:"git"`

	// JavaScript formatting through prettier
	Formatter FormatterConfig `yaml:"formatter" json:"formatter"`

	Logging LoggingConfig `yaml:"logging" json:"logging"`

	UI UIConfig `yaml:"ui" json:"ui"`
}

// CodewarsConfig holds the profile source settings
type CodewarsConfig struct {
	Username  string        `yaml:"username" json:"username"`
	BaseURL   string        `yaml:"base_url" json:"base_url"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
}

// OutputConfig holds output directory configuration
type OutputConfig struct {
	BaseDirectory   string `yaml:"base_directory" json:"base_directory"`
	ChallengesFile  string `yaml:"challenges_file" json:"challenges_file"`
	DirPermissions  string `yaml:"dir_permissions" json:"dir_permissions"`
	FilePermissions string `yaml:"file_permissions" json:"file_permissions"`
	SkipReadme      bool   `yaml:"skip_readme" json:"skip_readme"`
}

// GitConfig holds the commit settings. RepoDir defaults to the output base directory.
type GitConfig struct {
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	Binary      string `yaml:"binary" json:"binary"`
	RepoDir     string `yaml:"repo_dir" json:"repo_dir"`
	AuthorName  string `yaml:"author_name" json:"author_name"`
	AuthorEmail string `yaml:"author_email" json:"author_email"`
	Push        bool   `yaml:"push" json:"push"`
	Remote      string `yaml:"remote" json:"remote"`
	Branch      string `yaml:"branch" json:"branch"`
}

// FormatterConfig holds the code formatter settings
type FormatterConfig struct {
	Enabled bool     `yaml:"enabled" json:"enabled"`
	Binary  string   `yaml:"binary" json:"binary"`
	Args    []string `yaml:"args" json:"args"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `yaml:"level" json:"level"`
	Format  string `yaml:"format" json:"format"`
	File    string `yaml:"file" json:"file"`
	NoColor bool   `yaml:"no_color" json:"no_color"`
}

// UIConfig holds progress output settings
type UIConfig struct {
	Quiet   bool `yaml:"quiet" json:"quiet"`
	NoColor bool `yaml:"no_color" json:"no_color"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Codewars: CodewarsConfig{
			BaseURL:   "https://www.codewars.com",
			UserAgent: "katasync/1.0",
			Timeout:   30 * time.Second,
		},
		Output: OutputConfig{
			BaseDirectory:   "./katas",
			DirPermissions:  "0755",
			FilePermissions: "0644",
		},
		Git: GitConfig{
			Enabled: true,
			Binary:  "git",
			Remote:  "origin",
		},
		Formatter: FormatterConfig{
			Enabled: true,
			Binary:  "prettier",
			Args:    []string{"--stdin-filepath", "solution.js"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadFromEnv loads configuration from environment variables.
// DIR_PATH is honored for compatibility with existing .env files.
func (c *Config) LoadFromEnv() error {
	if dir := os.Getenv("DIR_PATH"); dir != "" {
		c.Output.BaseDirectory = dir
	}
	if dir := os.Getenv("KATASYNC_DIR_PATH"); dir != "" {
		c.Output.BaseDirectory = dir
	}
	if file := os.Getenv("KATASYNC_CHALLENGES_FILE"); file != "" {
		c.Output.ChallengesFile = file
	}

	if user := os.Getenv("CODEWARS_USERNAME"); user != "" {
		c.Codewars.Username = user
	}
	if user := os.Getenv("KATASYNC_USERNAME"); user != "" {
		c.Codewars.Username = user
	}
	if baseURL := os.Getenv("KATASYNC_BASE_URL"); baseURL != "" {
		c.Codewars.BaseURL = baseURL
	}
	if timeout := os.Getenv("KATASYNC_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("KATASYNC_TIMEOUT: %w", err)
		}
		c.Codewars.Timeout = d
	}

	if repo := os.Getenv("KATASYNC_GIT_REPO"); repo != "" {
		c.Git.RepoDir = repo
	}
	if err := envBool("KATASYNC_GIT_ENABLED", &c.Git.Enabled); err != nil {
		return err
	}
	if err := envBool("KATASYNC_GIT_PUSH", &c.Git.Push); err != nil {
		return err
	}
	if name := os.Getenv("KATASYNC_GIT_AUTHOR_NAME"); name != "" {
		c.Git.AuthorName = name
	}
	if email := os.Getenv("KATASYNC_GIT_AUTHOR_EMAIL"); email != "" {
		c.Git.AuthorEmail = email
	}

	if err := envBool("KATASYNC_FORMATTER_ENABLED", &c.Formatter.Enabled); err != nil {
		return err
	}
	if bin := os.Getenv("KATASYNC_PRETTIER"); bin != "" {
		c.Formatter.Binary = bin
	}

	if logLevel := os.Getenv("KATASYNC_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	return nil
}

func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	home := os.Getenv("HOME")
	locations := []string{
		".katasync.yaml",
		".katasync.yml",
		filepath.Join(home, ".config", "katasync", "config.yaml"),
		filepath.Join(home, ".config", "katasync", "config.yml"),
		filepath.Join(home, ".katasync.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

var permPattern = regexp.MustCompile(`^0?[0-7]{3}$`)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Codewars.Validate(); err != nil {
		return fmt.Errorf("codewars: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := c.Git.Validate(); err != nil {
		return fmt.Errorf("git: %w", err)
	}
	if err := c.Formatter.Validate(); err != nil {
		return fmt.Errorf("formatter: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

func (c *CodewarsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.Username, validation.Length(0, 100)),
	)
}

func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseDirectory, validation.Required),
		validation.Field(&c.DirPermissions, validation.Required, validation.Match(permPattern)),
		validation.Field(&c.FilePermissions, validation.Required, validation.Match(permPattern)),
	)
}

func (c *GitConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Binary, validation.When(c.Enabled, validation.Required)),
		validation.Field(&c.Remote, validation.When(c.Push, validation.Required)),
		validation.Field(&c.AuthorEmail, is.EmailFormat),
	)
}

func (c *FormatterConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Binary, validation.When(c.Enabled, validation.Required)),
	)
}

func (c *LoggingConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required,
			validation.In("debug", "info", "warn", "warning", "error", "disabled")),
		validation.Field(&c.Format, validation.In("console", "json")),
	)
}

// DirMode returns the parsed directory permissions
func (c *OutputConfig) DirMode() fs.FileMode {
	return parseMode(c.DirPermissions, 0755)
}

// FileMode returns the parsed file permissions
func (c *OutputConfig) FileMode() fs.FileMode {
	return parseMode(c.FilePermissions, 0644)
}

func parseMode(s string, fallback fs.FileMode) fs.FileMode {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return fallback
	}
	return fs.FileMode(v)
}

// RepoRoot returns the directory git runs in
func (c *Config) RepoRoot() string {
	if c.Git.RepoDir != "" {
		return c.Git.RepoDir
	}
	return c.Output.BaseDirectory
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if dir, ok := flags["dir"].(string); ok && dir != "" {
		c.Output.BaseDirectory = dir
	}
	if user, ok := flags["user"].(string); ok && user != "" {
		c.Codewars.Username = user
	}
	if repo, ok := flags["repo"].(string); ok && repo != "" {
		c.Git.RepoDir = repo
	}
	if noCommit, ok := flags["no-commit"].(bool); ok && noCommit {
		c.Git.Enabled = false
	}
	if push, ok := flags["push"].(bool); ok && push {
		c.Git.Push = true
	}
	if noFormat, ok := flags["no-format"].(bool); ok && noFormat {
		c.Formatter.Enabled = false
	}
	if skip, ok := flags["skip-readme"].(bool); ok && skip {
		c.Output.SkipReadme = true
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
	if quiet, ok := flags["quiet"].(bool); ok && quiet {
		c.UI.Quiet = true
	}
	if noColor, ok := flags["no-color"].(bool); ok && noColor {
		c.UI.NoColor = true
		c.Logging.NoColor = true
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// .env files are optional
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".katasync.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := config.absPaths(); err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	return config, nil
}

// absPaths pins the base and repository directories to the current working
// directory so later path joins do not depend on where git runs.
func (c *Config) absPaths() error {
	dir, err := filepath.Abs(c.Output.BaseDirectory)
	if err != nil {
		return err
	}
	c.Output.BaseDirectory = dir

	if c.Git.RepoDir != "" {
		repo, err := filepath.Abs(c.Git.RepoDir)
		if err != nil {
			return err
		}
		c.Git.RepoDir = repo
	}
	return nil
}

// CheckEnvironment reports problems that field validation cannot see: a
// missing base directory and binaries that are not on PATH.
func CheckEnvironment(c *Config) []string {
	var problems []string

	if info, err := os.Stat(c.Output.BaseDirectory); err != nil {
		problems = append(problems, fmt.Sprintf("base directory %s: %v", c.Output.BaseDirectory, err))
	} else if !info.IsDir() {
		problems = append(problems, fmt.Sprintf("base directory %s is not a directory", c.Output.BaseDirectory))
	}

	if c.Git.Enabled {
		if _, err := exec.LookPath(c.Git.Binary); err != nil {
			problems = append(problems, fmt.Sprintf("git binary %q not found", c.Git.Binary))
		}
	}
	if c.Formatter.Enabled {
		if _, err := exec.LookPath(c.Formatter.Binary); err != nil {
			problems = append(problems, fmt.Sprintf("formatter binary %q not found", c.Formatter.Binary))
		}
	}
	if c.Codewars.Username == "" {
		problems = append(problems, "codewars.username is not set; README.md will not be generated")
	}

	return problems
}
