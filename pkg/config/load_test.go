package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DIR_PATH", "")
	t.Setenv("KATASYNC_DIR_PATH", "")
	t.Setenv("KATASYNC_USERNAME", "from-env")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
codewars:
  username: from-file
output:
  base_directory: /from/file
logging:
  level: error
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath, map[string]interface{}{"log-level": "debug"})
	require.NoError(t, err)

	assert.Equal(t, "/from/file", cfg.Output.BaseDirectory)
	assert.Equal(t, "from-env", cfg.Codewars.Username)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "https://www.codewars.com", cfg.Codewars.BaseURL)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: loud\n"), 0644))

	_, err := Load(configPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestFindConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	assert.Empty(t, cfg.findConfigFile())

	path := filepath.Join(home, ".config", "katasync", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("output:\n  skip_readme: true\n"), 0644))

	assert.Equal(t, path, cfg.findConfigFile())

	require.NoError(t, cfg.LoadFromFile(""))
	assert.True(t, cfg.Output.SkipReadme)
}

func BenchmarkValidate(b *testing.B) {
	cfg := DefaultConfig()
	for i := 0; i < b.N; i++ {
		_ = cfg.Validate()
	}
}

func TestLoadMakesDirectoriesAbsolute(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DIR_PATH", "")
	t.Setenv("KATASYNC_DIR_PATH", "")
	t.Setenv("KATASYNC_GIT_REPO", "")
	wd := t.TempDir()
	t.Chdir(wd)

	cfg, err := Load("", map[string]interface{}{"dir": "./katas", "repo": "."})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(wd, "katas"), cfg.Output.BaseDirectory)
	assert.Equal(t, wd, cfg.Git.RepoDir)
	assert.Equal(t, wd, cfg.RepoRoot())
}
