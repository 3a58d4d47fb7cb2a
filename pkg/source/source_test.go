package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "katasync/pkg/errors"
	"katasync/pkg/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

var want = []models.Challenge{
	{
		Level: "4kyu",
		Title: "foo",
		Link:  "https://www.codewars.com/kata/foo",
		Solutions: []models.Solution{
			{Language: "Python", Code: "x=2"},
			{Language: "Python", Code: "x=1"},
		},
	},
	{
		Level:     "8kyu",
		Title:     "bar",
		Solutions: []models.Solution{{Language: "JavaScript", Code: "const a = 1"}},
	},
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "challenges.yaml", `
- level: 4kyu
  title: foo
  link: https://www.codewars.com/kata/foo
  solutions:
    - language: Python
      code: x=2
    - language: Python
      code: x=1
- level: 8kyu
  title: bar
  solutions:
    - language: JavaScript
      code: const a = 1
`)

	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "challenges.JSON", `[
  {"level": "4kyu", "title": "foo", "link": "https://www.codewars.com/kata/foo",
   "solutions": [{"language": "Python", "code": "x=2"}, {"language": "Python", "code": "x=1"}]},
  {"level": "8kyu", "title": "bar", "solutions": [{"language": "JavaScript", "code": "const a = 1"}]}
]`)

	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmpty(t *testing.T) {
	got, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrorTypeFilesystem))
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed json", "c.json", `[{"level": "4kyu",`},
		{"malformed yaml", "c.yaml", "- level: [4kyu"},
		{"missing level", "c.yaml", "- title: foo\n"},
		{"missing title", "c.json", `[{"level": "4kyu"}]`},
		{"title with separator", "c.yaml", "- level: 4kyu\n  title: a/b\n"},
		{"parent level", "c.yaml", "- level: ..\n  title: foo\n"},
		{"bad link", "c.yaml", "- level: 4kyu\n  title: foo\n  link: not a url\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrorTypeParsing), "got %v", err)
		})
	}
}

func TestLoadSolutionWithoutLanguage(t *testing.T) {
	got, err := Load(writeFile(t, "c.yaml", "- level: 4kyu\n  title: foo\n  solutions:\n    - code: x=1\n"))
	require.NoError(t, err)

	want := []models.Challenge{{
		Level:     "4kyu",
		Title:     "foo",
		Solutions: []models.Solution{{Code: "x=1"}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "json", Format("a.json"))
	assert.Equal(t, "json", Format("dir/A.Json"))
	assert.Equal(t, "yaml", Format("a.yaml"))
	assert.Equal(t, "yaml", Format("a.yml"))
	assert.Equal(t, "yaml", Format("challenges"))
}
