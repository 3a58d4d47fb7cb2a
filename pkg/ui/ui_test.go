package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTerminalPrefixesMessages(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, false, true)

	term.Info("Added a directory for level 4kyu katas!")
	term.Success("foo_v1.py has been saved locally and commited to git!")

	assert.Equal(t,
		"ℹ Added a directory for level 4kyu katas!\n"+
			"✔ foo_v1.py has been saved locally and commited to git!\n",
		buf.String())
}

func TestTerminalQuietSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, true, true)

	term.Info("hidden")
	term.Success("shown")
	term.Detail("Files", 3)

	assert.Equal(t, "✔ shown\n", buf.String())
}

func TestTerminalWarningAndError(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, true, true)

	term.Warning("careful")
	term.Error("broken")

	assert.Equal(t, "⚠ careful\n✖ broken\n", buf.String())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	var sink Sink = r

	sink.Info("a")
	sink.Success("b")
	sink.Info("c")

	assert.Equal(t, []Event{{KindInfo, "a"}, {KindSuccess, "b"}, {KindInfo, "c"}}, r.Events())
	assert.Equal(t, []string{"a", "c"}, r.Messages(KindInfo))
	assert.Equal(t, []string{"b"}, r.Messages(KindSuccess))
}

func TestRunSummary(t *testing.T) {
	tests := []struct {
		written, levels int
		want            string
	}{
		{0, 0, "Everything is already up to date"},
		{1, 1, "Saved 1 new solution"},
		{3, 0, "Saved 3 new solutions"},
	}
	for _, tt := range tests {
		s := RunSummary{FilesWritten: tt.written, LevelsCreated: tt.levels}
		assert.Equal(t, tt.want, s.Headline())
	}

	var buf bytes.Buffer
	RunSummary{FilesWritten: 2, FilesSkipped: 5, Elapsed: 1500 * time.Millisecond}.Print(NewTerminal(&buf, false, true))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "✔ Saved 2 new solutions\n"))
	assert.Contains(t, out, "Files skipped:")
	assert.Contains(t, out, "1.5s")
}
