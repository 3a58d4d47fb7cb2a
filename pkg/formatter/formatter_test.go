package formatter

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "katasync/pkg/errors"
)

func TestNop(t *testing.T) {
	out, err := Nop{}.Format(context.Background(), "const a=1\n")
	require.NoError(t, err)
	assert.Equal(t, "const a=1\n", out)
}

func TestFunc(t *testing.T) {
	f := Func(func(_ context.Context, src string) (string, error) {
		return strings.ToUpper(src), nil
	})
	out, err := f.Format(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", out)
}

func TestNewPrettierDefaults(t *testing.T) {
	p := NewPrettier("", nil)
	assert.Equal(t, "prettier", p.Binary)
	assert.Equal(t, []string{"--stdin-filepath", "solution.js"}, p.Args)

	p = NewPrettier("/opt/prettier", []string{"--parser", "babel"})
	assert.Equal(t, "/opt/prettier", p.Binary)
	assert.Equal(t, []string{"--parser", "babel"}, p.Args)
}

func TestPrettierPipesThroughBinary(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	p := &Prettier{Binary: "cat"}
	out, err := p.Format(context.Background(), "const a = 1;\n")
	require.NoError(t, err)
	assert.Equal(t, "const a = 1;\n", out)
}

func TestPrettierFailure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	p := &Prettier{Binary: "sh", Args: []string{"-c", "echo 'SyntaxError: Unexpected token' >&2; exit 2"}}
	_, err := p.Format(context.Background(), "const = ;\n")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrorTypeFormatter))
	assert.Contains(t, err.Error(), "SyntaxError: Unexpected token")
}

func TestPrettierMissingBinary(t *testing.T) {
	p := NewPrettier("katasync-no-such-prettier", nil)
	_, err := p.Format(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, errs.ErrorTypeFormatter, errs.TypeOf(err))
}

func TestPrettierEmptyOutput(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}

	p := &Prettier{Binary: "true"}
	_, err := p.Format(context.Background(), "const a = 1;\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "produced no output")
}
