// Package formatter pretty-prints solution source before it is saved.
package formatter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	errs "katasync/pkg/errors"
)

// Formatter rewrites source code into its canonical layout.
type Formatter interface {
	Format(ctx context.Context, src string) (string, error)
}

// Nop returns source unchanged.
type Nop struct{}

func (Nop) Format(_ context.Context, src string) (string, error) { return src, nil }

// Func adapts a plain function to Formatter.
type Func func(ctx context.Context, src string) (string, error)

func (f Func) Format(ctx context.Context, src string) (string, error) { return f(ctx, src) }

// DefaultPrettierArgs makes prettier read stdin and infer the babel parser
// from the file name.
var DefaultPrettierArgs = []string{"--stdin-filepath", "solution.js"}

// Prettier pipes source through the prettier CLI.
type Prettier struct {
	Binary string
	Args   []string
}

// NewPrettier returns a Prettier formatter. Empty arguments fall back to the defaults.
func NewPrettier(binary string, args []string) *Prettier {
	if binary == "" {
		binary = "prettier"
	}
	if len(args) == 0 {
		args = DefaultPrettierArgs
	}
	return &Prettier{Binary: binary, Args: args}
}

func (p *Prettier) Format(ctx context.Context, src string) (string, error) {
	//nolint:gosec // G204: binary comes from user configuration
	cmd := exec.CommandContext(ctx, p.Binary, p.Args...)
	cmd.Stdin = strings.NewReader(src)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		e := errs.Wrap(errs.ErrorTypeFormatter, "format", p.Binary, err)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			e.Message = firstLine(msg)
		}
		return "", e
	}

	if stdout.Len() == 0 && len(src) > 0 {
		return "", errs.New(errs.ErrorTypeFormatter, "format", fmt.Sprintf("%s produced no output", p.Binary))
	}

	return stdout.String(), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
