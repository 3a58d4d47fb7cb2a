package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

const (
	infoSymbol    = "ℹ"
	successSymbol = "✔"
	warnSymbol    = "⚠"
	errorSymbol   = "✖"
)

// Terminal prints progress messages with a colored symbol prefix.
type Terminal struct {
	mu    sync.Mutex
	out   io.Writer
	quiet bool

	info    *color.Color
	success *color.Color
	warn    *color.Color
	err     *color.Color
	dim     *color.Color
}

// NewTerminal returns a Terminal writing to out, or stdout when out is nil.
// Quiet suppresses Info messages only.
func NewTerminal(out io.Writer, quiet, noColor bool) *Terminal {
	if out == nil {
		out = os.Stdout
	}

	t := &Terminal{
		out:     out,
		quiet:   quiet,
		info:    color.New(color.FgBlue),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed, color.Bold),
		dim:     color.New(color.Faint),
	}

	if noColor {
		for _, c := range []*color.Color{t.info, t.success, t.warn, t.err, t.dim} {
			c.DisableColor()
		}
	}

	return t
}

func (t *Terminal) Info(msg string) {
	if t.quiet {
		return
	}
	t.print(t.info, infoSymbol, msg)
}

func (t *Terminal) Success(msg string) {
	t.print(t.success, successSymbol, msg)
}

func (t *Terminal) Warning(msg string) {
	t.print(t.warn, warnSymbol, msg)
}

func (t *Terminal) Error(msg string) {
	t.print(t.err, errorSymbol, msg)
}

// Detail prints a dimmed key/value line, used for run summaries.
func (t *Terminal) Detail(label string, value interface{}) {
	if t.quiet {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "  %s %v\n", t.dim.Sprintf("%-16s", label+":"), value)
}

func (t *Terminal) print(c *color.Color, symbol, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s %s\n", c.Sprint(symbol), msg)
}
