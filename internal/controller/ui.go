// Package controller renders oracle progress and results for the CLI.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mutoracle.dev/pkg/mutoracle/internal/domain"
	"mutoracle.dev/pkg/mutoracle/internal/domain/equiv"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	// ModeInspect prints static reports only.
	ModeInspect StartMode = iota
	// ModeCheck follows a running oracle.
	ModeCheck
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	cancel context.CancelFunc
}

// WithInspectMode sets the UI to static report mode.
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

// WithCheckMode sets the UI to follow an oracle run. cancel, if not nil, is
// called when the user interrupts the display.
func WithCheckMode(cancel context.CancelFunc) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
		c.cancel = cancel
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// Result is the outcome of a check run.
type Result struct {
	Hypothesis     *m.Machine
	Counterexample *m.Counterexample
	Stats          m.OracleStats
	Err            error
}

// UI displays oracle progress and reports. Reporter callbacks are only
// delivered between Start and Close.
type UI interface {
	domain.Reporter
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayPopulation(ctx context.Context, pop *m.Population) error
	DisplayDivergences(ctx context.Context, divergences []equiv.Divergence) error
	DisplayResult(ctx context.Context, result Result) error
}

// NewUI returns the interactive TUI on terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
