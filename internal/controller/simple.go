package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mutoracle.dev/pkg/mutoracle/internal/domain"
	"mutoracle.dev/pkg/mutoracle/internal/domain/equiv"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd     *cobra.Command
	verbose bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI. In check mode every executed trace is printed.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.verbose = newStartConfig(options).mode == ModeCheck

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// RoundStarted prints the size of the new round.
func (s *SimpleUI) RoundStarted(ctx context.Context, info domain.RoundInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	mode := "baseline"
	if info.Batched {
		mode = "batched"
	}

	s.printf("Round %d: %d live mutants (%d retired), %d candidates, %s coverage\n",
		info.Round, info.Live, info.Retired, info.Candidates, mode)
}

// TraceExecuted prints each executed test.
func (s *SimpleUI) TraceExecuted(ctx context.Context, trace m.Trace, outputs []string, diverged bool) {
	if err := ctx.Err(); err != nil || !s.verbose {
		return
	}

	status := "pass"
	if diverged {
		status = "FAIL"
	}

	s.printf("  [%s] %d steps -> %s\n", status, len(trace), strings.Join(outputs, " "))
}

// CounterexampleFound announces the counterexample.
func (s *SimpleUI) CounterexampleFound(ctx context.Context, cex m.Counterexample) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Counterexample found after %d steps\n", len(cex.Input))
}

// RoundFinished prints running totals.
func (s *SimpleUI) RoundFinished(ctx context.Context, stats m.OracleStats) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Executed %d tests, %d steps so far\n", stats.Tests, stats.Steps)
}

// DisplayPopulation prints mutant counts per operator and group.
func (s *SimpleUI) DisplayPopulation(ctx context.Context, pop *m.Population) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderPopulationTable(pop))

	return nil
}

// DisplayDivergences prints the divergence table, or a note when the
// machines agree.
func (s *SimpleUI) DisplayDivergences(ctx context.Context, divergences []equiv.Divergence) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(divergences) == 0 {
		s.printf("Machines are equivalent\n")
		return nil
	}

	s.printf("\n%s", renderDivergenceTable(divergences))

	return nil
}

// DisplayResult prints the verdict, the counterexample diff and statistics.
func (s *SimpleUI) DisplayResult(ctx context.Context, result Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch {
	case errors.Is(result.Err, domain.ErrBudgetExhausted):
		s.printf("Budget exhausted without counterexample\n")
	case result.Err != nil:
		s.printf("check error: %v\n", result.Err)
		return result.Err
	case result.Counterexample == nil:
		s.printf("No counterexample found\n")
	default:
		text, err := renderCounterexample(result.Hypothesis, *result.Counterexample)
		if err != nil {
			return err
		}

		s.printf("%s", text)
	}

	s.printf("\n%s", renderStatsTable(result.Stats))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
