package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"mutoracle.dev/pkg/mutoracle/internal/domain"
	"mutoracle.dev/pkg/mutoracle/internal/domain/equiv"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	boxStyle     = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)
)

const defaultWidth = 80

// TUI implements UI with a live Bubble Tea progress view.
type TUI struct {
	output io.Writer
	width  int

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	width := defaultWidth

	if f, ok := output.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	return &TUI{output: output, width: width}
}

// Start launches the progress view in check mode. Other modes print only.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode != ModeCheck {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.program = tea.NewProgram(newProgressModel(cfg.cancel), tea.WithOutput(t.output), tea.WithContext(ctx))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			fmt.Fprintf(t.output, "progress view failed: %v\n", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the progress view.
func (t *TUI) Close(_ context.Context) {
	t.send(finishedMsg{})
}

// Wait blocks until the progress view has exited.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

func (t *TUI) RoundStarted(_ context.Context, info domain.RoundInfo) {
	t.send(roundMsg(info))
}

func (t *TUI) TraceExecuted(_ context.Context, trace m.Trace, _ []string, diverged bool) {
	t.send(traceMsg{steps: len(trace), diverged: diverged})
}

func (t *TUI) CounterexampleFound(_ context.Context, cex m.Counterexample) {
	t.send(traceMsg{steps: 0, diverged: true, cex: &cex})
}

func (t *TUI) RoundFinished(_ context.Context, stats m.OracleStats) {
	t.send(statsMsg(stats))
}

// DisplayPopulation prints the population table inside a box.
func (t *TUI) DisplayPopulation(ctx context.Context, pop *m.Population) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.print(titleStyle.Render("Mutant population"), renderPopulationTable(pop))
}

// DisplayDivergences prints the divergence table inside a box.
func (t *TUI) DisplayDivergences(ctx context.Context, divergences []equiv.Divergence) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(divergences) == 0 {
		return t.print(successStyle.Render("✓ Machines are equivalent"), "")
	}

	title := failStyle.Render(fmt.Sprintf("✗ %d divergences", len(divergences)))

	return t.print(title, renderDivergenceTable(divergences))
}

// DisplayResult prints the verdict followed by the statistics.
func (t *TUI) DisplayResult(ctx context.Context, result Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch {
	case errors.Is(result.Err, domain.ErrBudgetExhausted):
		if err := t.print(warnStyle.Render("⚠ Budget exhausted without counterexample"), ""); err != nil {
			return err
		}
	case result.Err != nil:
		_ = t.print(failStyle.Render("✗ Check failed"), result.Err.Error())
		return result.Err
	case result.Counterexample == nil:
		if err := t.print(successStyle.Render("✓ No counterexample found"), ""); err != nil {
			return err
		}
	default:
		text, err := renderCounterexample(result.Hypothesis, *result.Counterexample)
		if err != nil {
			return err
		}

		if err := t.print(failStyle.Render("✗ Counterexample"), colorDiff(text)); err != nil {
			return err
		}
	}

	return t.print(mutedStyle.Render("Statistics"), renderStatsTable(result.Stats))
}

func (t *TUI) print(title, body string) error {
	content := title
	if body != "" {
		content += "\n\n" + strings.TrimRight(body, "\n")
	}

	_, err := fmt.Fprintln(t.output, boxStyle.MaxWidth(t.width).Render(content))

	return err
}

// colorDiff highlights added and removed lines of a unified diff.
func colorDiff(text string) string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = mutedStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = failStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = successStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

type (
	roundMsg    domain.RoundInfo
	statsMsg    m.OracleStats
	finishedMsg struct{}
	traceMsg    struct {
		steps    int
		diverged bool
		cex      *m.Counterexample
	}
)

// progressModel is the Bubble Tea model of a running check.
type progressModel struct {
	spinner spinner.Model
	cancel  context.CancelFunc

	round      int
	live       int
	candidates int
	tests      int64
	steps      int64
	found      bool
	finished   bool
}

func newProgressModel(cancel context.CancelFunc) progressModel {
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle)),
		cancel:  cancel,
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if pm.cancel != nil {
				pm.cancel()
			}

			pm.finished = true

			return pm, tea.Quit
		}
	case roundMsg:
		pm.round = msg.Round
		pm.live = msg.Live
		pm.candidates = msg.Candidates
	case traceMsg:
		if msg.cex != nil {
			pm.found = true
		} else {
			pm.tests++
			pm.steps += int64(msg.steps)
		}
	case statsMsg:
		pm.tests = msg.Tests
		pm.steps = msg.Steps
	case finishedMsg:
		pm.finished = true
		return pm, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	status := fmt.Sprintf("round %d · %d live mutants · %d candidates · %d tests · %d steps",
		pm.round, pm.live, pm.candidates, pm.tests, pm.steps)

	if pm.finished {
		marker := successStyle.Render("✓")
		if pm.found {
			marker = failStyle.Render("✗")
		}

		return fmt.Sprintf("%s %s\n", marker, status)
	}

	return fmt.Sprintf("%s %s\n%s\n", pm.spinner.View(), status, mutedStyle.Render("q: abort"))
}
