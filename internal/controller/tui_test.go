package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutoracle.dev/pkg/mutoracle/internal/domain"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
	"mutoracle.dev/pkg/mutoracle/internal/testutil"
)

func TestTUI_StaticDisplays(t *testing.T) {
	ctx := context.Background()

	t.Run("counterexample", func(t *testing.T) {
		var buf bytes.Buffer
		tui := NewTUI(&buf)

		require.NoError(t, tui.Start(ctx, WithInspectMode()))
		require.NoError(t, tui.DisplayResult(ctx, Result{
			Hypothesis:     testutil.Chain3(),
			Counterexample: ptr(chainCounterexample()),
		}))

		output := buf.String()
		assert.Contains(t, output, "Counterexample")
		assert.Contains(t, output, "+3: a / 1")
		assert.Contains(t, output, "Statistics")
	})

	t.Run("equivalent machines", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, NewTUI(&buf).DisplayDivergences(ctx, nil))
		assert.Contains(t, buf.String(), "Machines are equivalent")
	})

	t.Run("reporter without program is a no-op", func(t *testing.T) {
		var buf bytes.Buffer
		tui := NewTUI(&buf)

		tui.RoundStarted(ctx, domain.RoundInfo{Round: 1})
		tui.Close(ctx)
		tui.Wait(ctx)

		assert.Empty(t, buf.String())
	})
}

func TestProgressModel(t *testing.T) {
	pm := newProgressModel(nil)

	next, _ := pm.Update(roundMsg(domain.RoundInfo{Round: 2, Live: 7, Candidates: 30}))
	pm = next.(progressModel)

	next, _ = pm.Update(traceMsg{steps: 4})
	pm = next.(progressModel)

	view := pm.View()
	assert.Contains(t, view, "round 2")
	assert.Contains(t, view, "7 live mutants")
	assert.Contains(t, view, "1 tests · 4 steps")
	assert.Contains(t, view, "q: abort")

	next, _ = pm.Update(statsMsg(m.OracleStats{Tests: 10, Steps: 50}))
	pm = next.(progressModel)
	assert.Contains(t, pm.View(), "10 tests · 50 steps")

	next, cmd := pm.Update(finishedMsg{})
	pm = next.(progressModel)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.NotContains(t, pm.View(), "q: abort")
}

func TestProgressModel_QuitCancels(t *testing.T) {
	cancelled := false
	pm := newProgressModel(func() { cancelled = true })

	next, cmd := pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.True(t, cancelled)
	assert.True(t, next.(progressModel).finished)
}

func TestProgressModel_SpinnerTicks(t *testing.T) {
	pm := newProgressModel(nil)

	require.NotNil(t, pm.Init())

	_, cmd := pm.Update(pm.spinner.Tick())
	assert.NotNil(t, cmd)

	other := spinner.New()
	_, cmd = pm.Update(other.Tick())
	assert.Nil(t, cmd, "ticks of another spinner are ignored")
}
