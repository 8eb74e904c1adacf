package cmd

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mutoracle.dev/pkg/mutoracle/internal/controller"
	controllermocks "mutoracle.dev/pkg/mutoracle/internal/controller/mocks"
	"mutoracle.dev/pkg/mutoracle/internal/domain"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
	"mutoracle.dev/pkg/mutoracle/internal/testutil"
)

// smallCheck keeps oracle rounds quick.
func smallCheck(t *testing.T) {
	t.Helper()

	t.Setenv("MUTORACLE_ORACLE_CANDIDATES", "60")
	t.Setenv("MUTORACLE_ORACLE_SUITE_SIZE", "30")
	t.Setenv("MUTORACLE_ORACLE_WORKERS", "2")
	t.Setenv("MUTORACLE_ORACLE_ROUNDS", "5")
}

func expectCheckRun(mockUI *controllermocks.MockUI) {
	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().RoundStarted(mock.Anything, mock.Anything).Return().Maybe()
	mockUI.EXPECT().TraceExecuted(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	mockUI.EXPECT().CounterexampleFound(mock.Anything, mock.Anything).Return().Maybe()
	mockUI.EXPECT().RoundFinished(mock.Anything, mock.Anything).Return().Maybe()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()
	mockUI.EXPECT().Wait(mock.Anything).Return().Once()
}

func TestCheckCmd_FindsCounterexample(t *testing.T) {
	smallCheck(t)

	cmd, mockFiles, mockUI := newTestRootCmd(t)
	cmd.AddCommand(newCheckCmd())

	hyp := testutil.Chain3()
	mockFiles.EXPECT().Load("hyp.yaml").Return(hyp, nil).Once()
	mockFiles.EXPECT().Load("sul.yaml").Return(testutil.Chain3With("1"), nil).Once()

	expectCheckRun(mockUI)
	mockUI.EXPECT().DisplayResult(mock.Anything, mock.MatchedBy(func(result controller.Result) bool {
		if result.Err != nil || result.Counterexample == nil || result.Hypothesis != hyp {
			return false
		}

		out := result.Counterexample.Output
		return len(out) > 0 && out[len(out)-1] == "1" && result.Stats.Tests > 0
	})).Return(nil).Once()

	cmd.SetArgs([]string{"check", "-H", "hyp.yaml", "-s", "sul.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestCheckCmd_EquivalentMachines(t *testing.T) {
	smallCheck(t)
	t.Setenv("MUTORACLE_ORACLE_ROUNDS", "1")

	cmd, mockFiles, mockUI := newTestRootCmd(t)
	cmd.AddCommand(newCheckCmd())

	mockFiles.EXPECT().Load("hyp.yaml").Return(testutil.TwoState(), nil).Once()
	mockFiles.EXPECT().Load("sul.yaml").Return(testutil.TwoState(), nil).Once()

	expectCheckRun(mockUI)
	mockUI.EXPECT().DisplayResult(mock.Anything, mock.MatchedBy(func(result controller.Result) bool {
		return result.Err == nil && result.Counterexample == nil && result.Stats.Rounds == 1
	})).Return(nil).Once()

	cmd.SetArgs([]string{"check", "-H", "hyp.yaml", "-s", "sul.yaml", "--selector", "score", "-g", "random-word"})
	require.NoError(t, cmd.Execute())
}

func TestCheckCmd_BudgetExhausted(t *testing.T) {
	smallCheck(t)
	t.Setenv("MUTORACLE_ORACLE_MAX_TESTS", "2")

	cmd, mockFiles, mockUI := newTestRootCmd(t)
	cmd.AddCommand(newCheckCmd())

	mockFiles.EXPECT().Load("hyp.yaml").Return(testutil.Chain3(), nil).Once()
	mockFiles.EXPECT().Load("sul.yaml").Return(testutil.Chain3(), nil).Once()

	expectCheckRun(mockUI)
	mockUI.EXPECT().DisplayResult(mock.Anything, mock.MatchedBy(func(result controller.Result) bool {
		return errors.Is(result.Err, domain.ErrBudgetExhausted) && result.Stats.Tests == 2
	})).Return(nil).Once()

	cmd.SetArgs([]string{"check", "-H", "hyp.yaml", "-s", "sul.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestCheckCmd_SpillStore(t *testing.T) {
	smallCheck(t)
	t.Setenv("MUTORACLE_ORACLE_ROUNDS", "2")

	dir := t.TempDir()
	t.Setenv("MUTORACLE_ORACLE_SPILL_DIR", dir)

	cmd, mockFiles, mockUI := newTestRootCmd(t)
	cmd.AddCommand(newCheckCmd())

	mockFiles.EXPECT().Load("hyp.yaml").Return(testutil.TwoState(), nil).Once()
	mockFiles.EXPECT().Load("sul.yaml").Return(testutil.TwoState(), nil).Once()

	expectCheckRun(mockUI)
	mockUI.EXPECT().DisplayResult(mock.Anything, mock.Anything).Return(nil).Once()

	cmd.SetArgs([]string{"check", "-H", "hyp.yaml", "-s", "sul.yaml", "--spill"})
	require.NoError(t, cmd.Execute())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "the spill file is removed after the run")
}

func TestCheckCmd_Errors(t *testing.T) {
	t.Run("missing sul flag", func(t *testing.T) {
		cmd, _, _ := newTestRootCmd(t)
		cmd.AddCommand(newCheckCmd())

		cmd.SetArgs([]string{"check", "-H", "hyp.yaml"})
		assert.ErrorContains(t, cmd.Execute(), "required flag")
	})

	t.Run("load failure", func(t *testing.T) {
		cmd, mockFiles, _ := newTestRootCmd(t)
		cmd.AddCommand(newCheckCmd())

		mockFiles.EXPECT().Load("hyp.yaml").Return(nil, errors.New("no such file")).Once()

		cmd.SetArgs([]string{"check", "-H", "hyp.yaml", "-s", "sul.yaml"})
		assert.ErrorContains(t, cmd.Execute(), "no such file")
	})

	t.Run("alphabet mismatch", func(t *testing.T) {
		cmd, mockFiles, _ := newTestRootCmd(t)
		cmd.AddCommand(newCheckCmd())

		mockFiles.EXPECT().Load("hyp.yaml").Return(testutil.Chain3(), nil).Once()
		mockFiles.EXPECT().Load("sul.yaml").Return(testutil.TwoState(), nil).Once()

		cmd.SetArgs([]string{"check", "-H", "hyp.yaml", "-s", "sul.yaml"})
		assert.ErrorIs(t, cmd.Execute(), m.ErrAlphabetMismatch)
	})

	t.Run("unknown selector", func(t *testing.T) {
		cmd, mockFiles, _ := newTestRootCmd(t)
		cmd.AddCommand(newCheckCmd())

		mockFiles.EXPECT().Load(mock.Anything).Return(testutil.Chain3(), nil).Twice()

		cmd.SetArgs([]string{"check", "-H", "hyp.yaml", "-s", "sul.yaml", "--selector", "oracle-of-delphi"})
		assert.Error(t, cmd.Execute())
	})

	t.Run("invalid access prefix", func(t *testing.T) {
		cmd, mockFiles, _ := newTestRootCmd(t)
		cmd.AddCommand(newCheckCmd())

		mockFiles.EXPECT().Load(mock.Anything).Return(testutil.Chain3(), nil).Twice()

		cmd.SetArgs([]string{"check", "-H", "hyp.yaml", "-s", "sul.yaml", "--access-prefixes", "a b", "--access-prefixes", "a z"})
		assert.ErrorContains(t, cmd.Execute(), `invalid access sequence "a z"`)
	})
}

func TestParseTraces(t *testing.T) {
	alphabet := m.MustAlphabet("a", "b")

	traces, err := parseTraces(alphabet, []string{"", "a", "b  a b"})
	require.NoError(t, err)
	assert.Equal(t, []m.Trace{{}, {0}, {1, 0, 1}}, traces)

	_, err = parseTraces(alphabet, []string{"c"})
	assert.ErrorContains(t, err, `unknown input symbol "c"`)
}

func TestNewCheckCmd(t *testing.T) {
	cmd := newCheckCmd()

	assert.Equal(t, "check", cmd.Use)
	assert.Equal(t, checkLongDescription, cmd.Long)

	for _, name := range []string{hypothesisFlag, sulFlag, operatorsFlag, selectorFlag, maxStepsFlag, accessFlag} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
