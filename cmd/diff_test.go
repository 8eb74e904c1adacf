package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mutoracle.dev/pkg/mutoracle/internal/domain/equiv"
	"mutoracle.dev/pkg/mutoracle/internal/testutil"
)

func TestDiffCmd_ReportsDivergences(t *testing.T) {
	cmd, mockFiles, mockUI := newTestRootCmd(t)
	cmd.AddCommand(newDiffCmd())

	mockFiles.EXPECT().Load("a.yaml").Return(testutil.Chain3(), nil).Once()
	mockFiles.EXPECT().Load("b.yaml").Return(testutil.Chain3With("1"), nil).Once()
	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayDivergences(mock.Anything, []equiv.Divergence{
		{Prefix: []string{"a", "a"}, Input: "a", OutputA: "0", OutputB: "1"},
	}).Return(nil).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	cmd.SetArgs([]string{"diff", "a.yaml", "b.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestDiffCmd_Errors(t *testing.T) {
	t.Run("wrong argument count", func(t *testing.T) {
		cmd, _, _ := newTestRootCmd(t)
		cmd.AddCommand(newDiffCmd())

		cmd.SetArgs([]string{"diff", "a.yaml"})
		assert.Error(t, cmd.Execute())
	})

	t.Run("load failure", func(t *testing.T) {
		cmd, mockFiles, _ := newTestRootCmd(t)
		cmd.AddCommand(newDiffCmd())

		mockFiles.EXPECT().Load("a.yaml").Return(testutil.Chain3(), nil).Once()
		mockFiles.EXPECT().Load("b.yaml").Return(nil, errors.New("permission denied")).Once()

		cmd.SetArgs([]string{"diff", "a.yaml", "b.yaml"})
		assert.ErrorContains(t, cmd.Execute(), "permission denied")
	})
}
