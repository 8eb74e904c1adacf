package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"mutoracle.dev/pkg/mutoracle/internal/controller"
	"mutoracle.dev/pkg/mutoracle/internal/domain/equiv"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <machine-a> <machine-b>",
		Short: "List the transitions where two machines first disagree",
		Long: `Compare two machine files over the same inputs and list every reachable
transition whose output differs, with the shortest input word leading to it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.Context(), args[0], args[1])
		},
	}
}

func runDiff(ctx context.Context, pathA, pathB string) error {
	a, err := machineFiles.Load(pathA)
	if err != nil {
		return err
	}

	b, err := machineFiles.Load(pathB)
	if err != nil {
		return err
	}

	divergences, err := equiv.Divergences(a, b)
	if err != nil {
		return err
	}

	if err := ui.Start(ctx, controller.WithInspectMode()); err != nil {
		return err
	}
	defer ui.Close(ctx)

	return ui.DisplayDivergences(ctx, divergences)
}
