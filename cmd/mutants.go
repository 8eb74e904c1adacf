package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutoracle.dev/pkg/mutoracle/internal/controller"
	"mutoracle.dev/pkg/mutoracle/internal/domain"
	"mutoracle.dev/pkg/mutoracle/internal/domain/sampling"
)

func newMutantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutants",
		Short: "Summarize the mutant population of a hypothesis",
		Long: `Generate the mutants of a hypothesis and print their counts per operator
and per group. --sampler previews the population a check run would cover.

` + machineFileHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindMutantFlags(cmd)

			hypPath, _ := cmd.Flags().GetString(hypothesisFlag)
			sampler, _ := cmd.Flags().GetString(samplerFlag)

			return runMutants(cmd.Context(), hypPath, sampler)
		},
	}

	configureMutantFlags(cmd)
	cmd.Flags().String(samplerFlag, "", "population sampler applied before counting, steps joined by *")

	return cmd
}

func runMutants(ctx context.Context, hypPath, samplerText string) error {
	hyp, err := machineFiles.Load(hypPath)
	if err != nil {
		return err
	}

	seed := viper.GetUint64(seedConfigKey)

	operators, err := newOperators(hyp, seed)
	if err != nil {
		return err
	}

	sampler, err := sampling.Parse(samplerText, seed)
	if err != nil {
		return err
	}

	population, err := domain.NewMutagen(operators...).Generate(ctx, hyp)
	if err != nil {
		return err
	}

	if err := ui.Start(ctx, controller.WithInspectMode()); err != nil {
		return err
	}
	defer ui.Close(ctx)

	return ui.DisplayPopulation(ctx, sampler.Sample(population))
}
