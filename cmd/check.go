package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutoracle.dev/pkg/mutoracle/internal/adapter"
	"mutoracle.dev/pkg/mutoracle/internal/controller"
	"mutoracle.dev/pkg/mutoracle/internal/domain"
	"mutoracle.dev/pkg/mutoracle/internal/domain/mutagens"
	"mutoracle.dev/pkg/mutoracle/internal/domain/sampling"
	"mutoracle.dev/pkg/mutoracle/internal/domain/selection"
	"mutoracle.dev/pkg/mutoracle/internal/domain/tracegen"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

const checkLongDescription = `Run the equivalence oracle for a hypothesis against a reference machine
acting as the system under learning. The reference machine is matched to
the hypothesis inputs by name.

With --rounds N the oracle is queried up to N times, resuming the previous
test suite when --reuse is set, until a counterexample is found.

` + machineFileHelp

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Search for a counterexample between a hypothesis and a SUL",
		Long:  checkLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindMutantFlags(cmd)

			hypPath, _ := cmd.Flags().GetString(hypothesisFlag)
			sulPath, _ := cmd.Flags().GetString(sulFlag)

			return runCheck(cmd.Context(), hypPath, sulPath)
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func configureCheckFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP(sulFlag, "s", "", "reference machine file simulated as the SUL")
	cobra.CheckErr(cmd.MarkFlagRequired(sulFlag))

	configureMutantFlags(cmd)

	flags.String(samplerFlag, defaultSampler, "population sampler for coverage, steps joined by *")
	bindFlagToConfig(flags.Lookup(samplerFlag), samplerConfigKey)
	flags.String(genSamplerFlag, "", "population sampler for generator hints (default: --sampler)")
	bindFlagToConfig(flags.Lookup(genSamplerFlag), genSamplerConfigKey)

	flags.StringP(generatorFlag, "g", tracegen.MixedName, "trace generator: random-word, mutant-directed or mixed")
	bindFlagToConfig(flags.Lookup(generatorFlag), generatorConfigKey)
	flags.String(selectorFlag, selection.GreedyName, "test selector: greedy, score, nonprob, length or random")
	bindFlagToConfig(flags.Lookup(selectorFlag), selectorConfigKey)
	flags.Bool(killAliveFlag, false, "synthesize kills for mutants no candidate covers (greedy)")
	bindFlagToConfig(flags.Lookup(killAliveFlag), killAliveConfigKey)

	flags.IntP(candidatesFlag, "n", defaultCandidates, "candidate traces generated per round")
	bindFlagToConfig(flags.Lookup(candidatesFlag), candidatesConfigKey)
	flags.IntP(suiteSizeFlag, "k", defaultSuiteSize, "maximum traces selected per round")
	bindFlagToConfig(flags.Lookup(suiteSizeFlag), suiteSizeConfigKey)
	flags.IntP(roundsFlag, "r", defaultRounds, "oracle queries before giving up")
	bindFlagToConfig(flags.Lookup(roundsFlag), roundsConfigKey)

	flags.Bool(reuseFlag, defaultReuse, "resume the unexecuted rest of the previous suite")
	bindFlagToConfig(flags.Lookup(reuseFlag), reuseConfigKey)
	flags.Bool(keepExecutedFlag, defaultKeepExecuted, "retire mutants killed by executed traces")
	bindFlagToConfig(flags.Lookup(keepExecutedFlag), keepExecutedConfigKey)
	flags.Bool(batchedFlag, defaultBatched, "use batched coverage evaluation when available")
	bindFlagToConfig(flags.Lookup(batchedFlag), batchedConfigKey)
	flags.IntP(workersFlag, "p", defaultWorkers, "parallel coverage workers")
	bindFlagToConfig(flags.Lookup(workersFlag), workersConfigKey)

	flags.Int64(maxStepsFlag, 0, "SUL step budget, 0 for unlimited")
	bindFlagToConfig(flags.Lookup(maxStepsFlag), maxStepsConfigKey)
	flags.Int64(maxTestsFlag, 0, "SUL test budget, 0 for unlimited")
	bindFlagToConfig(flags.Lookup(maxTestsFlag), maxTestsConfigKey)

	flags.Bool(spillFlag, false, "keep executed traces in a temporary file instead of memory")
	bindFlagToConfig(flags.Lookup(spillFlag), spillConfigKey)
}

// accessPrefixes holds the --access-prefixes values of the running command.
var accessPrefixes []string

// configureMutantFlags adds the hypothesis and mutation operator flags shared
// by check and mutants.
func configureMutantFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP(hypothesisFlag, "H", "", "hypothesis machine file")
	cobra.CheckErr(cmd.MarkFlagRequired(hypothesisFlag))

	flags.StringSliceP(operatorsFlag, "m", nil, "mutation operators (default: all)")
	flags.StringArrayVar(&accessPrefixes, accessFlag, nil, "learner access sequence for split-state, inputs separated by spaces (can be repeated)")
}

// bindMutantFlags binds the shared flags of the running command. Both
// commands own a flag for the same key, so binding happens at run time.
func bindMutantFlags(cmd *cobra.Command) {
	bindFlagToConfig(cmd.Flags().Lookup(operatorsFlag), operatorsConfigKey)
}

func runCheck(ctx context.Context, hypPath, sulPath string) error {
	hyp, err := machineFiles.Load(hypPath)
	if err != nil {
		return err
	}

	reference, err := machineFiles.Load(sulPath)
	if err != nil {
		return err
	}

	sul, err := adapter.NewMachineSUL(reference, hyp.Alphabet())
	if err != nil {
		return err
	}

	store, err := newTraceStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	oracle, err := newOracle(hyp, adapter.NewTrackingSUL(sul), store)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := ui.Start(ctx, controller.WithCheckMode(cancel)); err != nil {
		return err
	}

	var cex *m.Counterexample

	rounds := max(viper.GetInt(roundsConfigKey), 1)
	for range rounds {
		cex, err = oracle.FindCounterexample(ctx, hyp)
		if cex != nil || err != nil {
			break
		}
	}

	ui.Close(ctx)
	ui.Wait(ctx)

	return ui.DisplayResult(context.WithoutCancel(ctx), controller.Result{
		Hypothesis:     hyp,
		Counterexample: cex,
		Stats:          oracle.Stats(),
		Err:            err,
	})
}

func newTraceStore() (adapter.TraceStore, error) {
	if !viper.GetBool(spillConfigKey) {
		return adapter.NewMemoryTraceStore(), nil
	}

	// An empty directory selects the default spill location.
	return adapter.NewSpillTraceStore(viper.GetString(spillDirConfigKey))
}

func newOracle(hyp *m.Machine, sul adapter.SUL, store adapter.TraceStore) (domain.Oracle, error) {
	seed := viper.GetUint64(seedConfigKey)

	operators, err := newOperators(hyp, seed)
	if err != nil {
		return nil, err
	}

	sampler, err := sampling.Parse(viper.GetString(samplerConfigKey), seed)
	if err != nil {
		return nil, err
	}

	var genSampler sampling.Strategy
	if text := viper.GetString(genSamplerConfigKey); text != "" {
		genSampler, err = sampling.Parse(text, seed)
		if err != nil {
			return nil, err
		}
	}

	generator, err := tracegen.New(viper.GetString(generatorConfigKey), checker, tracegen.Options{
		MinLength:      viper.GetInt(minLengthKey),
		MaxLength:      viper.GetInt(maxLengthKey),
		RandomPrefix:   viper.GetInt(randomPrefixKey),
		RandomSuffix:   viper.GetInt(randomSuffixKey),
		DirectedWeight: viper.GetInt(directedWeightKey),
		Seed:           seed,
	})
	if err != nil {
		return nil, err
	}

	selector, err := selection.New(viper.GetString(selectorConfigKey), selection.Options{
		KillAlive: viper.GetBool(killAliveConfigKey),
		Seed:      seed,
	})
	if err != nil {
		return nil, err
	}

	return domain.NewOracle(sul, store, domain.NewMutagen(operators...), checker, ui, domain.Config{
		SelectionSampler:  sampler,
		GenerationSampler: genSampler,
		Generator:         generator,
		Selector:          selector,
		CandidateCount:    viper.GetInt(candidatesConfigKey),
		SuiteSize:         viper.GetInt(suiteSizeConfigKey),
		Reuse:             viper.GetBool(reuseConfigKey),
		KeepExecuted:      viper.GetBool(keepExecutedConfigKey),
		Batched:           viper.GetBool(batchedConfigKey),
		Workers:           viper.GetInt(workersConfigKey),
		MaxSteps:          viper.GetInt64(maxStepsConfigKey),
		MaxTests:          viper.GetInt64(maxTestsConfigKey),
	}), nil
}

func newOperators(hyp *m.Machine, seed uint64) ([]mutagens.Operator, error) {
	opts := mutagens.DefaultOptions()
	opts.Seed = seed
	opts.MaxDiffInputs = viper.GetInt(maxDiffInputsKey)
	opts.MaxDiffTargets = viper.GetInt(maxDiffTargetsKey)
	opts.Split.AccSeqBound = viper.GetInt(accSeqBoundKey)
	opts.Split.MutationDepth = viper.GetInt(mutationDepthKey)
	opts.Split.GlobalVisited = viper.GetBool(globalVisitedKey)

	if len(accessPrefixes) > 0 {
		prefixes, err := parseTraces(hyp.Alphabet(), accessPrefixes)
		if err != nil {
			return nil, err
		}

		opts.Split.Access = mutagens.NewPrefixAccess(hyp, prefixes)
	}

	return mutagens.New(viper.GetStringSlice(operatorsConfigKey), opts)
}

// parseTraces reads words of space separated input names.
func parseTraces(alphabet *m.Alphabet, words []string) ([]m.Trace, error) {
	traces := make([]m.Trace, 0, len(words))

	for _, word := range words {
		trace, err := alphabet.Parse(strings.Fields(word)...)
		if err != nil {
			return nil, fmt.Errorf("invalid access sequence %q: %w", word, err)
		}

		traces = append(traces, trace)
	}

	return traces, nil
}
