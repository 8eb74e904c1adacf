package coverage

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutoracle.dev/pkg/mutoracle/internal/domain/mutagens"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
	"mutoracle.dev/pkg/mutoracle/internal/testutil"
)

func generate(t *testing.T, hyp *m.Machine, ops ...mutagens.Operator) []*m.Mutant {
	t.Helper()

	ids := m.NewIDGen()

	var mutants []*m.Mutant

	for _, op := range ops {
		pop, err := op.Generate(hyp, ids)
		require.NoError(t, err)

		mutants = append(mutants, pop.Flatten()...)
	}

	return mutants
}

func randomTraces(seed uint64, k, count, maxLen int) []m.Trace {
	rnd := rand.New(rand.NewPCG(seed, seed))
	traces := make([]m.Trace, count)

	for i := range traces {
		trace := make(m.Trace, rnd.IntN(maxLen+1))
		for j := range trace {
			trace[j] = m.Symbol(rnd.IntN(k))
		}

		traces[i] = trace
	}

	return traces
}

// exactKills returns the mutants whose machine diverges from hyp on trace.
func exactKills(hyp *m.Machine, mutants []*m.Mutant, trace m.Trace) []uint64 {
	expected := hyp.Outputs(trace)
	killed := make(map[uint64]struct{})

	for _, mut := range mutants {
		if diverges(mut.Machine(), trace, expected) {
			killed[mut.ID] = struct{}{}
		}
	}

	return sortedIDs(killed)
}

func TestBaselineAndBatchedAgree(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 4} {
		hyp := testutil.Random(seed, 6, 3, 3)
		mutants := generate(t, hyp,
			mutagens.NewChangeOutput(),
			mutagens.NewSplitState(mutagens.DefaultSplitOptions()),
		)

		evaluator := NewEvaluator(hyp, mutants, Options{Batched: true})
		require.True(t, evaluator.BatchedAvailable())

		for _, trace := range randomTraces(seed, 3, 200, 12) {
			batched, ok := evaluator.Batched(trace)
			require.True(t, ok)
			assert.Equal(t, evaluator.Baseline(trace), batched, "trace %v", trace)
			assert.Equal(t, batched, evaluator.Killed(trace))
		}
	}
}

func TestBatchedDisabled(t *testing.T) {
	hyp := testutil.Random(5, 5, 2, 2)

	t.Run("mutant without suffix disables the automaton", func(t *testing.T) {
		mutants := generate(t, hyp,
			mutagens.NewChangeTarget(2, 2, 1),
			mutagens.NewSplitState(mutagens.DefaultSplitOptions()),
		)

		evaluator := NewEvaluator(hyp, mutants, Options{Batched: true})
		assert.False(t, evaluator.BatchedAvailable())

		_, ok := evaluator.Batched(m.Trace{0})
		assert.False(t, ok)
	})

	t.Run("option off", func(t *testing.T) {
		evaluator := NewEvaluator(hyp, generate(t, hyp, mutagens.NewChangeOutput()), Options{})
		assert.False(t, evaluator.BatchedAvailable())
	})
}

func TestDefinitelyKilledPath(t *testing.T) {
	hyp := testutil.TwoState()
	mutants := generate(t, hyp, mutagens.NewChangeOutput())
	evaluator := NewEvaluator(hyp, mutants, Options{Batched: true})

	assert.Empty(t, evaluator.Killed(nil))
	assert.Equal(t, []uint64{0}, evaluator.Killed(m.Trace{0}))
	assert.Equal(t, []uint64{0, 1}, evaluator.Killed(m.Trace{0, 0}))
	assert.Equal(t, []uint64{0, 1}, evaluator.Baseline(m.Trace{0, 0, 0}))
}

func TestMaterializeAndSimulatePath(t *testing.T) {
	for _, seed := range []uint64{3, 6, 9} {
		hyp := testutil.Random(seed, 6, 3, 2)
		mutants := generate(t, hyp,
			mutagens.NewChangeOutput(),
			mutagens.NewChangeTarget(3, 3, seed),
		)

		evaluator := NewEvaluator(hyp, mutants, Options{Batched: true})
		require.False(t, evaluator.BatchedAvailable())

		// Each mutant differs from hyp in one transition only, so the
		// baseline must match brute-force simulation exactly.
		for _, trace := range randomTraces(seed, 3, 100, 10) {
			assert.Equal(t, exactKills(hyp, mutants, trace), evaluator.Killed(trace), "trace %v", trace)
		}
	}
}

func TestSuffixTrackingPath(t *testing.T) {
	hyp := testutil.Chain3()
	mutants := generate(t, hyp, mutagens.NewSplitState(mutagens.DefaultSplitOptions()))
	require.NotEmpty(t, mutants)

	evaluator := NewEvaluator(hyp, mutants, Options{Batched: true})
	require.True(t, evaluator.BatchedAvailable())

	for _, mut := range mutants {
		critical := mut.Critical
		access := shortestAccess(hyp, critical.PreState)

		t.Run("kill suffix after crossing kills", func(t *testing.T) {
			trace := access.Concat(m.Trace{critical.Input}, critical.KillSuffix)

			assert.Contains(t, evaluator.Baseline(trace), mut.ID)
			assert.Contains(t, evaluator.Killed(trace), mut.ID)
			assert.NotEqual(t, hyp.Outputs(trace), mut.Machine().Outputs(trace))
		})

		t.Run("partial suffix does not kill", func(t *testing.T) {
			trace := access.Concat(m.Trace{critical.Input}, critical.KillSuffix[:len(critical.KillSuffix)-1])

			assert.NotContains(t, evaluator.Baseline(trace), mut.ID)
			assert.NotContains(t, evaluator.Killed(trace), mut.ID)
		})
	}
}

// shortestAccess returns a shortest input sequence from the initial state to s.
func shortestAccess(hyp *m.Machine, s m.StateID) m.Trace {
	for n := 0; ; n++ {
		for _, w := range testutil.Words(hyp.Alphabet().Size(), n) {
			if hyp.StateAfter(w) == s {
				return w
			}
		}
	}
}

func TestRetire(t *testing.T) {
	hyp := testutil.TwoState()
	mutants := generate(t, hyp, mutagens.NewChangeOutput())
	evaluator := NewEvaluator(hyp, mutants, Options{Batched: true})

	assert.Equal(t, 0, evaluator.Retire([]m.Trace{{}}))
	assert.Equal(t, 1, evaluator.Retire([]m.Trace{{0}}))
	assert.Equal(t, 1, evaluator.LiveCount())
	require.Len(t, evaluator.Live(), 1)
	assert.Equal(t, uint64(1), evaluator.Live()[0].ID)

	assert.Equal(t, []uint64{1}, evaluator.Killed(m.Trace{0, 0}))
	assert.True(t, evaluator.BatchedAvailable())

	assert.Equal(t, 1, evaluator.Retire([]m.Trace{{0, 0}}))
	assert.Equal(t, 0, evaluator.LiveCount())
	assert.Empty(t, evaluator.Killed(m.Trace{0, 0}))
}

func TestRetireMixedPopulation(t *testing.T) {
	hyp := testutil.Random(12, 5, 2, 2)
	mutants := generate(t, hyp,
		mutagens.NewChangeOutput(),
		mutagens.NewChangeTarget(2, 2, 1),
		mutagens.NewSplitState(mutagens.DefaultSplitOptions()),
	)

	evaluator := NewEvaluator(hyp, mutants, Options{})
	executed := randomTraces(12, 2, 20, 8)

	var expected int

	seen := make(map[uint64]struct{})
	for _, trace := range executed {
		for _, id := range evaluator.Baseline(trace) {
			seen[id] = struct{}{}
		}
	}

	expected = len(seen)

	assert.Equal(t, expected, evaluator.Retire(executed))
	assert.Equal(t, len(mutants)-expected, evaluator.LiveCount())

	for _, trace := range executed {
		assert.Empty(t, evaluator.Killed(trace))
	}
}

func TestEvaluate(t *testing.T) {
	hyp := testutil.TwoState()
	mutants := generate(t, hyp, mutagens.NewChangeOutput())
	evaluator := NewEvaluator(hyp, mutants, Options{Workers: 4, Batched: true})

	traces := []m.Trace{{}, {0}, {0, 0}}

	t.Run("scores keep input order", func(t *testing.T) {
		results, err := evaluator.Evaluate(context.Background(), traces)
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Empty(t, results[0].Killed)
		assert.InDelta(t, 0.0, results[0].Score, 1e-9)
		assert.Equal(t, []uint64{0}, results[1].Killed)
		assert.InDelta(t, 0.5, results[1].Score, 1e-9)
		assert.Equal(t, []uint64{0, 1}, results[2].Killed)
		assert.InDelta(t, 1.0, results[2].Score, 1e-9)
		assert.Equal(t, traces[2], results[2].Trace)
	})

	t.Run("cancelled context fails", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := evaluator.Evaluate(ctx, traces)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestForeignMutantPanics(t *testing.T) {
	hyp := testutil.TwoState()
	other := testutil.TwoState()
	mutants := generate(t, other, mutagens.NewChangeOutput())

	assert.Panics(t, func() { NewEvaluator(hyp, mutants, Options{}) })
}
