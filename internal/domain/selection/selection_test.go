package selection

import (
	"context"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutoracle.dev/pkg/mutoracle/internal/domain/coverage"
	"mutoracle.dev/pkg/mutoracle/internal/domain/equiv"
	"mutoracle.dev/pkg/mutoracle/internal/domain/mutagens"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
	"mutoracle.dev/pkg/mutoracle/internal/testutil"
)

func stubMutants(n int) []*m.Mutant {
	mutants := make([]*m.Mutant, n)
	for i := range mutants {
		mutants[i] = m.NewMutant(uint64(i), "stub", m.CriticalTransition{}, false, nil)
	}

	return mutants
}

func candidate(label m.Symbol, total int, killed ...uint64) m.EvaluatedTrace {
	return m.EvaluatedTrace{
		Trace:  m.Trace{label},
		Killed: killed,
		Score:  float64(len(killed)) / float64(total),
	}
}

func labels(traces []m.Trace) []m.Symbol {
	out := make([]m.Symbol, len(traces))
	for i, tr := range traces {
		out[i] = tr[0]
	}

	return out
}

func fixture() Input {
	return Input{
		Mutants: stubMutants(6),
		Candidates: []m.EvaluatedTrace{
			candidate(0, 6, 0, 1),
			candidate(1, 6, 1, 2, 3),
			candidate(2, 6, 4),
			candidate(3, 6),
			candidate(4, 6, 0, 1, 2, 3),
		},
		Bound: 10,
	}
}

func TestGreedy(t *testing.T) {
	t.Run("covers greedily then fills by score", func(t *testing.T) {
		suite := Collect(NewGreedy(false).Select(fixture()), -1)
		assert.Equal(t, []m.Symbol{4, 2, 1, 0, 3}, labels(suite))
	})

	t.Run("bound truncates the same sequence", func(t *testing.T) {
		full := labels(Collect(NewGreedy(false).Select(fixture()), -1))

		for bound := 0; bound <= len(full); bound++ {
			in := fixture()
			in.Bound = bound

			assert.Equal(t, full[:bound], labels(Collect(NewGreedy(false).Select(in), -1)))
		}
	})

	t.Run("ties keep input order", func(t *testing.T) {
		in := Input{
			Mutants: stubMutants(4),
			Candidates: []m.EvaluatedTrace{
				candidate(0, 4, 0, 1),
				candidate(1, 4, 2, 3),
				candidate(2, 4, 1, 2),
			},
			Bound: 2,
		}

		assert.Equal(t, []m.Symbol{0, 1}, labels(Collect(NewGreedy(false).Select(in), -1)))
	})

	t.Run("without mutants takes the first candidates", func(t *testing.T) {
		in := fixture()
		in.Mutants = nil
		in.Bound = 2

		assert.Equal(t, []m.Symbol{0, 1}, labels(Collect(NewGreedy(false).Select(in), -1)))
	})

	t.Run("iterator can be resumed", func(t *testing.T) {
		it := NewGreedy(false).Select(fixture())

		first := Collect(it, 2)
		rest := Collect(it, -1)

		assert.Equal(t, []m.Symbol{4, 2}, labels(first))
		assert.Equal(t, []m.Symbol{1, 0, 3}, labels(rest))
	})
}

func evaluated(t *testing.T, evaluator *coverage.Evaluator, traces []m.Trace) []m.EvaluatedTrace {
	t.Helper()

	results, err := evaluator.Evaluate(context.Background(), traces)
	require.NoError(t, err)

	return results
}

func realInput(t *testing.T, hyp *m.Machine, traces []m.Trace, bound int, ops ...mutagens.Operator) Input {
	t.Helper()

	ids := m.NewIDGen()

	var mutants []*m.Mutant

	for _, op := range ops {
		pop, err := op.Generate(hyp, ids)
		require.NoError(t, err)

		mutants = append(mutants, pop.Flatten()...)
	}

	evaluator := coverage.NewEvaluator(hyp, mutants, coverage.Options{Workers: 2, Batched: true})

	return Input{
		Hypothesis: hyp,
		Mutants:    evaluator.Live(),
		Candidates: evaluated(t, evaluator, traces),
		Bound:      bound,
		KilledBy:   evaluator.Killed,
		Checker:    equiv.NewChecker(),
		Workers:    2,
	}
}

func randomTraces(seed uint64, k, count, maxLen int) []m.Trace {
	rnd := rand.New(rand.NewPCG(seed, seed))
	traces := make([]m.Trace, count)

	for i := range traces {
		trace := make(m.Trace, 1+rnd.IntN(maxLen))
		for j := range trace {
			trace[j] = m.Symbol(rnd.IntN(k))
		}

		traces[i] = trace
	}

	return traces
}

func covered(in Input, suite []m.Trace) int {
	ids := make(map[uint64]struct{})

	for _, trace := range suite {
		for _, id := range in.KilledBy(trace) {
			ids[id] = struct{}{}
		}
	}

	return len(ids)
}

func TestGreedyCoverageMonotone(t *testing.T) {
	hyp := testutil.Random(21, 6, 2, 3)
	traces := randomTraces(21, 2, 60, 10)

	in := realInput(t, hyp, traces, 0, mutagens.NewChangeOutput(), mutagens.NewSplitState(mutagens.DefaultSplitOptions()))
	previous := -1

	for bound := 0; bound <= 30; bound++ {
		in.Bound = bound

		first := Collect(NewGreedy(false).Select(in), -1)
		second := Collect(NewGreedy(false).Select(in), -1)
		require.Equal(t, first, second, "selection must be deterministic")

		count := covered(in, first)
		assert.GreaterOrEqual(t, count, previous, "bound %d", bound)
		previous = count
	}
}

func TestGreedyKillAlive(t *testing.T) {
	hyp := testutil.TwoState()
	in := realInput(t, hyp, []m.Trace{{0}}, 5, mutagens.NewChangeOutput())

	suite := Collect(NewGreedy(true).Select(in), -1)
	require.Len(t, suite, 2)
	assert.Equal(t, m.Trace{0}, suite[0])
	assert.Equal(t, m.Trace{0, 0}, suite[1])

	without := Collect(NewGreedy(false).Select(in), -1)
	assert.Equal(t, []m.Trace{{0}}, without)
}

func TestScore(t *testing.T) {
	in := fixture()
	in.Bound = 3

	assert.Equal(t, []m.Symbol{4, 1, 0}, labels(Collect(NewScore().Select(in), -1)))
}

func TestNonProb(t *testing.T) {
	t.Run("one trace per uncovered mutant", func(t *testing.T) {
		hyp := testutil.TwoState()
		in := realInput(t, hyp, nil, 10, mutagens.NewChangeOutput())

		suite := Collect(NewNonProb().Select(in), -1)
		assert.Equal(t, []m.Trace{{0}, {0, 0}}, suite)
	})

	t.Run("every live killable mutant is covered", func(t *testing.T) {
		hyp := testutil.Random(2, 5, 2, 2)
		in := realInput(t, hyp, nil, 1000, mutagens.NewChangeOutput(), mutagens.NewSplitState(mutagens.DefaultSplitOptions()))
		checker := equiv.NewChecker()

		suite := Collect(NewNonProb().Select(in), -1)

		for _, mut := range in.Mutants {
			trace, ok := checker.KillMutant(mut, hyp, nil)
			if !ok {
				continue
			}

			killedBySuite := false

			for _, s := range suite {
				if s.Equal(trace) || slices.Contains(in.KilledBy(s), mut.ID) {
					killedBySuite = true
					break
				}
			}

			assert.True(t, killedBySuite, "mutant %d", mut.ID)
		}
	})

	t.Run("no mutants falls back to candidates", func(t *testing.T) {
		in := fixture()
		in.Mutants = nil
		in.Bound = 1

		assert.Equal(t, []m.Symbol{0}, labels(Collect(NewNonProb().Select(in), -1)))
	})
}

func TestBaselines(t *testing.T) {
	in := Input{
		Candidates: []m.EvaluatedTrace{
			{Trace: m.Trace{0}},
			{Trace: m.Trace{0, 0, 0}},
			{Trace: m.Trace{1, 1}},
			{Trace: m.Trace{1, 1, 1}},
		},
		Bound: 2,
	}

	t.Run("length prefers long traces", func(t *testing.T) {
		assert.Equal(t, []m.Trace{{0, 0, 0}, {1, 1, 1}}, Collect(NewLength().Select(in), -1))
	})

	t.Run("random is a seeded subset", func(t *testing.T) {
		a := Collect(NewRandom(3).Select(in), -1)
		b := Collect(NewRandom(3).Select(in), -1)

		assert.Len(t, a, 2)
		assert.Equal(t, a, b)
	})
}

func TestNew(t *testing.T) {
	for _, name := range []string{GreedyName, ScoreName, NonProbName, LengthName, RandomName} {
		s, err := New(name, Options{})
		require.NoError(t, err)
		assert.Contains(t, s.Name(), name)
	}

	_, err := New("oracle", Options{})
	assert.Error(t, err)
}
