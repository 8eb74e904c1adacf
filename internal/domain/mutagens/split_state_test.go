package mutagens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
	"mutoracle.dev/pkg/mutoracle/internal/testutil"
)

func trace(t *testing.T, hyp *m.Machine, names ...string) m.Trace {
	t.Helper()

	tr, err := hyp.Alphabet().Parse(names...)
	require.NoError(t, err)

	return tr
}

func TestBFSAccess(t *testing.T) {
	hyp := testutil.Chain3()

	t.Run("global visited search", func(t *testing.T) {
		seqs := NewBFSAccess(true).AccessSequences(hyp, 1, 10)
		assert.Equal(t, []m.Trace{
			trace(t, hyp, "a"),
			trace(t, hyp, "b", "a"),
			trace(t, hyp, "a", "b", "a"),
		}, seqs)
	})

	t.Run("bound caps the result", func(t *testing.T) {
		seqs := NewBFSAccess(true).AccessSequences(hyp, 1, 2)
		assert.Len(t, seqs, 2)
	})

	t.Run("initial state excludes the empty sequence", func(t *testing.T) {
		for _, global := range []bool{true, false} {
			seqs := NewBFSAccess(global).AccessSequences(hyp, 0, 10)
			require.NotEmpty(t, seqs)

			for _, seq := range seqs {
				assert.NotEmpty(t, seq)
				assert.Equal(t, m.StateID(0), hyp.StateAfter(seq))
			}
		}
	})

	t.Run("per path search reaches target", func(t *testing.T) {
		seqs := NewBFSAccess(false).AccessSequences(hyp, 2, 10)
		require.NotEmpty(t, seqs)
		assert.Equal(t, trace(t, hyp, "a", "a"), seqs[0])

		for _, seq := range seqs {
			assert.Equal(t, m.StateID(2), hyp.StateAfter(seq))
		}
	})
}

func TestPrefixAccess(t *testing.T) {
	hyp := testutil.Chain3()
	provider := NewPrefixAccess(hyp, []m.Trace{
		{},
		trace(t, hyp, "b", "a"),
		trace(t, hyp, "a"),
		trace(t, hyp, "b", "b", "b", "a"),
	})

	assert.Equal(t, []m.Trace{trace(t, hyp, "a"), trace(t, hyp, "b", "a")}, provider.AccessSequences(hyp, 1, 10))
	assert.Len(t, provider.AccessSequences(hyp, 1, 1), 1)
	assert.Empty(t, provider.AccessSequences(hyp, 2, 10))
}

func TestSplitState(t *testing.T) {
	t.Run("chain machine produces suffix-carrying mutants", func(t *testing.T) {
		hyp := testutil.Chain3()

		pop, err := NewSplitState(DefaultSplitOptions()).Generate(hyp, m.NewIDGen())
		require.NoError(t, err)

		mutants := pop.Flatten()
		require.NotEmpty(t, mutants)

		for _, mut := range mutants {
			assert.False(t, mut.Critical.DefinitelyKilled)
			require.True(t, mut.Critical.HasKillSuffix())
			assert.GreaterOrEqual(t, len(mut.Critical.KillSuffix), DefaultSplitOptions().MutationDepth+1)
			assertSplitBehavior(t, hyp, mut)
		}
	})

	t.Run("tree is operator, state, pair, sequence, leaf", func(t *testing.T) {
		pop, err := NewSplitState(DefaultSplitOptions()).Generate(testutil.Chain3(), m.NewIDGen())
		require.NoError(t, err)

		assert.Equal(t, m.KindOperator, pop.Kind)

		for _, stateNode := range pop.Children {
			assert.Equal(t, m.KindState, stateNode.Kind)

			for _, pairNode := range stateNode.Children {
				assert.Equal(t, m.KindPair, pairNode.Kind)

				for _, seqNode := range pairNode.Children {
					assert.Equal(t, m.KindSequence, seqNode.Kind)

					for _, leaf := range seqNode.Children {
						assert.True(t, leaf.IsLeaf())
					}
				}
			}
		}
	})

	for _, seed := range []uint64{1, 2, 3} {
		hyp := testutil.Random(seed, 4, 2, 2)

		t.Run("split state shadows its parent until the suffix", func(t *testing.T) {
			opts := DefaultSplitOptions()
			opts.AccSeqBound = 4

			pop, err := NewSplitState(opts).Generate(hyp, m.NewIDGen())
			require.NoError(t, err)

			for _, mut := range pop.Flatten() {
				assertSplitBehavior(t, hyp, mut)
			}
		})
	}

	t.Run("deeper mutation depth lengthens the suffix", func(t *testing.T) {
		hyp := testutil.Chain3()
		opts := DefaultSplitOptions()
		opts.MutationDepth = 2

		pop, err := NewSplitState(opts).Generate(hyp, m.NewIDGen())
		require.NoError(t, err)

		for _, mut := range pop.Flatten() {
			assertSplitBehavior(t, hyp, mut)
		}
	})

	t.Run("requiring different pre-states prunes pairs", func(t *testing.T) {
		hyp := testutil.Chain3()

		all, err := NewSplitState(DefaultSplitOptions()).Generate(hyp, m.NewIDGen())
		require.NoError(t, err)

		opts := DefaultSplitOptions()
		opts.AllowEqualPreState = false
		opts.AllowDiffInLastSymbol = false

		pruned, err := NewSplitState(opts).Generate(hyp, m.NewIDGen())
		require.NoError(t, err)

		assert.LessOrEqual(t, pruned.Size(), all.Size())
	})

	t.Run("mutating prefixes never produces fewer mutants", func(t *testing.T) {
		hyp := testutil.Random(11, 5, 2, 2)

		base, err := NewSplitState(DefaultSplitOptions()).Generate(hyp, m.NewIDGen())
		require.NoError(t, err)

		opts := DefaultSplitOptions()
		opts.MutateAlsoPrefix = true

		more, err := NewSplitState(opts).Generate(hyp, m.NewIDGen())
		require.NoError(t, err)

		assert.GreaterOrEqual(t, more.Size(), base.Size())

		for _, mut := range more.Flatten() {
			assertSplitBehavior(t, hyp, mut)
		}
	})
}

func assertSplitBehavior(t *testing.T, hyp *m.Machine, mut *m.Mutant) {
	t.Helper()

	machine := mut.Machine()
	critical := mut.Critical
	split := m.StateID(hyp.NumStates())
	parent := hyp.Successor(critical.PreState, critical.Input)
	suffix := critical.KillSuffix

	require.Equal(t, split, machine.Successor(critical.PreState, critical.Input))
	require.Equal(t, hyp.Output(critical.PreState, critical.Input), machine.Output(critical.PreState, critical.Input))

	k := hyp.Alphabet().Size()
	for _, w := range testutil.WordsUpTo(k, len(suffix)-1) {
		assert.Equal(t, hyp.OutputsFrom(parent, w), machine.OutputsFrom(split, w), "continuation %v", w)
	}

	expected := hyp.OutputsFrom(parent, suffix)
	actual := machine.OutputsFrom(split, suffix)
	assert.Equal(t, expected[:len(suffix)-1], actual[:len(suffix)-1])
	assert.NotEqual(t, expected[len(suffix)-1], actual[len(suffix)-1])
}

type fixedAccess []m.Trace

func (f fixedAccess) AccessSequences(*m.Machine, m.StateID, int) []m.Trace {
	return f
}

func TestSplitStateInvariant(t *testing.T) {
	hyp := testutil.Chain3()
	opts := DefaultSplitOptions()
	opts.Access = fixedAccess{trace(t, hyp, "a"), trace(t, hyp, "b")}

	_, err := NewSplitState(opts).Generate(hyp, m.NewIDGen())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvariant)
}
