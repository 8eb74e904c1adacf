package mutagens

import (
	"fmt"
	"log/slog"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// mutatedOutputMark is appended to an output to make it differ from the original.
const mutatedOutputMark = "'"

// SplitOptions configures the split-state operator.
type SplitOptions struct {
	// AccSeqBound caps the access sequences considered per state.
	AccSeqBound int
	// MutationDepth is the number of inputs appended to the shared suffix
	// before the altered transition.
	MutationDepth int
	// AllowDiffInLastSymbol keeps pairs whose pre-states coincide but whose
	// last symbols differ. Only consulted when AllowEqualPreState is false.
	AllowDiffInLastSymbol bool
	// AllowEqualPreState keeps pairs whose last transitions leave the same state.
	AllowEqualPreState bool
	// MutateAlsoPrefix mutates a side even if it is a prefix of the other side.
	MutateAlsoPrefix bool
	// GlobalVisited selects global visited tracking for the access-sequence search.
	GlobalVisited bool
	// Access overrides the access-sequence search when set.
	Access AccessSequenceProvider
}

// DefaultSplitOptions returns the standard split-state configuration.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{
		AccSeqBound:           10,
		MutationDepth:         1,
		AllowDiffInLastSymbol: true,
		AllowEqualPreState:    true,
		MutateAlsoPrefix:      false,
		GlobalVisited:         true,
	}
}

type splitState struct {
	opts SplitOptions
}

// NewSplitState creates the operator that simulates splitting a state: for a
// pair of access sequences to a state q, one of them is redirected to a fresh
// copy q' of q that differs from q only after a specific suffix.
func NewSplitState(opts SplitOptions) Operator {
	if opts.Access == nil {
		opts.Access = NewBFSAccess(opts.GlobalVisited)
	}

	return &splitState{opts: opts}
}

func (ss *splitState) Name() string {
	return SplitStateName
}

type seqPair struct {
	left, right m.Trace
}

type splitKey struct {
	reached m.StateID
	pre     m.StateID
	last    m.Symbol
}

func (ss *splitState) Generate(hyp *m.Machine, ids *m.IDGen) (*m.Population, error) {
	root := m.NewNode(m.KindOperator, SplitStateName)

	for q := range m.StateID(hyp.NumStates()) {
		seqs := ss.opts.Access.AccessSequences(hyp, q, ss.opts.AccSeqBound)
		pairs := ss.pairs(hyp, seqs)
		processed := make(map[splitKey]struct{})
		node := m.NewNode(m.KindState, stateLabel(q))

		for _, pair := range pairs {
			pairNode, err := ss.splitPair(hyp, ids, pair, processed)
			if err != nil {
				slog.Error("Failed to split state", "state", q, "left", pair.left, "right", pair.right, "error", err)
				return nil, err
			}

			node.Add(pairNode)
		}

		root.Add(node)
	}

	return root, nil
}

// pairs returns the unordered pairs of distinct sequences in discovery order.
func (ss *splitState) pairs(hyp *m.Machine, seqs []m.Trace) []seqPair {
	var pairs []seqPair

	seen := make(map[string]struct{})

	for i := range seqs {
		if _, dup := seen[seqs[i].Key()]; dup {
			continue
		}

		seen[seqs[i].Key()] = struct{}{}

		for j := i + 1; j < len(seqs); j++ {
			if seqs[i].Equal(seqs[j]) {
				continue
			}

			pair := seqPair{left: seqs[i], right: seqs[j]}
			if !ss.opts.AllowEqualPreState && !ss.differsBeforeLast(hyp, pair) {
				continue
			}

			pairs = append(pairs, pair)
		}
	}

	return pairs
}

func (ss *splitState) differsBeforeLast(hyp *m.Machine, pair seqPair) bool {
	pre1 := hyp.StateAfter(pair.left[:len(pair.left)-1])
	pre2 := hyp.StateAfter(pair.right[:len(pair.right)-1])

	return pre1 != pre2 || (ss.opts.AllowDiffInLastSymbol && pair.left.Last() != pair.right.Last())
}

func (ss *splitState) splitPair(hyp *m.Machine, ids *m.IDGen, pair seqPair, processed map[splitKey]struct{}) (*m.Population, error) {
	left, right := pair.left, pair.right

	// Grow the shared suffix while both sides still leave the same pre-state.
	equal := -1

	var pre1, pre2 m.StateID

	for {
		equal++
		next := equal + 1
		pre1 = hyp.StateAfter(left[:max(0, len(left)-next)])
		pre2 = hyp.StateAfter(right[:max(0, len(right)-next)])

		if pre1 != pre2 || next > len(left) || next > len(right) || !left.Suffix(next).Equal(right.Suffix(next)) {
			break
		}
	}

	leftPrefix := left[:len(left)-equal]
	rightPrefix := right[:len(right)-equal]
	equalSuffix := left.Suffix(equal)
	reached1 := hyp.StateAfter(leftPrefix)
	reached2 := hyp.StateAfter(rightPrefix)

	if !equalSuffix.Equal(right.Suffix(equal)) || reached1 != reached2 {
		return nil, fmt.Errorf("%w: access sequences %v and %v share suffix %v but reach states %d and %d",
			ErrInvariant, left, right, equalSuffix, reached1, reached2)
	}

	pairNode := m.NewNode(m.KindPair, "")

	sides := []struct {
		prefix, other m.Trace
		pre           m.StateID
	}{
		{leftPrefix, rightPrefix, pre1},
		{rightPrefix, leftPrefix, pre2},
	}

	for _, side := range sides {
		if len(side.prefix) == 0 {
			continue
		}

		if !ss.opts.MutateAlsoPrefix && side.other.HasPrefix(side.prefix) {
			continue
		}

		key := splitKey{reached: reached1, pre: side.pre, last: side.prefix.Last()}
		if _, done := processed[key]; done {
			continue
		}

		processed[key] = struct{}{}

		seqNode := m.NewNode(m.KindSequence, "")
		for _, word := range allWords(hyp.Alphabet().Symbols(), ss.opts.MutationDepth) {
			ss.addChainMutants(hyp, ids, seqNode, reached1, side.pre, side.prefix.Last(), equalSuffix.Concat(word))
		}

		pairNode.Add(seqNode)
	}

	return pairNode, nil
}

// addChainMutants adds one mutant per input: each redirects (pre, last) to a
// fresh state that shadows reached along path and then alters the output of
// that input.
func (ss *splitState) addChainMutants(hyp *m.Machine, ids *m.IDGen, node *m.Population, reached, pre m.StateID, last m.Symbol, path m.Trace) {
	critical := m.CriticalTransition{
		Transition: hyp.Transition(pre, last),
		PreState:   pre,
		Input:      last,
	}

	for _, mutateInput := range hyp.Alphabet().Symbols() {
		ct := critical
		ct.KillSuffix = path.Append(mutateInput)

		node.Add(m.NewLeaf(m.NewMutant(ids.Next(), SplitStateName, ct, true, func() *m.Machine {
			return buildSplit(hyp, reached, pre, last, path, mutateInput)
		})))
	}
}

func buildSplit(hyp *m.Machine, reached, pre m.StateID, last m.Symbol, path m.Trace, mutateInput m.Symbol) *m.Machine {
	b := m.BuilderFrom(hyp)
	symbols := hyp.Alphabet().Symbols()

	copyPre := b.AddState()
	b.SetTransition(pre, last, copyPre, hyp.Output(pre, last))

	origPre := reached

	for _, in := range path {
		copyNext := b.AddState()

		for _, x := range symbols {
			target := hyp.Successor(origPre, x)
			if x == in {
				target = copyNext
			}

			b.SetTransition(copyPre, x, target, hyp.Output(origPre, x))
		}

		origPre = hyp.Successor(origPre, in)
		copyPre = copyNext
	}

	for _, x := range symbols {
		out := hyp.Output(origPre, x)
		if x == mutateInput {
			out += mutatedOutputMark
		}

		b.SetTransition(copyPre, x, hyp.Successor(origPre, x), out)
	}

	return b.MustBuild()
}

// allWords returns every word of length n over symbols in lexicographic order.
func allWords(symbols []m.Symbol, n int) []m.Trace {
	words := []m.Trace{{}}

	for range n {
		next := make([]m.Trace, 0, len(words)*len(symbols))
		for _, w := range words {
			for _, s := range symbols {
				next = append(next, w.Append(s))
			}
		}

		words = next
	}

	return words
}
