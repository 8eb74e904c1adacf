// Package selection builds bounded test suites from evaluated candidate traces.
package selection

import (
	"fmt"
	"slices"

	"mutoracle.dev/pkg/mutoracle/internal/domain/equiv"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// Selector names.
const (
	GreedyName  = "greedy"
	ScoreName   = "score"
	NonProbName = "nonprob"
	LengthName  = "length"
	RandomName  = "random"
)

// Input is everything a selector may consult.
type Input struct {
	Hypothesis *m.Machine
	// Mutants are the live mutants, ordered by id.
	Mutants    []*m.Mutant
	Candidates []m.EvaluatedTrace
	Bound      int
	// KilledBy returns the live mutants a trace kills.
	KilledBy func(m.Trace) []uint64
	Checker  *equiv.Checker
	Workers  int
}

// Iterator yields suite traces on demand. Work not needed for the traces
// actually pulled is never done, and an iterator may be resumed later.
type Iterator interface {
	Next() (m.Trace, bool)
}

// Selector turns candidates into a bounded suite.
type Selector interface {
	Name() string
	// NeedsCoverage reports whether Candidates must carry kill information.
	NeedsCoverage() bool
	Select(in Input) Iterator
}

// Options configures the selector built by New.
type Options struct {
	KillAlive bool
	Seed      uint64
}

// New resolves a selector by name.
func New(name string, opts Options) (Selector, error) {
	switch name {
	case GreedyName, "":
		return NewGreedy(opts.KillAlive), nil
	case ScoreName:
		return NewScore(), nil
	case NonProbName:
		return NewNonProb(), nil
	case LengthName:
		return NewLength(), nil
	case RandomName:
		return NewRandom(opts.Seed), nil
	}

	return nil, fmt.Errorf("unknown test selector %q", name)
}

type sliceIterator struct {
	traces []m.Trace
	pos    int
}

func newSliceIterator(traces []m.Trace) *sliceIterator {
	return &sliceIterator{traces: traces}
}

func (it *sliceIterator) Next() (m.Trace, bool) {
	if it.pos >= len(it.traces) {
		return nil, false
	}

	it.pos++

	return it.traces[it.pos-1], true
}

// Collect drains up to n traces from it. A negative n drains everything.
func Collect(it Iterator, n int) []m.Trace {
	var out []m.Trace

	for n < 0 || len(out) < n {
		trace, ok := it.Next()
		if !ok {
			break
		}

		out = append(out, trace)
	}

	return out
}

func firstN(candidates []m.EvaluatedTrace, bound int) []m.Trace {
	out := make([]m.Trace, 0, min(bound, len(candidates)))
	for _, c := range candidates[:min(bound, len(candidates))] {
		out = append(out, c.Trace)
	}

	return out
}

// byScore returns candidate indices ordered by descending score, stable on
// input order.
func byScore(candidates []m.EvaluatedTrace, keep func(int) bool) []int {
	order := make([]int, 0, len(candidates))

	for i := range candidates {
		if keep(i) {
			order = append(order, i)
		}
	}

	slices.SortStableFunc(order, func(a, b int) int {
		switch sa, sb := candidates[a].Score, candidates[b].Score; {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		}

		return 0
	})

	return order
}
