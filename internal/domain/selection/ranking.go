package selection

import (
	"math/rand/v2"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

type score struct{}

// NewScore ranks candidates by their individual kill ratio.
func NewScore() Selector {
	return score{}
}

func (score) Name() string {
	return ScoreName
}

func (score) NeedsCoverage() bool {
	return true
}

func (score) Select(in Input) Iterator {
	order := byScore(in.Candidates, func(int) bool { return true })

	traces := make([]m.Trace, 0, min(in.Bound, len(order)))
	for _, idx := range order[:min(in.Bound, len(order))] {
		traces = append(traces, in.Candidates[idx].Trace)
	}

	return newSliceIterator(traces)
}

type nonProb struct{}

// NewNonProb ignores the candidates and synthesizes one distinguishing trace
// per live mutant, skipping mutants already killed by an earlier trace.
func NewNonProb() Selector {
	return nonProb{}
}

func (nonProb) Name() string {
	return NonProbName
}

func (nonProb) NeedsCoverage() bool {
	return false
}

func (nonProb) Select(in Input) Iterator {
	if len(in.Mutants) == 0 || in.Checker == nil {
		return newSliceIterator(firstN(in.Candidates, in.Bound))
	}

	return &nonProbIterator{in: in}
}

type nonProbIterator struct {
	in   Input
	once sync.Once
	it   *sliceIterator
}

func (it *nonProbIterator) Next() (m.Trace, bool) {
	it.once.Do(func() {
		it.it = newSliceIterator(it.synthesizeAll())
	})

	return it.it.Next()
}

type killResult struct {
	trace m.Trace
	ok    bool
}

func (it *nonProbIterator) synthesizeAll() []m.Trace {
	results := make([]killResult, len(it.in.Mutants))

	var group errgroup.Group
	group.SetLimit(max(1, it.in.Workers))

	for i, mut := range it.in.Mutants {
		group.Go(func() error {
			trace, ok := it.in.Checker.KillMutant(mut, it.in.Hypothesis, nil)
			results[i] = killResult{trace: trace, ok: ok}

			return nil
		})
	}

	_ = group.Wait()

	covered := make(map[uint64]struct{})

	var suite []m.Trace

	for i, mut := range it.in.Mutants {
		if len(suite) >= it.in.Bound {
			break
		}

		if _, done := covered[mut.ID]; done || !results[i].ok {
			continue
		}

		suite = append(suite, results[i].trace)
		covered[mut.ID] = struct{}{}

		if it.in.KilledBy != nil {
			for _, id := range it.in.KilledBy(results[i].trace) {
				covered[id] = struct{}{}
			}
		}
	}

	return suite
}

type length struct{}

// NewLength is a baseline that prefers the longest candidates.
func NewLength() Selector {
	return length{}
}

func (length) Name() string {
	return LengthName
}

func (length) NeedsCoverage() bool {
	return false
}

func (length) Select(in Input) Iterator {
	ordered := slices.Clone(in.Candidates)
	slices.SortStableFunc(ordered, func(a, b m.EvaluatedTrace) int {
		return len(b.Trace) - len(a.Trace)
	})

	return newSliceIterator(firstN(ordered, in.Bound))
}

type random struct {
	seed uint64
}

// NewRandom is a baseline that picks a uniform random subset of candidates.
func NewRandom(seed uint64) Selector {
	return random{seed: seed}
}

func (random) Name() string {
	return RandomName
}

func (random) NeedsCoverage() bool {
	return false
}

func (r random) Select(in Input) Iterator {
	rnd := rand.New(rand.NewPCG(r.seed, r.seed))
	shuffled := slices.Clone(in.Candidates)
	rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	return newSliceIterator(firstN(shuffled, in.Bound))
}
