package selection

import (
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

type greedy struct {
	killAlive bool
}

// NewGreedy creates the suite-based selector. It repeatedly picks the
// candidate covering the most uncovered mutants, optionally synthesizes
// traces for mutants no candidate kills, and fills remaining slots by score.
func NewGreedy(killAlive bool) Selector {
	return greedy{killAlive: killAlive}
}

func (g greedy) Name() string {
	if g.killAlive {
		return GreedyName + "+kill-alive"
	}

	return GreedyName
}

func (greedy) NeedsCoverage() bool {
	return true
}

func (g greedy) Select(in Input) Iterator {
	if len(in.Mutants) == 0 {
		return newSliceIterator(firstN(in.Candidates, in.Bound))
	}

	uncovered := make(map[uint64]struct{}, len(in.Mutants))
	for _, mut := range in.Mutants {
		uncovered[mut.ID] = struct{}{}
	}

	return &greedyIterator{
		in:        in,
		killAlive: g.killAlive && in.Checker != nil,
		uncovered: uncovered,
		used:      make([]bool, len(in.Candidates)),
	}
}

type greedyPhase int

const (
	phaseCover greedyPhase = iota
	phaseKillAlive
	phaseFill
	phaseDone
)

type greedyIterator struct {
	in        Input
	killAlive bool
	uncovered map[uint64]struct{}
	used      []bool
	provided  int
	phase     greedyPhase

	aliveCursor int
	fill        []int
	fillCursor  int
}

func (it *greedyIterator) Next() (m.Trace, bool) {
	for it.provided < it.in.Bound {
		switch it.phase {
		case phaseCover:
			if idx, ok := it.best(); ok {
				it.used[idx] = true
				for _, id := range it.in.Candidates[idx].Killed {
					delete(it.uncovered, id)
				}

				return it.emit(it.in.Candidates[idx].Trace)
			}

			it.phase = phaseKillAlive
			if !it.killAlive {
				it.phase = phaseFill
			}
		case phaseKillAlive:
			if trace, ok := it.synthesize(); ok {
				return it.emit(trace)
			}

			it.phase = phaseFill
		case phaseFill:
			if it.fill == nil {
				it.fill = byScore(it.in.Candidates, func(i int) bool { return !it.used[i] })
			}

			if it.fillCursor < len(it.fill) {
				idx := it.fill[it.fillCursor]
				it.fillCursor++
				it.used[idx] = true

				return it.emit(it.in.Candidates[idx].Trace)
			}

			it.phase = phaseDone
		case phaseDone:
			return nil, false
		}
	}

	return nil, false
}

func (it *greedyIterator) emit(trace m.Trace) (m.Trace, bool) {
	it.provided++
	return trace, true
}

// best returns the first unused candidate with the largest positive number
// of uncovered kills.
func (it *greedyIterator) best() (int, bool) {
	if len(it.uncovered) == 0 {
		return 0, false
	}

	bestIdx, bestCount := -1, 0

	for i, c := range it.in.Candidates {
		if it.used[i] {
			continue
		}

		count := 0

		for _, id := range c.Killed {
			if _, ok := it.uncovered[id]; ok {
				count++
			}
		}

		if count > bestCount {
			bestIdx, bestCount = i, count
		}
	}

	return bestIdx, bestIdx >= 0
}

// synthesize builds a killing trace for the next uncovered mutant and retires
// every other uncovered mutant the same trace kills.
func (it *greedyIterator) synthesize() (m.Trace, bool) {
	for it.aliveCursor < len(it.in.Mutants) {
		mut := it.in.Mutants[it.aliveCursor]
		it.aliveCursor++

		if _, ok := it.uncovered[mut.ID]; !ok {
			continue
		}

		delete(it.uncovered, mut.ID)

		trace, ok := it.in.Checker.KillMutant(mut, it.in.Hypothesis, nil)
		if !ok {
			continue
		}

		if it.in.KilledBy != nil {
			for _, id := range it.in.KilledBy(trace) {
				delete(it.uncovered, id)
			}
		}

		return trace, true
	}

	return nil, false
}
