package coverage

import (
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

type suffixChase struct {
	suffix m.Trace
	pos    int
}

// Baseline evaluates trace with a single pass over the hypothesis. Each step
// first advances the running suffix chases, then records the kills of the
// transition taken and starts chases for maybe-killed mutants that are
// neither chasing nor killed. Mutants without a kill suffix are realized and
// simulated against the hypothesis afterwards.
func (e *Evaluator) Baseline(trace m.Trace) []uint64 {
	killed := make(map[uint64]struct{})
	active := make(map[uint64]suffixChase)
	simulate := make(map[uint64]struct{})
	s := e.hyp.Initial()

	for _, in := range trace {
		next := make(map[uint64]suffixChase, len(active))

		for id, chase := range active {
			if chase.suffix[chase.pos] != in {
				continue
			}

			chase.pos++
			if chase.pos == len(chase.suffix) {
				killed[id] = struct{}{}
				continue
			}

			next[id] = chase
		}

		t := e.hyp.Transition(s, in)
		for _, id := range e.definite[t] {
			killed[id] = struct{}{}
		}

		for _, entry := range e.maybe[t] {
			if _, done := killed[entry.id]; done {
				continue
			}

			if entry.suffix == nil {
				simulate[entry.id] = struct{}{}
				continue
			}

			if _, busy := active[entry.id]; busy {
				continue
			}

			next[entry.id] = suffixChase{suffix: entry.suffix}
		}

		active = next
		s = e.hyp.Successor(s, in)
	}

	if len(simulate) > 0 {
		expected := e.hyp.Outputs(trace)

		for id := range simulate {
			if _, done := killed[id]; done {
				continue
			}

			if diverges(e.mutants[id].Machine(), trace, expected) {
				killed[id] = struct{}{}
			}
		}
	}

	return sortedIDs(killed)
}

// diverges runs mutant on trace and stops at the first output that differs
// from expected.
func diverges(mutant *m.Machine, trace m.Trace, expected []string) bool {
	s := mutant.Initial()

	for i, in := range trace {
		if mutant.Output(s, in) != expected[i] {
			return true
		}

		s = mutant.Successor(s, in)
	}

	return false
}
