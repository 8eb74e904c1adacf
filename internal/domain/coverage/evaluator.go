// Package coverage determines which mutants an input trace kills.
package coverage

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// Options configures an Evaluator.
type Options struct {
	// Workers bounds the parallelism of Evaluate. Values below one mean one.
	Workers int
	// Batched enables the kill automaton when every maybe-killed mutant
	// carries a kill suffix.
	Batched bool
}

// maybeEntry is a maybe-killed mutant attached to its critical transition.
type maybeEntry struct {
	id     uint64
	suffix m.Trace
}

// Evaluator holds the coverage indices of one round. Killed, Baseline,
// Batched and Evaluate only read the indices and may run concurrently;
// Retire must not overlap them.
type Evaluator struct {
	hyp     *m.Machine
	opts    Options
	mutants map[uint64]*m.Mutant

	definite  map[m.TransitionID][]uint64
	maybe     map[m.TransitionID][]maybeEntry
	automaton *killAutomaton
}

// NewEvaluator indexes mutants by their critical transitions. Every mutant
// must derive from hyp; a foreign transition is a programming error and panics.
func NewEvaluator(hyp *m.Machine, mutants []*m.Mutant, opts Options) *Evaluator {
	e := &Evaluator{
		hyp:      hyp,
		opts:     opts,
		mutants:  make(map[uint64]*m.Mutant, len(mutants)),
		definite: make(map[m.TransitionID][]uint64),
		maybe:    make(map[m.TransitionID][]maybeEntry),
	}

	for _, mut := range mutants {
		t := mut.Critical.Transition
		if !hyp.Owns(t) {
			panic(fmt.Sprintf("mutant %d references transition %+v outside hypothesis %d", mut.ID, t, hyp.ID()))
		}

		e.mutants[mut.ID] = mut

		// An empty kill suffix means crossing the transition is enough.
		if mut.Critical.DefinitelyKilled || (mut.Critical.KillSuffix != nil && len(mut.Critical.KillSuffix) == 0) {
			e.definite[t] = append(e.definite[t], mut.ID)
		} else {
			e.maybe[t] = append(e.maybe[t], maybeEntry{id: mut.ID, suffix: mut.Critical.KillSuffix})
		}
	}

	e.compile()

	return e
}

// Hypothesis returns the machine the indices refer to.
func (e *Evaluator) Hypothesis() *m.Machine {
	return e.hyp
}

// LiveCount returns the number of mutants not yet retired.
func (e *Evaluator) LiveCount() int {
	return len(e.mutants)
}

// Live returns the mutants not yet retired, ordered by id.
func (e *Evaluator) Live() []*m.Mutant {
	live := make([]*m.Mutant, 0, len(e.mutants))
	for _, mut := range e.mutants {
		live = append(live, mut)
	}

	slices.SortFunc(live, func(a, b *m.Mutant) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}

		return 0
	})

	return live
}

// BatchedAvailable reports whether Killed uses the kill automaton.
func (e *Evaluator) BatchedAvailable() bool {
	return e.automaton != nil
}

// Killed returns the sorted ids of live mutants killed by trace, using the
// kill automaton when available and the baseline pass otherwise.
func (e *Evaluator) Killed(trace m.Trace) []uint64 {
	if e.automaton != nil {
		return e.automaton.run(e.hyp, trace)
	}

	return e.Baseline(trace)
}

// Batched evaluates trace with the kill automaton. The second result is
// false when the automaton is unavailable.
func (e *Evaluator) Batched(trace m.Trace) ([]uint64, bool) {
	if e.automaton == nil {
		return nil, false
	}

	return e.automaton.run(e.hyp, trace), true
}

// Retire removes every live mutant killed by one of the executed traces
// and returns how many were removed.
func (e *Evaluator) Retire(executed []m.Trace) int {
	killed := make(map[uint64]struct{})

	for _, trace := range executed {
		for _, id := range e.Baseline(trace) {
			killed[id] = struct{}{}
		}
	}

	if len(killed) == 0 {
		return 0
	}

	for id := range killed {
		mut := e.mutants[id]
		t := mut.Critical.Transition
		delete(e.mutants, id)

		if slices.Contains(e.definite[t], id) {
			e.definite[t] = slices.DeleteFunc(e.definite[t], func(x uint64) bool { return x == id })
			if len(e.definite[t]) == 0 {
				delete(e.definite, t)
			}

			continue
		}

		e.maybe[t] = slices.DeleteFunc(e.maybe[t], func(x maybeEntry) bool { return x.id == id })
		if len(e.maybe[t]) == 0 {
			delete(e.maybe, t)
		}
	}

	e.compile()

	slog.Debug("Retired mutants", "retired", len(killed), "live", len(e.mutants))

	return len(killed)
}

// Evaluate computes the killed set and score of every trace in parallel.
// Results keep the input order.
func (e *Evaluator) Evaluate(ctx context.Context, traces []m.Trace) ([]m.EvaluatedTrace, error) {
	results := make([]m.EvaluatedTrace, len(traces))
	live := e.LiveCount()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(1, e.opts.Workers))

	for i, trace := range traces {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			killed := e.Killed(trace)

			score := 0.0
			if live > 0 {
				score = float64(len(killed)) / float64(live)
			}

			results[i] = m.EvaluatedTrace{Trace: trace, Killed: killed, Score: score}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to evaluate coverage", "traces", len(traces), "error", err)
		return nil, fmt.Errorf("failed to evaluate coverage: %w", err)
	}

	return results, nil
}

// compile rebuilds the kill automaton, or disables it when batching is off
// or some maybe-killed mutant has no kill suffix.
func (e *Evaluator) compile() {
	e.automaton = nil
	if e.opts.Batched && e.suffixesComplete() {
		e.automaton = compileAutomaton(e.hyp, e.definite, e.maybe)
	}
}

func (e *Evaluator) suffixesComplete() bool {
	for _, entries := range e.maybe {
		for _, entry := range entries {
			if entry.suffix == nil {
				return false
			}
		}
	}

	return true
}

func sortedIDs(set map[uint64]struct{}) []uint64 {
	ids := make([]uint64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}
