package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mutoracle.dev/pkg/mutoracle/internal/adapter"
	"mutoracle.dev/pkg/mutoracle/internal/domain/coverage"
	"mutoracle.dev/pkg/mutoracle/internal/domain/equiv"
	"mutoracle.dev/pkg/mutoracle/internal/domain/sampling"
	"mutoracle.dev/pkg/mutoracle/internal/domain/selection"
	"mutoracle.dev/pkg/mutoracle/internal/domain/tracegen"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// ErrBudgetExhausted is returned when the step or test budget runs out
// before a counterexample is found.
var ErrBudgetExhausted = errors.New("test budget exhausted")

// Config tunes the oracle.
type Config struct {
	// SelectionSampler shrinks the population used for coverage. Nil keeps all.
	SelectionSampler sampling.Strategy
	// GenerationSampler picks the mutants handed to the generator as hints.
	// Nil reuses SelectionSampler.
	GenerationSampler sampling.Strategy
	Generator         tracegen.Generator
	Selector          selection.Selector
	CandidateCount    int
	SuiteSize         int
	// Reuse resumes the unexecuted rest of the last suite in the next call.
	Reuse bool
	// KeepExecuted retires mutants already killed by executed traces.
	KeepExecuted bool
	Batched      bool
	Workers      int
	// MaxSteps and MaxTests bound SUL usage across all calls. Zero is unlimited.
	MaxSteps int64
	MaxTests int64
}

// RoundInfo describes a fresh round after selection.
type RoundInfo struct {
	Round      int
	Population *m.Population
	Live       int
	Retired    int
	Candidates int
	Batched    bool
}

// Reporter observes oracle progress.
type Reporter interface {
	RoundStarted(ctx context.Context, info RoundInfo)
	TraceExecuted(ctx context.Context, trace m.Trace, outputs []string, diverged bool)
	CounterexampleFound(ctx context.Context, cex m.Counterexample)
	RoundFinished(ctx context.Context, stats m.OracleStats)
}

// Oracle searches for inputs on which a hypothesis and the SUL disagree.
type Oracle interface {
	// FindCounterexample returns nil without error when every selected test passes.
	FindCounterexample(ctx context.Context, hyp *m.Machine) (*m.Counterexample, error)
	Stats() m.OracleStats
}

// Tracker is implemented by SULs that record the traces a learner runs.
type Tracker interface {
	SetTracking(enabled bool)
	Drain() []m.Trace
}

type oracle struct {
	sul      adapter.SUL
	store    adapter.TraceStore
	mutagen  Mutagen
	checker  *equiv.Checker
	reporter Reporter
	cfg      Config

	remaining selection.Iterator
	stats     m.OracleStats
}

// NewOracle wires an oracle. If sul implements Tracker, the traces it
// recorded for the learner join the executed-trace store on every call.
func NewOracle(
	sul adapter.SUL,
	store adapter.TraceStore,
	mutagen Mutagen,
	checker *equiv.Checker,
	reporter Reporter,
	cfg Config,
) Oracle {
	if cfg.SelectionSampler == nil {
		cfg.SelectionSampler = sampling.Identity()
	}

	if cfg.Selector == nil {
		cfg.Selector = selection.NewGreedy(false)
	}

	if store == nil {
		store = adapter.NewMemoryTraceStore()
	}

	return &oracle{
		sul:      sul,
		store:    store,
		mutagen:  mutagen,
		checker:  checker,
		reporter: reporter,
		cfg:      cfg,
	}
}

func (o *oracle) Stats() m.OracleStats {
	return o.stats
}

func (o *oracle) FindCounterexample(ctx context.Context, hyp *m.Machine) (*m.Counterexample, error) {
	log := slog.With("run", uuid.NewString())
	log.Debug("Starting equivalence query", "states", hyp.NumStates(), "inputs", hyp.Alphabet().Size())

	if tracker, ok := o.sul.(Tracker); ok {
		tracker.SetTracking(false)
		defer tracker.SetTracking(true)

		if o.cfg.KeepExecuted {
			if err := o.store.Add(tracker.Drain()...); err != nil {
				return nil, err
			}
		} else {
			tracker.Drain()
		}
	}

	if o.cfg.Reuse && o.remaining != nil {
		log.Debug("Resuming previous suite")

		cex, err := o.execute(ctx, hyp, o.remaining)
		if cex != nil || err != nil {
			return cex, err
		}
	}

	suite, err := o.round(ctx, log, hyp)
	if err != nil {
		return nil, err
	}

	return o.execute(ctx, hyp, suite)
}

// round builds a fresh suite for hyp.
func (o *oracle) round(ctx context.Context, log *slog.Logger, hyp *m.Machine) (selection.Iterator, error) {
	o.stats.Rounds++

	start := time.Now()

	population, err := o.mutagen.Generate(ctx, hyp)
	if err != nil {
		return nil, err
	}

	selected := o.cfg.SelectionSampler.Sample(population)
	hints := selected
	if o.cfg.GenerationSampler != nil {
		hints = o.cfg.GenerationSampler.Sample(population)
	}

	candidates, err := o.cfg.Generator.Generate(ctx, o.cfg.CandidateCount, hyp, hints.Flatten())
	if err != nil {
		log.Error("Failed to generate candidate traces", "generator", o.cfg.Generator.Name(), "error", err)
		return nil, fmt.Errorf("failed to generate candidate traces: %w", err)
	}

	o.stats.GenerationTime += time.Since(start)
	start = time.Now()

	mutants := selected.Flatten()
	evaluator := coverage.NewEvaluator(hyp, mutants, coverage.Options{Workers: o.cfg.Workers, Batched: o.cfg.Batched})

	retired := 0

	if o.cfg.KeepExecuted && o.store.Len() > 0 {
		executed, err := o.store.Traces()
		if err != nil {
			return nil, err
		}

		retired = evaluator.Retire(executed)
	}

	o.stats.Mutants += len(mutants)
	o.stats.Retired += retired

	var evaluated []m.EvaluatedTrace

	if o.cfg.Selector.NeedsCoverage() {
		evaluated, err = evaluator.Evaluate(ctx, candidates)
		if err != nil {
			return nil, err
		}
	} else {
		evaluated = make([]m.EvaluatedTrace, len(candidates))
		for i, trace := range candidates {
			evaluated[i] = m.EvaluatedTrace{Trace: trace}
		}
	}

	suite := o.cfg.Selector.Select(selection.Input{
		Hypothesis: hyp,
		Mutants:    evaluator.Live(),
		Candidates: evaluated,
		Bound:      o.cfg.SuiteSize,
		KilledBy:   evaluator.Killed,
		Checker:    o.checker,
		Workers:    o.cfg.Workers,
	})

	o.stats.EvaluationTime += time.Since(start)

	log.Debug("Prepared round",
		"round", o.stats.Rounds,
		"mutants", len(mutants),
		"retired", retired,
		"candidates", len(candidates),
		"batched", evaluator.BatchedAvailable(),
		"selector", o.cfg.Selector.Name())

	o.report(func(r Reporter) {
		r.RoundStarted(ctx, RoundInfo{
			Round:      o.stats.Rounds,
			Population: selected,
			Live:       evaluator.LiveCount(),
			Retired:    retired,
			Candidates: len(candidates),
			Batched:    evaluator.BatchedAvailable(),
		})
	})

	return suite, nil
}

// execute runs suite traces until one diverges. The iterator is kept for
// reuse when execution stops early.
func (o *oracle) execute(ctx context.Context, hyp *m.Machine, suite selection.Iterator) (*m.Counterexample, error) {
	start := time.Now()

	defer func() {
		o.stats.ExecutionTime += time.Since(start)
		o.report(func(r Reporter) { r.RoundFinished(ctx, o.stats) })
	}()

	o.remaining = nil

	for {
		if err := ctx.Err(); err != nil {
			o.keep(suite)
			return nil, err
		}

		if o.exhausted() {
			o.keep(suite)
			slog.Debug("Budget exhausted", "tests", o.stats.Tests, "steps", o.stats.Steps)

			return nil, ErrBudgetExhausted
		}

		trace, ok := suite.Next()
		if !ok {
			return nil, nil
		}

		cex, err := o.runTest(ctx, hyp, trace)
		if err != nil {
			return nil, err
		}

		if cex != nil {
			o.keep(suite)
			o.report(func(r Reporter) { r.CounterexampleFound(ctx, *cex) })

			return cex, nil
		}
	}
}

func (o *oracle) keep(suite selection.Iterator) {
	if o.cfg.Reuse {
		o.remaining = suite
	}
}

func (o *oracle) exhausted() bool {
	return (o.cfg.MaxTests > 0 && o.stats.Tests >= o.cfg.MaxTests) ||
		(o.cfg.MaxSteps > 0 && o.stats.Steps >= o.cfg.MaxSteps)
}

// runTest executes one trace and stores the executed part.
func (o *oracle) runTest(ctx context.Context, hyp *m.Machine, trace m.Trace) (*m.Counterexample, error) {
	if err := o.sul.Reset(); err != nil {
		slog.Error("Failed to reset SUL", "error", err)
		return nil, fmt.Errorf("failed to reset SUL: %w", err)
	}

	o.stats.Tests++

	expected := hyp.Outputs(trace)
	observed := make([]string, 0, len(trace))

	for i, sym := range trace {
		out, err := o.sul.Step(sym)
		if err != nil {
			slog.Error("Failed to step SUL", "step", i, "error", err)
			return nil, fmt.Errorf("failed to step SUL: %w", err)
		}

		o.stats.Steps++
		observed = append(observed, out)

		if out != expected[i] {
			prefix := append(m.Trace(nil), trace[:i+1]...)
			if err := o.record(prefix); err != nil {
				return nil, err
			}

			o.report(func(r Reporter) { r.TraceExecuted(ctx, prefix, observed, true) })

			return &m.Counterexample{Input: prefix, Output: observed}, nil
		}
	}

	if err := o.record(trace); err != nil {
		return nil, err
	}

	o.report(func(r Reporter) { r.TraceExecuted(ctx, trace, observed, false) })

	return nil, nil
}

func (o *oracle) record(trace m.Trace) error {
	if !o.cfg.KeepExecuted {
		return nil
	}

	return o.store.Add(trace)
}

func (o *oracle) report(fn func(Reporter)) {
	if o.reporter != nil {
		fn(o.reporter)
	}
}
