// Package tracegen produces candidate input traces for the oracle.
package tracegen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"mutoracle.dev/pkg/mutoracle/internal/domain/equiv"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// Generator produces n candidate traces for hyp. Mutants are hints a
// generator may use to direct its search.
type Generator interface {
	Name() string
	Generate(ctx context.Context, n int, hyp *m.Machine, mutants []*m.Mutant) ([]m.Trace, error)
}

// source is a seeded random source safe for concurrent use.
type source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newSource(seed uint64) *source {
	return &source{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (s *source) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.IntN(n)
}

// word returns a word over k symbols with length uniform in [minLen, maxLen].
func (s *source) word(k, minLen, maxLen int) m.Trace {
	s.mu.Lock()
	defer s.mu.Unlock()

	if maxLen < minLen {
		maxLen = minLen
	}

	trace := make(m.Trace, minLen+s.rnd.IntN(maxLen-minLen+1))
	for i := range trace {
		trace[i] = m.Symbol(s.rnd.IntN(k))
	}

	return trace
}

type randomWord struct {
	minLen, maxLen int
	rnd            *source
}

// NewRandomWord creates a generator of uniformly random words whose length
// is uniform in [minLen, maxLen].
func NewRandomWord(minLen, maxLen int, seed uint64) Generator {
	return &randomWord{minLen: minLen, maxLen: maxLen, rnd: newSource(seed)}
}

func (g *randomWord) Name() string {
	return fmt.Sprintf("random-word(%d..%d)", g.minLen, g.maxLen)
}

func (g *randomWord) Generate(ctx context.Context, n int, hyp *m.Machine, _ []*m.Mutant) ([]m.Trace, error) {
	traces := make([]m.Trace, 0, n)

	for range n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		traces = append(traces, g.rnd.word(hyp.Alphabet().Size(), g.minLen, g.maxLen))
	}

	return traces, nil
}

// DefaultMaxTries is the number of mutants a directed generator tries per trace.
const DefaultMaxTries = 5

// DirectedOptions configures the mutant-directed generator.
type DirectedOptions struct {
	RandomPrefix int
	RandomSuffix int
	MaxTries     int
	Seed         uint64
}

type mutantDirected struct {
	opts    DirectedOptions
	checker *equiv.Checker
	rnd     *source
}

// NewMutantDirected creates a generator that walks randomly and then steers
// toward killing a randomly chosen mutant.
func NewMutantDirected(checker *equiv.Checker, opts DirectedOptions) Generator {
	if opts.MaxTries <= 0 {
		opts.MaxTries = DefaultMaxTries
	}

	return &mutantDirected{opts: opts, checker: checker, rnd: newSource(opts.Seed)}
}

func (g *mutantDirected) Name() string {
	return fmt.Sprintf("mutant-directed(pre=%d, suf=%d)", g.opts.RandomPrefix, g.opts.RandomSuffix)
}

func (g *mutantDirected) Generate(ctx context.Context, n int, hyp *m.Machine, mutants []*m.Mutant) ([]m.Trace, error) {
	traces := make([]m.Trace, 0, n)

	for range n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		traces = append(traces, g.trace(hyp, mutants))
	}

	return traces, nil
}

func (g *mutantDirected) trace(hyp *m.Machine, mutants []*m.Mutant) m.Trace {
	k := hyp.Alphabet().Size()
	prefix := g.rnd.word(k, 0, g.opts.RandomPrefix)
	suffix := g.rnd.word(k, 0, g.opts.RandomSuffix)

	if len(mutants) > 0 {
		for range g.opts.MaxTries {
			mut := mutants[g.rnd.intN(len(mutants))]

			if kill, ok := g.checker.KillMutant(mut, hyp, prefix); ok {
				prefix = kill
				break
			}

			prefix = prefix[:len(prefix)/2]
		}
	}

	return prefix.Concat(suffix)
}

// Weighted pairs a generator with its share of the requested traces.
type Weighted struct {
	Generator Generator
	Weight    int
}

type composite struct {
	children []Weighted
	total    int
}

// NewComposite splits each request across children in proportion to their
// weights. Rounding leftovers go to the first child.
func NewComposite(children ...Weighted) (Generator, error) {
	total := 0

	for _, c := range children {
		if c.Weight < 0 {
			return nil, fmt.Errorf("negative weight %d for generator %s", c.Weight, c.Generator.Name())
		}

		total += c.Weight
	}

	if total == 0 {
		return nil, fmt.Errorf("composite generator needs a positive total weight")
	}

	return &composite{children: children, total: total}, nil
}

func (g *composite) Name() string {
	name := "composite("

	for i, c := range g.children {
		if i > 0 {
			name += ", "
		}

		name += fmt.Sprintf("%s:%d", c.Generator.Name(), c.Weight)
	}

	return name + ")"
}

func (g *composite) Generate(ctx context.Context, n int, hyp *m.Machine, mutants []*m.Mutant) ([]m.Trace, error) {
	shares := make([]int, len(g.children))
	assigned := 0

	for i, c := range g.children {
		shares[i] = n * c.Weight / g.total
		assigned += shares[i]
	}

	shares[0] += n - assigned

	traces := make([]m.Trace, 0, n)

	for i, c := range g.children {
		if shares[i] == 0 {
			continue
		}

		part, err := c.Generator.Generate(ctx, shares[i], hyp, mutants)
		if err != nil {
			return nil, fmt.Errorf("generator %s: %w", c.Generator.Name(), err)
		}

		traces = append(traces, part...)
	}

	return traces, nil
}
