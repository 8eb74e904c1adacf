// Package sampling shrinks mutant populations. Strategies own a seeded
// random source and are not safe for concurrent use.
package sampling

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// Strategy maps a population to a (usually smaller) population. The input
// tree is never modified.
type Strategy interface {
	Name() string
	Sample(pop *m.Population) *m.Population
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func shuffled(rnd *rand.Rand, mutants []*m.Mutant) []*m.Mutant {
	out := append([]*m.Mutant(nil), mutants...)
	rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

func leaves(kind m.Kind, label string, mutants []*m.Mutant) *m.Population {
	node := m.NewNode(kind, label)
	for _, mut := range mutants {
		node.Add(m.NewLeaf(mut))
	}

	return node
}

// fractionSize returns round(n / 2^power).
func fractionSize(n int, power float64) int {
	return int(math.Round(float64(n) / math.Pow(2, power)))
}

type identity struct{}

// Identity returns the population unchanged.
func Identity() Strategy {
	return identity{}
}

func (identity) Name() string {
	return "identity"
}

func (identity) Sample(pop *m.Population) *m.Population {
	return pop
}

type overallBound struct {
	bound int
	rnd   *rand.Rand
}

// OverallBound keeps a uniformly random subset of at most bound mutants.
func OverallBound(bound int, seed uint64) Strategy {
	return &overallBound{bound: bound, rnd: newRand(seed)}
}

func (s *overallBound) Name() string {
	return fmt.Sprintf("overall(bound=%d)", s.bound)
}

func (s *overallBound) Sample(pop *m.Population) *m.Population {
	mutants := shuffled(s.rnd, pop.Flatten())

	return leaves(m.KindSampled, "", mutants[:min(s.bound, len(mutants))])
}

type overallFraction struct {
	power float64
	rnd   *rand.Rand
}

// OverallFraction keeps round(n / 2^power) randomly chosen mutants.
func OverallFraction(power float64, seed uint64) Strategy {
	return &overallFraction{power: power, rnd: newRand(seed)}
}

func (s *overallFraction) Name() string {
	return fmt.Sprintf("overall(fraction=1/2^%g)", s.power)
}

func (s *overallFraction) Sample(pop *m.Population) *m.Population {
	mutants := shuffled(s.rnd, pop.Flatten())

	return leaves(m.KindSampled, "", mutants[:fractionSize(len(mutants), s.power)])
}

// elementBased applies reduce to every node of the given kind, after
// sampling that node's children recursively.
type elementBased struct {
	kind   m.Kind
	name   string
	reduce func([]*m.Mutant) []*m.Mutant
}

// ElementBound keeps at most bound mutants below every node of kind.
func ElementBound(bound int, kind m.Kind, seed uint64) Strategy {
	rnd := newRand(seed)

	return &elementBased{
		kind: kind,
		name: fmt.Sprintf("element-based(bound=%d,kind=%s)", bound, kind),
		reduce: func(mutants []*m.Mutant) []*m.Mutant {
			mutants = shuffled(rnd, mutants)
			return mutants[:min(bound, len(mutants))]
		},
	}
}

// ElementFraction keeps round(n / 2^power) mutants below every node of kind.
func ElementFraction(power float64, kind m.Kind, seed uint64) Strategy {
	rnd := newRand(seed)

	return &elementBased{
		kind: kind,
		name: fmt.Sprintf("element-based(fraction=1/2^%g,kind=%s)", power, kind),
		reduce: func(mutants []*m.Mutant) []*m.Mutant {
			mutants = shuffled(rnd, mutants)
			return mutants[:fractionSize(len(mutants), power)]
		},
	}
}

func (s *elementBased) Name() string {
	return s.name
}

func (s *elementBased) Sample(pop *m.Population) *m.Population {
	if pop.IsLeaf() {
		return pop
	}

	if pop.Kind == s.kind {
		var mutants []*m.Mutant
		for _, c := range pop.Children {
			mutants = append(mutants, s.Sample(c).Flatten()...)
		}

		return leaves(pop.Kind, pop.Label, s.reduce(mutants))
	}

	node := m.NewNode(pop.Kind, pop.Label)
	for _, c := range pop.Children {
		node.Add(s.Sample(c))
	}

	return node
}

type reduceToMean struct {
	kind m.Kind
	rnd  *rand.Rand
}

// ReduceToMean finds the nodes whose children include nodes of kind and cuts
// each of those children down to the mean mutant count among them.
func ReduceToMean(kind m.Kind, seed uint64) Strategy {
	return &reduceToMean{kind: kind, rnd: newRand(seed)}
}

func (s *reduceToMean) Name() string {
	return fmt.Sprintf("reduce-to-mean(kind=%s)", s.kind)
}

func (s *reduceToMean) Sample(pop *m.Population) *m.Population {
	if pop.IsLeaf() {
		return pop
	}

	var matching []*m.Population

	node := m.NewNode(pop.Kind, pop.Label)

	for _, c := range pop.Children {
		if c.Kind == s.kind {
			matching = append(matching, c)
		}
	}

	if len(matching) == 0 {
		for _, c := range pop.Children {
			node.Add(s.Sample(c))
		}

		return node
	}

	total := 0
	for _, c := range matching {
		total += c.Size()
	}

	mean := int(math.Round(float64(total) / float64(len(matching))))

	var sampled []*m.Mutant

	for _, c := range pop.Children {
		if c.Kind != s.kind {
			node.Add(c)
			continue
		}

		mutants := shuffled(s.rnd, c.Flatten())
		sampled = append(sampled, mutants[:min(mean, len(mutants))]...)
	}

	node.Add(leaves(m.KindSampled, "", sampled))

	return node
}

type composition struct {
	steps []Strategy
}

// Compose applies strategies left to right.
func Compose(steps ...Strategy) Strategy {
	return &composition{steps: steps}
}

func (s *composition) Name() string {
	names := make([]string, len(s.steps))
	for i, step := range s.steps {
		names[i] = step.Name()
	}

	return strings.Join(names, "*")
}

func (s *composition) Sample(pop *m.Population) *m.Population {
	for _, step := range s.steps {
		pop = step.Sample(pop)
	}

	return pop
}
