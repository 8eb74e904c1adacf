// Package mutagens generates mutant populations from a hypothesis.
package mutagens

import (
	"errors"
	"fmt"
	"strconv"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// ErrInvariant reports an internal consistency violation during generation.
// Mutants produced after such a violation cannot be trusted, so callers abort.
var ErrInvariant = errors.New("mutant generation invariant violated")

// Operator names.
const (
	ChangeOutputName = "change-output"
	ChangeTargetName = "change-target"
	SplitStateName   = "split-state"
)

// Operator produces mutants of a hypothesis. The returned tree is rooted at a
// m.KindOperator node.
type Operator interface {
	Name() string
	Generate(hyp *m.Machine, ids *m.IDGen) (*m.Population, error)
}

// Options configures the operators built by New.
type Options struct {
	Seed           uint64
	MaxDiffInputs  int
	MaxDiffTargets int
	Split          SplitOptions
}

// DefaultOptions returns the standard operator configuration.
func DefaultOptions() Options {
	return Options{
		Seed:           1,
		MaxDiffInputs:  2,
		MaxDiffTargets: 2,
		Split:          DefaultSplitOptions(),
	}
}

var operatorFactories = map[string]func(Options) Operator{
	ChangeOutputName: func(Options) Operator { return NewChangeOutput() },
	ChangeTargetName: func(o Options) Operator {
		return NewChangeTarget(o.MaxDiffInputs, o.MaxDiffTargets, o.Seed)
	},
	SplitStateName: func(o Options) Operator { return NewSplitState(o.Split) },
}

// New resolves operator names. An empty list selects every operator.
func New(names []string, opts Options) ([]Operator, error) {
	if len(names) == 0 {
		names = []string{ChangeOutputName, ChangeTargetName, SplitStateName}
	}

	ops := make([]Operator, 0, len(names))

	for _, name := range names {
		factory, ok := operatorFactories[name]
		if !ok {
			return nil, fmt.Errorf("unknown mutation operator %q", name)
		}

		ops = append(ops, factory(opts))
	}

	return ops, nil
}

func stateLabel(s m.StateID) string {
	return strconv.Itoa(int(s))
}
