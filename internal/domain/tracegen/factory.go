package tracegen

import (
	"fmt"

	"mutoracle.dev/pkg/mutoracle/internal/domain/equiv"
)

// Generator names accepted by New.
const (
	RandomWordName = "random-word"
	DirectedName   = "mutant-directed"
	MixedName      = "mixed"
)

// Options configures the generator built by New.
type Options struct {
	MinLength    int
	MaxLength    int
	RandomPrefix int
	RandomSuffix int
	// DirectedWeight is the percentage of mutant-directed traces in mixed mode.
	DirectedWeight int
	Seed           uint64
}

// DefaultOptions returns the generator settings used by the CLI.
func DefaultOptions() Options {
	return Options{
		MinLength:      1,
		MaxLength:      20,
		RandomPrefix:   10,
		RandomSuffix:   10,
		DirectedWeight: 50,
		Seed:           1,
	}
}

// New resolves a generator by name.
func New(name string, checker *equiv.Checker, opts Options) (Generator, error) {
	directed := func() Generator {
		return NewMutantDirected(checker, DirectedOptions{
			RandomPrefix: opts.RandomPrefix,
			RandomSuffix: opts.RandomSuffix,
			Seed:         opts.Seed,
		})
	}

	switch name {
	case RandomWordName:
		return NewRandomWord(opts.MinLength, opts.MaxLength, opts.Seed), nil
	case DirectedName, "":
		return directed(), nil
	case MixedName:
		return NewComposite(
			Weighted{Generator: directed(), Weight: opts.DirectedWeight},
			Weighted{Generator: NewRandomWord(opts.MinLength, opts.MaxLength, opts.Seed+1), Weight: 100 - opts.DirectedWeight},
		)
	}

	return nil, fmt.Errorf("unknown trace generator %q", name)
}
