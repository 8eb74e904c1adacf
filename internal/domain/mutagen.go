// Package domain runs the mutation-based equivalence oracle.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"mutoracle.dev/pkg/mutoracle/internal/domain/mutagens"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// Mutagen builds the full mutant population of a hypothesis.
type Mutagen interface {
	Generate(ctx context.Context, hyp *m.Machine) (*m.Population, error)
}

type mutagen struct {
	operators []mutagens.Operator
}

// NewMutagen creates a Mutagen applying every operator in order.
func NewMutagen(operators ...mutagens.Operator) Mutagen {
	return &mutagen{operators: operators}
}

// Generate runs each operator and joins their trees under one union node.
// Mutant ids are unique within the returned population.
func (mg *mutagen) Generate(ctx context.Context, hyp *m.Machine) (*m.Population, error) {
	ids := m.NewIDGen()
	union := m.NewNode(m.KindUnion, "operators")

	for _, op := range mg.operators {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pop, err := op.Generate(hyp, ids)
		if err != nil {
			slog.Error("Failed to generate mutants", "operator", op.Name(), "error", err)
			return nil, fmt.Errorf("failed to generate mutants with %s: %w", op.Name(), err)
		}

		slog.Debug("Generated mutants", "operator", op.Name(), "count", pop.Size())
		union.Add(pop)
	}

	return union, nil
}
