package equiv

import (
	"fmt"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// Divergence is a single step on which two machines disagree after an
// agreeing prefix. Symbols are reported by name.
type Divergence struct {
	Prefix  []string
	Input   string
	OutputA string
	OutputB string
}

// Divergences enumerates every one-step divergence between a and b that is
// reachable through agreeing transitions. Symbols are matched by name, so
// the machines may use distinct alphabet objects. Pairs are explored
// breadth-first, each at most once.
func Divergences(a, b *m.Machine) ([]Divergence, error) {
	mapping, err := symbolMapping(a.Alphabet(), b.Alphabet())
	if err != nil {
		return nil, err
	}

	var (
		tree   m.TraceTree
		result []Divergence
	)

	bStates := uint64(b.NumStates())
	visited := map[uint64]struct{}{uint64(a.Initial())*bStates + uint64(b.Initial()): {}}
	queue := []pairEntry{{mut: a.Initial(), hyp: b.Initial(), node: m.Root}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, in := range a.Alphabet().Symbols() {
			outA := a.Output(current.mut, in)
			outB := b.Output(current.hyp, mapping[in])

			if outA != outB {
				result = append(result, Divergence{
					Prefix:  a.Alphabet().Names(tree.Materialize(current.node)),
					Input:   a.Alphabet().Name(in),
					OutputA: outA,
					OutputB: outB,
				})

				continue
			}

			next := pairEntry{mut: a.Successor(current.mut, in), hyp: b.Successor(current.hyp, mapping[in])}

			key := uint64(next.mut)*bStates + uint64(next.hyp)
			if _, seen := visited[key]; seen {
				continue
			}

			visited[key] = struct{}{}
			next.node = tree.Extend(current.node, in)
			queue = append(queue, next)
		}
	}

	return result, nil
}

func symbolMapping(a, b *m.Alphabet) ([]m.Symbol, error) {
	if a.Size() != b.Size() {
		return nil, fmt.Errorf("%w: %d and %d symbols", m.ErrAlphabetMismatch, a.Size(), b.Size())
	}

	mapping := make([]m.Symbol, a.Size())

	for _, s := range a.Symbols() {
		t, ok := b.Lookup(a.Name(s))
		if !ok {
			return nil, fmt.Errorf("%w: %q missing", m.ErrAlphabetMismatch, a.Name(s))
		}

		mapping[s] = t
	}

	return mapping, nil
}
