package coverage

import (
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// chainNode is one state of a linear chase chain. Reading expect moves to
// next, or kills accept when the node is final.
type chainNode struct {
	expect m.Symbol
	next   int32
	accept uint64
	final  bool
}

// chaseEntry starts a chase when its hypothesis transition is taken.
type chaseEntry struct {
	chase  int32
	mutant uint64
	first  int32
}

type cursor struct {
	node  int32
	chase int32
}

// killAutomaton is the hypothesis augmented with kill events: transitions
// carry the ids of definitely-killed mutants, and each maybe-killed mutant
// owns a chain that accepts its kill suffix.
type killAutomaton struct {
	alphabet int
	definite [][]uint64
	entries  [][]chaseEntry
	nodes    []chainNode
}

func compileAutomaton(hyp *m.Machine, definite map[m.TransitionID][]uint64, maybe map[m.TransitionID][]maybeEntry) *killAutomaton {
	size := hyp.NumStates() * hyp.Alphabet().Size()
	a := &killAutomaton{
		alphabet: hyp.Alphabet().Size(),
		definite: make([][]uint64, size),
		entries:  make([][]chaseEntry, size),
	}

	for t, ids := range definite {
		a.definite[t.Index] = append([]uint64(nil), ids...)
	}

	var chases int32

	for t, entries := range maybe {
		for _, entry := range entries {
			first := int32(len(a.nodes))
			last := len(entry.suffix) - 1

			for j, sym := range entry.suffix {
				a.nodes = append(a.nodes, chainNode{
					expect: sym,
					next:   first + int32(j) + 1,
					accept: entry.id,
					final:  j == last,
				})
			}

			a.entries[t.Index] = append(a.entries[t.Index], chaseEntry{chase: chases, mutant: entry.id, first: first})
			chases++
		}
	}

	return a
}

// run follows the hypothesis through trace while advancing a worklist of
// chase cursors. All state is local to the call.
func (a *killAutomaton) run(hyp *m.Machine, trace m.Trace) []uint64 {
	killed := make(map[uint64]struct{})
	busy := make(map[int32]struct{})

	var active, next []cursor

	s := hyp.Initial()

	for _, in := range trace {
		next = next[:0]

		var ended []int32

		for _, c := range active {
			node := a.nodes[c.node]

			switch {
			case node.expect != in:
				ended = append(ended, c.chase)
			case node.final:
				killed[node.accept] = struct{}{}
				ended = append(ended, c.chase)
			default:
				next = append(next, cursor{node: node.next, chase: c.chase})
			}
		}

		idx := int(s)*a.alphabet + int(in)
		for _, id := range a.definite[idx] {
			killed[id] = struct{}{}
		}

		for _, entry := range a.entries[idx] {
			if _, chasing := busy[entry.chase]; chasing {
				continue
			}

			if _, done := killed[entry.mutant]; done {
				continue
			}

			busy[entry.chase] = struct{}{}
			next = append(next, cursor{node: entry.first, chase: entry.chase})
		}

		for _, chase := range ended {
			delete(busy, chase)
		}

		active, next = next, active
		s = hyp.Successor(s, in)
	}

	return sortedIDs(killed)
}
