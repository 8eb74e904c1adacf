package mutagens

import (
	"slices"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// AccessSequenceProvider supplies access sequences to a state of a hypothesis.
type AccessSequenceProvider interface {
	AccessSequences(hyp *m.Machine, target m.StateID, bound int) []m.Trace
}

type bfsAccess struct {
	globalVisited bool
}

// NewBFSAccess returns the breadth-first access-sequence search. With
// globalVisited a state is expanded at most twice over the whole search,
// otherwise a successor is skipped when an ancestor on the current path
// already visited it.
func NewBFSAccess(globalVisited bool) AccessSequenceProvider {
	return bfsAccess{globalVisited: globalVisited}
}

type accessEntry struct {
	state m.StateID
	node  int
}

func (a bfsAccess) AccessSequences(hyp *m.Machine, target m.StateID, bound int) []m.Trace {
	var (
		tree    m.TraceTree
		reached []m.StateID // state reached by each tree node
		result  []m.Trace
		visited = make(map[m.StateID]int)
	)

	stateOf := func(node int) m.StateID {
		if node == m.Root {
			return hyp.Initial()
		}

		return reached[node]
	}

	queue := []accessEntry{{state: hyp.Initial(), node: m.Root}}

	for len(queue) > 0 && len(result) < bound {
		current := queue[0]
		queue = queue[1:]

		visited[current.state]++

		if current.state == target && current.node != m.Root {
			result = append(result, tree.Materialize(current.node))
		}

		var ancestors []m.StateID
		if !a.globalVisited && current.node != m.Root {
			for n := tree.Parent(current.node); ; n = tree.Parent(n) {
				ancestors = append(ancestors, stateOf(n))
				if n == m.Root {
					break
				}
			}
		}

		for _, in := range hyp.Alphabet().Symbols() {
			next := hyp.Successor(current.state, in)

			if a.globalVisited && visited[next] >= 2 {
				continue
			}

			if !a.globalVisited && slices.Contains(ancestors, next) {
				continue
			}

			child := tree.Extend(current.node, in)
			reached = append(reached, next)
			queue = append(queue, accessEntry{state: next, node: child})
		}
	}

	return result
}

type prefixAccess struct {
	byState map[m.StateID][]m.Trace
}

// NewPrefixAccess builds a provider from a learner-supplied prefix set, for
// example the short prefixes of an observation table. A prefix is kept when
// no state is visited more than twice along it. Sequences are grouped by the
// state they reach, shortest first.
func NewPrefixAccess(hyp *m.Machine, prefixes []m.Trace) AccessSequenceProvider {
	byState := make(map[m.StateID][]m.Trace)

	for _, p := range prefixes {
		if len(p) == 0 || !visitsAtMostTwice(hyp, p) {
			continue
		}

		s := hyp.StateAfter(p)
		byState[s] = append(byState[s], p)
	}

	for s := range byState {
		slices.SortStableFunc(byState[s], func(a, b m.Trace) int { return len(a) - len(b) })
	}

	return &prefixAccess{byState: byState}
}

func (p *prefixAccess) AccessSequences(_ *m.Machine, target m.StateID, bound int) []m.Trace {
	seqs := p.byState[target]

	return seqs[:min(bound, len(seqs))]
}

func visitsAtMostTwice(hyp *m.Machine, t m.Trace) bool {
	counts := map[m.StateID]int{hyp.Initial(): 1}
	s := hyp.Initial()

	for _, in := range t {
		s = hyp.Successor(s, in)
		counts[s]++

		if counts[s] > 2 {
			return false
		}
	}

	return true
}
