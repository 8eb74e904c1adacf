// Package equiv searches for input traces that distinguish two Mealy machines.
package equiv

import (
	"log/slog"
	"sync"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// Checker finds traces that kill mutants. It caches shortest-path tables for
// the most recent hypothesis and is safe for concurrent use.
type Checker struct {
	mu    sync.Mutex
	paths *pathTable
}

// NewChecker creates a checker with an empty cache.
func NewChecker() *Checker {
	return &Checker{}
}

// KillMutant returns prefix extended by inputs on which the mutant and hyp
// produce different outputs. The second result is false when no such
// extension exists.
func (c *Checker) KillMutant(mut *m.Mutant, hyp *m.Machine, prefix m.Trace) (m.Trace, bool) {
	if !mut.Critical.DefinitelyKilled {
		return KillMachine(mut.Machine(), hyp, prefix)
	}

	critical := mut.Critical
	from := hyp.StateAfter(prefix)

	path, ok := c.table(hyp).path(from, critical.PreState)
	if !ok {
		return nil, false
	}

	return prefix.Concat(path, m.Trace{critical.Input}), true
}

func (c *Checker) table(hyp *m.Machine) *pathTable {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paths == nil || c.paths.machine != hyp.ID() {
		slog.Debug("Rebuilding shortest path table", "machine", hyp.ID(), "states", hyp.NumStates())
		c.paths = newPathTable(hyp)
	}

	return c.paths
}

// pathStep records how a BFS from one source reached a state.
type pathStep struct {
	prev m.StateID
	sym  m.Symbol
}

// pathTable holds one BFS predecessor row per source state.
type pathTable struct {
	machine uint64
	rows    [][]pathStep
}

func newPathTable(hyp *m.Machine) *pathTable {
	n := hyp.NumStates()
	symbols := hyp.Alphabet().Symbols()
	rows := make([][]pathStep, n)

	for src := range n {
		row := make([]pathStep, n)
		for i := range row {
			row[i].prev = m.NoState
		}

		row[src].prev = m.StateID(src)
		queue := []m.StateID{m.StateID(src)}

		for len(queue) > 0 {
			s := queue[0]
			queue = queue[1:]

			for _, in := range symbols {
				next := hyp.Successor(s, in)
				if row[next].prev != m.NoState {
					continue
				}

				row[next] = pathStep{prev: s, sym: in}
				queue = append(queue, next)
			}
		}

		rows[src] = row
	}

	return &pathTable{machine: hyp.ID(), rows: rows}
}

// path returns a shortest input sequence leading from src to dst.
func (pt *pathTable) path(src, dst m.StateID) (m.Trace, bool) {
	row := pt.rows[src]
	if row[dst].prev == m.NoState {
		return nil, false
	}

	var out m.Trace
	for s := dst; s != src; s = row[s].prev {
		out = append(out, row[s].sym)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, true
}

type pairEntry struct {
	mut, hyp m.StateID
	node     int
}

// KillMachine runs a breadth-first search over state pairs of mutant and hyp,
// starting after prefix, and returns the shortest distinguishing extension
// appended to prefix. Both machines must share the alphabet.
func KillMachine(mutant, hyp *m.Machine, prefix m.Trace) (m.Trace, bool) {
	var tree m.TraceTree

	symbols := hyp.Alphabet().Symbols()
	hypStates := uint64(hyp.NumStates())
	visited := make(map[uint64]struct{})

	start := pairEntry{mut: mutant.StateAfter(prefix), hyp: hyp.StateAfter(prefix), node: m.Root}
	visited[uint64(start.mut)*hypStates+uint64(start.hyp)] = struct{}{}
	queue := []pairEntry{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, in := range symbols {
			if mutant.Output(current.mut, in) != hyp.Output(current.hyp, in) {
				return prefix.Concat(tree.Materialize(current.node), m.Trace{in}), true
			}
		}

		for _, in := range symbols {
			next := pairEntry{mut: mutant.Successor(current.mut, in), hyp: hyp.Successor(current.hyp, in)}

			key := uint64(next.mut)*hypStates + uint64(next.hyp)
			if _, seen := visited[key]; seen {
				continue
			}

			visited[key] = struct{}{}
			next.node = tree.Extend(current.node, in)
			queue = append(queue, next)
		}
	}

	return nil, false
}
