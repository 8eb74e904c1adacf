// Package testutil provides small Mealy machines shared by package tests.
package testutil

import (
	"math/rand/v2"
	"strconv"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// Row is one transition of a machine table.
type Row struct {
	From   int
	Input  string
	To     int
	Output string
}

// Table builds a machine with states [0,n) and initial state 0.
func Table(inputs []string, n int, rows ...Row) *m.Machine {
	alphabet := m.MustAlphabet(inputs...)
	b := m.NewBuilder(alphabet)

	for range n {
		b.AddState()
	}

	b.SetInitial(0)

	for _, r := range rows {
		in, _ := alphabet.Lookup(r.Input)
		b.SetTransition(m.StateID(r.From), in, m.StateID(r.To), r.Output)
	}

	return b.MustBuild()
}

// TwoState has states A (0) and B (1) over input "a". A outputs "0" and
// moves to B, B outputs "1" and moves to A.
func TwoState() *m.Machine {
	return Table([]string{"a"}, 2,
		Row{0, "a", 1, "0"},
		Row{1, "a", 0, "1"},
	)
}

// Chain3 is a three state chain over {a, b} whose transitions all output "0".
// Input a advances along the chain, b returns to the start.
func Chain3() *m.Machine {
	return Chain3With("0")
}

// Chain3With is Chain3 except the third a-step outputs last.
func Chain3With(last string) *m.Machine {
	return Table([]string{"a", "b"}, 3,
		Row{0, "a", 1, "0"},
		Row{0, "b", 0, "0"},
		Row{1, "a", 2, "0"},
		Row{1, "b", 0, "0"},
		Row{2, "a", 0, last},
		Row{2, "b", 0, "0"},
	)
}

// Random builds a seeded random machine where every state is reachable
// from the initial state through input 0.
func Random(seed uint64, states, inputs, outputs int) *m.Machine {
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	names := make([]string, inputs)
	for i := range names {
		names[i] = "i" + strconv.Itoa(i)
	}

	b := m.NewBuilder(m.MustAlphabet(names...))
	for range states {
		b.AddState()
	}

	b.SetInitial(0)

	for s := range states {
		for in := range inputs {
			target := rnd.IntN(states)
			if in == 0 {
				target = (s + 1) % states
			}

			b.SetTransition(m.StateID(s), m.Symbol(in), m.StateID(target), strconv.Itoa(rnd.IntN(outputs)))
		}
	}

	return b.MustBuild()
}

// Words returns every word of exactly length n over k symbols, in lexicographic order.
func Words(k, n int) []m.Trace {
	words := []m.Trace{{}}

	for range n {
		next := make([]m.Trace, 0, len(words)*k)

		for _, w := range words {
			for s := range k {
				next = append(next, w.Append(m.Symbol(s)))
			}
		}

		words = next
	}

	return words
}

// WordsUpTo returns every word of length at most n.
func WordsUpTo(k, n int) []m.Trace {
	var out []m.Trace
	for l := 0; l <= n; l++ {
		out = append(out, Words(k, l)...)
	}

	return out
}
