// Package model defines the data structures shared by the oracle components.
package model

import (
	"errors"
	"fmt"
)

// ErrAlphabetMismatch is returned when two alphabets do not share symbol names.
var ErrAlphabetMismatch = errors.New("input alphabets differ")

// Symbol is an input symbol, represented as an index into an Alphabet.
type Symbol int

// Alphabet is an ordered set of named input symbols.
type Alphabet struct {
	names []string
	index map[string]Symbol
}

// NewAlphabet creates an alphabet from the given symbol names. Order is kept.
func NewAlphabet(names ...string) (*Alphabet, error) {
	a := &Alphabet{
		names: make([]string, 0, len(names)),
		index: make(map[string]Symbol, len(names)),
	}

	for _, name := range names {
		if _, ok := a.index[name]; ok {
			return nil, fmt.Errorf("duplicate input symbol %q", name)
		}

		a.index[name] = Symbol(len(a.names))
		a.names = append(a.names, name)
	}

	if len(a.names) == 0 {
		return nil, fmt.Errorf("empty input alphabet")
	}

	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error. Intended for tests and literals.
func MustAlphabet(names ...string) *Alphabet {
	a, err := NewAlphabet(names...)
	if err != nil {
		panic(err)
	}

	return a
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.names)
}

// Symbols returns all symbols in alphabet order.
func (a *Alphabet) Symbols() []Symbol {
	symbols := make([]Symbol, len(a.names))
	for i := range symbols {
		symbols[i] = Symbol(i)
	}

	return symbols
}

// Name returns the display name of a symbol.
func (a *Alphabet) Name(s Symbol) string {
	return a.names[s]
}

// Lookup resolves a symbol by name.
func (a *Alphabet) Lookup(name string) (Symbol, bool) {
	s, ok := a.index[name]
	return s, ok
}

// Names renders a trace as symbol names.
func (a *Alphabet) Names(t Trace) []string {
	names := make([]string, len(t))
	for i, s := range t {
		names[i] = a.names[s]
	}

	return names
}

// Parse converts symbol names into a trace.
func (a *Alphabet) Parse(names ...string) (Trace, error) {
	t := make(Trace, len(names))

	for i, name := range names {
		s, ok := a.index[name]
		if !ok {
			return nil, fmt.Errorf("unknown input symbol %q", name)
		}

		t[i] = s
	}

	return t, nil
}
