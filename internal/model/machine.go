package model

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrIncompleteMachine is returned when a builder is missing transitions or an initial state.
var ErrIncompleteMachine = errors.New("incomplete machine")

// StateID identifies a state within one machine.
type StateID int

// NoState marks an unset state reference.
const NoState StateID = -1

// TransitionID identifies a transition of one specific machine instance.
// Index is state*|alphabet| + input.
type TransitionID struct {
	Machine uint64
	Index   int
}

var machineSeq atomic.Uint64

// Machine is an immutable, deterministic and total Mealy machine.
type Machine struct {
	id       uint64
	alphabet *Alphabet
	initial  StateID
	states   int
	succ     []StateID
	out      []string
}

// ID returns the process-unique instance id of the machine.
func (m *Machine) ID() uint64 {
	return m.id
}

// Alphabet returns the input alphabet.
func (m *Machine) Alphabet() *Alphabet {
	return m.alphabet
}

// Initial returns the initial state.
func (m *Machine) Initial() StateID {
	return m.initial
}

// NumStates returns the number of states.
func (m *Machine) NumStates() int {
	return m.states
}

// Successor returns δ(s, in).
func (m *Machine) Successor(s StateID, in Symbol) StateID {
	return m.succ[m.index(s, in)]
}

// Output returns λ(s, in).
func (m *Machine) Output(s StateID, in Symbol) string {
	return m.out[m.index(s, in)]
}

// Transition returns the identity of transition (s, in).
func (m *Machine) Transition(s StateID, in Symbol) TransitionID {
	return TransitionID{Machine: m.id, Index: m.index(s, in)}
}

// Source decodes a transition id of this machine into its source state and input.
// It panics when the id belongs to another machine.
func (m *Machine) Source(t TransitionID) (StateID, Symbol) {
	m.mustOwn(t)
	k := m.alphabet.Size()

	return StateID(t.Index / k), Symbol(t.Index % k)
}

// Owns reports whether t refers to a transition of this machine instance.
func (m *Machine) Owns(t TransitionID) bool {
	return t.Machine == m.id && t.Index >= 0 && t.Index < len(m.succ)
}

func (m *Machine) mustOwn(t TransitionID) {
	if !m.Owns(t) {
		panic(fmt.Sprintf("transition %+v does not belong to machine %d", t, m.id))
	}
}

// StateAfter returns the state reached from the initial state on t.
func (m *Machine) StateAfter(t Trace) StateID {
	return m.Run(m.initial, t)
}

// Run returns the state reached from s on t.
func (m *Machine) Run(s StateID, t Trace) StateID {
	for _, in := range t {
		s = m.succ[m.index(s, in)]
	}

	return s
}

// Outputs returns the output word produced from the initial state on t.
func (m *Machine) Outputs(t Trace) []string {
	return m.OutputsFrom(m.initial, t)
}

// OutputsFrom returns the output word produced from s on t.
func (m *Machine) OutputsFrom(s StateID, t Trace) []string {
	out := make([]string, len(t))

	for i, in := range t {
		idx := m.index(s, in)
		out[i] = m.out[idx]
		s = m.succ[idx]
	}

	return out
}

// OutputAlphabet returns the distinct outputs of all transitions in state-major order.
func (m *Machine) OutputAlphabet() []string {
	seen := make(map[string]struct{})
	outputs := make([]string, 0)

	for _, o := range m.out {
		if _, ok := seen[o]; ok {
			continue
		}

		seen[o] = struct{}{}
		outputs = append(outputs, o)
	}

	return outputs
}

func (m *Machine) index(s StateID, in Symbol) int {
	return int(s)*m.alphabet.Size() + int(in)
}

// Builder assembles a Machine. It is not safe for concurrent use.
type Builder struct {
	alphabet *Alphabet
	initial  StateID
	succ     []StateID
	out      []string
	set      []bool
}

// NewBuilder creates an empty builder over the given alphabet.
func NewBuilder(alphabet *Alphabet) *Builder {
	return &Builder{alphabet: alphabet, initial: NoState}
}

// BuilderFrom creates a builder pre-populated with a full copy of m.
// State ids are preserved, so new states are appended after the copied ones.
func BuilderFrom(m *Machine) *Builder {
	b := &Builder{
		alphabet: m.alphabet,
		initial:  m.initial,
		succ:     make([]StateID, len(m.succ)),
		out:      make([]string, len(m.out)),
		set:      make([]bool, len(m.succ)),
	}

	copy(b.succ, m.succ)
	copy(b.out, m.out)

	for i := range b.set {
		b.set[i] = true
	}

	return b
}

// AddState appends a new state and returns its id.
func (b *Builder) AddState() StateID {
	id := StateID(b.NumStates())
	k := b.alphabet.Size()

	for range k {
		b.succ = append(b.succ, NoState)
		b.out = append(b.out, "")
		b.set = append(b.set, false)
	}

	return id
}

// NumStates returns the number of states added so far.
func (b *Builder) NumStates() int {
	return len(b.succ) / b.alphabet.Size()
}

// SetInitial marks s as the initial state.
func (b *Builder) SetInitial(s StateID) {
	b.initial = s
}

// SetTransition defines or overrides transition (s, in).
func (b *Builder) SetTransition(s StateID, in Symbol, target StateID, output string) {
	idx := int(s)*b.alphabet.Size() + int(in)
	b.succ[idx] = target
	b.out[idx] = output
	b.set[idx] = true
}

// Build validates totality and returns the immutable machine.
func (b *Builder) Build() (*Machine, error) {
	n := b.NumStates()
	if n == 0 || b.initial < 0 || int(b.initial) >= n {
		return nil, fmt.Errorf("%w: missing initial state", ErrIncompleteMachine)
	}

	k := b.alphabet.Size()

	for idx, ok := range b.set {
		if !ok {
			return nil, fmt.Errorf("%w: no transition for state %d on %q",
				ErrIncompleteMachine, idx/k, b.alphabet.Name(Symbol(idx%k)))
		}

		if t := b.succ[idx]; t < 0 || int(t) >= n {
			return nil, fmt.Errorf("%w: transition of state %d targets unknown state %d",
				ErrIncompleteMachine, idx/k, t)
		}
	}

	m := &Machine{
		id:       machineSeq.Add(1),
		alphabet: b.alphabet,
		initial:  b.initial,
		states:   n,
		succ:     make([]StateID, len(b.succ)),
		out:      make([]string, len(b.out)),
	}

	copy(m.succ, b.succ)
	copy(m.out, b.out)

	return m, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Machine {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}

	return m
}
