// Package adapter connects the oracle to systems under learning, machine
// description files and trace storage.
package adapter

import (
	"fmt"
	"log/slog"
	"sync"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// SUL is the black-box system under learning. Symbols are indices into the
// hypothesis input alphabet. Calls are strictly sequential.
type SUL interface {
	Reset() error
	Step(in m.Symbol) (string, error)
}

// MachineSUL simulates a reference machine. Hypothesis symbols are mapped
// to reference inputs by name.
type MachineSUL struct {
	machine *m.Machine
	mapping []m.Symbol
	state   m.StateID
}

// NewMachineSUL simulates machine for a learner using inputs. Every input
// name must exist in the machine's alphabet.
func NewMachineSUL(machine *m.Machine, inputs *m.Alphabet) (*MachineSUL, error) {
	mapping := make([]m.Symbol, inputs.Size())

	for _, sym := range inputs.Symbols() {
		name := inputs.Name(sym)

		target, ok := machine.Alphabet().Lookup(name)
		if !ok {
			slog.Error("Failed to map input to reference machine", "input", name)
			return nil, fmt.Errorf("failed to map input %q: %w", name, m.ErrAlphabetMismatch)
		}

		mapping[sym] = target
	}

	return &MachineSUL{machine: machine, mapping: mapping, state: machine.Initial()}, nil
}

// Reset returns the simulation to the initial state.
func (s *MachineSUL) Reset() error {
	s.state = s.machine.Initial()
	return nil
}

// Step applies one input and returns the produced output.
func (s *MachineSUL) Step(in m.Symbol) (string, error) {
	if int(in) < 0 || int(in) >= len(s.mapping) {
		return "", fmt.Errorf("input symbol %d outside alphabet of size %d", in, len(s.mapping))
	}

	target := s.mapping[in]
	out := s.machine.Output(s.state, target)
	s.state = s.machine.Successor(s.state, target)

	return out, nil
}

// TrackingSUL records the input traces executed through it while tracking
// is enabled. A trace ends at the next Reset or Drain.
type TrackingSUL struct {
	inner SUL

	mu       sync.Mutex
	tracking bool
	current  m.Trace
	executed []m.Trace
}

// NewTrackingSUL wraps inner with tracking enabled.
func NewTrackingSUL(inner SUL) *TrackingSUL {
	return &TrackingSUL{inner: inner, tracking: true}
}

// SetTracking turns recording on or off. Turning it off ends the current trace.
func (s *TrackingSUL) SetTracking(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !enabled {
		s.flush()
	}

	s.tracking = enabled
}

func (s *TrackingSUL) Reset() error {
	s.mu.Lock()
	s.flush()
	s.mu.Unlock()

	return s.inner.Reset()
}

func (s *TrackingSUL) Step(in m.Symbol) (string, error) {
	out, err := s.inner.Step(in)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if s.tracking {
		s.current = append(s.current, in)
	}
	s.mu.Unlock()

	return out, nil
}

// Drain returns the recorded traces and forgets them.
func (s *TrackingSUL) Drain() []m.Trace {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flush()

	executed := s.executed
	s.executed = nil

	return executed
}

func (s *TrackingSUL) flush() {
	if len(s.current) > 0 {
		s.executed = append(s.executed, s.current)
	}

	s.current = nil
}
