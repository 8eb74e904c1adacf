package model

import "sync/atomic"

// CriticalTransition marks the hypothesis transition whose traversal is
// required to expose a mutant.
type CriticalTransition struct {
	Transition TransitionID
	PreState   StateID
	Input      Symbol
	// DefinitelyKilled is set when crossing the transition alone exposes the mutant.
	DefinitelyKilled bool
	// KillSuffix, when non-nil, is the input sequence that exposes the mutant
	// once the transition has been crossed.
	KillSuffix Trace
}

// HasKillSuffix reports whether a definite kill suffix is known.
func (c CriticalTransition) HasKillSuffix() bool {
	return c.KillSuffix != nil
}

// Lazy is a single-assignment cell. Get computes the value on first use;
// concurrent callers may compute it more than once, but all of them observe
// the first stored value.
type Lazy[T any] struct {
	p  atomic.Pointer[T]
	fn func() *T
}

// NewLazy creates a cell computed by fn.
func NewLazy[T any](fn func() *T) *Lazy[T] {
	return &Lazy[T]{fn: fn}
}

// Get returns the cached value or computes and stores it.
func (l *Lazy[T]) Get() *T {
	if v := l.p.Load(); v != nil {
		return v
	}

	l.p.CompareAndSwap(nil, l.fn())

	return l.p.Load()
}

// Mutant is a deferred hypothesis variant.
type Mutant struct {
	ID       uint64
	Critical CriticalTransition
	Operator string

	build *Lazy[Machine]
	raw   func() *Machine
}

// NewMutant creates a mutant whose machine is produced by build on demand.
// When memoize is set the first built machine is kept.
func NewMutant(id uint64, op string, critical CriticalTransition, memoize bool, build func() *Machine) *Mutant {
	mut := &Mutant{ID: id, Operator: op, Critical: critical}
	if memoize {
		mut.build = NewLazy(build)
	} else {
		mut.raw = build
	}

	return mut
}

// Machine realizes the mutant. Safe for concurrent use.
func (mu *Mutant) Machine() *Machine {
	if mu.build != nil {
		return mu.build.Get()
	}

	return mu.raw()
}

// IDGen hands out monotonic mutant ids for one generation run.
type IDGen struct {
	next uint64
}

// NewIDGen creates a generator starting at zero.
func NewIDGen() *IDGen {
	return &IDGen{}
}

// Next returns a fresh id.
func (g *IDGen) Next() uint64 {
	id := g.next
	g.next++

	return id
}

// Issued returns the number of ids handed out so far.
func (g *IDGen) Issued() uint64 {
	return g.next
}
