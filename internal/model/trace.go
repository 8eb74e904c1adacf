package model

import "slices"

// Trace is an input sequence. Traces are treated as immutable once shared.
type Trace []Symbol

// Concat returns a fresh trace holding t followed by every part.
func (t Trace) Concat(parts ...Trace) Trace {
	n := len(t)
	for _, p := range parts {
		n += len(p)
	}

	out := make(Trace, 0, n)
	out = append(out, t...)

	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// Append returns a fresh trace holding t followed by syms.
func (t Trace) Append(syms ...Symbol) Trace {
	return t.Concat(Trace(syms))
}

// Equal reports whether both traces hold the same symbols.
func (t Trace) Equal(o Trace) bool {
	return slices.Equal(t, o)
}

// HasPrefix reports whether p is a prefix of t.
func (t Trace) HasPrefix(p Trace) bool {
	return len(p) <= len(t) && slices.Equal(t[:len(p)], p)
}

// Suffix returns the last n symbols.
func (t Trace) Suffix(n int) Trace {
	return t[len(t)-n:]
}

// Last returns the final symbol. The trace must not be empty.
func (t Trace) Last() Symbol {
	return t[len(t)-1]
}

// Key returns a comparable representation, usable as a map key.
func (t Trace) Key() string {
	b := make([]byte, 0, len(t)*2)
	for _, s := range t {
		b = append(b, byte(s), byte(s>>8))
	}

	return string(b)
}

// TraceTree stores many traces that share prefixes. Each node extends its
// parent by one symbol, so extension is O(1) and materialization walks back
// to the root and reverses.
type TraceTree struct {
	nodes []traceNode
}

type traceNode struct {
	parent int32
	sym    Symbol
}

// Root is the node id of the empty trace.
const Root = -1

// Extend adds a child of parent labeled sym and returns its node id.
func (tt *TraceTree) Extend(parent int, sym Symbol) int {
	tt.nodes = append(tt.nodes, traceNode{parent: int32(parent), sym: sym})
	return len(tt.nodes) - 1
}

// Parent returns the parent node id, or Root.
func (tt *TraceTree) Parent(node int) int {
	return int(tt.nodes[node].parent)
}

// Depth returns the length of the trace ending at node.
func (tt *TraceTree) Depth(node int) int {
	d := 0
	for n := node; n != Root; n = int(tt.nodes[n].parent) {
		d++
	}

	return d
}

// Materialize returns the trace ending at node.
func (tt *TraceTree) Materialize(node int) Trace {
	out := make(Trace, 0, 8)
	for n := node; n != Root; n = int(tt.nodes[n].parent) {
		out = append(out, tt.nodes[n].sym)
	}

	slices.Reverse(out)

	return out
}
