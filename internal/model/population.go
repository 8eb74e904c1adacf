package model

// Kind tags a population node with the stratification level it represents.
type Kind int

// Population node kinds.
const (
	KindUnion Kind = iota
	KindOperator
	KindState
	KindPair
	KindSequence
	KindSampled
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindUnion:
		return "union"
	case KindOperator:
		return "operator"
	case KindState:
		return "state"
	case KindPair:
		return "pair"
	case KindSequence:
		return "sequence"
	case KindSampled:
		return "sampled"
	case KindLeaf:
		return "leaf"
	}

	return "unknown"
}

// Population is a tree of mutants. Leaves hold exactly one mutant.
type Population struct {
	Kind     Kind
	Label    string
	Children []*Population
	Mutant   *Mutant
}

// NewNode creates an inner node.
func NewNode(kind Kind, label string, children ...*Population) *Population {
	return &Population{Kind: kind, Label: label, Children: children}
}

// NewLeaf wraps a single mutant.
func NewLeaf(mut *Mutant) *Population {
	return &Population{Kind: KindLeaf, Mutant: mut}
}

// Add appends children to the node.
func (p *Population) Add(children ...*Population) {
	p.Children = append(p.Children, children...)
}

// IsLeaf reports whether the node wraps a mutant.
func (p *Population) IsLeaf() bool {
	return p.Kind == KindLeaf
}

// Flatten returns every mutant below p in tree order.
func (p *Population) Flatten() []*Mutant {
	var out []*Mutant

	p.walk(func(n *Population) {
		if n.IsLeaf() {
			out = append(out, n.Mutant)
		}
	})

	return out
}

// Size returns the number of mutants below p.
func (p *Population) Size() int {
	n := 0

	p.walk(func(node *Population) {
		if node.IsLeaf() {
			n++
		}
	})

	return n
}

func (p *Population) walk(fn func(*Population)) {
	if p == nil {
		return
	}

	fn(p)

	for _, c := range p.Children {
		c.walk(fn)
	}
}
