package mutagens

import (
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

type changeOutput struct{}

// NewChangeOutput creates the operator that alters the output of one transition.
// One mutant is built per transition, using the first differing output of
// the hypothesis' observed output alphabet.
func NewChangeOutput() Operator {
	return changeOutput{}
}

func (changeOutput) Name() string {
	return ChangeOutputName
}

func (changeOutput) Generate(hyp *m.Machine, ids *m.IDGen) (*m.Population, error) {
	outputs := hyp.OutputAlphabet()
	root := m.NewNode(m.KindOperator, ChangeOutputName)

	for s := range m.StateID(hyp.NumStates()) {
		node := m.NewNode(m.KindState, stateLabel(s))

		for _, in := range hyp.Alphabet().Symbols() {
			alt, ok := alternativeOutput(outputs, hyp.Output(s, in))
			if !ok {
				continue
			}

			critical := m.CriticalTransition{
				Transition:       hyp.Transition(s, in),
				PreState:         s,
				Input:            in,
				DefinitelyKilled: true,
			}

			node.Add(m.NewLeaf(m.NewMutant(ids.Next(), ChangeOutputName, critical, false, func() *m.Machine {
				b := m.BuilderFrom(hyp)
				b.SetTransition(s, in, hyp.Successor(s, in), alt)

				return b.MustBuild()
			})))
		}

		root.Add(node)
	}

	return root, nil
}

func alternativeOutput(outputs []string, current string) (string, bool) {
	for _, o := range outputs {
		if o != current {
			return o, true
		}
	}

	return "", false
}
