package mutagens

import (
	"math/rand/v2"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

type changeTarget struct {
	maxDiffInputs  int
	maxDiffTargets int
	seed           uint64
}

// NewChangeTarget creates the operator that redirects transitions to other
// states. Per state at most maxDiffInputs inputs are chosen, and per input at
// most maxDiffTargets alternative targets.
func NewChangeTarget(maxDiffInputs, maxDiffTargets int, seed uint64) Operator {
	return &changeTarget{
		maxDiffInputs:  maxDiffInputs,
		maxDiffTargets: maxDiffTargets,
		seed:           seed,
	}
}

func (ct *changeTarget) Name() string {
	return ChangeTargetName
}

func (ct *changeTarget) Generate(hyp *m.Machine, ids *m.IDGen) (*m.Population, error) {
	rnd := rand.New(rand.NewPCG(ct.seed, ct.seed))
	root := m.NewNode(m.KindOperator, ChangeTargetName)

	states := make([]m.StateID, hyp.NumStates())
	for i := range states {
		states[i] = m.StateID(i)
	}

	for _, s := range states {
		node := m.NewNode(m.KindState, stateLabel(s))

		inputs := hyp.Alphabet().Symbols()
		rnd.Shuffle(len(inputs), func(i, j int) { inputs[i], inputs[j] = inputs[j], inputs[i] })

		for _, in := range inputs[:min(ct.maxDiffInputs, len(inputs))] {
			targets := append([]m.StateID(nil), states...)
			rnd.Shuffle(len(targets), func(i, j int) { targets[i], targets[j] = targets[j], targets[i] })

			current := hyp.Successor(s, in)

			for _, target := range targets[:min(ct.maxDiffTargets, len(targets))] {
				if target == current {
					continue
				}

				critical := m.CriticalTransition{
					Transition: hyp.Transition(s, in),
					PreState:   s,
					Input:      in,
				}

				node.Add(m.NewLeaf(m.NewMutant(ids.Next(), ChangeTargetName, critical, true, func() *m.Machine {
					b := m.BuilderFrom(hyp)
					b.SetTransition(s, in, target, hyp.Output(s, in))

					return b.MustBuild()
				})))
			}
		}

		root.Add(node)
	}

	return root, nil
}
