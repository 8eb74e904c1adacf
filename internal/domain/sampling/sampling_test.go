package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// population builds operator -> state nodes holding the given leaf counts.
func population(counts ...int) *m.Population {
	ids := m.NewIDGen()
	op := m.NewNode(m.KindOperator, "op")

	for _, n := range counts {
		state := m.NewNode(m.KindState, "")
		for range n {
			state.Add(m.NewLeaf(m.NewMutant(ids.Next(), "op", m.CriticalTransition{}, false, nil)))
		}

		op.Add(state)
	}

	return m.NewNode(m.KindUnion, "", op)
}

func ids(pop *m.Population) map[uint64]bool {
	out := make(map[uint64]bool)
	for _, mut := range pop.Flatten() {
		out[mut.ID] = true
	}

	return out
}

func assertSubset(t *testing.T, sub, super *m.Population) {
	t.Helper()

	all := ids(super)
	for id := range ids(sub) {
		assert.True(t, all[id], "mutant %d not in source population", id)
	}
}

func TestIdentity(t *testing.T) {
	pop := population(3, 2)
	assert.Same(t, pop, Identity().Sample(pop))
}

func TestOverallBound(t *testing.T) {
	pop := population(10, 10)

	sampled := OverallBound(5, 1).Sample(pop)
	assert.Equal(t, m.KindSampled, sampled.Kind)
	assert.Equal(t, 5, sampled.Size())
	assertSubset(t, sampled, pop)
	assert.Equal(t, 20, pop.Size(), "source must be untouched")

	assert.Equal(t, 20, OverallBound(100, 1).Sample(pop).Size())
}

func TestOverallFraction(t *testing.T) {
	pop := population(10, 10)

	assert.Equal(t, 10, OverallFraction(1, 1).Sample(pop).Size())
	assert.Equal(t, 5, OverallFraction(2, 1).Sample(pop).Size())
	assert.Equal(t, 20, OverallFraction(0, 1).Sample(pop).Size())
}

func TestElementBased(t *testing.T) {
	pop := population(10, 3, 6)

	t.Run("bound applies per node of kind", func(t *testing.T) {
		sampled := ElementBound(4, m.KindState, 1).Sample(pop)
		assert.Equal(t, 4+3+4, sampled.Size())
		assertSubset(t, sampled, pop)
	})

	t.Run("fraction applies per node of kind", func(t *testing.T) {
		sampled := ElementFraction(1, m.KindState, 1).Sample(pop)
		assert.Equal(t, 5+2+3, sampled.Size())
	})

	t.Run("operator level bound", func(t *testing.T) {
		sampled := ElementBound(7, m.KindOperator, 1).Sample(pop)
		assert.Equal(t, 7, sampled.Size())
	})
}

func TestReduceToMean(t *testing.T) {
	pop := population(10, 2, 6)

	sampled := ReduceToMean(m.KindState, 1).Sample(pop)
	assert.Equal(t, 6+2+6, sampled.Size())
	assertSubset(t, sampled, pop)
}

func TestCompose(t *testing.T) {
	pop := population(10, 10)

	s := Compose(ElementBound(6, m.KindState, 1), OverallBound(8, 2))
	assert.Equal(t, 8, s.Sample(pop).Size())
	assert.Equal(t, "element-based(bound=6,kind=state)*overall(bound=8)", s.Name())
}

func TestDeterministicForSeed(t *testing.T) {
	pop := population(10, 10)

	a := OverallBound(5, 9).Sample(pop).Flatten()
	b := OverallBound(5, 9).Sample(pop).Flatten()

	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{name: "empty is identity", text: "", want: "identity"},
		{name: "bound", text: "bound:50", want: "overall(bound=50)"},
		{name: "fraction", text: "fraction:1.5", want: "overall(fraction=1/2^1.5)"},
		{name: "element bound", text: "element-bound:state:3", want: "element-based(bound=3,kind=state)"},
		{name: "mean", text: "mean:pair", want: "reduce-to-mean(kind=pair)"},
		{name: "composition", text: "mean:state * bound:10", want: "reduce-to-mean(kind=state)*overall(bound=10)"},
		{name: "unknown kind", text: "mean:planet", wantErr: true},
		{name: "bad bound", text: "bound:x", wantErr: true},
		{name: "unknown sampler", text: "everything", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.text, 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Name())
		})
	}
}
