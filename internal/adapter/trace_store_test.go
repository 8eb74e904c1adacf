package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

func TestTraceStores(t *testing.T) {
	stores := map[string]func(t *testing.T) TraceStore{
		"memory": func(*testing.T) TraceStore { return NewMemoryTraceStore() },
		"spill": func(t *testing.T) TraceStore {
			store, err := NewSpillTraceStore(t.TempDir())
			require.NoError(t, err)

			return store
		},
	}

	for name, create := range stores {
		t.Run(name, func(t *testing.T) {
			store := create(t)
			defer store.Close()

			assert.Equal(t, 0, store.Len())

			require.NoError(t, store.Add(m.Trace{0, 1}, m.Trace{1}))
			require.NoError(t, store.Add(m.Trace{2, 2, 2}))

			assert.Equal(t, 3, store.Len())

			traces, err := store.Traces()
			require.NoError(t, err)
			assert.Equal(t, []m.Trace{{0, 1}, {1}, {2, 2, 2}}, traces)
		})
	}

	t.Run("memory store copies traces", func(t *testing.T) {
		store := NewMemoryTraceStore()
		trace := m.Trace{0, 1}

		require.NoError(t, store.Add(trace))
		trace[0] = 5

		traces, err := store.Traces()
		require.NoError(t, err)
		assert.Equal(t, m.Trace{0, 1}, traces[0])
	})
}
