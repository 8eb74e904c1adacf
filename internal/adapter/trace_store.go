package adapter

import (
	"fmt"
	"log/slog"
	"sync"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
	"mutoracle.dev/pkg/mutoracle/pkg"
)

// TraceStore keeps the traces executed on the SUL across oracle rounds.
type TraceStore interface {
	Add(traces ...m.Trace) error
	Len() int
	Traces() ([]m.Trace, error)
	Close() error
}

type memoryTraceStore struct {
	mu     sync.Mutex
	traces []m.Trace
}

// NewMemoryTraceStore keeps executed traces in memory.
func NewMemoryTraceStore() TraceStore {
	return &memoryTraceStore{}
}

func (s *memoryTraceStore) Add(traces ...m.Trace) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range traces {
		s.traces = append(s.traces, append(m.Trace(nil), t...))
	}

	return nil
}

func (s *memoryTraceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.traces)
}

func (s *memoryTraceStore) Traces() ([]m.Trace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]m.Trace(nil), s.traces...), nil
}

func (s *memoryTraceStore) Close() error {
	return nil
}

type spillTraceStore struct {
	spill pkg.FileSpill[[]int]
}

// NewSpillTraceStore keeps executed traces in a gob file under dir, so long
// learning runs do not hold every executed test in memory.
func NewSpillTraceStore(dir string) (TraceStore, error) {
	spill, err := pkg.NewFileSpill[[]int](dir)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace spill: %w", err)
	}

	return &spillTraceStore{spill: spill}, nil
}

func (s *spillTraceStore) Add(traces ...m.Trace) error {
	batch := make([][]int, len(traces))

	for i, t := range traces {
		row := make([]int, len(t))
		for j, sym := range t {
			row[j] = int(sym)
		}

		batch[i] = row
	}

	if err := s.spill.AppendBatch(batch); err != nil {
		slog.Error("Failed to store executed traces", "count", len(traces), "error", err)
		return fmt.Errorf("failed to store executed traces: %w", err)
	}

	return nil
}

func (s *spillTraceStore) Len() int {
	return int(s.spill.Len())
}

func (s *spillTraceStore) Traces() ([]m.Trace, error) {
	traces := make([]m.Trace, 0, s.spill.Len())

	err := s.spill.Range(func(_ uint64, row []int) error {
		t := make(m.Trace, len(row))
		for j, sym := range row {
			t[j] = m.Symbol(sym)
		}

		traces = append(traces, t)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read executed traces: %w", err)
	}

	return traces, nil
}

// Close deletes the spill file; the store is single-use.
func (s *spillTraceStore) Close() error {
	return s.spill.Remove()
}
