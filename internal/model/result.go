package model

import "time"

// EvaluatedTrace is a candidate trace annotated with the mutants it kills.
type EvaluatedTrace struct {
	Trace  Trace
	Killed []uint64
	// Score is len(Killed) divided by the live mutant count.
	Score float64
}

// Counterexample is an input/output query on which the hypothesis and the SUL disagree.
type Counterexample struct {
	Input  Trace
	Output []string
}

// OracleStats aggregates counters across oracle calls.
type OracleStats struct {
	Rounds         int
	Tests          int64
	Steps          int64
	Mutants        int
	Retired        int
	GenerationTime time.Duration
	EvaluationTime time.Duration
	ExecutionTime  time.Duration
}
