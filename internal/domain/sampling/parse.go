package sampling

import (
	"fmt"
	"strconv"
	"strings"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

var kindNames = map[string]m.Kind{
	"union":    m.KindUnion,
	"operator": m.KindOperator,
	"state":    m.KindState,
	"pair":     m.KindPair,
	"sequence": m.KindSequence,
	"sampled":  m.KindSampled,
}

// Parse builds a strategy from its textual form. Steps are joined by "*":
//
//	identity
//	bound:N
//	fraction:P
//	element-bound:KIND:N
//	element-fraction:KIND:P
//	mean:KIND
func Parse(text string, seed uint64) (Strategy, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Identity(), nil
	}

	parts := strings.Split(text, "*")
	steps := make([]Strategy, 0, len(parts))

	for i, part := range parts {
		step, err := parseStep(strings.TrimSpace(part), seed+uint64(i))
		if err != nil {
			return nil, err
		}

		steps = append(steps, step)
	}

	if len(steps) == 1 {
		return steps[0], nil
	}

	return Compose(steps...), nil
}

func parseStep(text string, seed uint64) (Strategy, error) {
	fields := strings.Split(text, ":")

	switch {
	case fields[0] == "identity" && len(fields) == 1:
		return Identity(), nil
	case fields[0] == "bound" && len(fields) == 2:
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid sampler bound %q", fields[1])
		}

		return OverallBound(n, seed), nil
	case fields[0] == "fraction" && len(fields) == 2:
		p, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sampler fraction %q", fields[1])
		}

		return OverallFraction(p, seed), nil
	case fields[0] == "element-bound" && len(fields) == 3:
		kind, err := parseKind(fields[1])
		if err != nil {
			return nil, err
		}

		n, err := strconv.Atoi(fields[2])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid sampler bound %q", fields[2])
		}

		return ElementBound(n, kind, seed), nil
	case fields[0] == "element-fraction" && len(fields) == 3:
		kind, err := parseKind(fields[1])
		if err != nil {
			return nil, err
		}

		p, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sampler fraction %q", fields[2])
		}

		return ElementFraction(p, kind, seed), nil
	case fields[0] == "mean" && len(fields) == 2:
		kind, err := parseKind(fields[1])
		if err != nil {
			return nil, err
		}

		return ReduceToMean(kind, seed), nil
	}

	return nil, fmt.Errorf("unknown sampler %q", text)
}

func parseKind(name string) (m.Kind, error) {
	kind, ok := kindNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown population kind %q", name)
	}

	return kind, nil
}
