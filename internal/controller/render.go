package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"

	"mutoracle.dev/pkg/mutoracle/internal/domain/equiv"
	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

type populationRow struct {
	operator string
	group    string
	count    int
}

// populationRows lists the mutant count of every group below each operator
// node. Sampled populations without operator nodes form one row.
func populationRows(pop *m.Population) []populationRow {
	var rows []populationRow

	var visit func(node *m.Population)
	visit = func(node *m.Population) {
		if node.Kind != m.KindOperator {
			for _, child := range node.Children {
				visit(child)
			}

			return
		}

		for _, group := range node.Children {
			if n := group.Size(); n > 0 {
				rows = append(rows, populationRow{operator: node.Label, group: groupLabel(group), count: n})
			}
		}
	}

	visit(pop)

	if len(rows) == 0 && pop.Size() > 0 {
		rows = append(rows, populationRow{operator: pop.Kind.String(), group: pop.Label, count: pop.Size()})
	}

	return rows
}

func groupLabel(group *m.Population) string {
	if group.IsLeaf() {
		return fmt.Sprintf("mutant %d", group.Mutant.ID)
	}

	return fmt.Sprintf("%s %s", group.Kind, group.Label)
}

func renderPopulationTable(pop *m.Population) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Operator", "Group", "Mutants"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := populationRows(pop)
	for _, row := range rows {
		table.Append([]string{row.operator, row.group, fmt.Sprintf("%d", row.count)})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d groups", len(rows)), fmt.Sprintf("%d", pop.Size())})
	table.Render()

	return buf.String()
}

func renderStatsTable(stats m.OracleStats) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.AppendBulk([][]string{
		{"Rounds", fmt.Sprintf("%d", stats.Rounds)},
		{"Tests", fmt.Sprintf("%d", stats.Tests)},
		{"Steps", fmt.Sprintf("%d", stats.Steps)},
		{"Mutants", fmt.Sprintf("%d", stats.Mutants)},
		{"Retired", fmt.Sprintf("%d", stats.Retired)},
		{"Generation", stats.GenerationTime.String()},
		{"Evaluation", stats.EvaluationTime.String()},
		{"Execution", stats.ExecutionTime.String()},
	})
	table.Render()

	return buf.String()
}

func renderDivergenceTable(divergences []equiv.Divergence) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Prefix", "Input", "First", "Second"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, d := range divergences {
		prefix := strings.Join(d.Prefix, " ")
		if prefix == "" {
			prefix = "ε"
		}

		table.Append([]string{prefix, d.Input, d.OutputA, d.OutputB})
	}

	table.SetFooter([]string{"", "", "Total", fmt.Sprintf("%d", len(divergences))})
	table.Render()

	return buf.String()
}

// renderCounterexample diffs the hypothesis outputs against the SUL outputs
// step by step.
func renderCounterexample(hyp *m.Machine, cex m.Counterexample) (string, error) {
	inputs := hyp.Alphabet().Names(cex.Input)
	expected := hyp.Outputs(cex.Input)

	diff := difflib.UnifiedDiff{
		A:        stepLines(inputs, expected),
		B:        stepLines(inputs, cex.Output),
		FromFile: "hypothesis",
		ToFile:   "sul",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("failed to diff outputs: %w", err)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Counterexample: %s\n", strings.Join(inputs, " "))
	fmt.Fprintf(&b, "SUL output:     %s\n", strings.Join(cex.Output, " "))
	b.WriteString(text)

	return b.String(), nil
}

func stepLines(inputs, outputs []string) []string {
	lines := make([]string, len(inputs))
	for i := range inputs {
		out := ""
		if i < len(outputs) {
			out = outputs[i]
		}

		lines[i] = fmt.Sprintf("%d: %s / %s\n", i+1, inputs[i], out)
	}

	return lines
}
