// Package output renders command results as a table, YAML or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/lvkit/knapsack"
)

// Supported formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Solution is the rendered view of a solved knapsack.
type Solution struct {
	Capacity  int             `json:"capacity" yaml:"capacity"`
	Value     float64         `json:"value" yaml:"value"`
	TotalSize int             `json:"totalSize" yaml:"totalSize"`
	Chosen    []int           `json:"chosen" yaml:"chosen"`
	Items     []knapsack.Item `json:"items,omitempty" yaml:"items,omitempty"`
}

// NewSolution pairs a result with the chosen items in Index order.
func NewSolution(items []knapsack.Item, capacity int, res knapsack.Result) Solution {
	byIndex := make(map[int]knapsack.Item, len(items))
	for _, it := range items {
		byIndex[it.Index] = it
	}
	chosen := make([]knapsack.Item, 0, len(res.Chosen))
	for _, idx := range res.Chosen {
		chosen = append(chosen, byIndex[idx])
	}

	return Solution{
		Capacity:  capacity,
		Value:     res.Value,
		TotalSize: knapsack.TotalSize(items, res.Chosen),
		Chosen:    res.Chosen,
		Items:     chosen,
	}
}

var solutionHeader = table.Row{"Index", "Size", "Value"}

// WriteSolution renders s to w in the given format.
func WriteSolution(w io.Writer, format string, s Solution) error {
	switch format {
	case FormatYAML:
		return writeYAML(w, s)
	case FormatJSON:
		return writeJSON(w, s)
	case FormatTable:
		t := table.NewWriter()
		t.AppendHeader(solutionHeader)
		for _, it := range s.Items {
			t.AppendRow(table.Row{it.Index, it.Size, formatValue(it.Value)})
		}
		t.AppendFooter(table.Row{"Total", fmt.Sprintf("%d/%d", s.TotalSize, s.Capacity), formatValue(s.Value)})
		_, err := fmt.Fprintln(w, t.Render())

		return err
	default:
		return fmt.Errorf("output: unknown format %q", format)
	}
}

// WriteLines renders a line window. The table format prints lines verbatim.
func WriteLines(w io.Writer, format string, lines []string) error {
	switch format {
	case FormatYAML:
		return writeYAML(w, lines)
	case FormatJSON:
		return writeJSON(w, lines)
	case FormatTable:
		if len(lines) == 0 {
			return nil
		}
		_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")

		return err
	default:
		return fmt.Errorf("output: unknown format %q", format)
	}
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("output: marshal yaml: %w", err)
	}
	_, err = w.Write(data)

	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: marshal json: %w", err)
	}

	return nil
}

// formatValue prints integral values without a fractional part.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
