package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorGreen = lipgloss.Color("36")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
	colorBlue  = lipgloss.Color("75")

	titleStyle  = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Headers are the table columns.
var Headers = []string{"Case", "n", "m", "Gossip(ms)", "Oracle(ms)", "Speedup", "Gossip ISO", "Oracle ISO", "Match"}

// Rows renders results as table cells.
func Rows(results []Result) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		speedup := "-"
		if sp := r.Speedup(); sp > 0 {
			speedup = fmt.Sprintf("%.1fx", sp)
		}
		oracleMS := "-"
		if r.OracleTime > 0 {
			oracleMS = millis(r.OracleTime)
		}
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Edges),
			millis(r.GossipTime),
			oracleMS,
			speedup,
			isoLabel(&r.Gossip, r.OracleTime > 0),
			isoLabel(r.Oracle, r.OracleTime > 0),
			matchLabel(r),
		})
	}
	return rows
}

// RenderTable writes one titled table for a category.
func RenderTable(w io.Writer, title string, results []Result) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(Headers...).
		Rows(Rows(results)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if row < 0 || row >= len(results) {
				return cellStyle
			}
			if col == len(Headers)-1 {
				if results[row].Correct {
					return cellStyle.Foreground(colorGreen)
				}
				return cellStyle.Foreground(colorRed).Bold(true)
			}
			return cellStyle
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderSummary writes a one-line summary for a group.
func RenderSummary(w io.Writer, s Summary) error {
	line := fmt.Sprintf("%d/%d correct (%.1f%%)  avg gossip %s  avg oracle %s",
		s.Correct, s.Total, 100*s.AgreementRate(), millis(s.MeanGossip)+"ms", millis(s.MeanOracle)+"ms")
	if s.GeoMeanSpeedup > 0 {
		line += fmt.Sprintf("  speedup %.1fx", s.GeoMeanSpeedup)
	}
	if s.Timeouts > 0 {
		line += fmt.Sprintf("  %d oracle timeouts", s.Timeouts)
	}
	style := lipgloss.NewStyle().Foreground(colorGreen)
	if s.Correct < s.Total {
		style = lipgloss.NewStyle().Foreground(colorRed)
	}
	_, err := fmt.Fprintln(w, style.Render(line))
	return err
}

// RenderAll writes a table and summary per category followed by a total.
func RenderAll(w io.Writer, results []Result) error {
	order, groups := Group(results)
	for _, cat := range order {
		if err := RenderTable(w, cat, groups[cat]); err != nil {
			return err
		}
		if err := RenderSummary(w, Summarize(groups[cat])); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, titleStyle.Render("total")); err != nil {
		return err
	}
	if err := RenderSummary(w, Summarize(results)); err != nil {
		return err
	}
	if a, ok := GossipScaling(results); ok {
		_, err := fmt.Fprintf(w, "gossip time ~ n^%.2f\n", a)
		return err
	}
	return nil
}

func millis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 2, 64)
}

// isoLabel renders a verdict; a nil verdict is TIMEOUT only when the oracle ran.
func isoLabel(v *bool, ran bool) string {
	switch {
	case v == nil && ran:
		return "TIMEOUT"
	case v == nil:
		return "-"
	case *v:
		return "ISO"
	default:
		return "NON-ISO"
	}
}

func matchLabel(r Result) string {
	ref := r.Oracle
	if ref == nil {
		ref = r.Expected
	}
	switch {
	case ref == nil:
		return "-"
	case *ref == r.Gossip:
		return "Yes"
	default:
		return "No"
	}
}
