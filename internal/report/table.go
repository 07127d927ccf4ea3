// Package report renders a computed catch table as console text.
package report

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/sdw5180/catch-calc/internal/catch"
)

// Render assembles the full console report: header block, one row per
// level with a "<pct>% | <n> Av." cell per throw tier, the two
// attempts-for-confidence figures per row, and the assumptions block.
// Pure string assembly; identical input yields byte-identical output.
func Render(t *catch.Table) string {
	var b strings.Builder

	b.WriteString("--------------------------\n")
	fmt.Fprintf(&b, "Catching: %s\n", t.Species)
	fmt.Fprintf(&b, "%s has a base catch rate of: %v\n", t.Species, t.BaseRate)
	b.WriteString("Each cell indicates both the percentage chance and the average number of throws for a successful catch.\n\n")

	tw := tabwriter.NewWriter(&b, 0, 8, 2, ' ', 0)
	header := "level"
	for _, tier := range t.Tiers {
		header += "\t" + string(tier)
	}
	fmt.Fprintf(tw, "%s\tFor a %d%% catch chance:\n", header, roundPct(t.TargetConfidence))

	for _, row := range t.Rows {
		line := "level " + row.Level
		for _, cell := range row.Cells {
			line += "\t" + formatCell(cell)
		}
		line += "\t" + formatConfidence(row)
		fmt.Fprintln(tw, line)
	}
	tw.Flush()

	// failed cells render as a bare marker in the grid; the detail naming
	// the (level, tier) pair goes here
	var skipped []string
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			if cell.Err != "" {
				skipped = append(skipped, cell.Err)
			}
		}
		if row.ConfidenceErr != "" {
			skipped = append(skipped, row.ConfidenceErr)
		}
	}
	if len(skipped) > 0 {
		b.WriteString("\nSkipped cells:\n")
		for _, msg := range skipped {
			fmt.Fprintf(&b, " * %s\n", msg)
		}
	}

	b.WriteString("\nThis calculation assumes:\n")
	for _, a := range t.Assumptions {
		fmt.Fprintf(&b, " * %s\n", a)
	}
	if t.Notes != "" {
		fmt.Fprintf(&b, "\nNote: %s\n", t.Notes)
	}
	return b.String()
}

func formatCell(c catch.Cell) string {
	if c.Err != "" {
		return "err"
	}
	return fmt.Sprintf("%d%% | %d Av.", roundPct(c.Probability), round(c.ExpectedAttempts))
}

func formatConfidence(r catch.Row) string {
	if r.ConfidenceErr != "" {
		return "err"
	}
	return fmt.Sprintf("%d %s throws / %d %s throws",
		round(r.BestTierAttempts), r.BestTier,
		round(r.WorstTierAttempts), r.WorstTier)
}

func roundPct(p float64) int { return round(p * 100) }

func round(v float64) int { return int(math.Round(v)) }
