// Package report renders a rating.Report as plain text or CSV; the
// core package hands over the structured Report and leaves rendering
// it to this package (SPEC_FULL.md §5).
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"ordorate/internal/rating"
)

// WriteText renders a column-aligned leaderboard, one row per
// reported competitor, plus the connectivity groups and any
// non-convergence warning.
func WriteText(w io.Writer, r *rating.Report) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tNAME\tRATING\tSDEV\tPOINTS\tGAMES\tWIN% (95% CI)\t")
	for i, row := range r.Competitors {
		fmt.Fprintf(tw, "%d\t%s%s\t%.1f\t%.1f\t%.1f\t%d\t%.0f-%.0f\t\n",
			i+1, row.Name, rating.PerfSymbol(row.Perf), row.Rating, row.SDev, row.Obtained, row.PlayedBy,
			100*row.WinRateLow, 100*row.WinRateHigh)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nwhite advantage: %.2f +/- %.2f\n", r.WhiteAdv, r.WhiteAdvSDev)
	fmt.Fprintf(w, "draw rate (equal strength): %.3f +/- %.3f\n", r.DrawRate, r.DrawRateSDev)

	if len(r.Groups) > 0 {
		fmt.Fprintln(w, "\nconnectivity groups (strongest first):")
		for i, g := range r.Groups {
			fmt.Fprintf(w, "  group %d: %d competitor(s)\n", i+1, len(g.Participants))
		}
	}
	if r.NonConverged != nil {
		fmt.Fprintf(w, "\nwarning: %v\n", r.NonConverged)
	}
	return nil
}

// WriteCSV renders the per-competitor rows as CSV, one row per
// reported competitor in the report's existing sorted order.
func WriteCSV(w io.Writer, r *rating.Report) error {
	fmt.Fprintln(w, "rank,name,rating,sdev,points,games,performance,flagged,win_rate_low,win_rate_high,seed_glicko")
	for i, row := range r.Competitors {
		if _, err := fmt.Fprintf(w, "%d,%s,%.2f,%.2f,%.2f,%d,%s,%t,%.4f,%.4f,%.1f\n",
			i+1, csvEscape(row.Name), row.Rating, row.SDev, row.Obtained, row.PlayedBy, row.Perf, row.Flagged,
			row.WinRateLow, row.WinRateHigh, row.SeedGlicko); err != nil {
			return err
		}
	}
	return nil
}

func csvEscape(s string) string {
	for _, r := range s {
		if r == ',' || r == '"' || r == '\n' {
			return `"` + escapeQuotes(s) + `"`
		}
	}
	return s
}

func escapeQuotes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			out = append(out, '"', '"')
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
