package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corey/ngram/internal/domain/report"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// palette holds the escape codes for one output; all empty when color is off.
type palette struct {
	bold, cyan, gray, reset string
}

func newPalette(color bool) palette {
	if !color {
		return palette{}
	}
	return palette{bold: colorBold, cyan: colorCyan, gray: colorGray, reset: colorReset}
}

// formatNumber prints f with six significant digits, switching to exponent
// form for very large or small magnitudes (12, 3.5, 29449.2, 1.5e-05).
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

// formatSummary renders a ranked summary for the terminal.
//
//	Total 2-grams counted: 312
//	Top 10 2-grams:
//	th: 812.4 (3.81%)
//	...
//
//	Total words processed: 74286
//	Total weight of n-grams processed: 1.02e+07
func formatSummary(s *report.Summary, p palette) string {
	var sb strings.Builder
	for _, b := range s.Buckets {
		fmt.Fprintf(&sb, "%sTotal %d-grams counted: %d%s\n", p.bold, b.Length, b.Distinct, p.reset)
		fmt.Fprintf(&sb, "Top %d %d-grams:\n", s.K, b.Length)
		for _, r := range b.Top {
			fmt.Fprintf(&sb, "%s%s%s: %s %s(%s%%)%s\n",
				p.cyan, r.Gram, p.reset,
				formatNumber(r.Weight),
				p.gray, formatNumber(r.Percent), p.reset)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Total words processed: %d\n", s.Words)
	fmt.Fprintf(&sb, "Total weight of n-grams processed: %s\n", formatNumber(s.GrandTotal))
	return sb.String()
}

// writeDump encodes the structured dump as indented JSON.
func writeDump(w io.Writer, d *report.Dump) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
