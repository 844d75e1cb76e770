// Package observability provides formatted output utilities for the passkit CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/passkit/internal/strength"
	"github.com/jonathan/passkit/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes; wide enough for a 64-character password
	boxWidth = 76
	// barWidth is the number of cells in a strength bar
	barWidth = 20
)

// Printer handles formatted output for human-readable mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// bar renders percent as a fixed-width bar.
func bar(percent float64) string {
	filled := int(percent/100*barWidth + 0.5)
	filled = min(max(filled, 0), barWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

// PrintGenerated outputs generated passwords with their meter readings.
func (p *Printer) PrintGenerated(result *types.GenerateResult) {
	if result == nil || len(result.Passwords) == 0 {
		return
	}

	var sb strings.Builder
	opts := result.Options
	classes := []string{}
	if opts.Uppercase {
		classes = append(classes, "A-Z")
	}
	if opts.Lowercase {
		classes = append(classes, "a-z")
	}
	if opts.Numbers {
		classes = append(classes, "0-9")
	}
	if opts.Symbols {
		classes = append(classes, "symbols")
	}
	sb.WriteString(fmt.Sprintf("Length:   %d\n", opts.Length))
	sb.WriteString(fmt.Sprintf("Classes:  %s (%d characters)\n", strings.Join(classes, ", "), result.AlphabetSize))
	sb.WriteString(fmt.Sprintf("Entropy:  %.1f bits\n", result.EntropyBits))
	sb.WriteString("\n")

	for i, pw := range result.Passwords {
		sb.WriteString(pw.Password + "\n")
		sb.WriteString(fmt.Sprintf("  %s %s (%d%%)", bar(float64(pw.Meter.Percent)), pw.Meter.Label, pw.Meter.Percent))
		if i < len(result.Passwords)-1 {
			sb.WriteString("\n")
		}
	}

	title := "GENERATED PASSWORD"
	if len(result.Passwords) > 1 {
		title = fmt.Sprintf("GENERATED PASSWORDS (%d)", len(result.Passwords))
	}
	p.printBox(title, sb.String())
}

// PrintReport outputs a strength report: label, checklist and recommendations.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report *types.StrengthReport) {
	if report == nil {
		return
	}
	if report.Label == types.LabelNone {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "Enter a password to check its strength")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s  %d/%d\n", report.Label, report.PassedChecks, report.TotalChecks))
	sb.WriteString(fmt.Sprintf("%s %.0f%%\n", bar(report.Percent), report.Percent))
	sb.WriteString("\n")

	for _, check := range report.Checklist {
		sb.WriteString(fmt.Sprintf("%s %s\n", mark(check.Passed), check.Description))
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	if est := report.Estimate; est != nil {
		sb.WriteString("\nEstimate (zxcvbn):\n")
		sb.WriteString(fmt.Sprintf("  Score:      %d/4\n", est.Score))
		sb.WriteString(fmt.Sprintf("  Entropy:    %.1f bits\n", est.Entropy))
		sb.WriteString(fmt.Sprintf("  Crack time: %s\n", est.CrackTime))
		if est.Truncated {
			sb.WriteString("  (only the first 50 characters were analysed)\n")
		}
	}

	p.printBox("PASSWORD STRENGTH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMeter outputs a single meter reading on one line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMeter(reading types.MeterReading) {
	fmt.Fprintf(p.out, "%s %s (%d%%, score %d/6)\n", bar(float64(reading.Percent)), reading.Label, reading.Percent, reading.Score)
}

// PrintRules outputs the checker rule table.
func (p *Printer) PrintRules(rules []strength.Rule) {
	if len(rules) == 0 {
		return
	}

	var sb strings.Builder
	for i, rule := range rules {
		sb.WriteString(fmt.Sprintf("%d. %-10s %s\n", i+1, rule.Name, rule.Description))
		sb.WriteString(fmt.Sprintf("   fix: %s", rule.Recommendation))
		if i < len(rules)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("STRENGTH RULES", sb.String())
}
