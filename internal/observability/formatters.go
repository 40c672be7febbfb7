// Package observability provides structured logging and formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContentRecord outputs the short fields of a repaired record.
// The long description is summarized by size only.
func (p *Printer) PrintContentRecord(rec *types.ContentRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:      %s\n", rec.MetaTitle))
	sb.WriteString(fmt.Sprintf("Meta:       %s\n", rec.MetaDescription))
	sb.WriteString(fmt.Sprintf("Permalink:  %s\n", rec.Permalink))
	sb.WriteString(fmt.Sprintf("Alt text:   %s\n", rec.AltText))
	sb.WriteString("\n")

	if list := rec.FocusKeywordList(); len(list) > 0 {
		sb.WriteString("Focus keywords:\n")
		for _, kw := range list {
			sb.WriteString(fmt.Sprintf("  • %s\n", kw))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Long description: %d characters", len([]rune(rec.LongDescription))))

	p.printBox("CONTENT RECORD", sb.String())
}

// PrintComplianceReport outputs per-field outcomes followed by any violations.
func (p *Printer) PrintComplianceReport(report *types.ComplianceReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keyword: %s\n\n", report.PrimaryKeyword))

	for _, field := range types.ContentFields {
		outcome, ok := report.Fields[field]
		if !ok {
			continue
		}
		icon := "✓"
		switch outcome.Status {
		case types.StatusRepaired:
			icon = "↻"
		case types.StatusWarning:
			icon = "⚠"
		}
		sb.WriteString(fmt.Sprintf("%s %-18s %s\n", icon, field, outcome.Status))
	}

	p.printBox("COMPLIANCE REPORT", strings.TrimRight(sb.String(), "\n"))
	p.PrintViolations(&types.Violations{Violations: report.Violations})
}

// PrintHealthSummary outputs batch health totals and the most common missing fields.
func (p *Printer) PrintHealthSummary(summary *types.BatchSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Products:        %d\n", summary.Total))
	sb.WriteString(fmt.Sprintf("Complete:        %d\n", summary.Complete))
	sb.WriteString(fmt.Sprintf("Needs attention: %d\n", summary.NeedsAttention))
	sb.WriteString(fmt.Sprintf("Critical:        %d\n", summary.Critical))
	sb.WriteString(fmt.Sprintf("Average score:   %.1f\n", summary.AverageScore))

	if len(summary.CommonMissingFields) > 0 {
		sb.WriteString("\nMost often missing:\n")
		count := min(len(summary.CommonMissingFields), maxItemsToShow)
		for i := 0; i < count; i++ {
			f := summary.CommonMissingFields[i]
			sb.WriteString(fmt.Sprintf("  %d. %s (%d)\n", i+1, f.Field, f.Count))
		}
	}

	p.printBox("CONTENT HEALTH", strings.TrimRight(sb.String(), "\n"))
}

// PrintViolations outputs any constraint violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		details := v.Details
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s [%s] %s\n", v.Field, v.Severity, v.Type))
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONSTRAINT VIOLATIONS", sb.String())
}
