// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/hireflow/internal/matching"
	"github.com/jonathan/hireflow/internal/stats"
	"github.com/jonathan/hireflow/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable breakdown of a match result under
// the weighting profile that produced it.
func (p *Printer) PrintMatchResult(result types.MatchResult, profile matching.WeightingProfile) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Profile:      %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Score:        %d / 100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Skills match: %d / 100\n", result.SkillsMatch))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:          %5.1f / %.0f\n", result.Breakdown.Skills, profile.Skills))
	sb.WriteString(fmt.Sprintf("Experience:      %5.1f / %.0f\n", result.Breakdown.Experience, profile.Experience))
	sb.WriteString(fmt.Sprintf("Location:        %5.1f / %.0f\n", result.Breakdown.Location, profile.Location))
	if profile.EmploymentType > 0 {
		sb.WriteString(fmt.Sprintf("Employment type: %5.1f / %.0f\n", result.Breakdown.EmploymentType, profile.EmploymentType))
	}
	sb.WriteString(fmt.Sprintf("Education:       %5.1f / %.0f", result.Breakdown.Education, profile.Education))

	p.printBox("Match Result", sb.String())
}

// PrintStatsSummary outputs a human-readable view of an aggregated summary.
func (p *Printer) PrintStatsSummary(summary stats.Summary) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total:     %d\n", summary.Total))
	sb.WriteString(fmt.Sprintf("Viewed:    %d\n", summary.Viewed))
	sb.WriteString(fmt.Sprintf("View rate: %.0f%%\n", summary.ViewRate*100))
	sb.WriteString("\n")

	statuses := make([]string, 0, len(summary.ByStatus))
	for status := range summary.ByStatus {
		statuses = append(statuses, string(status))
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		group := summary.ByStatus[types.Status(status)]
		sb.WriteString(fmt.Sprintf("%-12s %4d  avg score %5.1f  avg skills %5.1f\n",
			status, group.Count, group.AvgScore, group.AvgSkillsMatch))
	}

	p.printBox("Application Stats", strings.TrimRight(sb.String(), "\n"))
}
