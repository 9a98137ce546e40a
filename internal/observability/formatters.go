// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/career-coach/internal/quiz"
	"github.com/jonathan/career-coach/internal/refresh"
	"github.com/jonathan/career-coach/internal/types"
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
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintInsight outputs a human-readable summary of a generated industry insight.
func (p *Printer) PrintInsight(industry string, insight *types.IndustryInsight) {
	if insight == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Industry:  %s\n", industry))
	sb.WriteString(fmt.Sprintf("Growth:    %.1f%%\n", insight.GrowthRate))
	sb.WriteString(fmt.Sprintf("Demand:    %s\n", insight.DemandLevel))
	sb.WriteString(fmt.Sprintf("Outlook:   %s\n", insight.MarketOutlook))
	sb.WriteString("\n")

	if len(insight.SalaryRanges) > 0 {
		sb.WriteString("Salary Ranges:\n")
		count := min(len(insight.SalaryRanges), maxItemsToShow)
		for i := 0; i < count; i++ {
			sr := insight.SalaryRanges[i]
			sb.WriteString(fmt.Sprintf("  • %s: %.0fk–%.0fk (median %.0fk)\n",
				sr.Role, sr.Min/1000, sr.Max/1000, sr.Median/1000))
		}
		if len(insight.SalaryRanges) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(insight.SalaryRanges)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(insight.TopSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Top Skills: %s\n", joinTruncated(insight.TopSkills, 45)))
	}
	if len(insight.KeyTrends) > 0 {
		sb.WriteString("Key Trends:\n")
		count := min(len(insight.KeyTrends), 3)
		for i := 0; i < count; i++ {
			trend := insight.KeyTrends[i]
			if len(trend) > 50 {
				trend = trend[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", trend))
		}
		if len(insight.KeyTrends) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(insight.KeyTrends)-3))
		}
	}
	if len(insight.RecommendedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Learn Next: %s\n", joinTruncated(insight.RecommendedSkills, 45)))
	}

	p.printBox("INDUSTRY INSIGHT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuizQuestions outputs a preview of generated quiz questions.
func (p *Printer) PrintQuizQuestions(questions []types.QuizQuestion) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d questions:\n\n", len(questions)))

	count := min(len(questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		q := questions[i]
		text := q.Question
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, text))
		sb.WriteString(fmt.Sprintf("    %d options\n", len(q.Options)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more questions", len(questions)-maxItemsToShow))
	}

	p.printBox("QUIZ QUESTIONS", sb.String())
}

// PrintQuizResult outputs a scored quiz with per-question indicators and the
// improvement tip, if any.
func (p *Printer) PrintQuizResult(result *quiz.Result, tip string) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.1f%%\n\n", result.Score))

	count := min(len(result.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := result.Results[i]
		mark := "✗"
		if r.IsCorrect {
			mark = "✓"
		}
		text := r.Question
		if len(text) > 48 {
			text = text[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, text))
		if !r.IsCorrect {
			sb.WriteString(fmt.Sprintf("  answered %q, expected %q\n", r.UserAnswer, r.CorrectAnswer))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more questions", len(result.Results)-maxItemsToShow))
	}

	if tip != "" {
		sb.WriteString(fmt.Sprintf("\n\nTip: %s", tip))
	}

	p.printBox("QUIZ RESULT", sb.String())
}

// PrintRefreshReport outputs the outcome of a weekly insight refresh pass.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRefreshReport(report *refresh.Report) {
	if report == nil {
		return
	}

	if len(report.Failed) == 0 && len(report.Succeeded) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO INDUSTRIES TO REFRESH")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Refreshed %d of %d industries in %s\n",
		len(report.Succeeded), len(report.Succeeded)+len(report.Failed), report.Duration.Round(time.Millisecond)))

	if len(report.Failed) > 0 {
		sb.WriteString("\nFailures:\n")
		for _, f := range report.Failed {
			details := f.Err.Error()
			if len(details) > 42 {
				details = details[:39] + "..."
			}
			sb.WriteString(fmt.Sprintf("⚠ %s\n", f.Industry))
			sb.WriteString(fmt.Sprintf("  %s\n", details))
		}
	}

	p.printBox("INSIGHT REFRESH", strings.TrimSuffix(sb.String(), "\n"))
}

func joinTruncated(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}
