package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kubegrade/kubegrade/internal/domain"
)

var (
	accent  = lipgloss.Color("#06B6D4") // cyan
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	hintStyle  = lipgloss.NewStyle().Foreground(accent)
)

const barWidth = 20

// RenderReport formats the full grading report: one block per manifest kind
// with its checks, then the score bar and verdict.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	title := headerStyle.Render("☸  Kubernetes Basics Challenge")
	subtitle := dimStyle.Render("manifest check")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	for _, kr := range report.Results {
		renderKind(&b, kr)
		b.WriteString("\n")
	}

	b.WriteString("  " + titleStyle.Render("Score:") + "\n")
	b.WriteString(fmt.Sprintf("  %s %d/%d points (%d%%)\n",
		progressBar(report.Percent),
		report.TotalPoints, report.TotalMax, report.Percent))
	b.WriteString("\n")
	b.WriteString(verdictLines(report))
	b.WriteString("\n")

	return b.String()
}

func renderKind(b *strings.Builder, kr domain.KindResult) {
	icon := warnStyle.Render("⏳")
	if kr.Outcome.Complete() {
		icon = passStyle.Render("✅")
	}
	fmt.Fprintf(b, "  %s %s %s\n",
		icon,
		titleStyle.Render(kr.Kind),
		dimStyle.Render(fmt.Sprintf("(%d/%d points)", kr.Outcome.Points, kr.Outcome.MaxPoints)))

	for _, check := range kr.Outcome.Checks {
		mark := failStyle.Render("✗")
		if check.Passed {
			mark = passStyle.Render("✓")
		}
		line := "      " + mark + " " + check.Name
		if check.Detail != "" {
			line += faintStyle.Render(" - " + check.Detail)
		}
		b.WriteString(line + "\n")
	}
}

func verdictLines(report *domain.Report) string {
	switch report.Verdict() {
	case domain.VerdictComplete:
		return "  " + passStyle.Bold(true).Render("🎉 All manifests complete!") + "\n" +
			"  " + hintStyle.Render("Run 'kubegrade deploy' to test in a real cluster!") + "\n"
	case domain.VerdictAlmost:
		return "  " + passStyle.Render("Almost there! Check the items marked with ✗") + "\n"
	default:
		return "  " + hintStyle.Render("Keep going! See README.md for guidance.") + "\n"
	}
}

func progressBar(percent int) string {
	filled := max(0, min(percent*barWidth/100, barWidth))
	empty := barWidth - filled

	color := warning
	if percent >= 80 {
		color = success
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		faintStyle.Render(strings.Repeat("░", empty))
}

// RenderHistory formats saved grading runs for terminal output.
func RenderHistory(entries []domain.GradeEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No grade history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Grade History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		pctColor := warning
		if e.Percent >= 80 {
			pctColor = success
		}
		line := fmt.Sprintf("  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			lipgloss.NewStyle().Foreground(pctColor).Render(fmt.Sprintf("%d%%", e.Percent)),
		)

		if i > 0 {
			diff := e.Percent - entries[i-1].Percent
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
