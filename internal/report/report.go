// Package report renders the post-run terminal summary: one row per task
// with the number of covering teams found and the cheapest team's price and
// members.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/maxchv/crewplan/internal/assign"
)

var (
	// Colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	primaryColor = lipgloss.Color("#A78BFA") // Purple
	mutedColor   = lipgloss.Color("#9CA3AF") // Gray
	greenColor   = lipgloss.Color("#10B981") // Green
	amberColor   = lipgloss.Color("#F59E0B") // Amber

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(mutedColor)

	priceStyle = lipgloss.NewStyle().
			Foreground(greenColor)

	emptyStyle = lipgloss.NewStyle().
			Foreground(amberColor).
			Italic(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// fallbackWidth is used when stdout is not a terminal and no width override
// is configured.
const fallbackWidth = 100

// Width returns the rendering width: the override if non-zero, otherwise the
// detected terminal width, otherwise fallbackWidth.
func Width(override int) int {
	if override > 0 {
		return override
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

// Render produces the summary table for a solved task list.
func Render(tasks []*assign.Task, width int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Team assignment summary"))
	sb.WriteString("\n\n")

	nameWidth := len("Task")
	for _, t := range tasks {
		if len(t.Name) > nameWidth {
			nameWidth = len(t.Name)
		}
	}

	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %6s  %10s  %s", nameWidth, "Task", "Teams", "Cheapest", "Members")))
	sb.WriteString("\n")

	for _, t := range tasks {
		if len(t.Teams) == 0 {
			sb.WriteString(fmt.Sprintf("%-*s  %6d  %s\n", nameWidth, t.Name, 0,
				emptyStyle.Render("no covering team")))
			continue
		}

		cheapest := t.Teams[0]
		members := strings.Join(cheapest.Names(), ", ")
		line := fmt.Sprintf("%-*s  %6d  %s  %s",
			nameWidth, t.Name, len(t.Teams),
			priceStyle.Render(fmt.Sprintf("%10s", formatPrice(cheapest.Price()))),
			members)
		sb.WriteString(truncate(line, width))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("%d task(s) processed", len(tasks))))
	sb.WriteString("\n")

	return sb.String()
}

// formatPrice renders whole prices without a decimal point and fractional
// ones with two digits.
func formatPrice(price float64) string {
	if price == float64(int64(price)) {
		return fmt.Sprintf("%d", int64(price))
	}
	return fmt.Sprintf("%.2f", price)
}

// truncate crops a rendered line to the given display width. ANSI escape
// sequences and wide characters are accounted for; the ellipsis tail counts
// toward the width.
func truncate(line string, width int) string {
	if width <= 0 || lipgloss.Width(line) <= width {
		return line
	}
	return ansi.Truncate(line, width, "…")
}
