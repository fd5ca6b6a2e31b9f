package report

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/maxchv/crewplan/internal/assign"
	"github.com/maxchv/crewplan/internal/roster"
)

func sampleTasks() []*assign.Task {
	john := roster.New("John", 1200, []string{"js", "html"})
	mark := roster.New("Mark", 1500, []string{"js", "python"})
	vasya := roster.New("Vasya", 1600, []string{"html", "brand"})

	return []*assign.Task{
		{
			Name:   "Build landing page",
			Skills: []string{"js", "html"},
			Teams: []assign.Team{
				{john},
				{john, mark, vasya},
			},
		},
		{
			Name:   "Migrate billing",
			Skills: []string{"Oracle"},
			Teams:  nil,
		},
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleTasks(), 200)

	for _, want := range []string{
		"Team assignment summary",
		"Build landing page",
		"Migrate billing",
		"John",
		"no covering team",
		"2 task(s) processed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// The cheapest team for the first task is John alone.
	if !strings.Contains(out, "1200") {
		t.Errorf("output missing cheapest price:\n%s", out)
	}
	if strings.Contains(out, "4300") {
		t.Errorf("output should not show the more expensive team's price:\n%s", out)
	}
}

func TestRenderEmpty(t *testing.T) {
	out := Render(nil, 80)
	if !strings.Contains(out, "0 task(s) processed") {
		t.Errorf("output missing footer:\n%s", out)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{1200, "1200"},
		{0, "0"},
		{3100.5, "3100.50"},
		{0.25, "0.25"},
	}
	for _, tt := range tests {
		if got := formatPrice(tt.price); got != tt.want {
			t.Errorf("formatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 80); got != "short" {
		t.Errorf("truncate() should not touch lines within budget, got %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("truncate() = %q, want %q", got, "abcd…")
	}
	if got := truncate("anything", 0); got != "anything" {
		t.Errorf("truncate() with zero width should be a no-op, got %q", got)
	}

	// Styled input stays within the visual width budget.
	styled := priceStyle.Render("1234567890")
	if w := lipgloss.Width(truncate(styled, 6)); w > 6 {
		t.Errorf("truncated styled line has width %d, want <= 6", w)
	}
}

func TestWidthOverride(t *testing.T) {
	if got := Width(120); got != 120 {
		t.Errorf("Width(120) = %d", got)
	}
	// Without an override the result depends on the terminal; it must at
	// least be positive.
	if got := Width(0); got <= 0 {
		t.Errorf("Width(0) = %d", got)
	}
}
