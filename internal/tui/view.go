// Package tui implements the interactive result browser: a task list that
// drills into each task's ranked teams. It uses bubbletea's Elm-style
// model/update/view loop.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maxchv/crewplan/internal/document"
)

// viewState represents which screen is showing
type viewState int

const (
	stateTasks viewState = iota // task list
	stateTeams                  // ranked teams for the selected task
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A78BFA"))

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	rankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	cheapestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			MarginTop(1)
)

// taskItem adapts a TaskResult to the bubbles list item interface.
type taskItem struct {
	result document.TaskResult
}

func (i taskItem) Title() string { return i.result.Name }

func (i taskItem) Description() string {
	switch len(i.result.Teams) {
	case 0:
		return "no covering team"
	case 1:
		return fmt.Sprintf("1 team, price %v", i.result.Teams[0].Price)
	default:
		return fmt.Sprintf("%d teams, cheapest %v", len(i.result.Teams), i.result.Teams[0].Price)
	}
}

func (i taskItem) FilterValue() string { return i.result.Name }

// Model is the browser state.
type Model struct {
	state    viewState
	tasks    list.Model
	selected *document.TaskResult
	width    int
	height   int
}

// NewModel builds a browser over a decoded result document.
func NewModel(result *document.ResultDocument) Model {
	items := make([]list.Item, 0, len(result.Tasks))
	for _, t := range result.Tasks {
		items = append(items, taskItem{result: t})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Tasks"
	l.SetShowStatusBar(false)

	return Model{state: stateTasks, tasks: l}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tasks.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateTeams {
				m.state = stateTasks
				m.selected = nil
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			if m.state == stateTasks {
				if item, ok := m.tasks.SelectedItem().(taskItem); ok {
					m.selected = &item.result
					m.state = stateTeams
				}
				return m, nil
			}

		case "esc":
			if m.state == stateTeams {
				m.state = stateTasks
				m.selected = nil
				return m, nil
			}
			return m, tea.Quit
		}
	}

	if m.state == stateTasks {
		var cmd tea.Cmd
		m.tasks, cmd = m.tasks.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.state == stateTeams && m.selected != nil {
		return m.teamsView()
	}
	return m.tasks.View() + helpStyle.Render("  enter: teams • q: quit")
}

// teamsView renders the ranked team table for the selected task.
func (m Model) teamsView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Teams for %s", m.selected.Name)))
	sb.WriteString("\n\n")

	if len(m.selected.Teams) == 0 {
		sb.WriteString("No covering team could be assembled for this task.\n")
	}

	for rank, team := range m.selected.Teams {
		prefix := rankStyle.Render(fmt.Sprintf("%3d.", rank+1))
		price := priceStyle.Render(fmt.Sprintf("%v", team.Price))
		if rank == 0 {
			price = cheapestStyle.Render(fmt.Sprintf("%v (cheapest)", team.Price))
		}
		sb.WriteString(fmt.Sprintf("%s %s — %s\n", prefix, price, strings.Join(team.Peoples, ", ")))
	}

	sb.WriteString(helpStyle.Render("  esc: back • q: back"))
	return sb.String()
}

// Run opens the browser and blocks until the user quits.
func Run(result *document.ResultDocument) error {
	p := tea.NewProgram(NewModel(result), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
