package assign

import (
	"fmt"

	"github.com/maxchv/crewplan/internal/document"
	"github.com/maxchv/crewplan/internal/roster"
)

// Task is a unit of work requiring a set of named skills. Teams starts empty
// and is populated exactly once by [Task.MakeTeams]; the task is read-only
// afterwards.
type Task struct {
	Name   string
	Skills []string
	Teams  []Team
}

// NewTask constructs a task with an empty team list.
func NewTask(name string, skills []string) *Task {
	return &Task{Name: name, Skills: skills}
}

// FromRecord translates a decoded input record into a Task.
func FromRecord(rec document.TaskRecord) *Task {
	return NewTask(rec.Name, rec.Skills)
}

// FromDocument builds the task list from an input document, one Task per
// record, in input order.
func FromDocument(doc *document.Document) []*Task {
	tasks := make([]*Task, 0, len(doc.Tasks))
	for _, rec := range doc.Tasks {
		tasks = append(tasks, FromRecord(rec))
	}
	return tasks
}

// MakeTeams runs the team-formation heuristic over the roster and stores the
// ranked result in t.Teams. See the package documentation for the search
// contract.
func (t *Task) MakeTeams(people []*roster.Person) {
	t.Teams = buildTeams(t.Skills, people)
}

// Result translates the task and its teams into the output wire shape. Teams
// are emitted in stored (price-ranked) order; each price is the sum of the
// referenced members' salaries.
func (t *Task) Result() document.TaskResult {
	teams := make([]document.TeamResult, 0, len(t.Teams))
	for _, team := range t.Teams {
		teams = append(teams, document.TeamResult{
			Peoples: team.Names(),
			Price:   team.Price(),
		})
	}
	return document.TaskResult{Name: t.Name, Teams: teams}
}

// Results translates a task list into a result document, preserving task
// order.
func Results(tasks []*Task) *document.ResultDocument {
	out := &document.ResultDocument{Tasks: make([]document.TaskResult, 0, len(tasks))}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, t.Result())
	}
	return out
}

func (t *Task) String() string {
	return fmt.Sprintf("Task Name: %s, Needed skills %v", t.Name, t.Skills)
}
