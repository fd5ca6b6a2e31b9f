package assign

import (
	"reflect"
	"testing"

	"github.com/maxchv/crewplan/internal/document"
)

func TestFromDocument(t *testing.T) {
	doc := &document.Document{
		Tasks: []document.TaskRecord{
			{Name: "One", Skills: []string{"python", "postgresql", "js", "marketing", "brand", "html"}},
			{Name: "Two", Skills: []string{"php", "js", "mysql", "html", "brand"}},
			{Name: "Three", Skills: []string{"C++", "python"}},
			{Name: "Four", Skills: []string{"Java", "Oracle", "python"}},
		},
	}

	tasks := FromDocument(doc)
	if len(tasks) != 4 {
		t.Fatalf("got %d tasks, want 4", len(tasks))
	}
	for i, rec := range doc.Tasks {
		if tasks[i].Name != rec.Name {
			t.Errorf("task %d: got name %q, want %q", i, tasks[i].Name, rec.Name)
		}
		if !reflect.DeepEqual(tasks[i].Skills, rec.Skills) {
			t.Errorf("task %d: got skills %v, want %v", i, tasks[i].Skills, rec.Skills)
		}
		if len(tasks[i].Teams) != 0 {
			t.Errorf("task %d: teams should start empty", i)
		}
	}
}

func TestTaskResult(t *testing.T) {
	task := NewTask("Three", []string{"C++", "python"})
	task.MakeTeams(devRoster())

	res := task.Result()
	if res.Name != "Three" {
		t.Errorf("got name %q, want Three", res.Name)
	}
	want := []document.TeamResult{
		{Peoples: []string{"Petya"}, Price: 2500},
		{Peoples: []string{"Vitalya"}, Price: 3000},
	}
	if !reflect.DeepEqual(res.Teams, want) {
		t.Errorf("got teams %+v, want %+v", res.Teams, want)
	}
}

func TestTaskResultPriceMatchesSalaries(t *testing.T) {
	task := NewTask("One", []string{"python", "postgresql", "js", "marketing", "brand", "html"})
	people := devRoster()
	task.MakeTeams(people)

	salaries := make(map[string]float64)
	for _, p := range people {
		salaries[p.Name()] = p.Salary()
	}

	for i, team := range task.Result().Teams {
		var sum float64
		for _, name := range team.Peoples {
			sum += salaries[name]
		}
		if team.Price != sum {
			t.Errorf("team %d: price %v does not match recomputed sum %v", i, team.Price, sum)
		}
	}
}

func TestResultsPreservesTaskOrder(t *testing.T) {
	tasks := []*Task{
		NewTask("B", []string{"x"}),
		NewTask("A", []string{"y"}),
	}
	res := Results(tasks)
	if len(res.Tasks) != 2 || res.Tasks[0].Name != "B" || res.Tasks[1].Name != "A" {
		t.Errorf("Results() reordered tasks: %+v", res.Tasks)
	}
	// Tasks never solved serialize with an empty team list, not a nil panic.
	if len(res.Tasks[0].Teams) != 0 {
		t.Errorf("unsolved task should have no teams: %+v", res.Tasks[0].Teams)
	}
}
