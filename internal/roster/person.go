// Package roster holds the Person entity: the immutable roster members that
// teams are assembled from.
package roster

import (
	"fmt"
	"slices"

	"github.com/maxchv/crewplan/internal/document"
)

// Person is a roster member. It is constructed once from an input record and
// never mutated afterwards; teams reference Person values by pointer rather
// than copying them.
type Person struct {
	name   string
	salary float64
	skills []string
}

// New constructs a Person. No validation is performed; zero-value fields are
// tolerated and flow through the solver as-is.
func New(name string, salary float64, skills []string) *Person {
	return &Person{name: name, salary: salary, skills: skills}
}

// Name returns the person's name, which serves as their ordering key.
func (p *Person) Name() string { return p.name }

// Salary returns the person's salary.
func (p *Person) Salary() float64 { return p.salary }

// Skills returns the person's skill list in input order. Duplicates are
// preserved. Callers must not modify the returned slice.
func (p *Person) Skills() []string { return p.skills }

// Equal reports structural equality: name, salary, and the skill sequence
// (order-sensitive) must all match.
func (p *Person) Equal(other *Person) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.name == other.name &&
		p.salary == other.salary &&
		slices.Equal(p.skills, other.skills)
}

// Less orders people lexicographically by name only. Salary and skills do not
// participate: team canonicalization sorts members by name.
func (p *Person) Less(other *Person) bool {
	return p.name < other.name
}

// HasSkill reports whether the person's skill list contains skill.
func (p *Person) HasSkill(skill string) bool {
	return slices.Contains(p.skills, skill)
}

func (p *Person) String() string {
	return fmt.Sprintf("Person Name: %s Salary: %v Skills: %v", p.name, p.salary, p.skills)
}

// FromRecord translates a decoded input record into a Person, preserving all
// fields verbatim.
func FromRecord(rec document.PersonRecord) *Person {
	return New(rec.Name, rec.Salary, rec.Skills)
}

// FromDocument builds the roster from an input document, one Person per
// record, in input order. No deduplication or sorting is applied.
func FromDocument(doc *document.Document) []*Person {
	people := make([]*Person, 0, len(doc.Peoples))
	for _, rec := range doc.Peoples {
		people = append(people, FromRecord(rec))
	}
	return people
}
