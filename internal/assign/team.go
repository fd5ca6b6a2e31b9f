package assign

import (
	"sort"

	"github.com/maxchv/crewplan/internal/roster"
)

// Team is a sequence of roster members. Finalized teams are canonical:
// members sorted by name. Teams reference people, they do not own them.
type Team []*roster.Person

// Price is the team's total cost: the sum of member salaries.
func (t Team) Price() float64 {
	var sum float64
	for _, p := range t {
		sum += p.Salary()
	}
	return sum
}

// Names returns the member names in the team's stored order.
func (t Team) Names() []string {
	names := make([]string, len(t))
	for i, p := range t {
		names[i] = p.Name()
	}
	return names
}

// Equal reports whether two teams are the same sequence of structurally
// equal members. Canonical teams compare equal iff they contain the same
// people.
func (t Team) Equal(other Team) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if !t[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether the team holds a member structurally equal to p.
func (t Team) Contains(p *roster.Person) bool {
	for _, member := range t {
		if member.Equal(p) {
			return true
		}
	}
	return false
}

// sortByName canonicalizes the team in place. The sort is stable so members
// sharing a name keep their discovery order.
func (t Team) sortByName() {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].Less(t[j])
	})
}

// remove returns the team without the first member structurally equal to p.
// The receiver's backing array is not reused.
func (t Team) remove(p *roster.Person) Team {
	out := make(Team, 0, len(t))
	removed := false
	for _, member := range t {
		if !removed && member.Equal(p) {
			removed = true
			continue
		}
		out = append(out, member)
	}
	return out
}

// clone returns an independent copy of the team's member slice.
func (t Team) clone() Team {
	out := make(Team, len(t))
	copy(out, t)
	return out
}
