package assign

import (
	"sort"

	"github.com/maxchv/crewplan/internal/roster"
)

// skillSet is an unordered set of skill tags. It is used for membership and
// coverage checks only; ordered output always follows input order, never map
// iteration order.
type skillSet map[string]struct{}

func newSkillSet(skills []string) skillSet {
	s := make(skillSet, len(skills))
	for _, skill := range skills {
		s[skill] = struct{}{}
	}
	return s
}

func (s skillSet) has(skill string) bool {
	_, ok := s[skill]
	return ok
}

// addAll merges other into s.
func (s skillSet) addAll(other skillSet) {
	for skill := range other {
		s[skill] = struct{}{}
	}
}

func (s skillSet) equal(other skillSet) bool {
	if len(s) != len(other) {
		return false
	}
	for skill := range s {
		if !other.has(skill) {
			return false
		}
	}
	return true
}

func (s skillSet) subsetOf(other skillSet) bool {
	for skill := range s {
		if !other.has(skill) {
			return false
		}
	}
	return true
}

// intersect returns the subset of required that appears in skills.
func intersect(skills []string, required skillSet) skillSet {
	out := make(skillSet)
	for _, skill := range skills {
		if required.has(skill) {
			out[skill] = struct{}{}
		}
	}
	return out
}

// buildTeams enumerates covering teams for the required skills over the
// roster. It returns canonical (name-sorted) teams, deduplicated, ranked by
// price ascending; ties keep discovery order.
func buildTeams(requiredSkills []string, people []*roster.Person) []Team {
	required := newSkillSet(requiredSkills)
	if len(required) == 0 {
		return nil
	}

	// Keep only people holding at least one required skill, in roster
	// order, and precompute each one's relevant skill set.
	var candidates []*roster.Person
	relevant := make(map[*roster.Person]skillSet)
	for _, p := range people {
		rel := intersect(p.Skills(), required)
		if len(rel) > 0 {
			candidates = append(candidates, p)
			relevant[p] = rel
		}
	}

	// People who are the sole possessor of some required skill are
	// indispensable: every covering team must include them. Collected in
	// task skill order, deduplicated (one person may be sole possessor of
	// several skills).
	possessors := make(map[string][]*roster.Person, len(requiredSkills))
	for _, p := range candidates {
		for skill := range relevant[p] {
			possessors[skill] = append(possessors[skill], p)
		}
	}
	var indispensable Team
	for _, skill := range requiredSkills {
		if owners := possessors[skill]; len(owners) == 1 && !indispensable.Contains(owners[0]) {
			indispensable = append(indispensable, owners[0])
		}
	}

	// seed builds the working team for one outer candidate: every
	// indispensable member plus the candidate, with the union of their
	// relevant skills.
	seed := func(cur *roster.Person) (Team, skillSet) {
		team := indispensable.clone()
		if !team.Contains(cur) {
			team = append(team, cur)
		}
		covered := make(skillSet)
		for _, member := range team {
			covered.addAll(relevant[member])
		}
		return team, covered
	}

	var teams []Team
	addTeam := func(team Team) {
		for _, existing := range teams {
			if existing.Equal(team) {
				return
			}
		}
		teams = append(teams, team)
	}

	for _, cur := range candidates {
		team, covered := seed(cur)

		if covered.equal(required) {
			team.sortByName()
			addTeam(team)
			continue
		}

		for _, other := range candidates {
			if other.Equal(cur) || team.Contains(other) {
				continue
			}
			otherSkills := relevant[other]

			// One person covering the whole requirement beats any
			// team under construction from this seed.
			if otherSkills.equal(required) {
				addTeam(Team{other})
				break
			}

			if !otherSkills.subsetOf(covered) {
				covered.addAll(otherSkills)
				team = append(team, other)
			}

			if covered.equal(required) {
				team = pruneRedundant(team, required, relevant)
				team.sortByName()
				addTeam(team)
				// Re-seed and keep scanning: the remaining
				// candidates may assemble into further teams
				// for the same outer candidate.
				team, covered = seed(cur)
			}
		}
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Price() < teams[j].Price()
	})
	return teams
}

// pruneRedundant strips members whose removal keeps the team covering the
// required set. Candidates for removal are judged against a snapshot of the
// team as it stood at full coverage; removals are then applied one at a
// time, restoring any member whose removal breaks coverage given the
// removals already applied.
func pruneRedundant(team Team, required skillSet, relevant map[*roster.Person]skillSet) Team {
	var removable Team
	for i := range team {
		rest := make(skillSet)
		for j := range team {
			if i == j {
				continue
			}
			rest.addAll(relevant[team[j]])
		}
		if rest.equal(required) {
			removable = append(removable, team[i])
		}
	}

	for _, r := range removable {
		team = team.remove(r)
		rest := make(skillSet)
		for _, member := range team {
			rest.addAll(relevant[member])
		}
		if !rest.equal(required) {
			team = append(team, r)
		}
	}
	return team
}
