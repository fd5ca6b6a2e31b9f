// Package assign implements the team-formation solver: given a task's
// required skills and a roster, it enumerates candidate teams whose combined
// skills cover the requirement, prunes redundant members, deduplicates
// equivalent teams, and ranks the survivors by total salary.
//
// # Main Types
//
//   - [Task]: a unit of work with required skills and, after solving, its
//     ranked team list
//   - [Team]: a name-sorted sequence of roster members
//   - [Runner]: runs the solver over many tasks, optionally in parallel
//
// # The Heuristic
//
// The solver is a deterministic construction heuristic, not an optimal
// weighted set-cover solver. For each candidate (a roster member holding at
// least one required skill) it seeds a working team with every indispensable
// member (people who are the sole possessor of some required skill) plus
// the candidate, then scans the remaining candidates, admitting anyone who
// contributes a not-yet-covered skill. A candidate whose relevant skills
// cover the entire requirement alone short-circuits to a singleton team.
// Whenever the working team reaches full coverage, redundant members (those
// whose removal keeps the team covering) are pruned one at a time against a
// snapshot, the team is canonicalized by sorting members by name, recorded
// unless an identical team was already found, and the scan continues with a
// fresh seed. Finally teams are sorted by price, ascending and stable.
//
// Results are deterministic for a fixed roster and task: iteration follows
// roster input order and task skill order throughout; no map iteration order
// leaks into the output.
package assign
