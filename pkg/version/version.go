// Package version numbers a challenge's solutions per language.
package version

import "katasync/pkg/models"

// Assign returns one version number per solution, parallel to solutions.
//
// Solutions are expected newest first. The walk goes oldest to newest: the
// counter restarts at 1 whenever a solution's language differs from the next
// newer one and increments while it matches. Only contiguous runs share a
// counter, so a language that reappears after a gap starts again at 1 and can
// collide with an earlier run's numbers.
func Assign(solutions []models.Solution) []int {
	versions := make([]int, len(solutions))

	v := 1
	for i := len(solutions) - 1; i >= 0; i-- {
		if i != len(solutions)-1 && solutions[i].Language == solutions[i+1].Language {
			v++
		} else {
			v = 1
		}
		versions[i] = v
	}

	return versions
}
