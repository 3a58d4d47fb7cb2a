package version

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"katasync/pkg/models"
)

func solutions(languages ...string) []models.Solution {
	out := make([]models.Solution, len(languages))
	for i, l := range languages {
		out[i] = models.Solution{Language: l, Code: l}
	}
	return out
}

func TestAssign(t *testing.T) {
	tests := []struct {
		name      string
		languages []string
		want      []int
	}{
		{"empty", nil, []int{}},
		{"single", []string{"Python"}, []int{1}},
		{"same language newest gets highest", []string{"Go", "Go", "Go", "Go"}, []int{4, 3, 2, 1}},
		{"non-contiguous runs collide", []string{"A", "A", "B", "A"}, []int{2, 1, 1, 1}},
		{"alternating", []string{"A", "B", "A", "B"}, []int{1, 1, 1, 1}},
		{"two runs", []string{"Ruby", "Ruby", "Python", "Python", "Python"}, []int{2, 1, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Assign(solutions(tt.languages...)))
		})
	}
}

func TestAssignRunOfN(t *testing.T) {
	for n := 1; n <= 8; n++ {
		langs := make([]string, n)
		for i := range langs {
			langs[i] = "JavaScript"
		}

		got := Assign(solutions(langs...))

		// oldest (last index) is 1, newest (index 0) is n
		for i := range got {
			assert.Equal(t, n-i, got[i], "n=%d index=%d", n, i)
		}
	}
}
