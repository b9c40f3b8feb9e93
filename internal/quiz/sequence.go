package quiz

import (
	"fmt"
	"slices"
	"sort"
)

// SequenceGame asks the player to restore the order of a shuffled route.
type SequenceGame struct {
	OrganKey   string   `json:"organKey"`
	OrganName  string   `json:"organName"`
	RouteLabel string   `json:"routeLabel"`
	Correct    []string `json:"-"`
	Shuffled   []string `json:"shuffled"`

	user      []string
	submitted bool
}

// Len returns the number of structures to order.
func (g *SequenceGame) Len() int {
	return len(g.Shuffled)
}

// Trivial reports whether the shown order is already the answer.
func (g *SequenceGame) Trivial() bool {
	return slices.Equal(g.Shuffled, g.Correct)
}

// SubmitPositions grades a position assignment. positions[i] is the
// 1-based place the player gives to Shuffled[i]. The user sequence is the
// shown structures stably sorted by assigned place, so repeated places keep
// their shown order.
func (g *SequenceGame) SubmitPositions(positions []int) (bool, error) {
	if g.submitted {
		return false, ErrAlreadySubmitted
	}
	if len(positions) != len(g.Shuffled) {
		return false, fmt.Errorf("%w: got %d positions for %d structures",
			ErrInvalidPositions, len(positions), len(g.Shuffled))
	}
	for i, p := range positions {
		if p < 1 || p > len(g.Shuffled) {
			return false, fmt.Errorf("%w: position %d of %q out of range 1..%d",
				ErrInvalidPositions, p, g.Shuffled[i], len(g.Shuffled))
		}
	}

	idx := make([]int, len(g.Shuffled))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return positions[idx[a]] < positions[idx[b]]
	})

	user := make([]string, len(idx))
	for i, j := range idx {
		user[i] = g.Shuffled[j]
	}
	return g.submit(user), nil
}

// SubmitOrder grades an explicit ordering of the shown structures.
func (g *SequenceGame) SubmitOrder(order []string) (bool, error) {
	if g.submitted {
		return false, ErrAlreadySubmitted
	}
	if len(order) != len(g.Shuffled) {
		return false, fmt.Errorf("%w: got %d structures, want %d",
			ErrInvalidPositions, len(order), len(g.Shuffled))
	}
	return g.submit(slices.Clone(order)), nil
}

func (g *SequenceGame) submit(user []string) bool {
	g.user = user
	g.submitted = true
	return GradeSequence(g.Correct, user)
}

// User returns the reconstructed player sequence, if submitted.
func (g *SequenceGame) User() ([]string, bool) {
	return g.user, g.submitted
}

// Submitted reports whether the game has been answered.
func (g *SequenceGame) Submitted() bool {
	return g.submitted
}

// IsCorrect reports whether the recorded submission restored the route.
func (g *SequenceGame) IsCorrect() bool {
	return g.submitted && GradeSequence(g.Correct, g.user)
}

// GradeSequence compares two orderings element by element. The same
// structures in a different order are incorrect.
func GradeSequence(correct, user []string) bool {
	return slices.Equal(correct, user)
}
