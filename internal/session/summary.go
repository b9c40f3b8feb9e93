package session

import (
	"github.com/abhisek/lymphiz/internal/achievements"
	"github.com/abhisek/lymphiz/internal/quiz"
)

// ModeSummary is one row of the score summary.
type ModeSummary struct {
	Mode     quiz.Mode `json:"mode"`
	Label    string    `json:"label"`
	Score    int       `json:"score"`
	Total    int       `json:"total"`
	Accuracy float64   `json:"accuracy"`
}

// Summary holds the data displayed on the score screen.
type Summary struct {
	Modes          []ModeSummary     `json:"modes"`
	TotalScore     int               `json:"totalScore"`
	TotalQuestions int               `json:"totalQuestions"`
	Accuracy       float64           `json:"accuracy"`
	Achievements   []achievements.ID `json:"achievements"`
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(state *State) *Summary {
	modes := make([]ModeSummary, 0, len(quiz.AllModes()))
	for _, m := range quiz.AllModes() {
		ms := state.Mode(m)
		modes = append(modes, ModeSummary{
			Mode:     m,
			Label:    m.DisplayName(),
			Score:    ms.Score,
			Total:    ms.Total,
			Accuracy: ms.Accuracy(),
		})
	}

	unlocked := state.Achievements.List()
	if unlocked == nil {
		unlocked = []achievements.ID{}
	}

	return &Summary{
		Modes:          modes,
		TotalScore:     state.TotalScore,
		TotalQuestions: state.TotalQuestions,
		Accuracy:       state.Counters().Accuracy(),
		Achievements:   unlocked,
	}
}
