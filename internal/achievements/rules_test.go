package achievements

import (
	"slices"
	"testing"
)

func TestSatisfied(t *testing.T) {
	tests := []struct {
		name  string
		score int
		total int
		want  []ID
	}{
		{"nothing yet", 0, 0, nil},
		{"nine perfect", 9, 9, nil},
		{"eight of ten", 8, 10, []ID{TenQuestions, Accuracy80}},
		{"seven of ten", 7, 10, []ID{TenQuestions}},
		{"nine of ten", 9, 10, []ID{TenQuestions, Accuracy80, Accuracy90}},
		{"ten of ten", 10, 10, []ID{TenQuestions, Accuracy80, Accuracy90, Accuracy100}},
		{"forty of fifty", 40, 50, []ID{TenQuestions, FiftyQuestions, Accuracy80}},
		{"low fifty", 10, 50, []ID{TenQuestions, FiftyQuestions}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Satisfied(Counters{TotalScore: tt.score, TotalQuestions: tt.total})
			if !slices.Equal(got, tt.want) {
				t.Errorf("Satisfied(%d/%d) = %v, want %v", tt.score, tt.total, got, tt.want)
			}
		})
	}
}

func TestEvaluate_OnlyNew(t *testing.T) {
	unlocked := Set{}
	unlocked.Add(TenQuestions)

	got := Evaluate(Counters{TotalScore: 9, TotalQuestions: 10}, unlocked)
	want := []ID{Accuracy80, Accuracy90}
	if !slices.Equal(got, want) {
		t.Errorf("Evaluate = %v, want %v", got, want)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	c := Counters{TotalScore: 10, TotalQuestions: 10}
	unlocked := Set{}

	first := Evaluate(c, unlocked)
	unlocked.Add(first...)
	before := unlocked.List()

	if again := Evaluate(c, unlocked); len(again) != 0 {
		t.Errorf("second Evaluate = %v, want none", again)
	}
	if after := unlocked.List(); !slices.Equal(before, after) {
		t.Errorf("set changed from %v to %v", before, after)
	}
}

func TestCounters_Accuracy(t *testing.T) {
	if got := (Counters{}).Accuracy(); got != 0 {
		t.Errorf("empty Accuracy = %v, want 0", got)
	}
	if got := (Counters{TotalScore: 3, TotalQuestions: 4}).Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}
}

func TestIDLabels(t *testing.T) {
	for _, id := range All() {
		if id.DisplayName() == string(id) {
			t.Errorf("%s has no display name", id)
		}
		if id.Description() == "" {
			t.Errorf("%s has no description", id)
		}
		if id.Icon() == "✦" {
			t.Errorf("%s has no icon", id)
		}
	}
}

func TestSet_ListOrderAndClear(t *testing.T) {
	s := Set{}
	s.Add(Accuracy100, TenQuestions)
	if got := s.List(); !slices.Equal(got, []ID{TenQuestions, Accuracy100}) {
		t.Errorf("List = %v", got)
	}
	s.Clear()
	if len(s) != 0 {
		t.Errorf("len after Clear = %d", len(s))
	}
}
