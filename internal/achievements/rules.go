package achievements

// minQuestionsForAccuracy gates the accuracy achievements.
const minQuestionsForAccuracy = 10

// Counters are the aggregate session counters achievements are judged on.
type Counters struct {
	TotalScore     int
	TotalQuestions int
}

// Accuracy returns TotalScore/TotalQuestions, or 0 before any answer.
func (c Counters) Accuracy() float64 {
	if c.TotalQuestions == 0 {
		return 0
	}
	return float64(c.TotalScore) / float64(c.TotalQuestions)
}

// atLeastPercent compares in integers so 8/10 meets 80% exactly.
func (c Counters) atLeastPercent(pct int) bool {
	return c.TotalScore*100 >= pct*c.TotalQuestions
}

type rule struct {
	id   ID
	test func(Counters) bool
}

var rules = []rule{
	{TenQuestions, func(c Counters) bool { return c.TotalQuestions >= 10 }},
	{FiftyQuestions, func(c Counters) bool { return c.TotalQuestions >= 50 }},
	{Accuracy80, func(c Counters) bool {
		return c.TotalQuestions >= minQuestionsForAccuracy && c.atLeastPercent(80)
	}},
	{Accuracy90, func(c Counters) bool {
		return c.TotalQuestions >= minQuestionsForAccuracy && c.atLeastPercent(90)
	}},
	{Accuracy100, func(c Counters) bool {
		return c.TotalQuestions >= minQuestionsForAccuracy && c.TotalScore == c.TotalQuestions
	}},
}

// Satisfied returns every achievement whose condition holds for c.
func Satisfied(c Counters) []ID {
	var out []ID
	for _, r := range rules {
		if r.test(c) {
			out = append(out, r.id)
		}
	}
	return out
}

// Evaluate returns the achievements satisfied by c that are not yet in
// unlocked. It does not modify unlocked, so calling it again with the same
// inputs yields the same answer.
func Evaluate(c Counters, unlocked Set) []ID {
	var fresh []ID
	for _, id := range Satisfied(c) {
		if !unlocked.Has(id) {
			fresh = append(fresh, id)
		}
	}
	return fresh
}
