package quiz

import "slices"

const (
	// OptionCount is the number of choices shown per question.
	OptionCount = 4

	distractorCount = OptionCount - 1
)

// Patient is the randomly drawn subject of a clinical case.
type Patient struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Sex  string `json:"sex"`
}

// Question is a multiple-choice quiz instance. It accepts exactly one
// submission.
type Question struct {
	Mode       Mode     `json:"mode"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
	Answer     string   `json:"-"`
	OrganKey   string   `json:"organKey"`
	OrganName  string   `json:"organName"`
	RouteLabel string   `json:"routeLabel"`
	Path       []string `json:"-"`

	// Current is the step the player starts from in next-step questions.
	Current string `json:"current,omitempty"`

	// Patient is set for clinical cases.
	Patient *Patient `json:"patient,omitempty"`

	submitted string
	done      bool
}

// Submit grades answer against the stored correct answer. A second call
// returns ErrAlreadySubmitted and leaves the first submission in place.
func (q *Question) Submit(answer string) (bool, error) {
	if q.done {
		return false, ErrAlreadySubmitted
	}
	q.submitted = answer
	q.done = true
	return q.IsCorrect(answer), nil
}

// IsCorrect reports whether answer matches exactly.
func (q *Question) IsCorrect(answer string) bool {
	return answer == q.Answer
}

// Submitted returns the recorded answer, if any.
func (q *Question) Submitted() (string, bool) {
	return q.submitted, q.done
}

// Correct reports whether the recorded submission was right.
func (q *Question) Correct() bool {
	return q.done && q.IsCorrect(q.submitted)
}

// AnswerIndex returns the position of the correct answer in Options.
func (q *Question) AnswerIndex() int {
	return slices.Index(q.Options, q.Answer)
}
