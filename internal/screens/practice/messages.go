package practice

import "github.com/abhisek/lymphiz/internal/quiz"

// questionReadyMsg carries a freshly generated question or the reason none
// could be built.
type questionReadyMsg struct {
	Question *quiz.Question
	Err      error
}
