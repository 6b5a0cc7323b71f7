package domain

import (
	"fmt"
	"time"
)

// AnswersPerQuestion is the fixed number of answer options on every question.
const AnswersPerQuestion = 4

// Question is a persisted multiple-choice question. UserID is nil when the
// generating request was anonymous.
type Question struct {
	ID          int64
	Question    string
	Answers     []string
	Correct     int
	Explanation string
	Category    string
	Source      string
	UserID      *int64
	CreatedAt   time.Time
}

// QuestionDraft is an unpersisted question as parsed from the LLM response,
// prior to assignment of an id and timestamp.
type QuestionDraft struct {
	Question    string   `json:"question"`
	Answers     []string `json:"answers"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Validate checks the shape the prompt contract promises: exactly four
// answers and a correct index pointing at one of them.
func (d *QuestionDraft) Validate() error {
	if d.Question == "" {
		return fmt.Errorf("draft has an empty question")
	}
	if len(d.Answers) != AnswersPerQuestion {
		return fmt.Errorf("draft has %d answers, want %d", len(d.Answers), AnswersPerQuestion)
	}
	if d.Correct < 0 || d.Correct >= len(d.Answers) {
		return fmt.Errorf("draft correct index %d out of range [0,%d)", d.Correct, len(d.Answers))
	}
	return nil
}
