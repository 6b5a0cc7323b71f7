package dto

import (
	"time"

	"quizgen/internal/domain"
)

// GenerateFromTopicRequest is the body of POST /api/generate/topic.
// @Description Request body for topic-based question generation
type GenerateFromTopicRequest struct {
	Topic    string `json:"topic"`
	Count    int    `json:"count"`
	Category string `json:"category"`
}

// QuestionResponse is the wire shape of a persisted question.
type QuestionResponse struct {
	ID          int64     `json:"id"`
	Question    string    `json:"question"`
	Answers     []string  `json:"answers"`
	Correct     int       `json:"correct"`
	Explanation string    `json:"explanation,omitempty"`
	Category    string    `json:"category,omitempty"`
	Source      string    `json:"source,omitempty"`
	UserID      *int64    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// DeleteQuestionResponse confirms a deletion.
type DeleteQuestionResponse struct {
	OK        bool  `json:"ok"`
	DeletedID int64 `json:"deleted_id"`
}

// NewQuestionResponse maps a domain question to its wire shape.
func NewQuestionResponse(q domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:          q.ID,
		Question:    q.Question,
		Answers:     q.Answers,
		Correct:     q.Correct,
		Explanation: q.Explanation,
		Category:    q.Category,
		Source:      q.Source,
		UserID:      q.UserID,
		CreatedAt:   q.CreatedAt,
	}
}

// NewQuestionResponses maps a batch, preserving order.
func NewQuestionResponses(questions []domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, NewQuestionResponse(q))
	}
	return out
}
