package domain

import (
	"context"
	"errors"
	"time"
)

// QuestionRepository defines the persistence operations for questions.
type QuestionRepository interface {
	// CreateQuestions persists the drafts as a single atomic batch sharing
	// category, source and owner, and returns the hydrated rows in input order.
	CreateQuestions(ctx context.Context, drafts []QuestionDraft, category, source string, userID *int64) ([]Question, error)
	// ListQuestions returns rows ordered by created_at descending. Category
	// filters by exact match, source by case-insensitive substring.
	ListQuestions(ctx context.Context, skip, limit int, category, source string) ([]Question, error)
	// GetQuestion returns nil when no row matches.
	GetQuestion(ctx context.Context, id int64) (*Question, error)
	// DeleteQuestion reports whether a row was removed.
	DeleteQuestion(ctx context.Context, id int64) (bool, error)
	// ListCategories returns the distinct non-empty categories, ascending.
	ListCategories(ctx context.Context) ([]string, error)
}

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	// GetUserByGoogleID returns nil when no row matches.
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	// GetUserByID returns nil when no row matches.
	GetUserByID(ctx context.Context, id int64) (*User, error)
	// CreateUser inserts the user and fills in its id and creation time.
	CreateUser(ctx context.Context, user *User) error
}

// QuestionGenerator produces question drafts from source content.
type QuestionGenerator interface {
	Generate(ctx context.Context, content string, count int) ([]QuestionDraft, error)
}

// ContentExtractor converts an uploaded document into plain text.
type ContentExtractor interface {
	Extract(data []byte) (string, error)
}

// ErrCacheMiss is returned by CacheService.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CacheService abstracts the optional read-through cache.
type CacheService interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
