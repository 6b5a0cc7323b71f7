package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"quizgen/internal/domain"
	"quizgen/internal/repository/models"
	"quizgen/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	minListLimit = 1
	maxListLimit = 200
)

// sqlxQuestionRepository implements domain.QuestionRepository using sqlx.
type sqlxQuestionRepository struct {
	db *sqlx.DB
}

// NewSQLXQuestionRepository creates a new instance of sqlxQuestionRepository.
func NewSQLXQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &sqlxQuestionRepository{db: db}
}

// CreateQuestions persists a batch of drafts in one transaction and returns
// the hydrated rows in input order.
func (r *sqlxQuestionRepository) CreateQuestions(ctx context.Context, drafts []domain.QuestionDraft, category, source string, userID *int64) ([]domain.Question, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO questions (question, answers, correct, explanation, category, source, user_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at`

	created := make([]domain.Question, 0, len(drafts))
	for _, draft := range drafts {
		q := domain.Question{
			Question:    draft.Question,
			Answers:     draft.Answers,
			Correct:     draft.Correct,
			Explanation: draft.Explanation,
			Category:    category,
			Source:      source,
			UserID:      userID,
		}
		row := tx.QueryRowxContext(ctx, query,
			draft.Question,
			models.StringSlice(draft.Answers),
			draft.Correct,
			util.StringToNullString(draft.Explanation),
			util.StringToNullString(category),
			util.StringToNullString(source),
			util.Int64PtrToNullInt64(userID),
		)
		if err := row.Scan(&q.ID, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to insert question: %w", err)
		}
		created = append(created, q)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit question batch: %w", err)
	}
	return created, nil
}

// ListQuestions returns questions newest-first with optional filters.
func (r *sqlxQuestionRepository) ListQuestions(ctx context.Context, skip, limit int, category, source string) ([]domain.Question, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < minListLimit {
		limit = minListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	var (
		conds []string
		args  []interface{}
	)
	if category != "" {
		args = append(args, category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if source != "" {
		args = append(args, "%"+source+"%")
		conds = append(conds, fmt.Sprintf("source ILIKE $%d", len(args)))
	}

	query := `SELECT id, question, answers, correct, explanation, category, source, user_id, created_at FROM questions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, skip)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	var rows []models.Question
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, *toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

// GetQuestion retrieves a question by id, returning nil when absent.
func (r *sqlxQuestionRepository) GetQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	var row models.Question
	query := `SELECT id, question, answers, correct, explanation, category, source, user_id, created_at
	          FROM questions WHERE id = $1`

	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by id %d: %w", id, err)
	}
	return toDomainQuestion(&row), nil
}

// DeleteQuestion removes a question, reporting whether a row existed.
func (r *sqlxQuestionRepository) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// ListCategories returns distinct non-empty categories sorted ascending.
func (r *sqlxQuestionRepository) ListCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM questions
	          WHERE category IS NOT NULL AND category <> ''
	          ORDER BY category ASC`

	var categories []string
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	return &domain.Question{
		ID:          m.ID,
		Question:    m.Question,
		Answers:     []string(m.Answers),
		Correct:     m.Correct,
		Explanation: util.NullStringToString(m.Explanation),
		Category:    util.NullStringToString(m.Category),
		Source:      util.NullStringToString(m.Source),
		UserID:      util.NullInt64ToInt64Ptr(m.UserID),
		CreatedAt:   m.CreatedAt,
	}
}
