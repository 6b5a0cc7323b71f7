package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizgen/internal/domain"
	"quizgen/internal/repository/models"
	"quizgen/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

// CreateUser inserts a new user and fills in the generated id and timestamp.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, name, google_id, avatar_url)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	row := r.db.QueryRowxContext(ctx, query,
		user.Email,
		util.StringToNullString(user.Name),
		user.GoogleID,
		util.StringToNullString(user.AvatarURL),
	)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByGoogleID retrieves a user by their Google subject identifier.
func (r *sqlxUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	var row models.User
	query := `SELECT id, email, name, google_id, avatar_url, created_at FROM users WHERE google_id = $1`

	err := r.db.GetContext(ctx, &row, query, googleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by google_id: %w", err)
	}
	return toDomainUser(&row), nil
}

// GetUserByID retrieves a user by their internal id.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var row models.User
	query := `SELECT id, email, name, google_id, avatar_url, created_at FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&row), nil
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      util.NullStringToString(m.Name),
		GoogleID:  m.GoogleID,
		AvatarURL: util.NullStringToString(m.AvatarURL),
		CreatedAt: m.CreatedAt,
	}
}
