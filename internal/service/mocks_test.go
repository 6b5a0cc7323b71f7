package service

import (
	"context"
	"time"

	"quizgen/internal/domain"
)

// --- Manual Mocks ---

// MockUserRepository
type MockUserRepository struct {
	GetUserByGoogleIDFunc func(ctx context.Context, googleID string) (*domain.User, error)
	GetUserByIDFunc       func(ctx context.Context, id int64) (*domain.User, error)
	CreateUserFunc        func(ctx context.Context, user *domain.User) error
}

func (m *MockUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	if m.GetUserByGoogleIDFunc != nil {
		return m.GetUserByGoogleIDFunc(ctx, googleID)
	}
	panic("MockUserRepository.GetUserByGoogleIDFunc not implemented")
}
func (m *MockUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(ctx, id)
	}
	panic("MockUserRepository.GetUserByIDFunc not implemented")
}
func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user)
	}
	panic("MockUserRepository.CreateUserFunc not implemented")
}

// MockQuestionRepository
type MockQuestionRepository struct {
	CreateQuestionsFunc func(ctx context.Context, drafts []domain.QuestionDraft, category, source string, userID *int64) ([]domain.Question, error)
	ListQuestionsFunc   func(ctx context.Context, skip, limit int, category, source string) ([]domain.Question, error)
	GetQuestionFunc     func(ctx context.Context, id int64) (*domain.Question, error)
	DeleteQuestionFunc  func(ctx context.Context, id int64) (bool, error)
	ListCategoriesFunc  func(ctx context.Context) ([]string, error)
}

func (m *MockQuestionRepository) CreateQuestions(ctx context.Context, drafts []domain.QuestionDraft, category, source string, userID *int64) ([]domain.Question, error) {
	if m.CreateQuestionsFunc != nil {
		return m.CreateQuestionsFunc(ctx, drafts, category, source, userID)
	}
	panic("MockQuestionRepository.CreateQuestionsFunc not implemented")
}
func (m *MockQuestionRepository) ListQuestions(ctx context.Context, skip, limit int, category, source string) ([]domain.Question, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, skip, limit, category, source)
	}
	panic("MockQuestionRepository.ListQuestionsFunc not implemented")
}
func (m *MockQuestionRepository) GetQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	if m.GetQuestionFunc != nil {
		return m.GetQuestionFunc(ctx, id)
	}
	panic("MockQuestionRepository.GetQuestionFunc not implemented")
}
func (m *MockQuestionRepository) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockQuestionRepository.DeleteQuestionFunc not implemented")
}
func (m *MockQuestionRepository) ListCategories(ctx context.Context) ([]string, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	panic("MockQuestionRepository.ListCategoriesFunc not implemented")
}

// MockQuestionGenerator
type MockQuestionGenerator struct {
	GenerateFunc func(ctx context.Context, content string, count int) ([]domain.QuestionDraft, error)
}

func (m *MockQuestionGenerator) Generate(ctx context.Context, content string, count int) ([]domain.QuestionDraft, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, content, count)
	}
	panic("MockQuestionGenerator.GenerateFunc not implemented")
}

// MockContentExtractor
type MockContentExtractor struct {
	ExtractFunc func(data []byte) (string, error)
}

func (m *MockContentExtractor) Extract(data []byte) (string, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(data)
	}
	panic("MockContentExtractor.ExtractFunc not implemented")
}

// MockCacheService
type MockCacheService struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *MockCacheService) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", domain.ErrCacheMiss
}
func (m *MockCacheService) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return nil
}
func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}
