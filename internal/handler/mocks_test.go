package handler

import (
	"context"

	"quizgen/internal/domain"
	"quizgen/internal/dto"
)

// mockQuestionService is a function-field mock of service.QuestionService.
type mockQuestionService struct {
	GenerateFromTopicFunc func(ctx context.Context, topic string, count int, category string, identity domain.Identity) ([]dto.QuestionResponse, error)
	GenerateFromPDFFunc   func(ctx context.Context, filename string, data []byte, count int, category string, identity domain.Identity) ([]dto.QuestionResponse, error)
	ListQuestionsFunc     func(ctx context.Context, skip, limit int, category, source string) ([]dto.QuestionResponse, error)
	GetQuestionFunc       func(ctx context.Context, id int64) (*dto.QuestionResponse, error)
	DeleteQuestionFunc    func(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
	ListCategoriesFunc    func(ctx context.Context) ([]string, error)
}

func (m *mockQuestionService) GenerateFromTopic(ctx context.Context, topic string, count int, category string, identity domain.Identity) ([]dto.QuestionResponse, error) {
	if m.GenerateFromTopicFunc != nil {
		return m.GenerateFromTopicFunc(ctx, topic, count, category, identity)
	}
	return nil, nil
}

func (m *mockQuestionService) GenerateFromPDF(ctx context.Context, filename string, data []byte, count int, category string, identity domain.Identity) ([]dto.QuestionResponse, error) {
	if m.GenerateFromPDFFunc != nil {
		return m.GenerateFromPDFFunc(ctx, filename, data, count, category, identity)
	}
	return nil, nil
}

func (m *mockQuestionService) ListQuestions(ctx context.Context, skip, limit int, category, source string) ([]dto.QuestionResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, skip, limit, category, source)
	}
	return nil, nil
}

func (m *mockQuestionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
	if m.GetQuestionFunc != nil {
		return m.GetQuestionFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockQuestionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockQuestionService) ListCategories(ctx context.Context) ([]string, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, nil
}

// mockAuthService is a function-field mock of service.AuthService.
type mockAuthService struct {
	GetGoogleLoginURLFunc    func() string
	HandleGoogleCallbackFunc func(ctx context.Context, code string) (string, *domain.User, error)
	CreateTokenFunc          func(userID int64) (string, error)
	ValidateTokenFunc        func(tokenString string) (int64, error)
	GetUserByIDFunc          func(ctx context.Context, userID int64) (*domain.User, error)
}

func (m *mockAuthService) GetGoogleLoginURL() string {
	if m.GetGoogleLoginURLFunc != nil {
		return m.GetGoogleLoginURLFunc()
	}
	return "https://accounts.google.com/o/oauth2/auth?client_id=test"
}

func (m *mockAuthService) HandleGoogleCallback(ctx context.Context, code string) (string, *domain.User, error) {
	if m.HandleGoogleCallbackFunc != nil {
		return m.HandleGoogleCallbackFunc(ctx, code)
	}
	return "", nil, nil
}

func (m *mockAuthService) CreateToken(userID int64) (string, error) {
	if m.CreateTokenFunc != nil {
		return m.CreateTokenFunc(userID)
	}
	return "token", nil
}

func (m *mockAuthService) ValidateToken(tokenString string) (int64, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString)
	}
	return 0, domain.NewUnauthorizedError("Not authenticated")
}

func (m *mockAuthService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(ctx, userID)
	}
	return nil, nil
}
