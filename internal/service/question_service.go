package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"quizgen/internal/cache"
	"quizgen/internal/config"
	"quizgen/internal/domain"
	"quizgen/internal/dto"
	"quizgen/internal/logger"

	"go.uber.org/zap"
)

// maxSourceChars bounds the stored source label (topic or filename).
const maxSourceChars = 200

// QuestionService orchestrates generation, persistence and read access.
type QuestionService interface {
	GenerateFromTopic(ctx context.Context, topic string, count int, category string, identity domain.Identity) ([]dto.QuestionResponse, error)
	GenerateFromPDF(ctx context.Context, filename string, data []byte, count int, category string, identity domain.Identity) ([]dto.QuestionResponse, error)
	ListQuestions(ctx context.Context, skip, limit int, category, source string) ([]dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type questionService struct {
	repo        domain.QuestionRepository
	generator   domain.QuestionGenerator
	extractor   domain.ContentExtractor
	cacheSvc    domain.CacheService
	categoryTTL time.Duration
}

// NewQuestionService creates a new QuestionService. cacheSvc may be nil, in
// which case category reads always hit the store.
func NewQuestionService(
	repo domain.QuestionRepository,
	generator domain.QuestionGenerator,
	extractor domain.ContentExtractor,
	cacheSvc domain.CacheService,
	redisCfg config.RedisConfig,
) QuestionService {
	return &questionService{
		repo:        repo,
		generator:   generator,
		extractor:   extractor,
		cacheSvc:    cacheSvc,
		categoryTTL: redisCfg.CategoryTTL,
	}
}

// GenerateFromTopic generates and persists questions for a text topic.
func (s *questionService) GenerateFromTopic(ctx context.Context, topic string, count int, category string, identity domain.Identity) ([]dto.QuestionResponse, error) {
	drafts, err := s.generator.Generate(ctx, topic, count)
	if err != nil {
		return nil, err
	}
	return s.persistDrafts(ctx, drafts, category, topic, identity)
}

// GenerateFromPDF extracts text from an uploaded PDF and generates questions
// from it. The filename becomes the stored source label.
func (s *questionService) GenerateFromPDF(ctx context.Context, filename string, data []byte, count int, category string, identity domain.Identity) ([]dto.QuestionResponse, error) {
	text, err := s.extractor.Extract(data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewInvalidInputError("could not extract text from PDF")
	}

	drafts, err := s.generator.Generate(ctx, text, count)
	if err != nil {
		return nil, err
	}
	return s.persistDrafts(ctx, drafts, category, filename, identity)
}

func (s *questionService) persistDrafts(ctx context.Context, drafts []domain.QuestionDraft, category, source string, identity domain.Identity) ([]dto.QuestionResponse, error) {
	if len(source) > maxSourceChars {
		source = source[:maxSourceChars]
	}

	questions, err := s.repo.CreateQuestions(ctx, drafts, category, source, identity.UserIDPtr())
	if err != nil {
		return nil, domain.NewInternalError("failed to persist questions", err)
	}

	s.invalidateCategories(ctx)
	logger.Get().Info("Persisted generated questions",
		zap.Int("count", len(questions)),
		zap.String("category", category),
		zap.Bool("authenticated", identity.IsAuthenticated()))
	return dto.NewQuestionResponses(questions), nil
}

// ListQuestions returns a page of questions newest-first.
func (s *questionService) ListQuestions(ctx context.Context, skip, limit int, category, source string) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.ListQuestions(ctx, skip, limit, category, source)
	if err != nil {
		return nil, domain.NewInternalError("failed to list questions", err)
	}
	return dto.NewQuestionResponses(questions), nil
}

// GetQuestion returns a single question or a not-found error.
func (s *questionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
	question, err := s.repo.GetQuestion(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewNotFoundError("Question not found")
	}
	resp := dto.NewQuestionResponse(*question)
	return &resp, nil
}

// DeleteQuestion removes a question or reports not-found.
func (s *questionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	deleted, err := s.repo.DeleteQuestion(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to delete question", err)
	}
	if !deleted {
		return nil, domain.NewNotFoundError("Question not found")
	}

	s.invalidateCategories(ctx)
	return &dto.DeleteQuestionResponse{OK: true, DeletedID: id}, nil
}

// ListCategories returns the distinct category list, served from the cache
// when one is configured.
func (s *questionService) ListCategories(ctx context.Context) ([]string, error) {
	if s.cacheSvc != nil {
		if cached, err := s.cacheSvc.Get(ctx, cache.CategoriesKey()); err == nil {
			var categories []string
			if err := json.Unmarshal([]byte(cached), &categories); err == nil {
				return categories, nil
			}
		}
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list categories", err)
	}

	if s.cacheSvc != nil {
		if payload, err := json.Marshal(categories); err == nil {
			if err := s.cacheSvc.Set(ctx, cache.CategoriesKey(), string(payload), s.categoryTTL); err != nil {
				logger.Get().Warn("Failed to cache category list", zap.Error(err))
			}
		}
	}
	return categories, nil
}

func (s *questionService) invalidateCategories(ctx context.Context) {
	if s.cacheSvc == nil {
		return
	}
	if err := s.cacheSvc.Delete(ctx, cache.CategoriesKey()); err != nil {
		logger.Get().Warn("Failed to invalidate category cache", zap.Error(err))
	}
}
