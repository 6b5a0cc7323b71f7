package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"quizgen/internal/cache"
	"quizgen/internal/config"
	"quizgen/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testDrafts(n int) []domain.QuestionDraft {
	drafts := make([]domain.QuestionDraft, 0, n)
	for i := 0; i < n; i++ {
		drafts = append(drafts, domain.QuestionDraft{
			Question:    "What is photosynthesis?",
			Answers:     []string{"A", "B", "C", "D"},
			Correct:     i % 4,
			Explanation: "Because.",
		})
	}
	return drafts
}

func newTestQuestionService(repo domain.QuestionRepository, gen domain.QuestionGenerator, ext domain.ContentExtractor, cacheSvc domain.CacheService) QuestionService {
	return NewQuestionService(repo, gen, ext, cacheSvc, config.RedisConfig{CategoryTTL: time.Minute})
}

func TestGenerateFromTopic_PersistsAllDrafts(t *testing.T) {
	var gotCategory, gotSource string
	var gotUserID *int64
	repo := &MockQuestionRepository{
		CreateQuestionsFunc: func(ctx context.Context, drafts []domain.QuestionDraft, category, source string, userID *int64) ([]domain.Question, error) {
			gotCategory, gotSource, gotUserID = category, source, userID
			questions := make([]domain.Question, 0, len(drafts))
			for i, d := range drafts {
				questions = append(questions, domain.Question{
					ID:       int64(i + 1),
					Question: d.Question,
					Answers:  d.Answers,
					Correct:  d.Correct,
					Category: category,
					Source:   source,
					UserID:   userID,
				})
			}
			return questions, nil
		},
	}
	gen := &MockQuestionGenerator{
		GenerateFunc: func(ctx context.Context, content string, count int) ([]domain.QuestionDraft, error) {
			assert.Equal(t, "Photosynthesis", content)
			assert.Equal(t, 3, count)
			return testDrafts(3), nil
		},
	}
	svc := newTestQuestionService(repo, gen, &MockContentExtractor{}, nil)

	questions, err := svc.GenerateFromTopic(context.Background(), "Photosynthesis", 3, "AI Generated", domain.Anonymous())
	assert.NoError(t, err)
	assert.Len(t, questions, 3)
	assert.Equal(t, "AI Generated", gotCategory)
	assert.Equal(t, "Photosynthesis", gotSource)
	assert.Nil(t, gotUserID)
	for _, q := range questions {
		assert.Len(t, q.Answers, domain.AnswersPerQuestion)
		assert.GreaterOrEqual(t, q.Correct, 0)
		assert.Less(t, q.Correct, domain.AnswersPerQuestion)
		assert.Nil(t, q.UserID)
	}
}

func TestGenerateFromTopic_AuthenticatedOwnership(t *testing.T) {
	var gotUserID *int64
	repo := &MockQuestionRepository{
		CreateQuestionsFunc: func(ctx context.Context, drafts []domain.QuestionDraft, category, source string, userID *int64) ([]domain.Question, error) {
			gotUserID = userID
			return []domain.Question{{ID: 1, UserID: userID}}, nil
		},
	}
	gen := &MockQuestionGenerator{
		GenerateFunc: func(ctx context.Context, content string, count int) ([]domain.QuestionDraft, error) {
			return testDrafts(1), nil
		},
	}
	svc := newTestQuestionService(repo, gen, &MockContentExtractor{}, nil)

	_, err := svc.GenerateFromTopic(context.Background(), "Go", 1, "AI Generated", domain.Authenticated(9))
	assert.NoError(t, err)
	assert.NotNil(t, gotUserID)
	assert.Equal(t, int64(9), *gotUserID)
}

func TestGenerateFromTopic_SourceTruncated(t *testing.T) {
	var gotSource string
	repo := &MockQuestionRepository{
		CreateQuestionsFunc: func(ctx context.Context, drafts []domain.QuestionDraft, category, source string, userID *int64) ([]domain.Question, error) {
			gotSource = source
			return nil, nil
		},
	}
	gen := &MockQuestionGenerator{
		GenerateFunc: func(ctx context.Context, content string, count int) ([]domain.QuestionDraft, error) {
			return testDrafts(1), nil
		},
	}
	svc := newTestQuestionService(repo, gen, &MockContentExtractor{}, nil)

	longTopic := strings.Repeat("x", 300)
	_, err := svc.GenerateFromTopic(context.Background(), longTopic, 1, "AI Generated", domain.Anonymous())
	assert.NoError(t, err)
	assert.Len(t, gotSource, 200)
}

func TestGenerateFromTopic_GeneratorErrorPropagates(t *testing.T) {
	gen := &MockQuestionGenerator{
		GenerateFunc: func(ctx context.Context, content string, count int) ([]domain.QuestionDraft, error) {
			return nil, domain.NewLLMNotConfiguredError()
		},
	}
	svc := newTestQuestionService(&MockQuestionRepository{}, gen, &MockContentExtractor{}, nil)

	_, err := svc.GenerateFromTopic(context.Background(), "Go", 1, "AI Generated", domain.Anonymous())
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeLLMNotConfigured, domainErr.Code)
}

func TestGenerateFromPDF_EmptyTextRejectedBeforeGeneration(t *testing.T) {
	generatorCalled := false
	gen := &MockQuestionGenerator{
		GenerateFunc: func(ctx context.Context, content string, count int) ([]domain.QuestionDraft, error) {
			generatorCalled = true
			return nil, nil
		},
	}
	ext := &MockContentExtractor{
		ExtractFunc: func(data []byte) (string, error) {
			return "   \n\t ", nil
		},
	}
	svc := newTestQuestionService(&MockQuestionRepository{}, gen, ext, nil)

	_, err := svc.GenerateFromPDF(context.Background(), "doc.pdf", []byte("pdf"), 5, "PDF", domain.Anonymous())
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
	assert.False(t, generatorCalled)
}

func TestGenerateFromPDF_FilenameBecomesSource(t *testing.T) {
	var gotSource, gotContent string
	repo := &MockQuestionRepository{
		CreateQuestionsFunc: func(ctx context.Context, drafts []domain.QuestionDraft, category, source string, userID *int64) ([]domain.Question, error) {
			gotSource = source
			return nil, nil
		},
	}
	gen := &MockQuestionGenerator{
		GenerateFunc: func(ctx context.Context, content string, count int) ([]domain.QuestionDraft, error) {
			gotContent = content
			return testDrafts(2), nil
		},
	}
	ext := &MockContentExtractor{
		ExtractFunc: func(data []byte) (string, error) {
			return "extracted page text", nil
		},
	}
	svc := newTestQuestionService(repo, gen, ext, nil)

	_, err := svc.GenerateFromPDF(context.Background(), "lecture.pdf", []byte("pdf"), 2, "PDF", domain.Anonymous())
	assert.NoError(t, err)
	assert.Equal(t, "extracted page text", gotContent)
	assert.Equal(t, "lecture.pdf", gotSource)
}

func TestDeleteQuestion_NotFound(t *testing.T) {
	repo := &MockQuestionRepository{
		DeleteQuestionFunc: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
	}
	svc := newTestQuestionService(repo, &MockQuestionGenerator{}, &MockContentExtractor{}, nil)

	_, err := svc.DeleteQuestion(context.Background(), 99)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestDeleteQuestion_InvalidatesCategoryCache(t *testing.T) {
	repo := &MockQuestionRepository{
		DeleteQuestionFunc: func(ctx context.Context, id int64) (bool, error) {
			return true, nil
		},
	}
	var deletedKey string
	cacheSvc := &MockCacheService{
		DeleteFunc: func(ctx context.Context, key string) error {
			deletedKey = key
			return nil
		},
	}
	svc := newTestQuestionService(repo, &MockQuestionGenerator{}, &MockContentExtractor{}, cacheSvc)

	result, err := svc.DeleteQuestion(context.Background(), 5)
	assert.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, int64(5), result.DeletedID)
	assert.Equal(t, cache.CategoriesKey(), deletedKey)
}

func TestGetQuestion_NotFound(t *testing.T) {
	repo := &MockQuestionRepository{
		GetQuestionFunc: func(ctx context.Context, id int64) (*domain.Question, error) {
			return nil, nil
		},
	}
	svc := newTestQuestionService(repo, &MockQuestionGenerator{}, &MockContentExtractor{}, nil)

	_, err := svc.GetQuestion(context.Background(), 404)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestListCategories_CacheMissThenStore(t *testing.T) {
	repoCalled := false
	repo := &MockQuestionRepository{
		ListCategoriesFunc: func(ctx context.Context) ([]string, error) {
			repoCalled = true
			return []string{"AI Generated", "PDF"}, nil
		},
	}
	var setKey, setValue string
	cacheSvc := &MockCacheService{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			return "", domain.ErrCacheMiss
		},
		SetFunc: func(ctx context.Context, key, value string, ttl time.Duration) error {
			setKey, setValue = key, value
			return nil
		},
	}
	svc := newTestQuestionService(repo, &MockQuestionGenerator{}, &MockContentExtractor{}, cacheSvc)

	categories, err := svc.ListCategories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"AI Generated", "PDF"}, categories)
	assert.True(t, repoCalled)
	assert.Equal(t, cache.CategoriesKey(), setKey)
	assert.JSONEq(t, `["AI Generated","PDF"]`, setValue)
}

func TestListCategories_CacheHitSkipsStore(t *testing.T) {
	repo := &MockQuestionRepository{
		ListCategoriesFunc: func(ctx context.Context) ([]string, error) {
			t.Fatal("repository should not be called on a cache hit")
			return nil, nil
		},
	}
	cacheSvc := &MockCacheService{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			return `["History","Science"]`, nil
		},
	}
	svc := newTestQuestionService(repo, &MockQuestionGenerator{}, &MockContentExtractor{}, cacheSvc)

	categories, err := svc.ListCategories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"History", "Science"}, categories)
}
