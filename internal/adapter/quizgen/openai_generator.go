package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"quizgen/internal/config"
	"quizgen/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// maxContentChars bounds the amount of source content embedded in the prompt.
const maxContentChars = 10_000

const promptTemplate = `You are an expert at creating educational quizzes.
Based on the topic/text below, generate %d quiz questions.

RULES:
- Every question must have exactly 4 answers
- Only one answer is correct
- Questions test UNDERSTANDING, not keyword recall
- Include a short explanation of why the answer is correct

TOPIC/TEXT:
%s

Respond ONLY with JSON (no markdown, no fences):
[
  {
    "question": "Question text?",
    "answers": ["Answer A", "Answer B", "Answer C", "Answer D"],
    "correct": 0,
    "explanation": "Short explanation"
  }
]`

// OpenAIQuestionGenerator implements domain.QuestionGenerator on top of an
// OpenAI chat model via langchaingo.
type OpenAIQuestionGenerator struct {
	llm         llms.Model
	temperature float64
	logger      *zap.Logger
}

// NewOpenAIQuestionGenerator creates the generator. A missing API key is not
// fatal here: the generator stays unconfigured and every Generate call fails
// fast with a service-unavailable error before any network activity.
func NewOpenAIQuestionGenerator(cfg config.LLMConfig, logger *zap.Logger) (domain.QuestionGenerator, error) {
	if cfg.APIKey == "" {
		logger.Warn("OpenAI API key not configured; question generation disabled")
		return &OpenAIQuestionGenerator{temperature: cfg.Temperature, logger: logger}, nil
	}

	llm, err := openai.New(openai.WithToken(cfg.APIKey), openai.WithModel(cfg.Model))
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}
	logger.Info("OpenAI question generator initialized", zap.String("model", cfg.Model))
	return &OpenAIQuestionGenerator{llm: llm, temperature: cfg.Temperature, logger: logger}, nil
}

// Generate builds the prompt, invokes the model once and parses the first
// completion as a JSON array of question drafts.
func (g *OpenAIQuestionGenerator) Generate(ctx context.Context, content string, count int) ([]domain.QuestionDraft, error) {
	if g.llm == nil {
		return nil, domain.NewLLMNotConfiguredError()
	}

	if len(content) > maxContentChars {
		content = content[:maxContentChars]
	}
	prompt := fmt.Sprintf(promptTemplate, count, content)

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		g.logger.Error("LLM completion failed", zap.Error(err))
		return nil, domain.NewLLMServiceError("LLM completion failed", err)
	}

	drafts, err := parseDrafts(raw)
	if err != nil {
		g.logger.Error("Failed to parse LLM response",
			zap.Error(err),
			zap.String("response", raw))
		return nil, domain.NewLLMServiceError("LLM returned an unusable response", err)
	}

	g.logger.Info("Generated question drafts", zap.Int("count", len(drafts)))
	return drafts, nil
}

// parseDrafts strips any code fences the model added despite instructions,
// parses the JSON array and validates each draft's shape.
func parseDrafts(raw string) ([]domain.QuestionDraft, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var drafts []domain.QuestionDraft
	if err := json.Unmarshal([]byte(raw), &drafts); err != nil {
		return nil, fmt.Errorf("invalid JSON from LLM: %w", err)
	}

	for i := range drafts {
		if err := drafts[i].Validate(); err != nil {
			return nil, fmt.Errorf("draft %d: %w", i, err)
		}
	}
	return drafts, nil
}

var _ domain.QuestionGenerator = (*OpenAIQuestionGenerator)(nil)
