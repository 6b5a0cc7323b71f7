package handler

import (
	"io"
	"strings"

	"quizgen/internal/domain"
	"quizgen/internal/dto"
	"quizgen/internal/middleware"
	"quizgen/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultCount         = 10
	maxCount             = 30
	defaultListLimit     = 50
	maxListLimit         = 200
	defaultTopicCategory = "AI Generated"
	defaultPDFCategory   = "PDF"
)

// QuestionHandler handles generation and question CRUD requests.
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance.
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// GenerateFromTopic godoc
// @Summary Generate questions from a topic
// @Description Asks the LLM for multiple-choice questions about a text topic and persists them.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body dto.GenerateFromTopicRequest true "Topic and count"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /api/generate/topic [post]
func (h *QuestionHandler) GenerateFromTopic(c *fiber.Ctx) error {
	var req dto.GenerateFromTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	if req.Count == 0 {
		req.Count = defaultCount
	}
	if req.Category == "" {
		req.Category = defaultTopicCategory
	}
	if strings.TrimSpace(req.Topic) == "" {
		return domain.NewInvalidInputError("topic must not be empty")
	}
	if req.Count < 1 || req.Count > maxCount {
		return domain.NewInvalidInputError("count must be between 1 and 30")
	}

	identity := middleware.IdentityFromCtx(c)
	questions, err := h.service.GenerateFromTopic(c.Context(), req.Topic, req.Count, req.Category, identity)
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// GenerateFromPDF godoc
// @Summary Generate questions from an uploaded PDF
// @Description Extracts text from the uploaded PDF and generates questions from it.
// @Tags generate
// @Accept mpfd
// @Produce json
// @Param file formData file true "PDF file"
// @Param count query int false "Number of questions (1-30)"
// @Param category query string false "Category label"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /api/generate/pdf [post]
func (h *QuestionHandler) GenerateFromPDF(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("file upload is required")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return domain.NewInvalidInputError("Only PDF files are accepted")
	}

	count := c.QueryInt("count", defaultCount)
	if count < 1 || count > maxCount {
		return domain.NewInvalidInputError("count must be between 1 and 30")
	}
	category := c.Query("category", defaultPDFCategory)

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("failed to open uploaded file", err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError("failed to read uploaded file", err)
	}

	identity := middleware.IdentityFromCtx(c)
	questions, err := h.service.GenerateFromPDF(c.Context(), fileHeader.Filename, data, count, category, identity)
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns questions newest-first with pagination and optional filters.
// @Tags questions
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (1-200)"
// @Param category query string false "Exact category match"
// @Param source query string false "Case-insensitive source substring"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /api/questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", defaultListLimit)
	if skip < 0 {
		return domain.NewInvalidInputError("skip must not be negative")
	}
	if limit < 1 || limit > maxListLimit {
		return domain.NewInvalidInputError("limit must be between 1 and 200")
	}

	questions, err := h.service.ListQuestions(c.Context(), skip, limit, c.Query("category"), c.Query("source"))
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.NewInvalidInputError("question id must be an integer")
	}

	question, err := h.service.GetQuestion(c.Context(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Removes a question. Requires authentication.
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.NewInvalidInputError("question id must be an integer")
	}

	result, err := h.service.DeleteQuestion(c.Context(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetCategories godoc
// @Summary List categories
// @Description Returns the distinct non-empty categories, sorted ascending.
// @Tags questions
// @Produce json
// @Success 200 {array} string
// @Router /api/categories [get]
func (h *QuestionHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		return err
	}
	if categories == nil {
		categories = []string{}
	}
	return c.JSON(categories)
}
