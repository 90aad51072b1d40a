package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questions *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questions *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questions: questions,
	}
}

// CreateQuestionRequest represents the request to create a new question.
// Fields are pointers so that an omitted field can be told apart from a zero value.
type CreateQuestionRequest struct {
	Question   *string `json:"question" validate:"required"`
	Answer     *string `json:"answer" validate:"required"`
	Category   *int    `json:"category" validate:"required"`
	Difficulty *int    `json:"difficulty" validate:"required"`
}

// SearchRequest represents a question search
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" validate:"required"`
}

// List godoc
// @Summary List questions
// @Description List questions ten per page together with every category
// @Tags questions
// @Produce json
// @Param page query int false "1-based page number"
// @Success 200 {object} QuestionPageResponse
// @Failure 500 {object} ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) List(c echo.Context) error {
	page := 1
	if err := echo.QueryParamsBinder(c).Int("page", &page).BindError(); err != nil {
		page = 1
		// a page number too large for int is past the last page
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(c.QueryParam("page"), "-") {
			page = math.MaxInt
		}
	}

	result, err := h.questions.Page(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuestionPageResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		Categories:      result.Categories,
		CurrentCategory: nil,
	})
}

// Delete godoc
// @Summary Delete question
// @Description Permanently delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} DeletedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) Delete(c echo.Context) error {
	var id int
	if err := echo.PathParamsBinder(c).MustInt("id", &id).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid question id").SetInternal(err)
	}

	if err := h.questions.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DeletedResponse{
		Success: true,
		Deleted: id,
	})
}

// Create godoc
// @Summary Create question
// @Description Create a question from its text, answer, category and difficulty
// @Tags questions
// @Accept json
// @Produce json
// @Param question body CreateQuestionRequest true "Question data"
// @Success 200 {object} CreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) Create(c echo.Context) error {
	var req CreateQuestionRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	id, err := h.questions.Create(c.Request().Context(), &domain.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CreatedResponse{
		Success: true,
		Created: id,
	})
}

// Search godoc
// @Summary Search questions
// @Description Case-insensitive substring search over question text. An empty term matches everything.
// @Tags questions
// @Accept json
// @Produce json
// @Param search body SearchRequest true "Search term"
// @Success 200 {object} QuestionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions/search [post]
func (h *QuestionHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	questions, err := h.questions.Search(c.Request().Context(), *req.SearchTerm)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
	})
}
