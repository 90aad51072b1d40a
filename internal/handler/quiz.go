package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuizHandler serves quiz questions
type QuizHandler struct {
	quizzes *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizzes *service.QuizService) *QuizHandler {
	return &QuizHandler{
		quizzes: quizzes,
	}
}

// QuizRequest represents the request for the next quiz question.
// A quiz_category id of 0 selects every category.
type QuizRequest struct {
	QuizCategory      *domain.QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int                `json:"previous_questions" validate:"required"`
}

// Play godoc
// @Summary Next quiz question
// @Description Pick a random question of the category that is not in previous_questions
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body QuizRequest true "Quiz state"
// @Success 200 {object} QuizResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) Play(c echo.Context) error {
	var req QuizRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	question, err := h.quizzes.NextQuestion(c.Request().Context(), *req.QuizCategory, req.PreviousQuestions)
	if err != nil {
		if errors.Is(err, domain.ErrNoMoreQuestions) {
			return c.JSON(http.StatusOK, QuizResponse{Success: false, Question: nil})
		}
		return err
	}

	return c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}
