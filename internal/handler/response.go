package handler

import "github.com/zizouhuweidi/trivia/internal/domain"

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// CategoriesResponse lists every category as an id to label mapping
type CategoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

// QuestionPageResponse is one page of the question listing
type QuestionPageResponse struct {
	Success         bool               `json:"success"`
	Questions       []*domain.Question `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      map[int]string     `json:"categories"`
	CurrentCategory *string            `json:"current_category"`
}

// QuestionsResponse is returned by search and category filtering
type QuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []*domain.Question `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *string            `json:"current_category"`
}

// CreatedResponse carries the ID of a new question
type CreatedResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}

// DeletedResponse carries the ID of a deleted question
type DeletedResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}

// QuizResponse carries the next quiz question, or null when the pool is exhausted
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}
