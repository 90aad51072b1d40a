package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// AllCategories is the quiz category ID that selects questions from every category.
const AllCategories = 0

var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category lookups.
// Categories are managed outside the API and are read-only here.
type CategoryRepository interface {
	// List retrieves every category ordered by ID
	List(ctx context.Context) ([]*Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int) (*Category, error)
}

// Category represents a question category
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// QuizCategory is the category selector sent by quiz clients
type QuizCategory struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// UnmarshalJSON accepts the id either as a JSON number or as a numeric string
func (q *QuizCategory) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   json.Number `json:"id"`
		Type string      `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id := AllCategories
	if raw.ID != "" {
		n, err := strconv.Atoi(raw.ID.String())
		if err != nil {
			return fmt.Errorf("invalid quiz category id %q: %w", raw.ID, err)
		}
		id = n
	}

	q.ID = id
	q.Type = raw.Type
	return nil
}

// IsAll reports whether the selector covers every category
func (q QuizCategory) IsAll() bool {
	return q.ID == AllCategories
}

// CategoryMap converts categories into the id-keyed label mapping served to clients.
func CategoryMap(categories []*Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
