package domain

import "strings"

// QuestionsPerPage is the fixed page size of every paginated listing.
const QuestionsPerPage = 10

// AllCategories selects questions from every category when starting a quiz.
const AllCategories int64 = 0

// Difficulty bounds accepted for a question
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Category represents a question category
type Category struct {
	ID   int64
	Type string
}

// NewCategory creates a new Category instance
func NewCategory(categoryType string) *Category {
	return &Category{Type: strings.TrimSpace(categoryType)}
}

// Validate validates the category
func (c *Category) Validate() error {
	if c.Type == "" {
		return NewUnprocessableError("category type is required", nil)
	}
	return nil
}

// Question represents a trivia question.
// Category refers to Category.ID; the reference is not enforced by the store.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// NewQuestion creates a new Question instance
func NewQuestion(question, answer string, category int64, difficulty int) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return NewUnprocessableError("question is required", nil)
	}
	if strings.TrimSpace(q.Answer) == "" {
		return NewUnprocessableError("answer is required", nil)
	}
	if q.Category < 1 {
		return NewUnprocessableError("category must be a positive id", nil)
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return NewUnprocessableError("difficulty must be between 1 and 5", nil)
	}
	return nil
}

// Page is a 1-indexed page of QuestionsPerPage items.
type Page struct {
	Number int
}

// NewPage creates a Page for the given 1-indexed page number
func NewPage(number int) Page {
	return Page{Number: number}
}

// Valid reports whether the page can ever contain items.
func (p Page) Valid() bool {
	return p.Number >= 1
}

// Offset is the zero-based index of the first item on the page.
func (p Page) Offset() int {
	return (p.Number - 1) * QuestionsPerPage
}

// Limit is the maximum number of items on the page.
func (p Page) Limit() int {
	return QuestionsPerPage
}

// CategoryMap converts an ordered category list into an id to type lookup.
func CategoryMap(categories []*Category) map[int64]string {
	m := make(map[int64]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
