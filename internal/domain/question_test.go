package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_OffsetAndLimit(t *testing.T) {
	tests := []struct {
		name       string
		number     int
		wantValid  bool
		wantOffset int
	}{
		{"first page", 1, true, 0},
		{"second page", 2, true, 10},
		{"far page", 100, true, 990},
		{"zero page", 0, false, -10},
		{"negative page", -3, false, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.number)
			assert.Equal(t, tt.wantValid, p.Valid())
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.Equal(t, QuestionsPerPage, p.Limit())
		})
	}
}

func TestQuestion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		q       *Question
		wantErr string
	}{
		{"valid", NewQuestion("Capital of France?", "Paris", 3, 2), ""},
		{"blank question", NewQuestion("  ", "Paris", 3, 2), "question is required"},
		{"blank answer", NewQuestion("Capital of France?", "", 3, 2), "answer is required"},
		{"zero category", NewQuestion("Capital of France?", "Paris", 0, 2), "category must be a positive id"},
		{"difficulty too low", NewQuestion("Capital of France?", "Paris", 3, 0), "difficulty must be between 1 and 5"},
		{"difficulty too high", NewQuestion("Capital of France?", "Paris", 3, 6), "difficulty must be between 1 and 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var de *DomainError
			if assert.True(t, errors.As(err, &de)) {
				assert.Equal(t, CodeUnprocessable, de.Code)
				assert.Equal(t, tt.wantErr, de.Message)
			}
		})
	}
}

func TestCategory_Validate(t *testing.T) {
	assert.NoError(t, NewCategory(" Art ").Validate())
	assert.Equal(t, "Art", NewCategory(" Art ").Type)
	assert.Error(t, NewCategory("   ").Validate())
}

func TestCategoryMap(t *testing.T) {
	m := CategoryMap([]*Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}})
	assert.Equal(t, map[int64]string{1: "Science", 2: "Art"}, m)
	assert.Empty(t, CategoryMap(nil))
}

func TestDomainError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewUnprocessableError("failed to delete question", cause)

	assert.Equal(t, "failed to delete question: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	notFound := NewQuestionNotFoundError(42)
	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", notFound)))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, int64(42), notFound.Context["question_id"])

	b, marshalErr := notFound.MarshalJSON()
	assert.NoError(t, marshalErr)
	assert.JSONEq(t, `{"code":"NOT_FOUND","message":"Question not found with ID: 42"}`, string(b))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "question", Tag: "required", Message: "question is required"},
		{Field: "difficulty", Tag: "lte", Message: "difficulty must be at most 5"},
	}
	assert.Equal(t, "validation failed: question is required; difficulty must be at most 5", errs.Error())
}
