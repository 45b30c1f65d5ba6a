package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{name: "validation", err: NewValidationError("bad input"), wantType: ErrorTypeValidation, wantCode: http.StatusBadRequest},
		{name: "not found", err: NewNotFoundError("missing"), wantType: ErrorTypeNotFound, wantCode: http.StatusNotFound},
		{name: "conflict", err: NewConflictError("taken"), wantType: ErrorTypeConflict, wantCode: http.StatusConflict},
		{name: "internal", err: NewInternalError("boom"), wantType: ErrorTypeInternal, wantCode: http.StatusInternalServerError},
		{name: "duplicate title", err: NewDuplicateTitleError(), wantType: ErrorTypeDuplicateTitle, wantCode: http.StatusBadRequest},
		{name: "invalid state", err: NewInvalidStateError("refused"), wantType: ErrorTypeInvalidState, wantCode: http.StatusBadRequest},
		{name: "ticket not found", err: NewTicketNotFoundError(7), wantType: ErrorTypeNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestGetAppError(t *testing.T) {
	t.Run("extracts wrapped app error", func(t *testing.T) {
		wrapped := fmt.Errorf("use case failed: %w", NewValidationError("bad input"))

		appErr := GetAppError(wrapped)
		require.NotNil(t, appErr)
		assert.Equal(t, ErrorTypeValidation, appErr.Type)
	})

	t.Run("plain errors return nil", func(t *testing.T) {
		assert.Nil(t, GetAppError(errors.New("plain")))
	})
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("bad input")))
	assert.True(t, IsNotFoundError(NewTicketNotFoundError(7)))
	assert.True(t, IsConflictError(NewConflictError("taken")))
	assert.True(t, IsDuplicateTitleError(NewDuplicateTitleError()))

	assert.False(t, IsValidationError(NewNotFoundError("missing")))
	assert.False(t, IsDuplicateTitleError(NewValidationError("bad input")))
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "mysql duplicate entry", err: errors.New("Error 1062 (23000): Duplicate entry 'fix login bug' for key 'tickets.idx_title_normalized'"), want: true},
		{name: "postgres unique violation", err: errors.New(`pq: duplicate key value violates unique constraint "tickets_title_normalized_key"`), want: true},
		{name: "sqlite unique violation", err: errors.New("UNIQUE constraint failed: tickets.title_normalized"), want: true},
		{name: "unrelated error", err: errors.New("connection reset"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateError(tt.err))
		})
	}
}
