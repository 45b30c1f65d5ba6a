package errors

import (
	"fmt"
	"net/http"
)

// Ticket-specific error types
const (
	ErrorTypeDuplicateTitle ErrorType = "duplicate_title"
	ErrorTypeInvalidState   ErrorType = "invalid_state"
)

// NewDuplicateTitleError creates an error for a case-insensitive title collision.
// The API contract reports duplicates as 400, not 409.
func NewDuplicateTitleError() *AppError {
	return &AppError{
		Type:    ErrorTypeDuplicateTitle,
		Message: "Title must be unique",
		Code:    http.StatusBadRequest,
	}
}

// NewTicketNotFoundError creates an error for a missing ticket id
func NewTicketNotFoundError(ticketID uint) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: "Ticket not found",
		Code:    http.StatusNotFound,
		Details: fmt.Sprintf("ticket %d", ticketID),
	}
}

// NewInvalidStateError creates an error for an operation refused in the
// ticket's current status, such as deleting a ticket that is in progress
func NewInvalidStateError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidState,
		Message: message,
		Code:    http.StatusBadRequest,
	}
}

// IsDuplicateTitleError checks if the error is a duplicate title error
func IsDuplicateTitleError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeDuplicateTitle
}
