package ticket

import (
	"strings"
	"unicode/utf8"

	"issuetracker/internal/shared/errors"
)

// Field constraints. Lengths are measured in characters on trimmed values,
// not bytes, so multibyte text counts the way a user would count it.
const (
	TitleMinLength        = 3
	TitleMaxLength        = 80
	DescriptionMaxLength  = 2000
	ResolveDescriptionMin = 10
	ReasonMinLength       = 3
)

// ValidateTitle trims the raw title and checks its length bounds.
// Returns the trimmed title on success.
func ValidateTitle(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(trimmed)
	if length < TitleMinLength || length > TitleMaxLength {
		return "", errors.NewValidationError("Title must be between 3 and 80 characters")
	}
	return trimmed, nil
}

// ValidateDescription trims the raw description and checks the upper bound.
// There is no lower bound at creation; the minimum only applies when
// resolving (see ValidateResolutionDescription).
func ValidateDescription(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) > DescriptionMaxLength {
		return "", errors.NewValidationError("Description must not exceed 2000 characters")
	}
	return trimmed, nil
}

// ValidateResolutionDescription checks that the description is substantial
// enough for the ticket to enter resolved status.
func ValidateResolutionDescription(description string) error {
	if utf8.RuneCountInString(strings.TrimSpace(description)) < ResolveDescriptionMin {
		return errors.NewValidationError("Description must have at least 10 characters to resolve")
	}
	return nil
}

// ValidateReason trims the caller-supplied reason and checks it is present.
// A reason is required whenever a ticket leaves resolved status.
func ValidateReason(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) < ReasonMinLength {
		return "", errors.NewValidationError("Reason is required to change from resolved status")
	}
	return trimmed, nil
}

// NormalizeTitle lowercases a trimmed title for case-insensitive
// uniqueness comparison.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
