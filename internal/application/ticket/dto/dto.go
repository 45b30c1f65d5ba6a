package dto

import (
	"time"

	"issuetracker/internal/domain/ticket"
)

// TicketDTO is the wire representation of a ticket.
type TicketDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
}

// ToTicketDTO converts a domain ticket to its wire representation.
// Tags serialize as an empty array rather than null.
func ToTicketDTO(t *ticket.Ticket) TicketDTO {
	tags := t.Tags()
	if tags == nil {
		tags = []string{}
	}

	return TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		Tags:        tags,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ResolvedAt:  t.ResolvedAt(),
	}
}

// PaginationDTO is the pagination metadata of a list response.
type PaginationDTO struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// StatsDTO reports the ticket count per status. Every status is present,
// defaulting to zero.
type StatsDTO struct {
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
}
