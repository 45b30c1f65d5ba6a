package ticket

import (
	"context"

	vo "issuetracker/internal/domain/ticket/valueobjects"
)

// Repository is the durable store for tickets. Title uniqueness is enforced
// at this layer: Save and Update fail with a duplicate error when the
// normalized title collides with another ticket.
type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context) (map[vo.Status]int64, error)
}

// Filter restricts and orders a listing. Absent pointers impose no
// constraint; predicates combine with AND. The same predicates drive both
// the page query and the total count.
type Filter struct {
	Status    *vo.Status
	Priority  *vo.Priority
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}
