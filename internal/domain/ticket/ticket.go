package ticket

import (
	"fmt"
	"time"

	vo "issuetracker/internal/domain/ticket/valueobjects"
	"issuetracker/internal/shared/errors"
)

type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.Status
	priority    vo.Priority
	tags        []string
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
}

// NewTicket creates a ticket in open status with validated fields.
// An empty priority defaults to medium. Tags keep their order and may
// contain duplicates.
func NewTicket(title, description, priority string, tags []string) (*Ticket, error) {
	trimmedTitle, err := ValidateTitle(title)
	if err != nil {
		return nil, err
	}

	trimmedDescription, err := ValidateDescription(description)
	if err != nil {
		return nil, err
	}

	p := vo.DefaultPriority
	if priority != "" {
		p, err = vo.NewPriority(priority)
		if err != nil {
			return nil, errors.NewValidationError("Priority must be low, medium, or high")
		}
	}

	if tags == nil {
		tags = []string{}
	}
	tagsCopy := make([]string, len(tags))
	copy(tagsCopy, tags)

	now := time.Now()

	return &Ticket{
		title:       trimmedTitle,
		description: trimmedDescription,
		status:      vo.StatusOpen,
		priority:    p,
		tags:        tagsCopy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from stored state without re-running
// creation rules. Used by the persistence layer.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.Status,
	priority vo.Priority,
	tags []string,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if tags == nil {
		tags = []string{}
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		tags:        tags,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

// NormalizedTitle is the lowercased trimmed title under which uniqueness
// is enforced.
func (t *Ticket) NormalizedTitle() string {
	return NormalizeTitle(t.title)
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Rename validates and applies a new title.
func (t *Ticket) Rename(title string) error {
	trimmed, err := ValidateTitle(title)
	if err != nil {
		return err
	}
	t.title = trimmed
	t.updatedAt = time.Now()
	return nil
}

// EditDescription validates and applies a new description.
func (t *Ticket) EditDescription(description string) error {
	trimmed, err := ValidateDescription(description)
	if err != nil {
		return err
	}
	t.description = trimmed
	t.updatedAt = time.Now()
	return nil
}

// ChangePriority validates and applies a new priority.
func (t *Ticket) ChangePriority(priority string) error {
	p, err := vo.NewPriority(priority)
	if err != nil {
		return errors.NewValidationError("Priority must be low, medium, or high")
	}
	t.priority = p
	t.updatedAt = time.Now()
	return nil
}

// ReplaceTags swaps the tag sequence, preserving caller order.
func (t *Ticket) ReplaceTags(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	tagsCopy := make([]string, len(tags))
	copy(tagsCopy, tags)
	t.tags = tagsCopy
	t.updatedAt = time.Now()
}

// CanBeDeleted reports whether the ticket may be removed.
// Tickets that are in progress must leave that status first.
func (t *Ticket) CanBeDeleted() bool {
	return !t.status.IsInProgress()
}
