package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuetracker/internal/domain/ticket"
	vo "issuetracker/internal/domain/ticket/valueobjects"
	apperrors "issuetracker/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only supplied fields", func(t *testing.T) {
		var updated *ticket.Ticket
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, id, vo.StatusOpen, "Session expires early"), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}
		uc := NewUpdateTicketUseCase(repo, &mockLogger{})

		result, err := uc.Execute(ctx, UpdateTicketCommand{
			TicketID: 1,
			Title:    strPtr("Fix session refresh"),
			Priority: strPtr("high"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, "Fix session refresh", result.Title)
		assert.Equal(t, "high", result.Priority)
		assert.Equal(t, "Session expires early", result.Description)
		assert.Equal(t, []string{"auth"}, result.Tags)
	})

	t.Run("empty command returns current state without writing", func(t *testing.T) {
		wrote := false
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, id, vo.StatusOpen, "Session expires early"), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				wrote = true
				return nil
			},
		}
		uc := NewUpdateTicketUseCase(repo, &mockLogger{})

		result, err := uc.Execute(ctx, UpdateTicketCommand{TicketID: 1})
		require.NoError(t, err)
		assert.False(t, wrote)
		assert.Equal(t, "Fix login bug", result.Title)
	})

	t.Run("replaces tags with empty list", func(t *testing.T) {
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, id, vo.StatusOpen, ""), nil
			},
		}
		uc := NewUpdateTicketUseCase(repo, &mockLogger{})

		tags := []string{}
		result, err := uc.Execute(ctx, UpdateTicketCommand{TicketID: 1, Tags: &tags})
		require.NoError(t, err)
		assert.Equal(t, []string{}, result.Tags)
	})

	t.Run("rejects invalid title before writing", func(t *testing.T) {
		wrote := false
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, id, vo.StatusOpen, ""), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				wrote = true
				return nil
			},
		}
		uc := NewUpdateTicketUseCase(repo, &mockLogger{})

		_, err := uc.Execute(ctx, UpdateTicketCommand{TicketID: 1, Title: strPtr("ab")})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
		assert.False(t, wrote)
	})

	t.Run("missing ticket surfaces not found", func(t *testing.T) {
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, apperrors.NewTicketNotFoundError(id)
			},
		}
		uc := NewUpdateTicketUseCase(repo, &mockLogger{})

		_, err := uc.Execute(ctx, UpdateTicketCommand{TicketID: 99, Title: strPtr("New title")})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("maps duplicate key to duplicate title error", func(t *testing.T) {
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, id, vo.StatusOpen, ""), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return errors.New("Error 1062 (23000): Duplicate entry 'taken title' for key 'tickets.idx_tickets_title_normalized'")
			},
		}
		uc := NewUpdateTicketUseCase(repo, &mockLogger{})

		_, err := uc.Execute(ctx, UpdateTicketCommand{TicketID: 1, Title: strPtr("Taken title")})
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateTitleError(err))
	})
}
