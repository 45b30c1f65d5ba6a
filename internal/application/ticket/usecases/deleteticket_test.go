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

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes open ticket", func(t *testing.T) {
		var deletedID uint
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, id, vo.StatusOpen, ""), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}
		uc := NewDeleteTicketUseCase(repo, &mockLogger{})

		require.NoError(t, uc.Execute(ctx, DeleteTicketCommand{TicketID: 7}))
		assert.Equal(t, uint(7), deletedID)
	})

	t.Run("deletes resolved ticket", func(t *testing.T) {
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, id, vo.StatusResolved, "Session token now refreshes"), nil
			},
		}
		uc := NewDeleteTicketUseCase(repo, &mockLogger{})

		assert.NoError(t, uc.Execute(ctx, DeleteTicketCommand{TicketID: 7}))
	})

	t.Run("refuses in_progress ticket", func(t *testing.T) {
		deleted := false
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, id, vo.StatusInProgress, ""), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			},
		}
		uc := NewDeleteTicketUseCase(repo, &mockLogger{})

		err := uc.Execute(ctx, DeleteTicketCommand{TicketID: 7})
		require.Error(t, err)
		assert.Equal(t, "Cannot delete tickets in progress", apperrors.GetAppError(err).Message)
		assert.False(t, deleted)
	})

	t.Run("missing ticket surfaces not found", func(t *testing.T) {
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, apperrors.NewTicketNotFoundError(id)
			},
		}
		uc := NewDeleteTicketUseCase(repo, &mockLogger{})

		err := uc.Execute(ctx, DeleteTicketCommand{TicketID: 99})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("propagates delete failure", func(t *testing.T) {
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, id, vo.StatusOpen, ""), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				return errors.New("connection reset")
			},
		}
		uc := NewDeleteTicketUseCase(repo, &mockLogger{})

		assert.Error(t, uc.Execute(ctx, DeleteTicketCommand{TicketID: 7}))
	})
}
