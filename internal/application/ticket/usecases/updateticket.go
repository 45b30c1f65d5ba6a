package usecases

import (
	"context"

	"issuetracker/internal/application/ticket/dto"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

// UpdateTicketCommand carries a partial edit. Each field is independently
// present or absent; absent fields are not validated and not written.
type UpdateTicketCommand struct {
	TicketID    uint
	Title       *string
	Description *string
	Priority    *string
	Tags        *[]string
}

// hasChanges reports whether at least one field was supplied.
func (cmd UpdateTicketCommand) hasChanges() bool {
	return cmd.Title != nil || cmd.Description != nil || cmd.Priority != nil || cmd.Tags != nil
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !cmd.hasChanges() {
		result := dto.ToTicketDTO(t)
		return &result, nil
	}

	if cmd.Title != nil {
		if err := t.Rename(*cmd.Title); err != nil {
			uc.logger.Warnw("invalid title on update", "ticket_id", cmd.TicketID, "error", err)
			return nil, err
		}
	}

	if cmd.Description != nil {
		if err := t.EditDescription(*cmd.Description); err != nil {
			uc.logger.Warnw("invalid description on update", "ticket_id", cmd.TicketID, "error", err)
			return nil, err
		}
	}

	if cmd.Priority != nil {
		if err := t.ChangePriority(*cmd.Priority); err != nil {
			uc.logger.Warnw("invalid priority on update", "ticket_id", cmd.TicketID, "error", err)
			return nil, err
		}
	}

	if cmd.Tags != nil {
		t.ReplaceTags(*cmd.Tags)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		// Uniqueness excludes this id by construction: the colliding row is
		// always a different ticket.
		if errors.IsDuplicateError(err) {
			uc.logger.Warnw("duplicate ticket title on update", "ticket_id", cmd.TicketID)
			return nil, errors.NewDuplicateTitleError()
		}
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID)

	result := dto.ToTicketDTO(t)
	return &result, nil
}
