package usecases

import (
	"context"

	"issuetracker/internal/application/ticket/dto"
	"issuetracker/internal/domain/ticket"
	vo "issuetracker/internal/domain/ticket/valueobjects"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID uint
	Status   string
	Reason   string
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	target, err := vo.NewStatus(cmd.Status)
	if err != nil {
		uc.logger.Warnw("invalid target status", "status", cmd.Status)
		return nil, errors.NewValidationError("Status must be open, in_progress, or resolved")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	oldStatus := t.Status()

	if err := t.Transition(target, cmd.Reason); err != nil {
		uc.logger.Warnw("status transition refused",
			"ticket_id", cmd.TicketID,
			"from", oldStatus,
			"to", target,
			"error", err)
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed successfully",
		"ticket_id", cmd.TicketID,
		"old_status", oldStatus,
		"new_status", target)

	result := dto.ToTicketDTO(t)
	return &result, nil
}
