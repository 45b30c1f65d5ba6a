package usecases

import (
	"context"

	"issuetracker/internal/application/ticket/dto"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	Tags        []string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title)

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.Priority, cmd.Tags)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		// The unique index on the normalized title is the authoritative
		// duplicate check; there is no read-before-write race window.
		if errors.IsDuplicateError(err) {
			uc.logger.Warnw("duplicate ticket title", "title", newTicket.Title())
			return nil, errors.NewDuplicateTitleError()
		}
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	result := dto.ToTicketDTO(newTicket)
	return &result, nil
}
