package usecases

import (
	"context"

	"issuetracker/internal/application/ticket/dto"
	"issuetracker/internal/domain/ticket"
	vo "issuetracker/internal/domain/ticket/valueobjects"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
	"issuetracker/internal/shared/utils"
)

type ListTicketsQuery struct {
	Status    *string
	Priority  *string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type ListTicketsResult struct {
	Tickets    []dto.TicketDTO
	Pagination dto.PaginationDTO
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Debugw("executing list tickets use case",
		"page", query.Page,
		"limit", query.Limit,
		"search", query.Search)

	pagination := utils.ValidatePagination(query.Page, query.Limit)

	filter := ticket.Filter{
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Page:      pagination.Page,
		Limit:     pagination.Limit,
	}

	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	if query.Status != nil {
		status, err := vo.NewStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError("Status must be open, in_progress, or resolved")
		}
		filter.Status = &status
	}

	if query.Priority != nil {
		priority, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("Priority must be low, medium, or high")
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	items := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketDTO(t))
	}

	return &ListTicketsResult{
		Tickets: items,
		Pagination: dto.PaginationDTO{
			Page:  pagination.Page,
			Limit: pagination.Limit,
			Total: total,
			Pages: utils.TotalPages(total, pagination.Limit),
		},
	}, nil
}
