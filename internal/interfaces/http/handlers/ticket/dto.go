package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"issuetracker/internal/application/ticket/usecases"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Tags:        r.Tags,
	}
}

// UpdateTicketRequest is a partial edit: only supplied fields are applied.
type UpdateTicketRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Priority    *string   `json:"priority"`
	Tags        *[]string `json:"tags"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Tags:        r.Tags,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type ListTicketsRequest struct {
	Status   *string
	Priority *string
	Search   string
	OrderBy  string
	OrderDir string
	Page     int
	Limit    int
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:    r.Status,
		Priority:  r.Priority,
		Search:    r.Search,
		SortBy:    r.OrderBy,
		SortOrder: r.OrderDir,
		Page:      r.Page,
		Limit:     r.Limit,
	}
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	pagination := utils.ParsePagination(c)

	req := &ListTicketsRequest{
		Search:   c.Query("search"),
		OrderBy:  c.DefaultQuery("order_by", "created_at"),
		OrderDir: c.DefaultQuery("order_dir", "desc"),
		Page:     pagination.Page,
		Limit:    pagination.Limit,
	}

	if status := c.Query("status"); status != "" {
		req.Status = &status
	}

	if priority := c.Query("priority"); priority != "" {
		req.Priority = &priority
	}

	return req
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("Invalid ticket id")
	}
	return uint(id), nil
}
