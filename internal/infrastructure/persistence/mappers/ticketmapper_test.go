package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuetracker/internal/domain/ticket"
	vo "issuetracker/internal/domain/ticket/valueobjects"
	"issuetracker/internal/infrastructure/persistence/models"
)

func TestTicketMapper_ToModel(t *testing.T) {
	mapper := NewTicketMapper()

	resolvedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	tk, err := ticket.ReconstructTicket(7, "Fix Login Bug", "Session token now refreshes",
		vo.StatusResolved, vo.PriorityHigh, []string{"auth", "backend"},
		resolvedAt.Add(-2*time.Hour), resolvedAt, &resolvedAt)
	require.NoError(t, err)

	model := mapper.ToModel(tk)

	assert.Equal(t, uint(7), model.ID)
	assert.Equal(t, "Fix Login Bug", model.Title)
	assert.Equal(t, "fix login bug", model.TitleNormalized)
	assert.Equal(t, "resolved", model.Status)
	assert.Equal(t, "high", model.Priority)
	assert.Equal(t, `["auth","backend"]`, model.Tags)
	assert.Equal(t, resolvedAt.UnixMilli(), model.UpdatedAt)
	require.NotNil(t, model.ResolvedAt)
	assert.Equal(t, resolvedAt.UnixMilli(), *model.ResolvedAt)
}

func TestTicketMapper_ToModel_EmptyTags(t *testing.T) {
	mapper := NewTicketMapper()

	tk, err := ticket.NewTicket("Fix login bug", "", "", nil)
	require.NoError(t, err)

	model := mapper.ToModel(tk)
	assert.Equal(t, `[]`, model.Tags)
	assert.Nil(t, model.ResolvedAt)
}

func TestTicketMapper_ToDomain(t *testing.T) {
	mapper := NewTicketMapper()

	now := time.Now().UnixMilli()

	t.Run("round-trips stored fields", func(t *testing.T) {
		resolved := now - 1000
		model := &models.TicketModel{
			ID:              7,
			Title:           "Fix Login Bug",
			TitleNormalized: "fix login bug",
			Description:     "Session token now refreshes",
			Status:          "resolved",
			Priority:        "low",
			Tags:            `["auth","backend"]`,
			CreatedAt:       now - 5000,
			UpdatedAt:       now,
			ResolvedAt:      &resolved,
		}

		tk, err := mapper.ToDomain(model)
		require.NoError(t, err)

		assert.Equal(t, uint(7), tk.ID())
		assert.Equal(t, vo.StatusResolved, tk.Status())
		assert.Equal(t, vo.PriorityLow, tk.Priority())
		assert.Equal(t, []string{"auth", "backend"}, tk.Tags())
		assert.Equal(t, now, tk.UpdatedAt().UnixMilli())
		require.NotNil(t, tk.ResolvedAt())
		assert.Equal(t, resolved, tk.ResolvedAt().UnixMilli())
	})

	t.Run("unparsable tags degrade to empty", func(t *testing.T) {
		model := &models.TicketModel{
			ID:       1,
			Title:    "Fix login bug",
			Status:   "open",
			Priority: "medium",
			Tags:     `{not json`,
		}

		tk, err := mapper.ToDomain(model)
		require.NoError(t, err)
		assert.Equal(t, []string{}, tk.Tags())
	})

	t.Run("empty tags column reads as empty slice", func(t *testing.T) {
		model := &models.TicketModel{
			ID:       1,
			Title:    "Fix login bug",
			Status:   "open",
			Priority: "medium",
		}

		tk, err := mapper.ToDomain(model)
		require.NoError(t, err)
		assert.Equal(t, []string{}, tk.Tags())
	})

	t.Run("unknown status fails", func(t *testing.T) {
		model := &models.TicketModel{
			ID:       1,
			Title:    "Fix login bug",
			Status:   "archived",
			Priority: "medium",
		}

		_, err := mapper.ToDomain(model)
		assert.Error(t, err)
	})
}
