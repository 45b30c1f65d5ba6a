package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "issuetracker/internal/domain/ticket/valueobjects"
)

func TestGetTicketStatsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("reports counts per status", func(t *testing.T) {
		repo := &mockTicketRepository{
			CountByStatusFunc: func(ctx context.Context) (map[vo.Status]int64, error) {
				return map[vo.Status]int64{
					vo.StatusOpen:     3,
					vo.StatusResolved: 1,
				}, nil
			},
		}
		uc := NewGetTicketStatsUseCase(repo, &mockLogger{})

		stats, err := uc.Execute(ctx)
		require.NoError(t, err)

		assert.Equal(t, int64(3), stats.Open)
		assert.Equal(t, int64(0), stats.InProgress)
		assert.Equal(t, int64(1), stats.Resolved)
	})

	t.Run("empty store reports all zeros", func(t *testing.T) {
		uc := NewGetTicketStatsUseCase(&mockTicketRepository{}, &mockLogger{})

		stats, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Open)
		assert.Zero(t, stats.InProgress)
		assert.Zero(t, stats.Resolved)
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		repo := &mockTicketRepository{
			CountByStatusFunc: func(ctx context.Context) (map[vo.Status]int64, error) {
				return nil, errors.New("connection reset")
			},
		}
		uc := NewGetTicketStatsUseCase(repo, &mockLogger{})

		_, err := uc.Execute(ctx)
		assert.Error(t, err)
	})
}
