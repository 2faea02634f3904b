package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/usecase"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

func TestDashboardUseCase_StatusSummary(t *testing.T) {
	ctx := context.Background()

	jobOrderRepo := newFakeJobOrderRepository(
		&entity.JobOrder{ID: "job1", Status: entity.JobOrderStatusOpen},
		&entity.JobOrder{ID: "job2", Status: entity.JobOrderStatusOpen},
		&entity.JobOrder{ID: "job3", Status: entity.JobOrderStatusFilled},
	)
	proposalRepo := newFakeProposalRepository()
	require.NoError(t, proposalRepo.Create(ctx, &entity.Proposal{ID: "prp1", Status: entity.ProposalStatusSubmitted}))
	require.NoError(t, proposalRepo.Create(ctx, &entity.Proposal{ID: "prp2", Status: entity.ProposalStatusPlaced}))

	uc := usecase.NewDashboardUseCase(zap.NewNop(), jobOrderRepo, proposalRepo)

	t.Run("aggregates both resources by status", func(t *testing.T) {
		from := time.Now().AddDate(0, 0, -30)
		to := time.Now()

		summary, err := uc.StatusSummary(ctx, from, to)
		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.JobOrders[entity.JobOrderStatusOpen])
		assert.Equal(t, int64(1), summary.JobOrders[entity.JobOrderStatusFilled])
		assert.Equal(t, int64(1), summary.Proposals[entity.ProposalStatusSubmitted])
		assert.Equal(t, int64(1), summary.Proposals[entity.ProposalStatusPlaced])
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := uc.StatusSummary(ctx, time.Now(), time.Now().AddDate(0, 0, -1))
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})
}
