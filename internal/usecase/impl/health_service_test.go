package impl

import (
	"context"
	"testing"

	domainerrors "catalog/internal/domain/errors"
	mockRepo "catalog/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHealthService(t *testing.T) (*healthService, *mockRepo.MockHealthCheckRepository) {
	repo := mockRepo.NewMockHealthCheckRepository(t)
	srv := NewHealthService(HealthServiceParams{HealthRepo: repo, Logger: newDiscardLogger()}).(*healthService)
	srv.now = fixedClock(fixedNow)

	return srv, repo
}

func TestHealthService_Probe(t *testing.T) {
	srv, repo := createTestHealthService(t)
	ctx := context.Background()

	repo.EXPECT().Record(ctx, fixedNow).Return(nil)

	require.NoError(t, srv.Probe(ctx))
}

func TestHealthService_Probe_WriteFailure(t *testing.T) {
	srv, repo := createTestHealthService(t)
	ctx := context.Background()

	repo.EXPECT().Record(ctx, fixedNow).Return(errors.New("read-only transaction")).Once()

	err := srv.Probe(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}
