package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/lead-intake-service/internal/domain"
)

func newLead(id int64, visas ...string) *domain.Lead {
	email := "applicant@example.com"
	return &domain.Lead{
		ID:              id,
		Email:           &email,
		VisasOfInterest: visas,
		Status:          domain.LeadStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestMemoryRepositoryListEmpty(t *testing.T) {
	repo := NewMemoryLeadRepository()

	leads, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestMemoryRepositoryAppendPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryLeadRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, newLead(3, "Work Visa")))
	require.NoError(t, repo.Append(ctx, newLead(1, "Student Visa")))
	require.NoError(t, repo.Append(ctx, newLead(2, "Tourist Visa")))

	leads, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 3)
	assert.Equal(t, int64(3), leads[0].ID)
	assert.Equal(t, int64(1), leads[1].ID)
	assert.Equal(t, int64(2), leads[2].ID)
}

func TestMemoryRepositoryListReturnsSnapshot(t *testing.T) {
	repo := NewMemoryLeadRepository()
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, newLead(1, "Work Visa")))

	snapshot, err := repo.List(ctx)
	require.NoError(t, err)

	snapshot[0].Status = domain.LeadStatusReachedOut
	snapshot[0].VisasOfInterest[0] = "mutated"

	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusPending, fresh[0].Status)
	assert.Equal(t, "Work Visa", fresh[0].VisasOfInterest[0])
}

func TestMemoryRepositoryUpdateStatus(t *testing.T) {
	repo := NewMemoryLeadRepository()
	ctx := context.Background()
	lead := newLead(42, "Work Visa")
	require.NoError(t, repo.Append(ctx, lead))

	updated, err := repo.UpdateStatus(ctx, 42, domain.LeadStatusReachedOut)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusReachedOut, updated.Status)
	assert.Equal(t, lead.CreatedAt, updated.CreatedAt)

	leads, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusReachedOut, leads[0].Status)
}

func TestMemoryRepositoryUpdateStatusUnknownID(t *testing.T) {
	repo := NewMemoryLeadRepository()

	_, err := repo.UpdateStatus(context.Background(), 999, domain.LeadStatusReachedOut)
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestMemoryRepositoryReset(t *testing.T) {
	repo := NewMemoryLeadRepository()
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, newLead(1, "Work Visa")))

	repo.(*memoryLeadRepository).Reset()

	leads, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, leads)
}
