package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/lead-intake-service/internal/config"
	"github.com/spec-kit/lead-intake-service/internal/domain"
	"github.com/spec-kit/lead-intake-service/internal/events"
	"github.com/spec-kit/lead-intake-service/internal/repository"
	"github.com/spec-kit/lead-intake-service/internal/validation"
	apperrors "github.com/spec-kit/lead-intake-service/pkg/util"
)

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func newTestService() (*LeadService, repository.LeadRepository, *recordingDispatcher) {
	repo := repository.NewMemoryLeadRepository()
	dispatcher := &recordingDispatcher{}
	svc := NewLeadService(LeadDependencies{
		LeadRepo: repo,
		Schema: validation.NewSchema(config.UploadConfig{
			MaxResumeBytes: 5 * 1024 * 1024,
			AllowedMimeTypes: []string{
				"application/pdf",
				"application/msword",
				"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			},
		}),
		Dispatcher: dispatcher,
	})
	return svc, repo, dispatcher
}

func testCandidate() validation.Candidate {
	return validation.Candidate{
		FirstName:       "Ana",
		LastName:        "Lee",
		Email:           "ana@x.com",
		LinkedinProfile: "https://linkedin.com/in/ana",
		VisasOfInterest: `["Work Visa"]`,
		Resume: &validation.ResumeFile{
			FileName: "resume.pdf",
			Size:     2 * 1024 * 1024,
			MimeType: "application/pdf",
		},
	}
}

func TestCreateProducesPendingLead(t *testing.T) {
	svc, repo, dispatcher := newTestService()
	ctx := context.Background()

	lead, err := svc.Create(ctx, testCandidate())
	require.NoError(t, err)

	assert.Equal(t, domain.LeadStatusPending, lead.Status)
	assert.NotZero(t, lead.ID)
	assert.False(t, lead.CreatedAt.IsZero())
	require.NotNil(t, lead.FirstName)
	assert.Equal(t, "Ana", *lead.FirstName)
	assert.Equal(t, []string{"Work Visa"}, lead.VisasOfInterest)
	require.NotNil(t, lead.ResumeFileName)
	assert.Equal(t, "resume.pdf", *lead.ResumeFileName)
	require.NotNil(t, lead.ResumeSize)
	assert.Equal(t, int64(2*1024*1024), *lead.ResumeSize)

	leads, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventLeadCreated, dispatcher.published[0].Type)
	assert.Equal(t, lead.ID, dispatcher.published[0].LeadID)
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		lead, err := svc.Create(ctx, testCandidate())
		require.NoError(t, err)
		assert.False(t, seen[lead.ID], "duplicate id %d", lead.ID)
		seen[lead.ID] = true
	}
}

func TestCreateRejectsInvalidSubmissionWithoutMutatingStore(t *testing.T) {
	svc, repo, dispatcher := newTestService()
	ctx := context.Background()

	candidate := testCandidate()
	candidate.VisasOfInterest = `not json`

	_, err := svc.Create(ctx, candidate)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Contains(t, domainErr.Details, "visasOfInterest")

	leads, listErr := repo.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, leads)
	assert.Empty(t, dispatcher.published)
}

func TestMarkReachedOutUpdatesOnlyStatus(t *testing.T) {
	svc, _, dispatcher := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testCandidate())
	require.NoError(t, err)

	updated, err := svc.MarkReachedOut(ctx, created.ID, domain.LeadStatusReachedOut)
	require.NoError(t, err)

	assert.Equal(t, domain.LeadStatusReachedOut, updated.Status)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.VisasOfInterest, updated.VisasOfInterest)
	assert.Equal(t, created.Email, updated.Email)

	require.Len(t, dispatcher.published, 2)
	assert.Equal(t, events.EventLeadStatusChanged, dispatcher.published[1].Type)
}

func TestMarkReachedOutRejectsOtherTargets(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testCandidate())
	require.NoError(t, err)

	for _, target := range []domain.LeadStatus{domain.LeadStatusPending, "DONE", ""} {
		_, err := svc.MarkReachedOut(ctx, created.ID, target)
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, "INVALID_TRANSITION", domainErr.Code)
		assert.Equal(t, 400, domainErr.HTTPStatus)
	}

	leads, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusPending, leads[0].Status)
}

func TestMarkReachedOutUnknownID(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.MarkReachedOut(ctx, 12345, domain.LeadStatusReachedOut)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, 404, domainErr.HTTPStatus)

	leads, listErr := repo.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, leads)
}

func TestMarkReachedOutIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testCandidate())
	require.NoError(t, err)

	_, err = svc.MarkReachedOut(ctx, created.ID, domain.LeadStatusReachedOut)
	require.NoError(t, err)

	repeated, err := svc.MarkReachedOut(ctx, created.ID, domain.LeadStatusReachedOut)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusReachedOut, repeated.Status)
}

func TestListReflectsCreatedLeadsInOrder(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, testCandidate())
	require.NoError(t, err)
	second, err := svc.Create(ctx, testCandidate())
	require.NoError(t, err)

	leads, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, first.ID, leads[0].ID)
	assert.Equal(t, second.ID, leads[1].ID)
}
