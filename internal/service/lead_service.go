package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/lead-intake-service/internal/domain"
	"github.com/spec-kit/lead-intake-service/internal/events"
	"github.com/spec-kit/lead-intake-service/internal/repository"
	"github.com/spec-kit/lead-intake-service/internal/validation"
	apperrors "github.com/spec-kit/lead-intake-service/pkg/util"
)

// LeadService coordinates lead intake workflows.
type LeadService struct {
	leads      repository.LeadRepository
	schema     validation.Schema
	dispatcher events.Dispatcher

	idMu   sync.Mutex
	lastID int64
}

// LeadDependencies bundles collaborators for the lead service.
type LeadDependencies struct {
	LeadRepo   repository.LeadRepository
	Schema     validation.Schema
	Dispatcher events.Dispatcher
}

// NewLeadService constructs the service.
func NewLeadService(deps LeadDependencies) *LeadService {
	return &LeadService{
		leads:      deps.LeadRepo,
		schema:     deps.Schema,
		dispatcher: deps.Dispatcher,
	}
}

// Create validates a candidate submission and appends the resulting lead.
// Every new lead starts PENDING with an immutable creation timestamp.
func (s *LeadService) Create(ctx context.Context, candidate validation.Candidate) (*domain.Lead, error) {
	submission, fieldErrs := s.schema.Validate(candidate)
	if fieldErrs != nil {
		details := make(map[string]any, len(fieldErrs))
		for field, msg := range fieldErrs {
			details[field] = msg
		}
		return nil, apperrors.NewValidationError("invalid lead submission", details)
	}

	lead := &domain.Lead{
		ID:              s.nextID(),
		FirstName:       optional(submission.FirstName),
		LastName:        optional(submission.LastName),
		Email:           optional(submission.Email),
		LinkedinProfile: optional(submission.LinkedinProfile),
		VisasOfInterest: submission.VisasOfInterest,
		AdditionalInfo:  submission.AdditionalInfo,
		Status:          domain.LeadStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if submission.Resume != nil {
		fileName := submission.Resume.FileName
		size := submission.Resume.Size
		mimeType := submission.Resume.MimeType
		lead.ResumeFileName = &fileName
		lead.ResumeSize = &size
		lead.ResumeType = &mimeType
	}

	if err := s.leads.Append(ctx, lead); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventLeadCreated,
		LeadID: lead.ID,
		Payload: events.LeadCreatedPayload{
			Email:           lead.Email,
			VisasOfInterest: lead.VisasOfInterest,
			HasResume:       lead.ResumeFileName != nil,
		},
	})
	return lead, nil
}

// List returns all leads in insertion order.
func (s *LeadService) List(ctx context.Context) ([]domain.Lead, error) {
	leads, err := s.leads.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return leads, nil
}

// MarkReachedOut applies the single allowed status transition. Requesting any
// status other than REACHED_OUT is rejected, including an explicit PENDING.
// Repeating the transition on an already REACHED_OUT lead succeeds as a no-op.
func (s *LeadService) MarkReachedOut(ctx context.Context, id int64, requested domain.LeadStatus) (*domain.Lead, error) {
	if requested != domain.LeadStatusReachedOut {
		return nil, apperrors.NewInvalidTransition("Invalid status transition")
	}

	lead, err := s.leads.UpdateStatus(ctx, id, domain.LeadStatusReachedOut)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, apperrors.NewNotFound("Lead", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventLeadStatusChanged,
		LeadID: lead.ID,
		Payload: events.LeadStatusChangedPayload{
			OldStatus: domain.LeadStatusPending,
			NewStatus: domain.LeadStatusReachedOut,
		},
	})
	return lead, nil
}

// nextID hands out millisecond-clock ids, bumping on collision so two
// submissions in the same millisecond still get distinct ids.
func (s *LeadService) nextID() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *LeadService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	_ = s.dispatcher.Publish(ctx, event)
}

func optional(val string) *string {
	if val == "" {
		return nil
	}
	return &val
}
