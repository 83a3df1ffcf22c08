package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/spec-kit/lead-intake-service/internal/domain"
)

// ErrLeadNotFound reports an unknown lead id.
var ErrLeadNotFound = errors.New("lead not found")

// LeadRepository encapsulates lead persistence. The caller supplies fully
// formed records, including a unique id.
type LeadRepository interface {
	Append(ctx context.Context, lead *domain.Lead) error
	List(ctx context.Context) ([]domain.Lead, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) (*domain.Lead, error)
}

// memoryLeadRepository keeps leads in process memory, insertion ordered.
// It stands in for a persistent store; state resets with the process.
type memoryLeadRepository struct {
	mu    sync.RWMutex
	leads []domain.Lead
	index map[int64]int
}

// NewMemoryLeadRepository instantiates the in-memory repository.
func NewMemoryLeadRepository() LeadRepository {
	return &memoryLeadRepository{index: make(map[int64]int)}
}

func (r *memoryLeadRepository) Append(_ context.Context, lead *domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index[lead.ID] = len(r.leads)
	r.leads = append(r.leads, cloneLead(*lead))
	return nil
}

// List returns a snapshot; later mutations are not reflected in the result.
func (r *memoryLeadRepository) List(_ context.Context) ([]domain.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Lead, 0, len(r.leads))
	for _, lead := range r.leads {
		out = append(out, cloneLead(lead))
	}
	return out, nil
}

// UpdateStatus holds the write lock across lookup and mutation so concurrent
// updates to the same id cannot interleave.
func (r *memoryLeadRepository) UpdateStatus(_ context.Context, id int64, status domain.LeadStatus) (*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[id]
	if !ok {
		return nil, ErrLeadNotFound
	}
	r.leads[pos].Status = status
	updated := cloneLead(r.leads[pos])
	return &updated, nil
}

// Reset clears all stored leads. Test helper only.
func (r *memoryLeadRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = nil
	r.index = make(map[int64]int)
}

func cloneLead(lead domain.Lead) domain.Lead {
	if lead.VisasOfInterest != nil {
		visas := make([]string, len(lead.VisasOfInterest))
		copy(visas, lead.VisasOfInterest)
		lead.VisasOfInterest = visas
	}
	return lead
}
