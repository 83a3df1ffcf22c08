package dto

import (
	"time"

	"github.com/spec-kit/lead-intake-service/internal/domain"
)

// LeadResponse mirrors the wire format the intake form and dashboard expect;
// field names stay camelCase for that reason.
type LeadResponse struct {
	ID              int64             `json:"id"`
	FirstName       *string           `json:"firstName"`
	LastName        *string           `json:"lastName"`
	Email           *string           `json:"email"`
	LinkedinProfile *string           `json:"linkedinProfile"`
	VisasOfInterest []string          `json:"visasOfInterest"`
	AdditionalInfo  *string           `json:"additionalInfo"`
	Status          domain.LeadStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
	ResumeFileName  *string           `json:"resumeFileName,omitempty"`
	ResumeSize      *int64            `json:"resumeSize,omitempty"`
	ResumeType      *string           `json:"resumeType,omitempty"`
}

// LeadEnvelope wraps single-lead responses with a success indicator.
type LeadEnvelope struct {
	Success bool              `json:"success"`
	Lead    *LeadResponse     `json:"lead,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ListLeadsResponse wraps the full lead listing.
type ListLeadsResponse struct {
	Leads []LeadResponse `json:"leads"`
}

// UpdateLeadStatusRequest payload for PATCH /leads.
type UpdateLeadStatusRequest struct {
	ID     int64             `json:"id"`
	Status domain.LeadStatus `json:"status"`
}

// LoginRequest payload for operator login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse confirms an issued session.
type LoginResponse struct {
	Success   bool      `json:"success"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FromLead maps a domain lead onto the wire shape.
func FromLead(lead *domain.Lead) LeadResponse {
	return LeadResponse{
		ID:              lead.ID,
		FirstName:       lead.FirstName,
		LastName:        lead.LastName,
		Email:           lead.Email,
		LinkedinProfile: lead.LinkedinProfile,
		VisasOfInterest: lead.VisasOfInterest,
		AdditionalInfo:  lead.AdditionalInfo,
		Status:          lead.Status,
		CreatedAt:       lead.CreatedAt,
		ResumeFileName:  lead.ResumeFileName,
		ResumeSize:      lead.ResumeSize,
		ResumeType:      lead.ResumeType,
	}
}
