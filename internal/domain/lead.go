package domain

import "time"

// LeadStatus enumerates lifecycle states for leads.
type LeadStatus string

const (
	LeadStatusPending    LeadStatus = "PENDING"
	LeadStatusReachedOut LeadStatus = "REACHED_OUT"
)

// VisaOptions is the fixed set of visa labels an applicant may select.
var VisaOptions = []string{
	"Student Visa",
	"Work Visa",
	"Business Visa",
	"Tourist Visa",
	"Permanent Residency",
}

// IsVisaOption reports whether label is one of the allowed visa selections.
func IsVisaOption(label string) bool {
	for _, opt := range VisaOptions {
		if opt == label {
			return true
		}
	}
	return false
}

// Lead is the aggregate for one applicant submission.
type Lead struct {
	ID              int64
	FirstName       *string
	LastName        *string
	Email           *string
	LinkedinProfile *string
	VisasOfInterest []string
	AdditionalInfo  *string
	Status          LeadStatus
	CreatedAt       time.Time
	ResumeFileName  *string
	ResumeSize      *int64
	ResumeType      *string
}
