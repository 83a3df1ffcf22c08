package validation

import (
	"encoding/json"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/spec-kit/lead-intake-service/internal/config"
	"github.com/spec-kit/lead-intake-service/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ResumeFile describes the uploaded resume as declared by the client.
type ResumeFile struct {
	FileName string
	Size     int64
	MimeType string
}

// Candidate carries the raw multipart fields of a lead submission before
// validation. VisasOfInterest is the JSON-encoded string the form sends.
type Candidate struct {
	FirstName       string
	LastName        string
	Email           string
	LinkedinProfile string
	VisasOfInterest string
	AdditionalInfo  *string
	Resume          *ResumeFile
}

// Submission is a normalized, accepted lead submission.
type Submission struct {
	FirstName       string
	LastName        string
	Email           string
	LinkedinProfile string
	VisasOfInterest []string
	AdditionalInfo  *string
	Resume          *ResumeFile
}

// FieldErrors maps field names to human-readable validation messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Schema enforces the lead submission rules.
type Schema struct {
	maxResumeBytes int64
	allowedTypes   map[string]struct{}
}

// NewSchema builds a schema from upload constraints.
func NewSchema(cfg config.UploadConfig) Schema {
	allowed := make(map[string]struct{}, len(cfg.AllowedMimeTypes))
	for _, t := range cfg.AllowedMimeTypes {
		allowed[t] = struct{}{}
	}
	return Schema{maxResumeBytes: cfg.MaxResumeBytes, allowedTypes: allowed}
}

// Validate checks a candidate submission against the schema. It returns the
// normalized submission on success, or a field-to-message map describing every
// violation. Ordinary invalid input never yields a Go error; the unparseable
// visa list is surfaced as a field error like any other violation.
func (s Schema) Validate(c Candidate) (*Submission, FieldErrors) {
	errs := FieldErrors{}

	firstName := strings.TrimSpace(c.FirstName)
	if len([]rune(firstName)) < 2 {
		errs["firstName"] = "First name is required"
	}

	lastName := strings.TrimSpace(c.LastName)
	if len([]rune(lastName)) < 2 {
		errs["lastName"] = "Last name is required"
	}

	email := strings.TrimSpace(c.Email)
	if !emailPattern.MatchString(email) {
		errs["email"] = "Invalid email address"
	}

	linkedin := strings.TrimSpace(c.LinkedinProfile)
	if !isAbsoluteURL(linkedin) {
		errs["linkedinProfile"] = "Invalid LinkedIn URL"
	}

	visas, visaErr := parseVisas(c.VisasOfInterest)
	if visaErr != "" {
		errs["visasOfInterest"] = visaErr
	}

	if resumeErr := s.checkResume(c.Resume); resumeErr != "" {
		errs["resume"] = resumeErr
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Submission{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		LinkedinProfile: linkedin,
		VisasOfInterest: visas,
		AdditionalInfo:  c.AdditionalInfo,
		Resume:          c.Resume,
	}, nil
}

// ParseVisas decodes the JSON-encoded visa list without applying the rest of
// the schema. Used by the API layer to re-derive the field independently of
// client-side validation.
func ParseVisas(raw string) ([]string, error) {
	var visas []string
	if err := json.Unmarshal([]byte(raw), &visas); err != nil {
		return nil, err
	}
	return visas, nil
}

func parseVisas(raw string) ([]string, string) {
	if strings.TrimSpace(raw) == "" {
		return nil, "Please select at least one visa"
	}
	visas, err := ParseVisas(raw)
	if err != nil {
		return nil, "visasOfInterest must be a JSON array of strings"
	}
	if len(visas) == 0 {
		return nil, "Please select at least one visa"
	}
	for _, visa := range visas {
		if !domain.IsVisaOption(visa) {
			return nil, "Invalid visa selection"
		}
	}
	return visas, ""
}

func (s Schema) checkResume(resume *ResumeFile) string {
	if resume == nil {
		return "Resume is required"
	}
	if _, ok := s.allowedTypes[resume.MimeType]; !ok {
		return "File must be a PDF or Word document"
	}
	if resume.Size > s.maxResumeBytes {
		return "File size must be less than 5MB"
	}
	return ""
}

func isAbsoluteURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.IsAbs() && parsed.Host != ""
}
