package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/lead-intake-service/internal/config"
)

func testSchema() Schema {
	return NewSchema(config.UploadConfig{
		MaxResumeBytes: 5 * 1024 * 1024,
		AllowedMimeTypes: []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
	})
}

func validCandidate() Candidate {
	return Candidate{
		FirstName:       "Ana",
		LastName:        "Lee",
		Email:           "ana@x.com",
		LinkedinProfile: "https://linkedin.com/in/ana",
		VisasOfInterest: `["Work Visa"]`,
		Resume: &ResumeFile{
			FileName: "resume.pdf",
			Size:     2 * 1024 * 1024,
			MimeType: "application/pdf",
		},
	}
}

func TestValidateAcceptsWellFormedSubmission(t *testing.T) {
	submission, errs := testSchema().Validate(validCandidate())
	require.Nil(t, errs)
	require.NotNil(t, submission)

	assert.Equal(t, "Ana", submission.FirstName)
	assert.Equal(t, "Lee", submission.LastName)
	assert.Equal(t, "ana@x.com", submission.Email)
	assert.Equal(t, []string{"Work Visa"}, submission.VisasOfInterest)
	assert.Equal(t, "resume.pdf", submission.Resume.FileName)
}

func TestValidatePreservesVisaOrder(t *testing.T) {
	candidate := validCandidate()
	candidate.VisasOfInterest = `["Tourist Visa","Student Visa","Work Visa"]`

	submission, errs := testSchema().Validate(candidate)
	require.Nil(t, errs)
	assert.Equal(t, []string{"Tourist Visa", "Student Visa", "Work Visa"}, submission.VisasOfInterest)
}

func TestValidateTrimsWhitespace(t *testing.T) {
	candidate := validCandidate()
	candidate.FirstName = "  Ana "
	candidate.Email = " ana@x.com "

	submission, errs := testSchema().Validate(candidate)
	require.Nil(t, errs)
	assert.Equal(t, "Ana", submission.FirstName)
	assert.Equal(t, "ana@x.com", submission.Email)
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Candidate)
		field   string
		message string
	}{
		{
			name:    "short first name",
			mutate:  func(c *Candidate) { c.FirstName = "A" },
			field:   "firstName",
			message: "First name is required",
		},
		{
			name:    "missing last name",
			mutate:  func(c *Candidate) { c.LastName = "" },
			field:   "lastName",
			message: "Last name is required",
		},
		{
			name:    "bad email",
			mutate:  func(c *Candidate) { c.Email = "not-an-email" },
			field:   "email",
			message: "Invalid email address",
		},
		{
			name:    "relative linkedin url",
			mutate:  func(c *Candidate) { c.LinkedinProfile = "/in/ana" },
			field:   "linkedinProfile",
			message: "Invalid LinkedIn URL",
		},
		{
			name:    "empty visa list",
			mutate:  func(c *Candidate) { c.VisasOfInterest = `[]` },
			field:   "visasOfInterest",
			message: "Please select at least one visa",
		},
		{
			name:    "unknown visa label",
			mutate:  func(c *Candidate) { c.VisasOfInterest = `["Space Visa"]` },
			field:   "visasOfInterest",
			message: "Invalid visa selection",
		},
		{
			name:    "unparseable visa field",
			mutate:  func(c *Candidate) { c.VisasOfInterest = `not json` },
			field:   "visasOfInterest",
			message: "visasOfInterest must be a JSON array of strings",
		},
		{
			name:    "missing resume",
			mutate:  func(c *Candidate) { c.Resume = nil },
			field:   "resume",
			message: "Resume is required",
		},
		{
			name:    "disallowed resume type",
			mutate:  func(c *Candidate) { c.Resume.MimeType = "image/png" },
			field:   "resume",
			message: "File must be a PDF or Word document",
		},
		{
			name:    "oversized resume",
			mutate:  func(c *Candidate) { c.Resume.Size = 5*1024*1024 + 1 },
			field:   "resume",
			message: "File size must be less than 5MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := validCandidate()
			tt.mutate(&candidate)

			submission, errs := testSchema().Validate(candidate)
			assert.Nil(t, submission)
			require.NotNil(t, errs)
			assert.Equal(t, tt.message, errs[tt.field])
			assert.Len(t, errs, 1)
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	candidate := Candidate{}
	submission, errs := testSchema().Validate(candidate)
	assert.Nil(t, submission)
	require.NotNil(t, errs)
	for _, field := range []string{"firstName", "lastName", "email", "linkedinProfile", "visasOfInterest", "resume"} {
		assert.Contains(t, errs, field)
	}
	assert.True(t, strings.HasPrefix(errs.Error(), "validation failed: "))
}

func TestValidateResumeAtSizeLimit(t *testing.T) {
	candidate := validCandidate()
	candidate.Resume.Size = 5 * 1024 * 1024

	_, errs := testSchema().Validate(candidate)
	assert.Nil(t, errs)
}

func TestParseVisas(t *testing.T) {
	visas, err := ParseVisas(`["Work Visa","Student Visa"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Work Visa", "Student Visa"}, visas)

	_, err = ParseVisas(`{"not":"an array"}`)
	assert.Error(t, err)
}
