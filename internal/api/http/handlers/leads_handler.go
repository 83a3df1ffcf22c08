package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lead-intake-service/internal/api/dto"
	"github.com/spec-kit/lead-intake-service/internal/service"
	"github.com/spec-kit/lead-intake-service/internal/validation"
	apperrors "github.com/spec-kit/lead-intake-service/pkg/util"
)

// LeadsHandler manages the leads resource endpoints.
type LeadsHandler struct {
	service *service.LeadService
}

// NewLeadsHandler constructs handler.
func NewLeadsHandler(leadService *service.LeadService) *LeadsHandler {
	return &LeadsHandler{service: leadService}
}

// Create POST /leads. Accepts the multipart intake form submission.
func (h *LeadsHandler) Create(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.LeadEnvelope{
			Success: false,
			Error:   "Failed to process lead",
		})
	}

	candidate := validation.Candidate{
		FirstName:       formValue(form.Value, "firstName"),
		LastName:        formValue(form.Value, "lastName"),
		Email:           formValue(form.Value, "email"),
		LinkedinProfile: formValue(form.Value, "linkedinProfile"),
		VisasOfInterest: formValue(form.Value, "visasOfInterest"),
	}
	if vals, ok := form.Value["additionalInfo"]; ok && len(vals) > 0 {
		info := vals[0]
		candidate.AdditionalInfo = &info
	}
	if files, ok := form.File["resume"]; ok && len(files) > 0 {
		header := files[0]
		candidate.Resume = &validation.ResumeFile{
			FileName: header.Filename,
			Size:     header.Size,
			MimeType: header.Header.Get("Content-Type"),
		}
	}

	lead, err := h.service.Create(c.UserContext(), candidate)
	if err != nil {
		return writeLeadError(c, err)
	}

	resp := dto.FromLead(lead)
	return c.Status(http.StatusCreated).JSON(dto.LeadEnvelope{Success: true, Lead: &resp})
}

// List GET /leads. Returns every lead in insertion order.
func (h *LeadsHandler) List(c *fiber.Ctx) error {
	leads, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.LeadResponse, 0, len(leads))
	for i := range leads {
		items = append(items, dto.FromLead(&leads[i]))
	}
	return c.JSON(dto.ListLeadsResponse{Leads: items})
}

// UpdateStatus PATCH /leads. Applies the PENDING -> REACHED_OUT transition.
func (h *LeadsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateLeadStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.LeadEnvelope{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	lead, err := h.service.MarkReachedOut(c.UserContext(), req.ID, req.Status)
	if err != nil {
		return writeLeadError(c, err)
	}

	resp := dto.FromLead(lead)
	return c.JSON(dto.LeadEnvelope{Success: true, Lead: &resp})
}

// writeLeadError renders service failures in the envelope the form and
// dashboard consume, keeping internal detail out of the body.
func writeLeadError(c *fiber.Ctx, err error) error {
	domainErr := apperrors.ToDomainError(err)
	envelope := dto.LeadEnvelope{Success: false, Error: domainErr.Message}
	if len(domainErr.Details) > 0 {
		envelope.Errors = make(map[string]string, len(domainErr.Details))
		for field, msg := range domainErr.Details {
			if text, ok := msg.(string); ok {
				envelope.Errors[field] = text
			}
		}
	}
	return c.Status(domainErr.HTTPStatus).JSON(envelope)
}

func formValue(values map[string][]string, key string) string {
	if vals, ok := values[key]; ok && len(vals) > 0 {
		return vals[0]
	}
	return ""
}
