package types

import (
	"github.com/go-playground/validator/v10"
)

// SaveResumeRequest is the payload for replacing the session record.
type SaveResumeRequest struct {
	Record     ResumeRecord `json:"record"`
	TemplateID int          `json:"template_id" validate:"min=0"`
}

// RenderRequest asks for a record snapshot to be rendered with a template.
type RenderRequest struct {
	Record     ResumeRecord `json:"record"`
	TemplateID int          `json:"template_id" validate:"min=0"`
}

// ExportRequest asks for a previously rendered surface to be exported as PDF.
type ExportRequest struct {
	SurfaceID string `json:"surface_id" validate:"required,uuid4"`
	Filename  string `json:"filename,omitempty"`
}

// Validate validates the SaveResumeRequest using the validator.
func (r *SaveResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RenderRequest using the validator.
func (r *RenderRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ExportRequest using the validator.
func (r *ExportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
