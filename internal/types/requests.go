package types

import (
	"github.com/go-playground/validator/v10"
)

// UpdateProfileRequest represents the onboarding/profile update request.
type UpdateProfileRequest struct {
	Industry       string   `json:"industry" validate:"required,min=1"`
	Specialization string   `json:"specialization,omitempty"`
	Bio            string   `json:"bio,omitempty" validate:"max=500"`
	Experience     int      `json:"experience" validate:"min=0,max=50"`
	Skills         []string `json:"skills,omitempty"`
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SubmitQuizRequest carries a generated question batch back with the
// learner's chosen options. Answers is sparse: an index with no entry
// counts as incorrect.
type SubmitQuizRequest struct {
	Questions []QuizQuestion `json:"questions" validate:"required,min=1"`
	Answers   map[int]string `json:"answers" validate:"required"`
}

// Validate validates the SubmitQuizRequest using the validator.
func (r *SubmitQuizRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SaveResumeRequest represents the resume save/upsert request.
type SaveResumeRequest struct {
	Content string `json:"content" validate:"required"`
}

// Validate validates the SaveResumeRequest using the validator.
func (r *SaveResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ImproveEntryRequest asks for an AI rewrite of one resume entry description.
// Category labels the entry kind (e.g. "experience", "summary", "project").
type ImproveEntryRequest struct {
	Current  string `json:"current" validate:"required,min=1"`
	Category string `json:"category" validate:"required,min=1"`
}

// Validate validates the ImproveEntryRequest using the validator.
func (r *ImproveEntryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
