package note

import (
	"time"

	"github.com/medrec/medrec/internal/platform/validation"
)

// Categories accepted on clinical notes.
var Categories = []string{"consultation", "diagnosis", "treatment", "general"}

// Note maps to the notes table. A note is owned by a patient and is removed
// by the store's cascade when the patient is deleted.
type Note struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patientId"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Category  *string   `db:"category" json:"category,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateInput carries the fields accepted when recording a note. The
// referenced patient's existence is not pre-checked here; the store's
// foreign key rejects orphan references.
type CreateInput struct {
	PatientID *int64  `json:"patientId"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
}

func (in *CreateInput) Validate() validation.Issues {
	var issues validation.Issues

	if in.PatientID == nil {
		issues.Add("patientId", "Patient ID is required")
	} else if *in.PatientID <= 0 {
		issues.Add("patientId", "Patient ID must be a positive integer")
	}
	if in.Title == nil || *in.Title == "" {
		issues.Add("title", "Title is required")
	}
	if in.Content == nil || *in.Content == "" {
		issues.Add("content", "Content is required")
	}
	if in.Category != nil && !validation.OneOf(*in.Category, Categories...) {
		issues.Add("category", "Category must be one of: consultation, diagnosis, treatment, general")
	}

	return issues
}

// UpdateInput carries a partial note update. The owning patient is not
// updatable.
type UpdateInput struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

// Empty reports whether the update supplies no fields at all.
func (in *UpdateInput) Empty() bool {
	return in.Title == nil && in.Content == nil && in.Category == nil
}

func (in *UpdateInput) Validate() validation.Issues {
	var issues validation.Issues

	if in.Title != nil && *in.Title == "" {
		issues.Add("title", "Title is required")
	}
	if in.Content != nil && *in.Content == "" {
		issues.Add("content", "Content is required")
	}
	if in.Category != nil && !validation.OneOf(*in.Category, Categories...) {
		issues.Add("category", "Category must be one of: consultation, diagnosis, treatment, general")
	}

	return issues
}
