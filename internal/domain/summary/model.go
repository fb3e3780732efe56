package summary

import (
	"time"

	"github.com/medrec/medrec/internal/platform/validation"
)

// Summary maps to the summaries table. A summary condenses a patient's care
// over an optional date range and is removed by the store's cascade when the
// patient is deleted.
type Summary struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patientId"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	DateFrom  *string   `db:"date_from" json:"dateFrom,omitempty"`
	DateTo    *string   `db:"date_to" json:"dateTo,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateInput struct {
	PatientID *int64  `json:"patientId"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	DateFrom  *string `json:"dateFrom"`
	DateTo    *string `json:"dateTo"`
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
	if in.DateFrom != nil && !validation.IsDate(*in.DateFrom) {
		issues.Add("dateFrom", "Invalid date format (YYYY-MM-DD)")
	}
	if in.DateTo != nil && !validation.IsDate(*in.DateTo) {
		issues.Add("dateTo", "Invalid date format (YYYY-MM-DD)")
	}

	return issues
}

// UpdateInput carries a partial summary update. The owning patient is not
// updatable.
type UpdateInput struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	DateFrom *string `json:"dateFrom"`
	DateTo   *string `json:"dateTo"`
}

// Empty reports whether the update supplies no fields at all.
func (in *UpdateInput) Empty() bool {
	return in.Title == nil && in.Content == nil && in.DateFrom == nil && in.DateTo == nil
}

func (in *UpdateInput) Validate() validation.Issues {
	var issues validation.Issues

	if in.Title != nil && *in.Title == "" {
		issues.Add("title", "Title is required")
	}
	if in.Content != nil && *in.Content == "" {
		issues.Add("content", "Content is required")
	}
	if in.DateFrom != nil && !validation.IsDate(*in.DateFrom) {
		issues.Add("dateFrom", "Invalid date format (YYYY-MM-DD)")
	}
	if in.DateTo != nil && !validation.IsDate(*in.DateTo) {
		issues.Add("dateTo", "Invalid date format (YYYY-MM-DD)")
	}

	return issues
}
