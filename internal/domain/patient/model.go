package patient

import (
	"time"

	"github.com/medrec/medrec/internal/platform/validation"
)

// Genders accepted on patient records.
var Genders = []string{"male", "female", "other"}

// Patient maps to the patients table.
type Patient struct {
	ID          int64     `db:"id" json:"id"`
	FirstName   string    `db:"first_name" json:"firstName"`
	LastName    string    `db:"last_name" json:"lastName"`
	DateOfBirth string    `db:"date_of_birth" json:"dateOfBirth"`
	Gender      string    `db:"gender" json:"gender"`
	Email       *string   `db:"email" json:"email,omitempty"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	Address     *string   `db:"address" json:"address,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateInput carries the fields accepted when registering a patient.
// Pointer fields distinguish omitted values from empty ones.
type CreateInput struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	DateOfBirth *string `json:"dateOfBirth"`
	Gender      *string `json:"gender"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

// Validate checks required fields, formats and enums, returning one issue
// per failing field.
func (in *CreateInput) Validate() validation.Issues {
	var issues validation.Issues

	if in.FirstName == nil || *in.FirstName == "" {
		issues.Add("firstName", "First name is required")
	}
	if in.LastName == nil || *in.LastName == "" {
		issues.Add("lastName", "Last name is required")
	}
	if in.DateOfBirth == nil || *in.DateOfBirth == "" {
		issues.Add("dateOfBirth", "Date of birth is required")
	} else if !validation.IsDate(*in.DateOfBirth) {
		issues.Add("dateOfBirth", "Invalid date format (YYYY-MM-DD)")
	}
	if in.Gender == nil || *in.Gender == "" {
		issues.Add("gender", "Gender is required")
	} else if !validation.OneOf(*in.Gender, Genders...) {
		issues.Add("gender", "Gender must be one of: male, female, other")
	}
	if in.Email != nil && !validation.IsEmail(*in.Email) {
		issues.Add("email", "Invalid email address")
	}
	if in.Phone != nil && len(*in.Phone) < 10 {
		issues.Add("phone", "Phone number must be at least 10 digits")
	}

	return issues
}

// UpdateInput carries a partial patient update. Nil fields are left
// untouched by the store; supplied values are still format-checked.
type UpdateInput struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	DateOfBirth *string `json:"dateOfBirth"`
	Gender      *string `json:"gender"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

// Empty reports whether the update supplies no fields at all.
func (in *UpdateInput) Empty() bool {
	return in.FirstName == nil && in.LastName == nil && in.DateOfBirth == nil &&
		in.Gender == nil && in.Email == nil && in.Phone == nil && in.Address == nil
}

func (in *UpdateInput) Validate() validation.Issues {
	var issues validation.Issues

	if in.FirstName != nil && *in.FirstName == "" {
		issues.Add("firstName", "First name is required")
	}
	if in.LastName != nil && *in.LastName == "" {
		issues.Add("lastName", "Last name is required")
	}
	if in.DateOfBirth != nil && !validation.IsDate(*in.DateOfBirth) {
		issues.Add("dateOfBirth", "Invalid date format (YYYY-MM-DD)")
	}
	if in.Gender != nil && !validation.OneOf(*in.Gender, Genders...) {
		issues.Add("gender", "Gender must be one of: male, female, other")
	}
	if in.Email != nil && !validation.IsEmail(*in.Email) {
		issues.Add("email", "Invalid email address")
	}
	if in.Phone != nil && len(*in.Phone) < 10 {
		issues.Add("phone", "Phone number must be at least 10 digits")
	}

	return issues
}
