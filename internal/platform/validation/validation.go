// Package validation collects field-level request validation issues.
// Input structs in the domain packages use pointer fields so that a missing
// field is distinguishable from an empty one; the predicates here check the
// formats shared across entities.
package validation

import (
	"regexp"

	"github.com/asaskevich/govalidator"
)

// Issue describes a single field-level validation failure.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Issues is an ordered list of validation failures.
type Issues []Issue

// Add appends a failure for the given field path.
func (v *Issues) Add(path, message string) {
	*v = append(*v, Issue{Path: path, Message: message})
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsDate reports whether s is an ISO date of the form YYYY-MM-DD.
func IsDate(s string) bool {
	return dateRe.MatchString(s)
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return govalidator.IsEmail(s)
}

// OneOf reports whether s equals one of the allowed values.
func OneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
