// Package validation gates user input before any record store call.
package validation

import (
	"fmt"
	"regexp"

	"campuspocket/internal/client/models"
	"campuspocket/internal/common"
)

var (
	// A deliberately loose local@domain shape.
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
)

// Error reports the first rejected field. It wraps common.ErrorValidation
// so callers can match the whole class with errors.Is.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *Error) Unwrap() error {
	return common.ErrorValidation
}

// Login checks the credentials form: both fields must be present.
func Login(username, password string) error {
	if username == "" {
		return &Error{Field: "username", Reason: "must not be empty"}
	}
	if password == "" {
		return &Error{Field: "password", Reason: "must not be empty"}
	}
	return nil
}

// Profile checks the full registration/profile form. The first failing
// field rejects the whole operation; no partial results are reported.
func Profile(user *models.User) error {
	required := []struct {
		field string
		value string
	}{
		{"username", user.Username},
		{"password", user.Password},
		{"firstName", user.FirstName},
		{"lastName", user.LastName},
		{"email", user.Email},
		{"contactNumber", user.ContactNumber},
		{"address", user.Address},
	}
	for _, f := range required {
		if f.value == "" {
			return &Error{Field: f.field, Reason: "must not be empty"}
		}
	}

	if !emailRe.MatchString(user.Email) {
		return &Error{Field: "email", Reason: "must look like local@domain"}
	}
	if !digitsRe.MatchString(user.ContactNumber) {
		return &Error{Field: "contactNumber", Reason: "must contain digits only"}
	}
	return nil
}
