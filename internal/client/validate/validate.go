// Package validate checks user input before it is sent anywhere.
package validate

import (
	"errors"
	"regexp"
	"strings"
)

// ErrValidation is matched by every error this package returns.
var ErrValidation = errors.New("validation failed")

const (
	MinPasswordLength = 8
	MinHour           = 0
	MaxHour           = 23
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	letterRe = regexp.MustCompile(`[A-Za-z]`)
)

// FieldError is a problem with a single input field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors collects every field problem found in one form.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return strings.Join(parts, "; ")
}

func (e Errors) Unwrap() error { return ErrValidation }

// Field returns the first message for field, if any.
func (e Errors) Field(field string) (string, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

func (e Errors) err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func checkEmail(errs Errors, email string) Errors {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return append(errs, FieldError{"email", "email is required"})
	case !emailRe.MatchString(email):
		return append(errs, FieldError{"email", "email is not valid"})
	}
	return errs
}

// Login validates the sign-in form.
func Login(email, password string) error {
	errs := checkEmail(nil, email)
	switch {
	case password == "":
		errs = append(errs, FieldError{"password", "password is required"})
	case len([]rune(password)) < MinPasswordLength:
		errs = append(errs, FieldError{"password", "password must be at least 8 characters"})
	}
	return errs.err()
}

// PasswordCheck is one rule a new password must satisfy.
type PasswordCheck struct {
	Rule string
	OK   bool
}

// PasswordChecks reports every registration rule for password, in display
// order. Digits and letters are ASCII only.
func PasswordChecks(password string) []PasswordCheck {
	return []PasswordCheck{
		{Rule: "at least 8 characters", OK: len([]rune(password)) >= MinPasswordLength},
		{Rule: "at least one number", OK: digitRe.MatchString(password)},
		{Rule: "at least one letter", OK: letterRe.MatchString(password)},
	}
}

// Register validates the sign-up form.
func Register(email, password, confirm string) error {
	errs := checkEmail(nil, email)
	if password == "" {
		errs = append(errs, FieldError{"password", "password is required"})
	} else {
		for _, c := range PasswordChecks(password) {
			if !c.OK {
				errs = append(errs, FieldError{"password", "password needs " + c.Rule})
			}
		}
	}
	if confirm != password {
		errs = append(errs, FieldError{"confirm", "passwords do not match"})
	}
	return errs.err()
}

// Preferences validates a category selection and delivery hour.
func Preferences(categoryIDs []int, hour int) error {
	var errs Errors
	if len(categoryIDs) == 0 {
		errs = append(errs, FieldError{"categories", "select at least one category"})
	}
	if hour < MinHour || hour > MaxHour {
		errs = append(errs, FieldError{"hour", "hour must be between 0 and 23"})
	}
	return errs.err()
}
