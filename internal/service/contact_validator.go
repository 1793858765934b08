package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"contacthub/internal/apperrors"
	"contacthub/internal/model"
)

var (
	phoneCharsRegex = regexp.MustCompile(`^[0-9+\-\s()]+$`)
	emailRegex      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ContactForm carries raw contact fields for creation.
type ContactForm struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Status      string
}

// ContactPatch carries raw contact fields for a partial update; nil means the
// field was not supplied.
type ContactPatch struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Email       *string
	Status      *string
}

// ContactValidator checks shape and format of incoming contact fields and
// produces normalized copies for storage. It never mutates its input.
type ContactValidator struct {
	phone PhonePolicy
}

// NewContactValidator creates a validator using the given phone policy.
func NewContactValidator(phone PhonePolicy) *ContactValidator {
	return &ContactValidator{phone: phone}
}

// ValidateNew checks every field of a new contact. Failures are collected in
// field order rather than returned one at a time.
func (v *ContactValidator) ValidateNew(form ContactForm) (model.ContactInput, error) {
	var fields []apperrors.FieldError
	var in model.ContactInput

	in.FirstName = v.checkName("firstName", "First name", form.FirstName, &fields)
	in.LastName = v.checkName("lastName", "Last name", form.LastName, &fields)
	in.PhoneNumber = v.checkPhone(form.PhoneNumber, true, &fields)
	in.Email = v.checkEmail(form.Email, &fields)

	if form.Status != "" {
		status := model.ContactStatus(form.Status)
		if !status.Valid() {
			fields = append(fields, apperrors.FieldError{
				Field:   "status",
				Message: "Status must be either Active or Inactive",
			})
		} else {
			in.Status = status
		}
	}

	if len(fields) > 0 {
		return model.ContactInput{}, apperrors.NewValidationError(fields)
	}
	return in, nil
}

// ValidatePatch checks only the supplied fields of a partial update. Supplied
// required fields still may not be blanked out.
func (v *ContactValidator) ValidatePatch(patch ContactPatch) (model.ContactUpdate, error) {
	var fields []apperrors.FieldError
	var upd model.ContactUpdate

	if patch.FirstName != nil {
		name := v.checkName("firstName", "First name", *patch.FirstName, &fields)
		upd.FirstName = &name
	}
	if patch.LastName != nil {
		name := v.checkName("lastName", "Last name", *patch.LastName, &fields)
		upd.LastName = &name
	}
	if patch.PhoneNumber != nil {
		phone := v.checkPhone(*patch.PhoneNumber, true, &fields)
		upd.PhoneNumber = &phone
	}
	if patch.Email != nil {
		email := v.checkEmail(*patch.Email, &fields)
		upd.Email = &email
	}
	if patch.Status != nil {
		status := model.ContactStatus(*patch.Status)
		if !status.Valid() {
			fields = append(fields, apperrors.FieldError{
				Field:   "status",
				Message: "Status must be either Active or Inactive",
			})
		} else {
			upd.Status = &status
		}
	}

	if len(fields) > 0 {
		return model.ContactUpdate{}, apperrors.NewValidationError(fields)
	}
	return upd, nil
}

func (v *ContactValidator) checkName(field, label, value string, fields *[]apperrors.FieldError) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		*fields = append(*fields, apperrors.FieldError{Field: field, Message: label + " is required"})
		return ""
	}
	if n := utf8.RuneCountInString(trimmed); n < 2 || n > 50 {
		*fields = append(*fields, apperrors.FieldError{Field: field, Message: label + " must be between 2 and 50 characters"})
		return ""
	}
	return trimmed
}

func (v *ContactValidator) checkPhone(value string, required bool, fields *[]apperrors.FieldError) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			*fields = append(*fields, apperrors.FieldError{Field: "phoneNumber", Message: "Contact number is required"})
		}
		return ""
	}
	if !phoneCharsRegex.MatchString(trimmed) {
		*fields = append(*fields, apperrors.FieldError{Field: "phoneNumber", Message: "Please provide a valid contact number"})
		return ""
	}
	if !v.phone.Allows(trimmed) {
		*fields = append(*fields, apperrors.FieldError{Field: "phoneNumber", Message: v.phone.Message()})
		return ""
	}
	return trimmed
}

// checkEmail validates an optional address and normalizes it for storage.
func (v *ContactValidator) checkEmail(value string, fields *[]apperrors.FieldError) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if !emailRegex.MatchString(trimmed) {
		*fields = append(*fields, apperrors.FieldError{Field: "email", Message: "Please provide a valid email address"})
		return ""
	}
	return model.NormalizeEmail(trimmed)
}
