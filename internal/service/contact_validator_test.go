package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacthub/internal/apperrors"
	"contacthub/internal/model"
)

func validForm() ContactForm {
	return ContactForm{
		FirstName:   "John",
		LastName:    "Doe",
		PhoneNumber: "9876543210",
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	var fields []string
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	return fields
}

func TestContactValidator_ValidateNew(t *testing.T) {
	v := NewContactValidator(InternationalPhonePolicy{})

	tests := []struct {
		name      string
		mutate    func(*ContactForm)
		badFields []string
	}{
		{
			name:   "valid minimal",
			mutate: func(f *ContactForm) {},
		},
		{
			name:   "trims names",
			mutate: func(f *ContactForm) { f.FirstName = "  John  " },
		},
		{
			name:      "missing first name",
			mutate:    func(f *ContactForm) { f.FirstName = "   " },
			badFields: []string{"firstName"},
		},
		{
			name:      "first name too short",
			mutate:    func(f *ContactForm) { f.FirstName = "J" },
			badFields: []string{"firstName"},
		},
		{
			name:      "last name too long",
			mutate:    func(f *ContactForm) { f.LastName = strings.Repeat("x", 51) },
			badFields: []string{"lastName"},
		},
		{
			name:      "missing phone",
			mutate:    func(f *ContactForm) { f.PhoneNumber = "" },
			badFields: []string{"phoneNumber"},
		},
		{
			name:      "phone with letters",
			mutate:    func(f *ContactForm) { f.PhoneNumber = "98765abcde" },
			badFields: []string{"phoneNumber"},
		},
		{
			name:      "phone too short",
			mutate:    func(f *ContactForm) { f.PhoneNumber = "12345" },
			badFields: []string{"phoneNumber"},
		},
		{
			name:   "phone with separators",
			mutate: func(f *ContactForm) { f.PhoneNumber = "+1 (555) 123" },
		},
		{
			name:      "bad email",
			mutate:    func(f *ContactForm) { f.Email = "not-an-email" },
			badFields: []string{"email"},
		},
		{
			name:   "email optional",
			mutate: func(f *ContactForm) { f.Email = "" },
		},
		{
			name:      "unknown status",
			mutate:    func(f *ContactForm) { f.Status = "active" },
			badFields: []string{"status"},
		},
		{
			name:   "explicit inactive status",
			mutate: func(f *ContactForm) { f.Status = "Inactive" },
		},
		{
			name: "failures reported in field order",
			mutate: func(f *ContactForm) {
				f.FirstName = ""
				f.PhoneNumber = "abc"
				f.Email = "nope"
			},
			badFields: []string{"firstName", "phoneNumber", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			in, err := v.ValidateNew(form)
			if len(tt.badFields) > 0 {
				assert.Equal(t, tt.badFields, fieldsOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, in.FirstName)
		})
	}
}

func TestContactValidator_NormalizesForStorage(t *testing.T) {
	v := NewContactValidator(InternationalPhonePolicy{})

	form := validForm()
	form.FirstName = "  John "
	form.Email = " John.Doe@X.COM "

	in, err := v.ValidateNew(form)
	require.NoError(t, err)
	assert.Equal(t, "John", in.FirstName)
	assert.Equal(t, "john.doe@x.com", in.Email)
	// The default status is left for the store to apply.
	assert.Equal(t, model.ContactStatus(""), in.Status)
}

func TestContactValidator_ValidatePatch(t *testing.T) {
	v := NewContactValidator(InternationalPhonePolicy{})

	t.Run("empty patch is valid", func(t *testing.T) {
		upd, err := v.ValidatePatch(ContactPatch{})
		require.NoError(t, err)
		assert.Nil(t, upd.FirstName)
		assert.Nil(t, upd.Status)
	})

	t.Run("only supplied fields are checked", func(t *testing.T) {
		first := "Jo"
		upd, err := v.ValidatePatch(ContactPatch{FirstName: &first})
		require.NoError(t, err)
		require.NotNil(t, upd.FirstName)
		assert.Equal(t, "Jo", *upd.FirstName)
	})

	t.Run("supplied field may not be blanked", func(t *testing.T) {
		empty := ""
		_, err := v.ValidatePatch(ContactPatch{LastName: &empty})
		assert.Equal(t, []string{"lastName"}, fieldsOf(t, err))
	})

	t.Run("status must be exact", func(t *testing.T) {
		status := "inactive"
		_, err := v.ValidatePatch(ContactPatch{Status: &status})
		assert.Equal(t, []string{"status"}, fieldsOf(t, err))
	})
}

func TestPhonePolicies(t *testing.T) {
	tests := []struct {
		policy PhonePolicy
		number string
		ok     bool
	}{
		{InternationalPhonePolicy{}, "9876543210", true},
		{InternationalPhonePolicy{}, "+91 98765-43210", true},
		{InternationalPhonePolicy{}, "123456789", false},
		{InternationalPhonePolicy{}, "1234567890123456", false},
		{IndianPhonePolicy{}, "9876543210", true},
		{IndianPhonePolicy{}, "5876543210", false},
		{IndianPhonePolicy{}, "919876543210", true},
		{IndianPhonePolicy{}, "915876543210", false},
		{IndianPhonePolicy{}, "91 98765 43210", true},
		{IndianPhonePolicy{}, "98765", false},
	}

	for _, tt := range tests {
		t.Run(tt.policy.Name()+"/"+tt.number, func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.policy.Allows(tt.number))
		})
	}
}

func TestPhonePolicyFromName(t *testing.T) {
	assert.Equal(t, "indian", PhonePolicyFromName("indian").Name())
	assert.Equal(t, "international", PhonePolicyFromName("international").Name())
	assert.Equal(t, "international", PhonePolicyFromName("bogus").Name())
}
