package service

import "strings"

// PhonePolicy decides whether a contact number that already passed the
// character-set check satisfies the length/digit rules. Two policies exist
// because the product has shipped both at different times and the canonical
// one is still undecided; the active policy is chosen through configuration.
type PhonePolicy interface {
	// Name identifies the policy in config and logs.
	Name() string
	// Allows reports whether the number satisfies the policy.
	Allows(number string) bool
	// Message is the field error shown when Allows returns false.
	Message() string
}

// InternationalPhonePolicy accepts any number between 10 and 15 characters
// total, counting separators.
type InternationalPhonePolicy struct{}

func (InternationalPhonePolicy) Name() string { return "international" }

func (InternationalPhonePolicy) Allows(number string) bool {
	return len(number) >= 10 && len(number) <= 15
}

func (InternationalPhonePolicy) Message() string {
	return "Contact number must be between 10 and 15 characters"
}

// IndianPhonePolicy accepts exactly 10 digits starting 6-9, or the same
// number prefixed with the 91 country code (12 digits). Separators are
// ignored when counting digits.
type IndianPhonePolicy struct{}

func (IndianPhonePolicy) Name() string { return "indian" }

func (IndianPhonePolicy) Allows(number string) bool {
	digits := digitsOf(number)
	switch len(digits) {
	case 10:
		return digits[0] >= '6' && digits[0] <= '9'
	case 12:
		return strings.HasPrefix(digits, "91") && digits[2] >= '6' && digits[2] <= '9'
	default:
		return false
	}
}

func (IndianPhonePolicy) Message() string {
	return "Contact number must be a valid 10-digit mobile number, optionally prefixed with 91"
}

// PhonePolicyFromName resolves a configured policy name; unknown names fall
// back to the international policy.
func PhonePolicyFromName(name string) PhonePolicy {
	if strings.EqualFold(name, IndianPhonePolicy{}.Name()) {
		return IndianPhonePolicy{}
	}
	return InternationalPhonePolicy{}
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
