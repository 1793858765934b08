package model

import "time"

// ContactStatus is the lifecycle flag on a contact record.
type ContactStatus string

const (
	StatusActive   ContactStatus = "Active"
	StatusInactive ContactStatus = "Inactive"
)

// Valid reports whether s is one of the two accepted statuses.
func (s ContactStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Contact is a single address-book record. IDs come from one global counter
// shared across all owners and are never reused; OwnerID and CreatedAt are
// immutable after creation.
type Contact struct {
	ID          uint          `json:"id"`
	OwnerID     uint          `json:"ownerId"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	PhoneNumber string        `json:"phoneNumber"`
	Email       string        `json:"email,omitempty"`
	Status      ContactStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ContactInput carries validated, normalized fields for a new contact.
// An empty Status means "apply the default".
type ContactInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Status      ContactStatus
}

// ContactUpdate carries a partial update: nil fields are left untouched,
// non-nil fields overwrite the stored value.
type ContactUpdate struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Email       *string
	Status      *ContactStatus
}

// ContactStats summarizes one owner's collection. Counts are recomputed per
// read, not maintained transactionally.
type ContactStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
