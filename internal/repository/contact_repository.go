package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"contacthub/internal/apperrors"
	"contacthub/internal/model"
)

// ContactRepository defines persistence operations for contact records. Every
// operation is scoped by owner: a valid id under the wrong owner behaves
// exactly like an id that never existed.
type ContactRepository interface {
	Create(ctx context.Context, ownerID uint, in model.ContactInput) (*model.Contact, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Contact, error)
	GetByID(ctx context.Context, ownerID, id uint) (*model.Contact, error)
	Update(ctx context.Context, ownerID, id uint, upd model.ContactUpdate) (*model.Contact, error)
	Delete(ctx context.Context, ownerID, id uint) (bool, error)
	Search(ctx context.Context, ownerID uint, term string) ([]model.Contact, error)
	CountByStatus(ctx context.Context, ownerID uint) (model.ContactStats, error)
}

// contactRepository keeps per-owner ordered slices plus an id->owner index so
// point lookups skip other tenants entirely. One global counter hands out ids
// across all owners; ids are never reused or reset.
type contactRepository struct {
	mu      sync.RWMutex
	byOwner map[uint][]model.Contact
	owners  map[uint]uint // contact id -> owner id
	nextID  uint
}

// NewContactRepository builds an empty in-memory repository.
func NewContactRepository() ContactRepository {
	return &contactRepository{
		byOwner: make(map[uint][]model.Contact),
		owners:  make(map[uint]uint),
		nextID:  1,
	}
}

func (r *contactRepository) Create(ctx context.Context, ownerID uint, in model.ContactInput) (*model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := in.Status
	if status == "" {
		status = model.StatusActive
	}

	now := time.Now()
	contact := model.Contact{
		ID:          r.nextID,
		OwnerID:     ownerID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.nextID++

	r.byOwner[ownerID] = append(r.byOwner[ownerID], contact)
	r.owners[contact.ID] = ownerID

	return &contact, nil
}

// ListByOwner returns the owner's contacts in insertion order.
func (r *contactRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Contact, len(r.byOwner[ownerID]))
	copy(out, r.byOwner[ownerID])
	return out, nil
}

func (r *contactRepository) GetByID(ctx context.Context, ownerID, id uint) (*model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.locate(ownerID, id)
	if !ok {
		return nil, apperrors.ErrContactNotFound
	}
	contact := r.byOwner[ownerID][pos]
	return &contact, nil
}

// Update merges the supplied fields onto the stored record. ID, OwnerID and
// CreatedAt are preserved unconditionally; UpdatedAt is bumped on success.
func (r *contactRepository) Update(ctx context.Context, ownerID, id uint, upd model.ContactUpdate) (*model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.locate(ownerID, id)
	if !ok {
		return nil, apperrors.ErrContactNotFound
	}

	contact := &r.byOwner[ownerID][pos]
	if upd.FirstName != nil {
		contact.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		contact.LastName = *upd.LastName
	}
	if upd.PhoneNumber != nil {
		contact.PhoneNumber = *upd.PhoneNumber
	}
	if upd.Email != nil {
		contact.Email = *upd.Email
	}
	if upd.Status != nil {
		contact.Status = *upd.Status
	}
	contact.UpdatedAt = time.Now()

	updated := *contact
	return &updated, nil
}

// Delete removes the record permanently and reports whether anything was
// removed. There is no tombstone; the id is simply never handed out again.
func (r *contactRepository) Delete(ctx context.Context, ownerID, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.locate(ownerID, id)
	if !ok {
		return false, nil
	}

	list := r.byOwner[ownerID]
	r.byOwner[ownerID] = append(list[:pos], list[pos+1:]...)
	delete(r.owners, id)
	return true, nil
}

// Search filters the owner's contacts by case-insensitive substring across
// first name, last name, phone number (raw, not digit-normalized), and email
// when present. An empty term returns the full list.
func (r *contactRepository) Search(ctx context.Context, ownerID uint, term string) ([]model.Contact, error) {
	if term == "" {
		return r.ListByOwner(ctx, ownerID)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(term)
	var out []model.Contact
	for _, c := range r.byOwner[ownerID] {
		if strings.Contains(strings.ToLower(c.FirstName), needle) ||
			strings.Contains(strings.ToLower(c.LastName), needle) ||
			strings.Contains(c.PhoneNumber, needle) ||
			(c.Email != "" && strings.Contains(strings.ToLower(c.Email), needle)) {
			out = append(out, c)
		}
	}
	if out == nil {
		out = []model.Contact{}
	}
	return out, nil
}

// CountByStatus recomputes the owner's stats from the live records.
func (r *contactRepository) CountByStatus(ctx context.Context, ownerID uint) (model.ContactStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats model.ContactStats
	for _, c := range r.byOwner[ownerID] {
		stats.Total++
		if c.Status == model.StatusActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	return stats, nil
}

// locate resolves a contact id to its position in the owner's slice. The
// id->owner index rejects foreign or absent ids before any scan. Callers must
// hold the lock.
func (r *contactRepository) locate(ownerID, id uint) (int, bool) {
	if owner, ok := r.owners[id]; !ok || owner != ownerID {
		return 0, false
	}
	for i, c := range r.byOwner[ownerID] {
		if c.ID == id {
			return i, true
		}
	}
	return 0, false
}
