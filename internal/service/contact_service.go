package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"contacthub/internal/apperrors"
	"contacthub/internal/cache"
	"contacthub/internal/model"
	"contacthub/internal/repository"
)

// statsCacheTTL keeps stats deliberately short-lived: they are approximate by
// design and recomputed from the live store on every miss.
const statsCacheTTL = 30 * time.Second

// ContactService exposes domain operations over one owner's contacts. Every
// call takes the owner id derived from the verified request identity; the
// service never crosses tenants.
type ContactService interface {
	Create(ctx context.Context, ownerID uint, form ContactForm) (*model.Contact, error)
	List(ctx context.Context, ownerID uint, search string) ([]model.Contact, error)
	Get(ctx context.Context, ownerID, id uint) (*model.Contact, error)
	Update(ctx context.Context, ownerID, id uint, patch ContactPatch) (*model.Contact, error)
	Delete(ctx context.Context, ownerID, id uint) error
	Stats(ctx context.Context, ownerID uint) (*model.ContactStats, error)
}

type contactService struct {
	repo      repository.ContactRepository
	validator *ContactValidator
	cache     *cache.Client
}

// NewContactService builds a ContactService with repository, validator, and cache.
func NewContactService(repo repository.ContactRepository, validator *ContactValidator, cache *cache.Client) ContactService {
	return &contactService{repo: repo, validator: validator, cache: cache}
}

func (s *contactService) statsKey(ownerID uint) string {
	return fmt.Sprintf("contact_stats:%d", ownerID)
}

func (s *contactService) Create(ctx context.Context, ownerID uint, form ContactForm) (*model.Contact, error) {
	in, err := s.validator.ValidateNew(form)
	if err != nil {
		return nil, err
	}

	contact, err := s.repo.Create(ctx, ownerID, in)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.statsKey(ownerID))
	return contact, nil
}

// List returns the owner's contacts, filtered by the search term when one is
// given. An empty term is the unfiltered list.
func (s *contactService) List(ctx context.Context, ownerID uint, search string) ([]model.Contact, error) {
	return s.repo.Search(ctx, ownerID, search)
}

func (s *contactService) Get(ctx context.Context, ownerID, id uint) (*model.Contact, error) {
	return s.repo.GetByID(ctx, ownerID, id)
}

func (s *contactService) Update(ctx context.Context, ownerID, id uint, patch ContactPatch) (*model.Contact, error) {
	upd, err := s.validator.ValidatePatch(patch)
	if err != nil {
		return nil, err
	}

	contact, err := s.repo.Update(ctx, ownerID, id, upd)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.statsKey(ownerID))
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, ownerID, id uint) error {
	removed, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrContactNotFound
	}

	_ = s.cache.Delete(ctx, s.statsKey(ownerID))
	return nil
}

// Stats returns per-owner counts, read through the fail-safe cache.
func (s *contactService) Stats(ctx context.Context, ownerID uint) (*model.ContactStats, error) {
	if data, _ := s.cache.Get(ctx, s.statsKey(ownerID)); data != nil {
		var cached model.ContactStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.repo.CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, s.statsKey(ownerID), payload, statsCacheTTL)
	}
	return &stats, nil
}
