package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacthub/internal/apperrors"
	"contacthub/internal/model"
	"contacthub/internal/repository"
)

// newContactService builds a service over a fresh in-memory store. The cache
// client is nil on purpose: the wrapper treats that as a permanent miss.
func newContactService() ContactService {
	return NewContactService(
		repository.NewContactRepository(),
		NewContactValidator(InternationalPhonePolicy{}),
		nil,
	)
}

func TestContactService_Create(t *testing.T) {
	service := newContactService()
	ctx := context.Background()

	contact, err := service.Create(ctx, 1, ContactForm{
		FirstName:   "Jo",
		LastName:    "Do",
		PhoneNumber: "9876543210",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), contact.ID)
	assert.Equal(t, uint(1), contact.OwnerID)
	assert.Equal(t, model.StatusActive, contact.Status)
}

func TestContactService_Create_ValidationFailed(t *testing.T) {
	service := newContactService()
	ctx := context.Background()

	contact, err := service.Create(ctx, 1, ContactForm{
		FirstName:   "J",
		LastName:    "Do",
		PhoneNumber: "abc",
	})
	assert.Nil(t, contact)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestContactService_SearchFlow(t *testing.T) {
	service := newContactService()
	ctx := context.Background()

	_, err := service.Create(ctx, 1, ContactForm{FirstName: "Jo", LastName: "Do", PhoneNumber: "9876543210"})
	require.NoError(t, err)
	_, err = service.Create(ctx, 1, ContactForm{FirstName: "Alice", LastName: "Smith", PhoneNumber: "5551234567"})
	require.NoError(t, err)

	all, err := service.List(ctx, 1, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := service.List(ctx, 1, "987")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Jo", matched[0].FirstName)
}

func TestContactService_Update_Partial(t *testing.T) {
	service := newContactService()
	ctx := context.Background()

	contact, err := service.Create(ctx, 1, ContactForm{FirstName: "Jo", LastName: "Do", PhoneNumber: "9876543210"})
	require.NoError(t, err)

	status := "Inactive"
	updated, err := service.Update(ctx, 1, contact.ID, ContactPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, model.StatusInactive, updated.Status)
	assert.Equal(t, "Jo", updated.FirstName)
	assert.Equal(t, contact.CreatedAt, updated.CreatedAt)
}

func TestContactService_Update_CrossTenant(t *testing.T) {
	service := newContactService()
	ctx := context.Background()

	contact, err := service.Create(ctx, 1, ContactForm{FirstName: "Jo", LastName: "Do", PhoneNumber: "9876543210"})
	require.NoError(t, err)

	status := "Inactive"
	_, err = service.Update(ctx, 2, contact.ID, ContactPatch{Status: &status})
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
}

func TestContactService_Delete(t *testing.T) {
	service := newContactService()
	ctx := context.Background()

	contact, err := service.Create(ctx, 1, ContactForm{FirstName: "Jo", LastName: "Do", PhoneNumber: "9876543210"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, 1, contact.ID))

	_, err = service.Get(ctx, 1, contact.ID)
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)

	// Deleting again reports not found rather than a silent no-op.
	assert.ErrorIs(t, service.Delete(ctx, 1, contact.ID), apperrors.ErrContactNotFound)
}

func TestContactService_Stats(t *testing.T) {
	service := newContactService()
	ctx := context.Background()

	inactive := "Inactive"
	_, err := service.Create(ctx, 1, ContactForm{FirstName: "Jo", LastName: "Do", PhoneNumber: "9876543210"})
	require.NoError(t, err)
	contact, err := service.Create(ctx, 1, ContactForm{FirstName: "Alice", LastName: "Smith", PhoneNumber: "5551234567"})
	require.NoError(t, err)
	_, err = service.Update(ctx, 1, contact.ID, ContactPatch{Status: &inactive})
	require.NoError(t, err)

	stats, err := service.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &model.ContactStats{Total: 2, Active: 1, Inactive: 1}, stats)
}
