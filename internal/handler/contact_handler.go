package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"contacthub/internal/apperrors"
	"contacthub/internal/auth"
	"contacthub/internal/model"
	"contacthub/internal/service"
)

// ContactHandler handles contact CRUD and search endpoints. Every route sits
// behind the auth middleware, so the owner always comes from the verified
// identity, never from the request body.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContactRequest represents a new contact payload.
type CreateContactRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Status      string `json:"status"`
}

// UpdateContactRequest represents a partial contact update; omitted fields
// are left unchanged.
type UpdateContactRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
	Email       *string `json:"email"`
	Status      *string `json:"status"`
}

// ContactListData wraps a list response with its count.
type ContactListData struct {
	Contacts []model.Contact `json:"contacts"`
	Count    int             `json:"count"`
}

// List godoc
// @Summary List the caller's contacts, optionally filtered by a search term
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring to match"
// @Success 200 {object} Envelope
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		return respondError(c, apperrors.ErrTokenMissing)
	}

	contacts, err := h.contactService.List(c.Request().Context(), identity.UserID, c.QueryParam("search"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    ContactListData{Contacts: contacts, Count: len(contacts)},
	})
}

// Get godoc
// @Summary Fetch a single contact by id
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} Envelope
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		return respondError(c, apperrors.ErrTokenMissing)
	}

	id, err := contactID(c)
	if err != nil {
		return err
	}

	contact, err := h.contactService.Get(c.Request().Context(), identity.UserID, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    map[string]interface{}{"contact": contact},
	})
}

// Create godoc
// @Summary Create a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateContactRequest true "Contact fields"
// @Success 201 {object} Envelope
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		return respondError(c, apperrors.ErrTokenMissing)
	}

	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	contact, err := h.contactService.Create(c.Request().Context(), identity.UserID, service.ContactForm{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Status:      req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "Contact created successfully",
		Data:    map[string]interface{}{"contact": contact},
	})
}

// Update godoc
// @Summary Update a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body UpdateContactRequest true "Fields to change"
// @Success 200 {object} Envelope
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		return respondError(c, apperrors.ErrTokenMissing)
	}

	id, err := contactID(c)
	if err != nil {
		return err
	}

	var req UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	contact, err := h.contactService.Update(c.Request().Context(), identity.UserID, id, service.ContactPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Status:      req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Contact updated successfully",
		Data:    map[string]interface{}{"contact": contact},
	})
}

// Delete godoc
// @Summary Delete a contact
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} Envelope
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		return respondError(c, apperrors.ErrTokenMissing)
	}

	id, err := contactID(c)
	if err != nil {
		return err
	}

	if err := h.contactService.Delete(c.Request().Context(), identity.UserID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Contact deleted successfully",
	})
}

// Stats godoc
// @Summary Summarize the caller's contacts by status
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /contacts/stats [get]
func (h *ContactHandler) Stats(c echo.Context) error {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		return respondError(c, apperrors.ErrTokenMissing)
	}

	stats, err := h.contactService.Stats(c.Request().Context(), identity.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    stats,
	})
}

func contactID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: "invalid contact id",
			Code:    "INVALID_CONTACT_ID",
		})
	}
	return uint(id), nil
}
