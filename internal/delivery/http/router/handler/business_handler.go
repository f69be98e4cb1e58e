package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for business-related handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

// Show lists businesses, optionally filtered by the q search term.
func (h *BusinessHandler) Show(c echo.Context) error {
	businesses, err := h.uc.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "Businesses retrieved successfully")
}

// Store creates a new business owned by the calling store user.
func (h *BusinessHandler) Store(c echo.Context) error {
	storeUserID, ok := middleware.UserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Authentication required")
	}

	var input usecase.BusinessInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid business input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.uc.Create(c.Request().Context(), storeUserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business created successfully")
}

// Update replaces the mutable fields of a business.
func (h *BusinessHandler) Update(c echo.Context) error {
	businessID, err := parseIDParam(c)
	if err != nil {
		return domainerrors.ErrBusinessNotFound
	}

	var input usecase.BusinessInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid business input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.uc.Update(c.Request().Context(), businessID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated successfully")
}

// Delete soft-deletes a business.
func (h *BusinessHandler) Delete(c echo.Context) error {
	businessID, err := parseIDParam(c)
	if err != nil {
		return domainerrors.ErrBusinessNotFound
	}

	if err := h.uc.Delete(c.Request().Context(), businessID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business deleted successfully")
}
