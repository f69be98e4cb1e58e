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

// ServiceHandler holds dependencies for service-catalog handlers.
type ServiceHandler struct {
	uc     usecase.ServiceUsecase
	logger *slog.Logger
}

// NewServiceHandler is the constructor for ServiceHandler, injected by Fx.
func NewServiceHandler(uc usecase.ServiceUsecase, logger *slog.Logger) *ServiceHandler {
	return &ServiceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Show lists offered services, optionally filtered by the q search term.
func (h *ServiceHandler) Show(c echo.Context) error {
	services, err := h.uc.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "Services retrieved successfully")
}

// Store creates a new offered service.
func (h *ServiceHandler) Store(c echo.Context) error {
	storeUserID, ok := middleware.UserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Authentication required")
	}

	var input usecase.ServiceInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid service input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	offered, err := h.uc.Create(c.Request().Context(), storeUserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offered, "Service created successfully")
}

// Update replaces the mutable fields of an offered service.
func (h *ServiceHandler) Update(c echo.Context) error {
	serviceID, err := parseIDParam(c)
	if err != nil {
		return domainerrors.ErrServiceNotFound
	}

	var input usecase.ServiceInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid service input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	offered, err := h.uc.Update(c.Request().Context(), serviceID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offered, "Service updated successfully")
}

// Delete soft-deletes an offered service.
func (h *ServiceHandler) Delete(c echo.Context) error {
	serviceID, err := parseIDParam(c)
	if err != nil {
		return domainerrors.ErrServiceNotFound
	}

	if err := h.uc.Delete(c.Request().Context(), serviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service deleted successfully")
}
