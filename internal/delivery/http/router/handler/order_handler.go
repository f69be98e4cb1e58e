// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Show lists the calling store user's orders, optionally filtered by the q
// search term.
func (h *OrderHandler) Show(c echo.Context) error {
	storeUserID, ok := middleware.UserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Authentication required")
	}

	orders, err := h.uc.List(c.Request().Context(), storeUserID, c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// Store creates a new order owned by the calling store user.
func (h *OrderHandler) Store(c echo.Context) error {
	storeUserID, ok := middleware.UserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Authentication required")
	}

	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Create(c.Request().Context(), storeUserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order created successfully")
}

// Update applies a partial update to an order.
func (h *OrderHandler) Update(c echo.Context) error {
	caller, ok := callerFromContext(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Authentication required")
	}

	orderID, err := parseIDParam(c)
	if err != nil {
		return domainerrors.ErrOrderNotFound
	}

	var input usecase.UpdateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Update(c.Request().Context(), caller, orderID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}

// Delete soft-deletes an order.
func (h *OrderHandler) Delete(c echo.Context) error {
	caller, ok := callerFromContext(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Authentication required")
	}

	orderID, err := parseIDParam(c)
	if err != nil {
		return domainerrors.ErrOrderNotFound
	}

	if err := h.uc.Delete(c.Request().Context(), caller, orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// PublicShow returns a single order by id without authentication. Order ids
// are opaque; possession of one is the only gate.
func (h *OrderHandler) PublicShow(c echo.Context) error {
	orderID, err := parseIDParam(c)
	if err != nil {
		return domainerrors.ErrOrderNotFound
	}

	order, err := h.uc.Lookup(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

func callerFromContext(c echo.Context) (usecase.Caller, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return usecase.Caller{}, false
	}

	return usecase.Caller{
		UserID: userID,
		Roles:  middleware.UserRoles(c),
	}, true
}

func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id parameter")
	}

	return uint(id), nil
}
