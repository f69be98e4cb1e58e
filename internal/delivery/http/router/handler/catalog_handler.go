package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product-catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Import walks the external store's catalog and refreshes the local cache.
// The walk is synchronous; the report comes back in the response.
func (h *CatalogHandler) Import(c echo.Context) error {
	report, err := h.uc.Import(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Products imported successfully")
}

// Products lists the cached catalog with aggregate stats.
func (h *CatalogHandler) Products(c echo.Context) error {
	filter := repository.ProductFilter{
		Search: c.QueryParam("search"),
		Name:   c.QueryParam("name"),
		Slug:   c.QueryParam("slug"),
		SKU:    c.QueryParam("sku"),
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	listing, err := h.uc.Products(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Products retrieved successfully")
}
