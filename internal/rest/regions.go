package rest

import (
	"context"
	"net/http"
	"time"

	"seoulmate/domain"
	"seoulmate/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type RegionService interface {
	Regions(ctx context.Context) ([]domain.RegionRecord, error)
	Industries(ctx context.Context) ([]string, error)
}

type RegionHandler struct {
	service RegionService
	timeout time.Duration
}

func NewRegionHandler(service RegionService) *RegionHandler {
	return &RegionHandler{
		service: service,
		timeout: 10 * time.Second,
	}
}

// GET /api/v1/regions
func (h *RegionHandler) GetRegions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	regions, err := h.service.Regions(ctx)
	if err != nil {
		logger.Error("failed to load regions", "error", err)
		return regionError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(regions))
}

// GET /api/v1/industries
func (h *RegionHandler) GetIndustries(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	industries, err := h.service.Industries(ctx)
	if err != nil {
		logger.Error("failed to load industries", "error", err)
		return regionError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(industries))
}

func regionError(c echo.Context, err error) error {
	switch err {
	case domain.ErrDataNotFound, domain.ErrEmptyDataset:
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Error: err.Error()})
	case domain.ErrNoValidRegions:
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: err.Error()})
	}
}
