package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	regions RegionService
	version string
}

func NewHealthHandler(regions RegionService, version string) *HealthHandler {
	return &HealthHandler{regions: regions, version: version}
}

// GET /api/v1/health
//
// Liveness plus a dataset probe: the service is "degraded" when it is
// up but cannot serve recommendations because the dataset is missing.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	status := "ok"
	datasetRows := 0
	if regions, err := h.regions.Regions(ctx); err != nil {
		status = "degraded"
	} else {
		datasetRows = len(regions)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"status":       status,
		"version":      h.version,
		"dataset_rows": datasetRows,
	}))
}
