package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"seoulmate/domain"
	"seoulmate/pkg/logger"
	"seoulmate/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError is the error contract: a human-readable message plus an
// optional diagnostic block.
type ResponseError struct {
	Error string                      `json:"error"`
	Debug *domain.RecommendationStats `json:"debug,omitempty"`
}

type RecommendService interface {
	Recommend(ctx context.Context, req domain.RecommendationRequest, topK int) (domain.RecommendationResponse, domain.RecommendationStats, error)
	DebugRecommend(ctx context.Context, req domain.RecommendationRequest, topK int) ([]domain.DebugRecommendation, error)
}

type RecommendHandler struct {
	validate *validator.Validate
	service  RecommendService
	topK     int
	timeout  time.Duration
}

func NewRecommendHandler(service RecommendService, topK int) *RecommendHandler {
	return &RecommendHandler{
		validate: validator.New(),
		service:  service,
		topK:     topK,
		timeout:  10 * time.Second,
	}
}

type RecommendRequest struct {
	AgeGroup          string `json:"age_group" validate:"required,oneof=10대 20대 30대 40대 50대 60대이상"`
	Gender            string `json:"gender" validate:"required"`
	PreferredIndustry string `json:"preferred_industry"`
	TimePeriod        string `json:"time_period"`
	IsWeekend         bool   `json:"is_weekend"`
	Purpose           string `json:"purpose" validate:"omitempty,oneof=meal cafe shopping culture sport other"`
	Budget            string `json:"budget" validate:"omitempty,oneof=low medium high"`
	Priority          string `json:"priority" validate:"omitempty,oneof=accessibility trend price diversity"`
}

// POST /api/v1/recommend
func (h *RecommendHandler) Recommend(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()
	metrics.RecommendTotal.Inc()

	req, err := h.bindRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	resp, stats, err := h.service.Recommend(ctx, req, h.topK)
	if err != nil {
		return h.errorResponse(c, err, stats)
	}

	if stats.Degraded {
		metrics.FallbackTotal.Inc()
		logger.Warn("recommendation served in degraded mode",
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"rows_parsed", stats.RowsParsed,
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// POST /api/v1/recommend/debug
func (h *RecommendHandler) DebugRecommend(c echo.Context) error {
	req, err := h.bindRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.DebugRecommend(ctx, req, h.topK)
	if err != nil {
		return h.errorResponse(c, err, domain.RecommendationStats{})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recommendations": recs,
	})
}

func (h *RecommendHandler) bindRequest(c echo.Context) (domain.RecommendationRequest, error) {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return domain.RecommendationRequest{}, err
	}
	if err := h.validate.Struct(&req); err != nil {
		return domain.RecommendationRequest{}, err
	}

	return domain.RecommendationRequest{
		AgeGroup:          req.AgeGroup,
		Gender:            req.Gender,
		PreferredIndustry: req.PreferredIndustry,
		TimePeriod:        req.TimePeriod,
		IsWeekend:         req.IsWeekend,
		Purpose:           req.Purpose,
		Budget:            req.Budget,
		Priority:          req.Priority,
	}, nil
}

func (h *RecommendHandler) errorResponse(c echo.Context, err error, stats domain.RecommendationStats) error {
	switch {
	case errors.Is(err, domain.ErrDataNotFound), errors.Is(err, domain.ErrEmptyDataset):
		logger.Error("dataset unavailable", "error", err)
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Error: err.Error(), Debug: &stats})
	case errors.Is(err, domain.ErrNoValidRegions):
		logger.Error("no valid regions in dataset", "error", err)
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Error: err.Error(), Debug: &stats})
	default:
		logger.Error("recommendation failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: err.Error()})
	}
}
