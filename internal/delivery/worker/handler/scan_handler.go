// Package handler contains the worker's HTTP handlers.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "capsule/internal/delivery/context"
	"capsule/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx
type ScanHandlerParams struct {
	fx.In

	ExpiryUC usecase.ExpiryUsecase
	Logger   *slog.Logger
}

// ScanHandler triggers expiry scans on demand, outside the timer schedule
type ScanHandler struct {
	expiryUC usecase.ExpiryUsecase
	logger   *slog.Logger
}

// NewScanHandler creates a new ScanHandler instance
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		expiryUC: params.ExpiryUC,
		logger:   params.Logger,
	}
}

// HandleScan runs a single expiry scan and reports its counters.
// A scan already in flight yields 409 so callers can back off. An optional
// now query parameter (RFC3339) substitutes a synthetic clock for
// operational testing; omitted, the scan uses the current time.
func (h *ScanHandler) HandleScan(c echo.Context) error {
	ctx := c.Request().Context()

	var now time.Time
	if nowParam := c.QueryParam("now"); nowParam != "" {
		parsed, err := time.Parse(time.RFC3339, nowParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "now must be an RFC3339 timestamp",
			})
		}
		now = parsed
	}

	result, err := h.expiryUC.RunOnce(ctx, now)
	if err != nil {
		if errors.Is(err, usecase.ErrScanInProgress) {
			return c.JSON(http.StatusConflict, map[string]string{
				"error": "scan already in progress",
			})
		}

		h.logger.Error("[Worker] Expiry scan failed",
			slog.String("request_id", deliverycontext.GetRequestIDFromContext(ctx)),
			slog.Any("error", err),
		)

		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "scan failed",
		})
	}

	return c.JSON(http.StatusOK, result)
}
