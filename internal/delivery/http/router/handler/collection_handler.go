package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ecopoint/internal/delivery/http/response"
	"ecopoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CollectionHandler holds dependencies for drop-off recording handlers.
type CollectionHandler struct {
	uc     usecase.CollectionUsecase
	logger *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler, injected by Fx.
func NewCollectionHandler(uc usecase.CollectionUsecase, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		uc:     uc,
		logger: logger,
	}
}

type scanRequest struct {
	AccountID    string `json:"account_id" validate:"required,uuid"`
	MaterialCode string `json:"material_code" validate:"required"`
}

// ProcessScan records a scanned, labeled item. Collector only.
func (h *CollectionHandler) ProcessScan(c echo.Context) error {
	collectorID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req scanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	event, err := h.uc.ProcessScan(c.Request().Context(), collectorID, usecase.ProcessScanInput{
		AccountID:    accountID,
		MaterialCode: req.MaterialCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Scan recorded successfully")
}

type weightRequest struct {
	AccountID string  `json:"account_id" validate:"required,uuid"`
	WeightKg  float64 `json:"weight_kg"`
}

// ProcessWeight records a weighed, unlabeled drop-off. Collector only.
func (h *CollectionHandler) ProcessWeight(c echo.Context) error {
	collectorID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req weightRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weight input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	event, err := h.uc.ProcessWeight(c.Request().Context(), collectorID, usecase.ProcessWeightInput{
		AccountID: accountID,
		WeightKg:  req.WeightKg,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Weight recorded successfully")
}

// CurrentScaleReading returns the latest sampled weight from the scale gateway.
func (h *CollectionHandler) CurrentScaleReading(c echo.Context) error {
	reading, err := h.uc.CurrentScaleReading(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reading, "Scale reading retrieved successfully")
}

// ListMyHistory returns the caller's own collection events, newest first.
func (h *CollectionHandler) ListMyHistory(c echo.Context) error {
	accountID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	events, err := h.uc.ListAccountHistory(c.Request().Context(), accountID, historyLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "Collection history retrieved successfully")
}

// ListProcessedHistory returns the events the calling collector processed.
func (h *CollectionHandler) ListProcessedHistory(c echo.Context) error {
	collectorID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	events, err := h.uc.ListCollectorHistory(c.Request().Context(), collectorID, historyLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "Collection history retrieved successfully")
}

func historyLimit(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}
