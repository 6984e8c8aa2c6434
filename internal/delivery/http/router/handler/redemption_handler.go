package handler

import (
	"log/slog"
	"net/http"

	"ecopoint/internal/delivery/http/response"
	"ecopoint/internal/domain/entity"
	"ecopoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RedemptionHandler holds dependencies for redemption handlers.
type RedemptionHandler struct {
	uc     usecase.RedemptionUsecase
	logger *slog.Logger
}

// NewRedemptionHandler is the constructor for RedemptionHandler, injected by Fx.
func NewRedemptionHandler(uc usecase.RedemptionUsecase, logger *slog.Logger) *RedemptionHandler {
	return &RedemptionHandler{
		uc:     uc,
		logger: logger,
	}
}

type redemptionRequest struct {
	Points int    `json:"points" validate:"required,gt=0"`
	Method string `json:"method" validate:"required,oneof=bank wallet"`
}

// RequestRedemption debits the caller's balance and records a pending payout.
func (h *RedemptionHandler) RequestRedemption(c echo.Context) error {
	accountID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req redemptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	redemption, err := h.uc.RequestRedemption(c.Request().Context(), accountID, usecase.RequestRedemptionInput{
		Points: req.Points,
		Method: entity.RedemptionMethod(req.Method),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, redemption, "Redemption requested successfully")
}

// GetRedemption returns a single redemption. Visible only to the owning
// account and admins.
func (h *RedemptionHandler) GetRedemption(c echo.Context) error {
	accountID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid redemption ID")
	}

	redemption, err := h.uc.GetRedemption(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	if redemption.AccountID != accountID && !callerHasRole(c, entity.RoleAdmin.String()) {
		return response.Forbidden(c, "FORBIDDEN", "This redemption belongs to another account")
	}

	return response.Success(c, http.StatusOK, redemption, "Redemption retrieved successfully")
}

// ListMyRedemptions returns the caller's redemptions, newest first.
func (h *RedemptionHandler) ListMyRedemptions(c echo.Context) error {
	accountID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	redemptions, err := h.uc.ListAccountRedemptions(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, redemptions, "Redemptions retrieved successfully")
}

// ListPendingRedemptions returns all pending redemptions. Admin only.
func (h *RedemptionHandler) ListPendingRedemptions(c echo.Context) error {
	redemptions, err := h.uc.ListPendingRedemptions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, redemptions, "Pending redemptions retrieved successfully")
}

// CompleteRedemption settles a pending redemption as paid out. Admin only.
func (h *RedemptionHandler) CompleteRedemption(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid redemption ID")
	}

	if err := h.uc.CompleteRedemption(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "completed"}, "Redemption completed successfully")
}

// FailRedemption settles a pending redemption as failed, restoring the
// debited points. Admin only.
func (h *RedemptionHandler) FailRedemption(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid redemption ID")
	}

	if err := h.uc.FailRedemption(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "failed"}, "Redemption marked as failed")
}
