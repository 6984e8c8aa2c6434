package handler

import (
	"log/slog"
	"net/http"

	"ecopoint/internal/delivery/http/response"
	"ecopoint/internal/domain/entity"
	"ecopoint/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the caller's account including the point balance.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

type payoutSettingsRequest struct {
	WalletAddress *string `json:"wallet_address"`
	BankDetails   *struct {
		BankName      string `json:"bank_name" validate:"required"`
		AccountNumber string `json:"account_number" validate:"required"`
		AccountName   string `json:"account_name"`
	} `json:"bank_details"`
}

// UpdatePayoutSettings stores the caller's redemption destinations.
func (h *ProfileHandler) UpdatePayoutSettings(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req payoutSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payout settings input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdatePayoutSettingsInput{
		WalletAddress: req.WalletAddress,
	}
	if req.BankDetails != nil {
		input.BankDetails = &entity.BankDetails{
			BankName:      req.BankDetails.BankName,
			AccountNumber: req.BankDetails.AccountNumber,
			AccountName:   req.BankDetails.AccountName,
		}
	}

	user, err := h.uc.UpdatePayoutSettings(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Payout settings updated successfully")
}
