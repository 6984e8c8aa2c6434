package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecopoint/internal/delivery/http/middleware"
	"ecopoint/internal/domain/entity"
	mockUsecase "ecopoint/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newRedemptionTestContext(callerID uuid.UUID, roles []string, redemptionID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetPath("/redemptions/:id")
	c.SetParamNames("id")
	c.SetParamValues(redemptionID.String())
	c.Set(middleware.ContextKeyUserID, callerID)
	c.Set(middleware.ContextKeyRoles, roles)

	return c, rec
}

func TestRedemptionHandler_GetRedemption_Owner(t *testing.T) {
	uc := mockUsecase.NewMockRedemptionUsecase(t)
	h := NewRedemptionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	accountID := uuid.New()
	redemption := &entity.Redemption{ID: uuid.New(), AccountID: accountID, Points: 150}
	c, rec := newRedemptionTestContext(accountID, []string{entity.RoleUser.String()}, redemption.ID)

	uc.On("GetRedemption", c.Request().Context(), redemption.ID).Return(redemption, nil)

	err := h.GetRedemption(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRedemptionHandler_GetRedemption_OtherAccountForbidden(t *testing.T) {
	uc := mockUsecase.NewMockRedemptionUsecase(t)
	h := NewRedemptionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	redemption := &entity.Redemption{ID: uuid.New(), AccountID: uuid.New(), Points: 150}
	c, rec := newRedemptionTestContext(uuid.New(), []string{entity.RoleUser.String()}, redemption.ID)

	uc.On("GetRedemption", c.Request().Context(), redemption.ID).Return(redemption, nil)

	err := h.GetRedemption(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRedemptionHandler_GetRedemption_AdminSeesAny(t *testing.T) {
	uc := mockUsecase.NewMockRedemptionUsecase(t)
	h := NewRedemptionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	redemption := &entity.Redemption{ID: uuid.New(), AccountID: uuid.New(), Points: 150}
	c, rec := newRedemptionTestContext(uuid.New(), []string{entity.RoleAdmin.String()}, redemption.ID)

	uc.On("GetRedemption", c.Request().Context(), redemption.ID).Return(redemption, nil)

	err := h.GetRedemption(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
