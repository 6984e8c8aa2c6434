package handler

import (
	"log/slog"
	"net/http"

	"ecopoint/internal/delivery/http/response"
	"ecopoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MaterialHandler holds dependencies for material catalog handlers.
type MaterialHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewMaterialHandler is the constructor for MaterialHandler, injected by Fx.
func NewMaterialHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *MaterialHandler {
	return &MaterialHandler{
		uc:     uc,
		logger: logger,
	}
}

type defineMaterialRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	PointValue  int    `json:"point_value" validate:"required,gt=0"`
}

// DefineMaterialType registers a new material in the catalog. Admin only.
func (h *MaterialHandler) DefineMaterialType(c echo.Context) error {
	adminID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req defineMaterialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid material input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	materialType, err := h.uc.DefineMaterialType(c.Request().Context(), adminID, usecase.DefineMaterialTypeInput{
		Name:        req.Name,
		Description: req.Description,
		PointValue:  req.PointValue,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, materialType, "Material type defined successfully")
}

// GetMaterialType returns a single catalog entry.
func (h *MaterialHandler) GetMaterialType(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid material ID")
	}

	materialType, err := h.uc.GetMaterialType(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, materialType, "Material type retrieved successfully")
}

// GetMaterialTypeByCode resolves a scanned identifier code to its material.
func (h *MaterialHandler) GetMaterialTypeByCode(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Material code is required")
	}

	materialType, err := h.uc.GetMaterialTypeByCode(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, materialType, "Material type retrieved successfully")
}

// ListMaterialTypes returns the full catalog.
func (h *MaterialHandler) ListMaterialTypes(c echo.Context) error {
	materials, err := h.uc.ListMaterialTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, materials, "Material types retrieved successfully")
}

// GetMaterialLabel streams the printable QR label PNG for a material.
func (h *MaterialHandler) GetMaterialLabel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid material ID")
	}

	png, err := h.uc.MaterialLabelPNG(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
