package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/flat-catalog/internal/pkg/errors"
	"github.com/flat-catalog/internal/pkg/utils"
	"github.com/flat-catalog/internal/pkg/validator"
	"github.com/flat-catalog/internal/usecase"
	"github.com/flat-catalog/internal/usecase/dto"
)

type FlatHandler struct {
	flatUC *usecase.FlatUseCase
	logger *zap.Logger
}

func NewFlatHandler(flatUC *usecase.FlatUseCase, logger *zap.Logger) *FlatHandler {
	return &FlatHandler{
		flatUC: flatUC,
		logger: logger,
	}
}

// List godoc
// @Summary List flats
// @Description Returns all flats with coordinates projected as GeoJSON points.
// @Tags Flats
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Flat}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/flats [get]
func (h *FlatHandler) List(c *fiber.Ctx) error {
	flats, err := h.flatUC.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, flats, nil)
}

// GetByID godoc
// @Summary Get flat by ID
// @Description Returns a single flat with nested city summary, district summary and amenity list.
// @Tags Flats
// @Produce json
// @Param id path int true "Flat ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Flat}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/flats/{id} [get]
func (h *FlatHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	flat, err := h.flatUC.GetByID(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, flat, nil)
}

// ListByCity godoc
// @Summary List flats in a city
// @Tags Flats
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Flat}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/cities/{id}/flats [get]
func (h *FlatHandler) ListByCity(c *fiber.Ctx) error {
	cityID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	flats, err := h.flatUC.GetByCity(c.Context(), int64(cityID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, flats, nil)
}

// ListByDistrict godoc
// @Summary List flats in a district
// @Tags Flats
// @Produce json
// @Param id path int true "District ID"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Flat}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/districts/{id}/flats [get]
func (h *FlatHandler) ListByDistrict(c *fiber.Ctx) error {
	districtID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	flats, err := h.flatUC.GetByDistrict(c.Context(), int64(districtID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, flats, nil)
}

// Create godoc
// @Summary Create flat
// @Description Creates a flat. Coordinates must be a GeoJSON Point; constraint violations (square <= 0, unknown city/district) surface as 409.
// @Tags Flats
// @Accept json
// @Produce json
// @Param request body dto.FlatCreateRequest true "Flat data"
// @Success 201 {object} utils.SuccessResponse{data=domain.Flat}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/flats [post]
func (h *FlatHandler) Create(c *fiber.Ctx) error {
	var req dto.FlatCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	flat, err := h.flatUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, flat)
}

// Update godoc
// @Summary Partially update flat
// @Description Applies only the fields present in the request body; omitted fields stay untouched.
// @Tags Flats
// @Accept json
// @Produce json
// @Param id path int true "Flat ID"
// @Param request body dto.FlatUpdateRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=domain.Flat}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/flats/{id} [patch]
func (h *FlatHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.FlatUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	flat, err := h.flatUC.Update(c.Context(), int64(id), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, flat, nil)
}

// Delete godoc
// @Summary Delete flat
// @Description Deletes a flat; its amenity associations cascade at the store level.
// @Tags Flats
// @Param id path int true "Flat ID"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/flats/{id} [delete]
func (h *FlatHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	deleted, err := h.flatUC.Delete(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}
	if !deleted {
		return utils.SendError(c, errors.ErrFlatNotFound)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
