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

type DistrictHandler struct {
	districtUC *usecase.DistrictUseCase
	logger     *zap.Logger
}

func NewDistrictHandler(districtUC *usecase.DistrictUseCase, logger *zap.Logger) *DistrictHandler {
	return &DistrictHandler{
		districtUC: districtUC,
		logger:     logger,
	}
}

// List godoc
// @Summary List districts
// @Tags Districts
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.District}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/districts [get]
func (h *DistrictHandler) List(c *fiber.Ctx) error {
	districts, err := h.districtUC.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, districts, nil)
}

// GetByID godoc
// @Summary Get district by ID
// @Description Returns a single district with its parent city summary embedded.
// @Tags Districts
// @Produce json
// @Param id path int true "District ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.District}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/districts/{id} [get]
func (h *DistrictHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	district, err := h.districtUC.GetByID(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, district, nil)
}

// ListByCity godoc
// @Summary List districts of a city
// @Tags Districts
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.District}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/cities/{id}/districts [get]
func (h *DistrictHandler) ListByCity(c *fiber.Ctx) error {
	cityID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	districts, err := h.districtUC.GetByCity(c.Context(), int64(cityID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, districts, nil)
}

// Create godoc
// @Summary Create district
// @Tags Districts
// @Accept json
// @Produce json
// @Param request body dto.DistrictCreateRequest true "District data"
// @Success 201 {object} utils.SuccessResponse{data=domain.District}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/districts [post]
func (h *DistrictHandler) Create(c *fiber.Ctx) error {
	var req dto.DistrictCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	district, err := h.districtUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, district)
}

// Update godoc
// @Summary Partially update district
// @Tags Districts
// @Accept json
// @Produce json
// @Param id path int true "District ID"
// @Param request body dto.DistrictUpdateRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=domain.District}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/districts/{id} [patch]
func (h *DistrictHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.DistrictUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	district, err := h.districtUC.Update(c.Context(), int64(id), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, district, nil)
}

// Delete godoc
// @Summary Delete district
// @Description Deletes a district; its flats cascade at the store level.
// @Tags Districts
// @Param id path int true "District ID"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/districts/{id} [delete]
func (h *DistrictHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	deleted, err := h.districtUC.Delete(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}
	if !deleted {
		return utils.SendError(c, errors.ErrDistrictNotFound)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
