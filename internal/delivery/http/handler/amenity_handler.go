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

type AmenityHandler struct {
	amenityUC *usecase.AmenityUseCase
	logger    *zap.Logger
}

func NewAmenityHandler(amenityUC *usecase.AmenityUseCase, logger *zap.Logger) *AmenityHandler {
	return &AmenityHandler{
		amenityUC: amenityUC,
		logger:    logger,
	}
}

// List godoc
// @Summary List amenities
// @Tags Amenities
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Amenity}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/amenities [get]
func (h *AmenityHandler) List(c *fiber.Ctx) error {
	amenities, err := h.amenityUC.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, amenities, nil)
}

// GetByID godoc
// @Summary Get amenity by ID
// @Tags Amenities
// @Produce json
// @Param id path int true "Amenity ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Amenity}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/amenities/{id} [get]
func (h *AmenityHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	amenity, err := h.amenityUC.GetByID(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, amenity, nil)
}

// Create godoc
// @Summary Create amenity
// @Tags Amenities
// @Accept json
// @Produce json
// @Param request body dto.AmenityCreateRequest true "Amenity data"
// @Success 201 {object} utils.SuccessResponse{data=domain.Amenity}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/amenities [post]
func (h *AmenityHandler) Create(c *fiber.Ctx) error {
	var req dto.AmenityCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	amenity, err := h.amenityUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, amenity)
}

// Update godoc
// @Summary Partially update amenity
// @Tags Amenities
// @Accept json
// @Produce json
// @Param id path int true "Amenity ID"
// @Param request body dto.AmenityUpdateRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=domain.Amenity}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/amenities/{id} [patch]
func (h *AmenityHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.AmenityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	amenity, err := h.amenityUC.Update(c.Context(), int64(id), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, amenity, nil)
}

// Delete godoc
// @Summary Delete amenity
// @Description Deletes an amenity; its flat associations cascade at the store level.
// @Tags Amenities
// @Param id path int true "Amenity ID"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/amenities/{id} [delete]
func (h *AmenityHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	deleted, err := h.amenityUC.Delete(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}
	if !deleted {
		return utils.SendError(c, errors.ErrAmenityNotFound)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
