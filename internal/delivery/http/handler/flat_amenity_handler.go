package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/flat-catalog/internal/pkg/errors"
	"github.com/flat-catalog/internal/pkg/utils"
	"github.com/flat-catalog/internal/usecase"
)

type FlatAmenityHandler struct {
	flatAmenityUC *usecase.FlatAmenityUseCase
	logger        *zap.Logger
}

func NewFlatAmenityHandler(flatAmenityUC *usecase.FlatAmenityUseCase, logger *zap.Logger) *FlatAmenityHandler {
	return &FlatAmenityHandler{
		flatAmenityUC: flatAmenityUC,
		logger:        logger,
	}
}

func (h *FlatAmenityHandler) params(c *fiber.Ctx) (int64, int64, error) {
	flatID, err := c.ParamsInt("id")
	if err != nil {
		return 0, 0, errors.ErrInvalidRequest
	}
	amenityID, err := c.ParamsInt("amenityID")
	if err != nil {
		return 0, 0, errors.ErrInvalidRequest
	}
	return int64(flatID), int64(amenityID), nil
}

// List godoc
// @Summary List all flat-amenity associations
// @Tags FlatAmenities
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.FlatAmenity}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/flat-amenities [get]
func (h *FlatAmenityHandler) List(c *fiber.Ctx) error {
	associations, err := h.flatAmenityUC.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, associations, nil)
}

// ListAmenitiesByFlat godoc
// @Summary List amenities of a flat
// @Tags FlatAmenities
// @Produce json
// @Param id path int true "Flat ID"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Amenity}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/flats/{id}/amenities [get]
func (h *FlatAmenityHandler) ListAmenitiesByFlat(c *fiber.Ctx) error {
	flatID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	amenities, err := h.flatAmenityUC.GetAmenitiesByFlat(c.Context(), int64(flatID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, amenities, nil)
}

// ListFlatsByAmenity godoc
// @Summary List flats carrying an amenity
// @Tags FlatAmenities
// @Produce json
// @Param id path int true "Amenity ID"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Flat}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/amenities/{id}/flats [get]
func (h *FlatAmenityHandler) ListFlatsByAmenity(c *fiber.Ctx) error {
	amenityID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	flats, err := h.flatAmenityUC.GetFlatsByAmenity(c.Context(), int64(amenityID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, flats, nil)
}

// Create godoc
// @Summary Associate a flat with an amenity
// @Description Inserts one join row. A duplicate pair is rejected by the store's composite key with 409.
// @Tags FlatAmenities
// @Produce json
// @Param id path int true "Flat ID"
// @Param amenityID path int true "Amenity ID"
// @Success 201 {object} utils.SuccessResponse{data=domain.FlatAmenity}
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/flats/{id}/amenities/{amenityID} [post]
func (h *FlatAmenityHandler) Create(c *fiber.Ctx) error {
	flatID, amenityID, err := h.params(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	association, err := h.flatAmenityUC.Create(c.Context(), flatID, amenityID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, association)
}

// Delete godoc
// @Summary Remove a flat-amenity association
// @Tags FlatAmenities
// @Param id path int true "Flat ID"
// @Param amenityID path int true "Amenity ID"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/flats/{id}/amenities/{amenityID} [delete]
func (h *FlatAmenityHandler) Delete(c *fiber.Ctx) error {
	flatID, amenityID, err := h.params(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	deleted, err := h.flatAmenityUC.Delete(c.Context(), flatID, amenityID)
	if err != nil {
		return utils.SendError(c, err)
	}
	if !deleted {
		return utils.SendError(c, errors.ErrAssociationNotFound)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
