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

type CityHandler struct {
	cityUC *usecase.CityUseCase
	logger *zap.Logger
}

func NewCityHandler(cityUC *usecase.CityUseCase, logger *zap.Logger) *CityHandler {
	return &CityHandler{
		cityUC: cityUC,
		logger: logger,
	}
}

// List godoc
// @Summary List cities
// @Description Returns all cities, optionally filtered by country name. Boundaries are projected as GeoJSON.
// @Tags Cities
// @Produce json
// @Param country query string false "Filter by country name"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.City}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/cities [get]
func (h *CityHandler) List(c *fiber.Ctx) error {
	var (
		cities interface{}
		err    error
	)

	if country := c.Query("country"); country != "" {
		cities, err = h.cityUC.GetByCountry(c.Context(), country)
	} else {
		cities, err = h.cityUC.GetAll(c.Context())
	}
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, cities, nil)
}

// GetByID godoc
// @Summary Get city by ID
// @Description Returns a single city with its district list embedded.
// @Tags Cities
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.City}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cities/{id} [get]
func (h *CityHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	city, err := h.cityUC.GetByID(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, city, nil)
}

// Create godoc
// @Summary Create city
// @Tags Cities
// @Accept json
// @Produce json
// @Param request body dto.CityCreateRequest true "City data"
// @Success 201 {object} utils.SuccessResponse{data=domain.City}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/cities [post]
func (h *CityHandler) Create(c *fiber.Ctx) error {
	var req dto.CityCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	city, err := h.cityUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, city)
}

// Update godoc
// @Summary Partially update city
// @Description Applies only the fields present in the request body; omitted fields stay untouched.
// @Tags Cities
// @Accept json
// @Produce json
// @Param id path int true "City ID"
// @Param request body dto.CityUpdateRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=domain.City}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cities/{id} [patch]
func (h *CityHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.CityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	city, err := h.cityUC.Update(c.Context(), int64(id), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, city, nil)
}

// Delete godoc
// @Summary Delete city
// @Description Deletes a city; its districts, flats and join rows cascade at the store level.
// @Tags Cities
// @Param id path int true "City ID"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cities/{id} [delete]
func (h *CityHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	deleted, err := h.cityUC.Delete(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}
	if !deleted {
		return utils.SendError(c, errors.ErrCityNotFound)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
