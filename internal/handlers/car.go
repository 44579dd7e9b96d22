// internal/handlers/car.go
package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stefanninkovic/carunity/internal/i18n"
	"github.com/stefanninkovic/carunity/internal/models"
	"github.com/stefanninkovic/carunity/internal/services"
	"github.com/stefanninkovic/carunity/internal/utils"
)

type CarHandler struct {
	carService  *services.CarService
	authService *services.AuthService
}

func NewCarHandler(carService *services.CarService, authService *services.AuthService) *CarHandler {
	return &CarHandler{
		carService:  carService,
		authService: authService,
	}
}

// GET /offers
func (h *CarHandler) GetOffers(c *gin.Context) {
	params, err := parseSearchParams(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	cars := h.carService.Search(params)

	utils.SuccessResponse(c, gin.H{
		"offers": cars,
		"total":  len(cars),
	})
}

// GET /offers/featured
func (h *CarHandler) GetFeaturedOffers(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"offers": h.carService.Featured(),
	})
}

// GET /offers/:id
func (h *CarHandler) GetOffer(c *gin.Context) {
	id := c.Param("id")
	viewerID, _ := utils.GetUserIDFromContext(c)

	car, err := h.carService.Get(id, viewerID)
	if err != nil {
		utils.NotFoundResponse(c, "offer")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"offer": car,
	})
}

// POST /offers
func (h *CarHandler) CreateOffer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	seller, err := h.authService.GetUser(userID)
	if err != nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	var req services.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	car, err := h.carService.Create(seller, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOfferCreated),
		"offer":   car,
	})
}

// PUT /offers/:id
func (h *CarHandler) UpdateOffer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var patch models.CarPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&patch)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	car, err := h.carService.Update(id, userID, patch)
	if err != nil {
		if strings.Contains(err.Error(), "unauthorized") {
			utils.ForbiddenResponse(c, err.Error())
			return
		}
		utils.NotFoundResponse(c, "offer")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOfferUpdated),
		"offer":   car,
	})
}

// DELETE /offers/:id
func (h *CarHandler) DeleteOffer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if err := h.carService.Delete(id, userID); err != nil {
		utils.ForbiddenResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOfferDeleted),
	})
}

// GET /my/offers
func (h *CarHandler) GetMyOffers(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cars := h.carService.BySeller(userID)
	utils.SuccessResponse(c, gin.H{
		"offers": cars,
		"total":  len(cars),
	})
}

// parseSearchParams reads the filter dimensions off the query string.
// A malformed numeric value rejects the whole request rather than
// silently widening the filter to match-all.
func parseSearchParams(c *gin.Context) (services.SearchParams, error) {
	params := services.SearchParams{
		Query: c.Query("search"),
	}

	var parseErr error

	floatParam := func(name string) *float64 {
		v := c.Query(name)
		if v == "" || parseErr != nil {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			parseErr = fmt.Errorf("invalid %s", name)
			return nil
		}
		return &f
	}
	intParam := func(name string) *int {
		v := c.Query(name)
		if v == "" || parseErr != nil {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			parseErr = fmt.Errorf("invalid %s", name)
			return nil
		}
		return &n
	}

	params.PriceMin = floatParam("price_min")
	params.PriceMax = floatParam("price_max")
	params.YearMin = intParam("year_min")
	params.YearMax = intParam("year_max")
	params.MileageMax = intParam("mileage_max")
	params.Doors = intParam("doors")
	params.Seats = intParam("seats")
	params.EngineSizeMin = floatParam("engine_size_min")
	params.EngineSizeMax = floatParam("engine_size_max")
	params.HorsepowerMin = intParam("horsepower_min")
	params.HorsepowerMax = intParam("horsepower_max")
	params.OwnersMax = intParam("owners_max")
	if parseErr != nil {
		return services.SearchParams{}, parseErr
	}

	if v := c.Query("fuel_type"); v != "" {
		ft := models.FuelType(v)
		params.FuelType = &ft
	}
	if v := c.Query("transmission"); v != "" {
		t := models.Transmission(v)
		params.Transmission = &t
	}
	if v := c.Query("condition"); v != "" {
		cond := models.Condition(v)
		params.Condition = &cond
	}
	if v := c.Query("drive_type"); v != "" {
		dt := models.DriveType(v)
		params.DriveType = &dt
	}
	if v := c.Query("body_type"); v != "" {
		params.BodyType = &v
	}
	if v := c.Query("color"); v != "" {
		params.Color = &v
	}
	if v := c.Query("make"); v != "" {
		params.Make = &v
	}
	if v := c.Query("model"); v != "" {
		params.Model = &v
	}
	if v := c.Query("location"); v != "" {
		params.Location = &v
	}

	return params, nil
}
