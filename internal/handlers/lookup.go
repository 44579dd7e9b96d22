// internal/handlers/lookup.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stefanninkovic/carunity/internal/i18n"
	"github.com/stefanninkovic/carunity/internal/services"
	"github.com/stefanninkovic/carunity/internal/utils"
)

type LookupHandler struct {
	lookupService *services.LookupService
}

func NewLookupHandler(lookupService *services.LookupService) *LookupHandler {
	return &LookupHandler{
		lookupService: lookupService,
	}
}

// GET /lookup/vehicle?make=&model=&body_type=&year=
func (h *LookupHandler) LookupVehicle(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	make := c.Query("make")
	model := c.Query("model")
	bodyType := c.Query("body_type")
	yearStr := c.Query("year")

	if make == "" || model == "" || bodyType == "" || yearStr == "" {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "make, model, body_type, year"), nil)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "year"), nil)
		return
	}

	spec, err := h.lookupService.Vehicle(make, model, bodyType, year)
	if err != nil {
		h.notFound(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"spec": spec})
}

// GET /lookup/type-approval/:number
func (h *LookupHandler) LookupTypeApproval(c *gin.Context) {
	spec, err := h.lookupService.TypeApproval(c.Param("number"))
	if err != nil {
		h.notFound(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"spec": spec})
}

// GET /lookup/stammnummer/:number
func (h *LookupHandler) LookupStammnummer(c *gin.Context) {
	spec, err := h.lookupService.Stammnummer(c.Param("number"))
	if err != nil {
		h.notFound(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"spec": spec})
}

func (h *LookupHandler) notFound(c *gin.Context, err error) {
	if errors.Is(err, services.ErrVehicleNotFound) {
		utils.NotFoundResponse(c, "lookup")
		return
	}
	utils.BadRequestResponse(c, err.Error(), nil)
}
