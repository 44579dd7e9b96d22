// internal/handlers/wheel.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stefanninkovic/carunity/internal/i18n"
	"github.com/stefanninkovic/carunity/internal/models"
	"github.com/stefanninkovic/carunity/internal/services"
	"github.com/stefanninkovic/carunity/internal/utils"
)

type WheelHandler struct {
	wheelService *services.WheelService
	authService  *services.AuthService
}

func NewWheelHandler(wheelService *services.WheelService, authService *services.AuthService) *WheelHandler {
	return &WheelHandler{
		wheelService: wheelService,
		authService:  authService,
	}
}

// GET /wheels
func (h *WheelHandler) GetWheels(c *gin.Context) {
	wheels := h.wheelService.Browse(c.Query("car_id"))

	utils.SuccessResponse(c, gin.H{
		"wheels": wheels,
		"total":  len(wheels),
	})
}

// GET /wheels/:id
func (h *WheelHandler) GetWheel(c *gin.Context) {
	id := c.Param("id")
	viewerID, _ := utils.GetUserIDFromContext(c)

	wheel, err := h.wheelService.Get(id, viewerID)
	if err != nil {
		utils.NotFoundResponse(c, "wheel")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"wheel": wheel,
	})
}

// POST /wheels
func (h *WheelHandler) CreateWheel(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	var req services.CreateWheelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	wheel, err := h.wheelService.Create(user, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyWheelCreated),
		"wheel":   wheel,
	})
}

// PUT /wheels/:id
func (h *WheelHandler) UpdateWheel(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var patch models.WheelPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&patch)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	wheel, err := h.wheelService.Update(id, userID, patch)
	if err != nil {
		if strings.Contains(err.Error(), "unauthorized") {
			utils.ForbiddenResponse(c, err.Error())
			return
		}
		utils.NotFoundResponse(c, "wheel")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyWheelUpdated),
		"wheel":   wheel,
	})
}

// DELETE /wheels/:id
func (h *WheelHandler) DeleteWheel(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if err := h.wheelService.Delete(id, userID); err != nil {
		utils.ForbiddenResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyWheelDeleted),
	})
}

// GET /my/wheels
func (h *WheelHandler) GetMyWheels(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	wheels := h.wheelService.ByUser(userID)
	utils.SuccessResponse(c, gin.H{
		"wheels": wheels,
		"total":  len(wheels),
	})
}
