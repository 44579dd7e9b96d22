// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stefanninkovic/carunity/internal/services"
	"github.com/stefanninkovic/carunity/internal/utils"
)

type UserHandler struct {
	authService  *services.AuthService
	carService   *services.CarService
	wheelService *services.WheelService
}

func NewUserHandler(authService *services.AuthService, carService *services.CarService, wheelService *services.WheelService) *UserHandler {
	return &UserHandler{
		authService:  authService,
		carService:   carService,
		wheelService: wheelService,
	}
}

// GET /users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("userId")

	user, err := h.authService.GetUser(userID)
	if err != nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user})
}

// GET /users/:userId/offers
func (h *UserHandler) GetUserOffers(c *gin.Context) {
	userID := c.Param("userId")

	if _, err := h.authService.GetUser(userID); err != nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	offers := h.carService.ListedBySeller(userID)
	utils.SuccessResponse(c, gin.H{
		"offers": offers,
		"total":  len(offers),
	})
}

// GET /users/:userId/wheels
func (h *UserHandler) GetUserWheels(c *gin.Context) {
	userID := c.Param("userId")

	if _, err := h.authService.GetUser(userID); err != nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	wheels := h.wheelService.ListedByUser(userID)
	utils.SuccessResponse(c, gin.H{
		"wheels": wheels,
		"total":  len(wheels),
	})
}
