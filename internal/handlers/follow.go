// internal/handlers/follow.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stefanninkovic/carunity/internal/i18n"
	"github.com/stefanninkovic/carunity/internal/services"
	"github.com/stefanninkovic/carunity/internal/utils"
)

type FollowHandler struct {
	followService *services.FollowService
}

func NewFollowHandler(followService *services.FollowService) *FollowHandler {
	return &FollowHandler{
		followService: followService,
	}
}

// POST /follow/:userId
func (h *FollowHandler) Follow(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	viewerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}
	targetID := c.Param("userId")

	h.followService.Follow(viewerID, targetID)

	utils.SuccessResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyFollowAdded),
		"following": true,
	})
}

// DELETE /follow/:userId
func (h *FollowHandler) Unfollow(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	viewerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}
	targetID := c.Param("userId")

	h.followService.Unfollow(viewerID, targetID)

	utils.SuccessResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyFollowRemoved),
		"following": false,
	})
}

// GET /follow/:userId
func (h *FollowHandler) IsFollowing(c *gin.Context) {
	viewerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}
	targetID := c.Param("userId")

	utils.SuccessResponse(c, gin.H{
		"following": h.followService.IsFollowing(viewerID, targetID),
	})
}

// GET /following
func (h *FollowHandler) GetFollowing(c *gin.Context) {
	viewerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	users := h.followService.Following(viewerID)
	utils.SuccessResponse(c, gin.H{
		"users": users,
		"total": len(users),
	})
}

// GET /followers
func (h *FollowHandler) GetFollowers(c *gin.Context) {
	users := h.followService.Followers()
	utils.SuccessResponse(c, gin.H{
		"users": users,
		"total": len(users),
	})
}

// GET /follow
func (h *FollowHandler) GetCounts(c *gin.Context) {
	viewerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"counts": h.followService.Counts(viewerID),
	})
}
