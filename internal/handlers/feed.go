// internal/handlers/feed.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stefanninkovic/carunity/internal/services"
	"github.com/stefanninkovic/carunity/internal/utils"
)

type FeedHandler struct {
	feedService *services.FeedService
}

func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

// GET /feed
func (h *FeedHandler) GetFeed(c *gin.Context) {
	viewerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	feed := h.feedService.Compose(viewerID)

	utils.SuccessResponse(c, gin.H{
		"feed": feed,
	})
}
