package api

import (
	"net/http"

	"github.com/Domenick1991/spacify/internal/service/notifications"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	feed notifications.FeedUseCase
}

func NewNotificationHandler(feed notifications.FeedUseCase) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

func (h *NotificationHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
}

func (h *NotificationHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.feed.List())
}
