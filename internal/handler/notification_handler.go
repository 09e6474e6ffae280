package handler

import (
	"net/http"

	"screamy/internal/services"
	"screamy/internal/transport/httpdto"
	"screamy/pkg/logger"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service *services.NotificationService
	logger  *logger.Logger
}

func NewNotificationHandler(service *services.NotificationService, l *logger.Logger) *NotificationHandler {
	return &NotificationHandler{service: service, logger: l}
}

// MarkRead takes a JSON array of notification id strings and commits one
// all-or-nothing batch flipping read=true on each. Any failure rejects the
// whole batch; nothing is partially applied.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	handle, ok := services.HandleFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var ids []string
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "expected an array of notification ids"})
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), handle, ids); err != nil {
		if h.logger != nil {
			h.logger.ErrorfCtx(c.Request.Context(), "mark notifications read failed: %s", err)
		}
		c.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "Notifications marked read"})
}
