package handler

import (
	"errors"
	"net/http"

	"screamy/internal/services"
	"screamy/internal/transport/httpdto"
	"screamy/internal/validation"
	screamy_errors "screamy/pkg/errors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// UpdateDetails merges the whitelisted detail fields into the caller's own
// profile; fields outside the whitelist are silently dropped.
func (h *UserHandler) UpdateDetails(c *gin.Context) {
	handle, ok := services.HandleFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req httpdto.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
		return
	}

	details := validation.ReduceUserDetails(validation.DetailsInput{
		Bio:      req.Bio,
		Website:  req.Website,
		Location: req.Location,
	})

	if err := h.service.UpdateDetails(c.Request.Context(), handle, details); err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "Details added successfully"})
}

// GetUser returns any user's public profile with their screams, newest
// first. The screams query is never issued for an unknown handle.
func (h *UserHandler) GetUser(c *gin.Context) {
	profile, err := h.service.GetPublicProfile(c.Request.Context(), c.Param("handle"))
	if err != nil {
		if errors.Is(err, screamy_errors.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpdto.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetOwnUser returns the caller's credentials, likes and the ten most
// recent notifications.
func (h *UserHandler) GetOwnUser(c *gin.Context) {
	handle, ok := services.HandleFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
		return
	}

	profile, err := h.service.GetOwnProfile(c.Request.Context(), handle)
	if err != nil {
		if errors.Is(err, screamy_errors.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpdto.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
