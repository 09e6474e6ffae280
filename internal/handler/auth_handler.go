// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"screamy/internal/services"
	"screamy/internal/transport/httpdto"
	"screamy/internal/validation"
	screamy_errors "screamy/pkg/errors"
	"screamy/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	service *services.AuthService
	logger  *logger.Logger
}

func NewAuthHandler(service *services.AuthService, l *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: l}
}

// Signup handles user registration. Validation failures report every
// offending field at once; the collision errors keep their field-specific
// bodies so the client can attach them to the right input.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req httpdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.GeneralResponse{General: "invalid request body"})
		return
	}

	fieldErrors, valid := validation.ValidateSignup(validation.SignupInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Handle:          req.Handle,
	})
	if !valid {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	token, err := h.service.Signup(c.Request.Context(), services.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Handle:   req.Handle,
	})
	if err != nil {
		switch {
		case errors.Is(err, screamy_errors.ErrHandleTaken):
			c.JSON(http.StatusBadRequest, gin.H{"handle": "This handle is already taken"})
		case errors.Is(err, screamy_errors.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"email": "Email is already in use"})
		default:
			if h.logger != nil {
				h.logger.ErrorfCtx(c.Request.Context(), "signup failed: %s", err)
			}
			c.JSON(http.StatusInternalServerError, httpdto.GeneralResponse{General: "something went wrong, please try again"})
		}
		return
	}

	c.JSON(http.StatusCreated, httpdto.TokenResponse{Token: token})
}

// Login handles credential verification. Every failure collapses into one
// generic 403 so the response never reveals which field was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.GeneralResponse{General: "invalid request body"})
		return
	}

	fieldErrors, valid := validation.ValidateLogin(validation.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if !valid {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	token, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if h.logger != nil && !errors.Is(err, screamy_errors.ErrWrongCredentials) {
			h.logger.ErrorfCtx(c.Request.Context(), "login failed: %s", err)
		}
		c.JSON(http.StatusForbidden, httpdto.GeneralResponse{General: "Wrong credentials, please try again"})
		return
	}

	c.JSON(http.StatusOK, httpdto.TokenResponse{Token: token})
}
