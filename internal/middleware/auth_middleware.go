package middleware

import (
	"context"
	"net/http"
	"strings"

	"screamy/internal/services"
	"screamy/internal/transport/httpdto"
	"screamy/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware parses the bearer session token and threads the caller's
// handle and identity id through the request context for the handlers.
func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		claims, err := service.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
			c.Abort()
			return
		}

		if claims.Handle == "" {
			c.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
			c.Abort()
			return
		}

		ctx := services.WithAuthContext(c.Request.Context(), claims.Handle, userID)
		ctx = context.WithValue(ctx, logger.HandleKey, claims.Handle)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
