package middleware

import (
	"errors"
	"net/http"

	"shoplist-api/internal/auth"
	"shoplist-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextKeyUserID is the context key for storing user ID
	ContextKeyUserID = "user_id"
	// ContextKeyUserEmail is the context key for storing user email
	ContextKeyUserEmail = "user_email"
)

// AuthMiddleware creates a middleware that validates JWT tokens
func AuthMiddleware(jwtConfig *auth.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "Authorization header is required",
			})
			c.Abort()
			return
		}

		tokenString, err := auth.ExtractTokenFromHeader(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: err.Error(),
			})
			c.Abort()
			return
		}

		claims, err := auth.ValidateAccessToken(tokenString, jwtConfig)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Code:    "TOKEN_EXPIRED",
					Message: "Access token has expired. Please refresh your token.",
				})
			} else {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Code:    "INVALID_TOKEN",
					Message: "Invalid access token",
				})
			}
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserEmail, claims.Email)

		c.Next()
	}
}

// GetUserID retrieves the user ID from the Gin context
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("invalid user ID type in context")
	}

	return id, nil
}

// IsAuthenticated checks if the current request is authenticated
func IsAuthenticated(c *gin.Context) bool {
	_, exists := c.Get(ContextKeyUserID)
	return exists
}
