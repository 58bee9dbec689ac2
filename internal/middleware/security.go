package middleware

import (
	"net/http"

	"shoplist-api/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SecurityConfig holds security-related configuration
type SecurityConfig struct {
	MaxRequestBodySize int64
}

// NewSecurityConfigFromEnv creates security config from environment variables
func NewSecurityConfigFromEnv() *SecurityConfig {
	maxSize := int64(getEnvInt("MAX_REQUEST_BODY_SIZE", 1<<20)) // 1MB default
	return &SecurityConfig{MaxRequestBodySize: maxSize}
}

// SecurityHeaders sets the standard hardening headers on every response
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")

		c.Next()
	}
}

// RequestSizeLimit rejects request bodies larger than maxSize bytes
func RequestSizeLimit(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			logging.Logger.WithFields(map[string]interface{}{
				"client_ip":      c.ClientIP(),
				"content_length": c.Request.ContentLength,
				"max_size":       maxSize,
			}).Warn("Request body too large")

			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"code":    "REQUEST_TOO_LARGE",
				"message": "Request body too large",
			})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// UUIDValidator rejects requests whose named path parameters are not UUIDs
func UUIDValidator(params ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, param := range params {
			value := c.Param(param)
			if value == "" {
				continue
			}
			if _, err := uuid.Parse(value); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"code":    "INVALID_UUID",
					"message": "Invalid UUID format",
					"field":   param,
				})
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
