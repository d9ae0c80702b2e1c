package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"contract-hub.backend/pkg/crypto"
	"contract-hub.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// APIKeyHeader is the header key for the admin API key
	APIKeyHeader = "X-Api-Key"
	// AdminSubjectKey is the context key for the authenticated admin subject
	AdminSubjectKey = "admin_subject"
)

// AdminAuthMiddleware protects operator endpoints. Either a bearer token
// issued by the admin JWT service or the configured API key is accepted.
func AdminAuthMiddleware(jwtService *jwt.JWTService, apiKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey := c.GetHeader(APIKeyHeader); apiKey != "" {
			if apiKeyHash != "" && crypto.CheckAPIKey(apiKey, apiKeyHash) {
				c.Set(AdminSubjectKey, "api-key")
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid API key"})
			return
		}

		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization format, use: Bearer <token>"})
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			if err == jwt.ErrExpiredToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token has expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}
		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin role required"})
			return
		}

		c.Set(AdminSubjectKey, claims.Subject)
		c.Next()
	}
}
