package auth

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dreamjobs/portal/models"
)

const (
	// AuthClaimsKey is the key used to store JWT claims in gin context
	AuthClaimsKey = "auth_claims"
)

// AuthMiddleware creates a middleware for JWT authentication
func AuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "Authorization header required",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "Invalid or expired token",
				Code:    http.StatusUnauthorized,
				Details: err.Error(),
			})
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware creates a middleware that optionally authenticates
// If token is present and valid, user info is added to context
// If token is missing or invalid, request continues without user info
func OptionalAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := BearerToken(c); ok {
			if claims, err := jwtService.ValidateToken(tokenString); err == nil {
				c.Set(AuthClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose role is not listed.
// It must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetAuthClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "Unauthorized",
				Code:  http.StatusUnauthorized,
			})
			return
		}
		if !slices.Contains(roles, claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Error:   "Forbidden",
				Code:    http.StatusForbidden,
				Details: "this endpoint requires role " + strings.Join(roles, " or "),
			})
			return
		}
		c.Next()
	}
}

// BearerToken returns the token from an "Authorization: Bearer <token>" header
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetAuthClaims retrieves auth claims from gin context
func GetAuthClaims(c *gin.Context) *Claims {
	claims, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*Claims)
}

// IsAuthenticated checks if user is authenticated
func IsAuthenticated(c *gin.Context) bool {
	return GetAuthClaims(c) != nil
}
