package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colleague-student-api/internal/models"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

// ContextUserKey is the gin context key storing JWT claims.
const ContextUserKey = "currentUser"

// TokenValidator turns a bearer token into claims.
type TokenValidator interface {
	ValidateToken(token string) (*models.JWTClaims, error)
}

// JWT protects routes by requiring a valid access token. An expired token is
// answered with the session-expired fault. Rejections go through fail.
func JWT(validator TokenValidator, fail FaultWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			reject(fail, c, appErrors.Clone(appErrors.ErrUnauthorized, "Authentication is required."))
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			reject(fail, c, err)
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// CurrentActor returns the authenticated caller, or nil.
func CurrentActor(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
