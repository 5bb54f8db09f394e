package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colleague-student-api/internal/models"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

// RoleSelf grants access when the route's :id is the caller's person id.
const RoleSelf models.UserRole = "SELF"

// RequireRoles admits callers holding one of roles. RoleSelf admits a caller
// whose person id equals the :id path parameter. Rejections go through fail.
func RequireRoles(fail FaultWriter, roles ...models.UserRole) gin.HandlerFunc {
	allowSelf := false
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		if r == RoleSelf {
			allowSelf = true
			continue
		}
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claims := CurrentActor(c)
		if claims == nil {
			reject(fail, c, appErrors.Clone(appErrors.ErrUnauthorized, "Authentication is required."))
			return
		}

		if _, ok := allowed[claims.Role]; ok {
			c.Next()
			return
		}
		if allowSelf && c.Param("id") != "" && c.Param("id") == claims.PersonID {
			c.Next()
			return
		}

		reject(fail, c, appErrors.Clone(appErrors.ErrForbidden, "Access to this resource is forbidden."))
	}
}
