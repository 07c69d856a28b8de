package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/admissions-crm-api/internal/models"
	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
	"github.com/noah-isme/admissions-crm-api/pkg/response"
)

// RoleResolver looks up the stored role of a user. Roles live on the profile, not in the token.
type RoleResolver interface {
	RoleOf(ctx context.Context, userID string) (models.UserRole, error)
}

// RequireRoles only lets callers whose profile carries one of roles through. A caller without a
// profile is forbidden.
func RequireRoles(resolver RoleResolver, roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		principal := PrincipalFrom(c)
		if principal == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		role, err := resolver.RoleOf(c.Request.Context(), principal.UserID)
		if err != nil {
			if appErrors.HasCode(err, appErrors.ErrNotFound.Code) {
				response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "user profile required"))
			} else {
				response.Error(c, err)
			}
			c.Abort()
			return
		}

		if _, ok := allowed[role]; !ok {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
