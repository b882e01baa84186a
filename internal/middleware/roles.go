package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// RequireRoles lets the request through only when the authenticated role is one of roles.
// It must run after AuthMiddleware.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role, ok := GetRoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if _, ok := allowed[role]; !ok {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted for route", slog.String("route", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
			return
		}
		c.Next()
	}
}

// StaffRoles are every role except customer.
var StaffRoles = []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleAccountant, domain.RoleLoanCommittee}
