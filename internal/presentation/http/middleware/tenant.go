package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"github.com/mfuentes/cajaflow-api/internal/presentation/http/dto/response"
)

// TenantMiddleware verifies the tenant the token is bound to exists and is
// active, and exposes the tenant entity to handlers.
func TenantMiddleware(tenantRepo repository.TenantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := GetTenantID(c)
		if tenantID == uuid.Nil {
			response.BadRequest(c, "Tenant context required")
			c.Abort()
			return
		}

		tenant, err := tenantRepo.GetByID(c.Request.Context(), tenantID)
		if err != nil || tenant == nil {
			response.NotFound(c, "Tenant not found")
			c.Abort()
			return
		}
		if !tenant.Active {
			response.Forbidden(c, "Tenant is deactivated")
			c.Abort()
			return
		}

		c.Set("tenant", tenant)
		c.Next()
	}
}
