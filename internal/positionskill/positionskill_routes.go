package positionskill

import (
	"go-skills/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes nests the requirement endpoints under /positions/:id/skills.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	links := r.Group("/positions/:id/skills")

	links.Use(middleware.AuthMiddleware())

	{
		links.GET("", middleware.Authorize(enforcer, "position_skill", "read"), h.GetByPosition)
		links.POST("", middleware.Authorize(enforcer, "position_skill", "create"), h.Create)
		links.DELETE("/:skillId", middleware.Authorize(enforcer, "position_skill", "delete"), h.Delete)
	}
}
