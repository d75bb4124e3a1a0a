package analytics

import (
	"go-skills/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	dashboard := r.Group("/dashboard")

	dashboard.Use(middleware.AuthMiddleware())

	{
		dashboard.GET("/stats", middleware.Authorize(enforcer, "analytics", "read"), h.GetDashboardStats)
		dashboard.GET("/skills-matrix", middleware.Authorize(enforcer, "analytics", "read"), h.GetSkillsMatrix)
		dashboard.GET("/skill-gaps", middleware.Authorize(enforcer, "analytics", "read"), h.GetSkillGaps)
	}
}
