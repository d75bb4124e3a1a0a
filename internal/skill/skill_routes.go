package skill

import (
	"go-skills/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	skills := r.Group("/skills")

	skills.Use(middleware.AuthMiddleware())

	{
		skills.GET("", middleware.Authorize(enforcer, "skill", "read"), h.GetAll)
		skills.POST("", middleware.Authorize(enforcer, "skill", "create"), h.Create)
		skills.GET("/:id", middleware.Authorize(enforcer, "skill", "read"), h.GetById)
		skills.PUT("/:id", middleware.Authorize(enforcer, "skill", "update"), h.Update)
		skills.DELETE("/:id", middleware.Authorize(enforcer, "skill", "delete"), h.Delete)
	}
}
