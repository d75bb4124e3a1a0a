package employeeskill

import (
	"go-skills/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RegisterRoutes mounts the evaluation endpoints in two places: the
// collection nested under /employees/:id/skills, and direct /employee-skills
// routes for mutating a single evaluation by its own id.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	nested := r.Group("/employees/:id/skills")
	nested.Use(middleware.AuthMiddleware())
	{
		nested.GET("", middleware.Authorize(enforcer, "employee_skill", "read"), h.GetByEmployee)
		nested.POST("",
			middleware.Authorize(enforcer, "employee_skill", "create"),
			middleware.RateLimitByUser(rate.Limit(10), 20),
			middleware.Idempotency(rdb),
			h.Create,
		)
	}

	direct := r.Group("/employee-skills")
	direct.Use(middleware.AuthMiddleware())
	{
		direct.PUT("/:id", middleware.Authorize(enforcer, "employee_skill", "update"), h.Update)
		direct.DELETE("/:id", middleware.Authorize(enforcer, "employee_skill", "delete"), h.Delete)
	}
}
