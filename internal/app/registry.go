package app

import (
	"database/sql"

	"go-skills/internal/analytics"
	"go-skills/internal/auth"
	"go-skills/internal/employee"
	"go-skills/internal/employeeskill"
	"go-skills/internal/messaging/kafka"
	"go-skills/internal/middleware"
	"go-skills/internal/position"
	"go-skills/internal/positionskill"
	"go-skills/internal/rbac"
	"go-skills/internal/skill"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	skillRepo := skill.NewRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)
	positionSkillRepo := positionskill.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	employeeSkillRepo := employeeskill.NewRepository(gormDB)
	analyticsRepo := analytics.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	skillService := skill.NewService(db, skillRepo)
	positionService := position.NewService(db, positionRepo)
	positionSkillService := positionskill.NewService(db, positionSkillRepo)
	employeeService := employee.NewService(db, employeeRepo)
	employeeSkillService := employeeskill.NewServiceWithOutbox(db, employeeSkillRepo, outboxRepo)
	analyticsService := analytics.NewService(analyticsRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	skillHandler := skill.NewHandler(skillService)
	positionHandler := position.NewHandler(positionService)
	positionSkillHandler := positionskill.NewHandler(positionSkillService)
	employeeHandler := employee.NewHandler(employeeService)
	employeeSkillHandler := employeeskill.NewHandlerWithRedis(employeeSkillService, rdb)
	analyticsHandler := analytics.NewHandler(analyticsService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		skill.RegisterRoutes(api, skillHandler, enforcer)
		position.RegisterRoutes(api, positionHandler, enforcer)
		positionskill.RegisterRoutes(api, positionSkillHandler, enforcer)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		employeeskill.RegisterRoutes(api, employeeSkillHandler, enforcer, rdb)
		analytics.RegisterRoutes(api, analyticsHandler, enforcer)
	}

	return nil
}
