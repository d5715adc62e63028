package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Vladoochka/ProjectTask/internal/api/handler"
	"github.com/Vladoochka/ProjectTask/internal/api/metrics"
	"github.com/Vladoochka/ProjectTask/internal/api/middleware"
	"github.com/Vladoochka/ProjectTask/internal/core/domain"
	"github.com/Vladoochka/ProjectTask/internal/core/service"
	mongodb "github.com/Vladoochka/ProjectTask/internal/infrastructure/db/mongo"
	redisdb "github.com/Vladoochka/ProjectTask/internal/infrastructure/db/redis"
	"github.com/Vladoochka/ProjectTask/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tasksystem"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db, userRepo)
	employeeRepo := mongodb.NewEmployeeRepository(db, userRepo)
	taskRepo := mongodb.NewTaskRepository(db)
	tokenStore := redisdb.NewTokenStore(rdb)

	authService := service.NewAuthService(userRepo, tokenStore, jwtSecret, 24*time.Hour)
	profileService := service.NewProfileService(userRepo, customerRepo, employeeRepo, taskRepo, log)
	taskService := service.NewTaskService(taskRepo, employeeRepo, metrics.TaskRecorder{}, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService, profileService)
	taskHandler := handler.NewTaskHandler(taskService, profileService)

	authRequired := middleware.Auth(jwtSecret, tokenStore, log)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)

	// --- API routes ---
	v1 := e.Group("/v1", authRequired)

	v1.GET("/me", authHandler.Me)

	// Profile onboarding is employee-only; the service re-checks against the
	// resolved profile.
	v1.POST("/customers", profileHandler.CreateCustomer, middleware.RBAC(domain.RoleEmployee))
	v1.GET("/customers", profileHandler.ListCustomers)
	v1.POST("/employees", profileHandler.CreateEmployee, middleware.RBAC(domain.RoleEmployee))
	v1.GET("/employees", profileHandler.ListEmployees, middleware.RBAC(domain.RoleCustomer))

	v1.GET("/tasks", taskHandler.List)
	v1.POST("/tasks", taskHandler.Create)
	v1.GET("/tasks/:id", taskHandler.Get)
	v1.PUT("/tasks/:id", taskHandler.Update)
	v1.PATCH("/tasks/:id", taskHandler.Update)
	v1.DELETE("/tasks/:id", taskHandler.Delete)
	v1.POST("/tasks/:id/close", taskHandler.Close)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
