package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trtonmoy/rhythmic-academy-server/internal/api/handler"
	"github.com/trtonmoy/rhythmic-academy-server/internal/api/middleware"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/service"
	mongodb "github.com/trtonmoy/rhythmic-academy-server/internal/infrastructure/db/mongo"
	redisdb "github.com/trtonmoy/rhythmic-academy-server/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, payments ports.PaymentProvider, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("rhythmic"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	instrumentRepo := mongodb.NewInstrumentRepository(db)
	instructorRepo := mongodb.NewInstructorRepository(db)
	admissionRepo := mongodb.NewAdmissionRepository(db)

	tokenService := service.NewTokenService(jwtSecret, tokenTTL)
	userService := service.NewUserService(userRepo, log)
	catalogService := service.NewCatalogService(instrumentRepo, instructorRepo, log)
	admissionService := service.NewAdmissionService(admissionRepo, log)
	paymentService := service.NewPaymentService(payments, log)

	tokenHandler := handler.NewTokenHandler(tokenService)
	userHandler := handler.NewUserHandler(userService)
	instrumentHandler := handler.NewInstrumentHandler(catalogService)
	instructorHandler := handler.NewInstructorHandler(catalogService)
	admissionHandler := handler.NewAdmissionHandler(admissionService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// --- Access gates ---
	// Auth verifies the token and attaches the identity; the role gates
	// resolve the role fresh from the store on every request.
	authRequired := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(userService, domain.RoleAdmin)
	instructorOnly := middleware.RequireRole(userService, domain.RoleInstructor)
	issueLimited := middleware.RateLimit(redisdb.NewRateLimiter(rdb), log)

	// --- Token issuance ---
	e.POST("/jwt", tokenHandler.Issue, issueLimited)

	// --- Users ---
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List, authRequired, adminOnly)
	e.PATCH("/users/:id", userHandler.UpdateRole, authRequired, adminOnly)
	e.GET("/users/checkAdmin/:email", userHandler.CheckAdmin, authRequired)
	e.GET("/users/checkInstructor/:email", userHandler.CheckInstructor, authRequired)

	// --- Instruments ---
	e.GET("/instruments", instrumentHandler.List)
	e.POST("/instruments", instrumentHandler.Create, authRequired, instructorOnly)
	e.PUT("/instruments/:id", instrumentHandler.Review, authRequired, adminOnly)
	e.PATCH("/instruments/:id", instrumentHandler.SetStatus, authRequired, adminOnly)

	// --- Instructors ---
	e.GET("/instructors", instructorHandler.List)
	e.GET("/instructors/:id", instructorHandler.Get)

	// --- Admission ---
	e.GET("/admission", admissionHandler.List)
	e.POST("/admission", admissionHandler.Create)
	e.DELETE("/admission/:id", admissionHandler.Delete)

	// --- Payments ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "rhythmic academy is good")
	})
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
