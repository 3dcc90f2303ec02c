package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/uniinone/uniinone-api/config"
	"github.com/uniinone/uniinone-api/handlers"
	admin_handlers "github.com/uniinone/uniinone-api/handlers/admin"
	auth_handlers "github.com/uniinone/uniinone-api/handlers/auth"
	compare_handlers "github.com/uniinone/uniinone-api/handlers/compare"
	faculty_handlers "github.com/uniinone/uniinone-api/handlers/faculty"
	university_handlers "github.com/uniinone/uniinone-api/handlers/university"
	"github.com/uniinone/uniinone-api/store"
	"github.com/uniinone/uniinone-api/utils/auth"
	"github.com/uniinone/uniinone-api/utils/middleware"
)

// SetupRoutes wires every handler onto the app.
func SetupRoutes(app *fiber.App, env *config.Env, universities *store.UniversityStore, faculties *store.FacultyStore) {
	jwtSecret := env.JWT_SECRET
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := env.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "uniinone-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: jwtSecret,
		Expiry: 24 * time.Hour,
		Issuer: jwtIssuer,
	})

	// Sessions live in this map and nowhere else; restarting the server
	// signs everyone out.
	sessions := auth.NewSessionManager()

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessions)

	authHandler := auth_handlers.NewAuthHandler(sessions, jwtManager)
	universityHandler := university_handlers.NewUniversityHandler(universities)
	facultyHandler := faculty_handlers.NewFacultyHandler(faculties)
	compareHandler := compare_handlers.NewCompareHandler(universities)
	adminHandler := admin_handlers.NewAdminHandler(universities, faculties)

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    env.ALLOWED_ORIGINS,
		RateLimitRequests: env.RATE_LIMIT_REQUESTS,
		RateLimitWindow:   time.Minute,
	})

	v1 := app.Group("/api/v1")

	v1.Get("/health", handlers.HandleCheckHealth)

	// Auth
	authGroup := v1.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/admin-login", authHandler.AdminLogin)
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)
	authGroup.Get("/me", authMiddleware.Required(), authHandler.Me)

	// Universities: public reads, admin-guarded writes
	uniGroup := v1.Group("/universities")
	uniGroup.Get("/", universityHandler.ListUniversities)
	uniGroup.Get("/:id", universityHandler.GetUniversity)
	uniGroup.Post("/", authMiddleware.RequireAdmin(), universityHandler.CreateUniversity)
	uniGroup.Put("/:id", authMiddleware.RequireAdmin(), universityHandler.UpdateUniversity)
	uniGroup.Delete("/:id", authMiddleware.RequireAdmin(), universityHandler.DeleteUniversity)

	// Faculties: read-only reference data
	facGroup := v1.Group("/faculties")
	facGroup.Get("/", facultyHandler.ListFaculties)
	facGroup.Get("/:id", facultyHandler.GetFaculty)

	// Comparison
	v1.Get("/compare", compareHandler.CompareUniversities)

	// Admin dashboard
	adminGroup := v1.Group("/admin", authMiddleware.RequireAdmin())
	adminGroup.Get("/stats", adminHandler.GetStats)
}
