package routes

import (
	"petsit_backend/internal/handlers"
	"petsit_backend/internal/middleware"
	"petsit_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes mounts the whole API under /api/v1. Public routes come first,
// then the auth-gated group, then the admin group layered on top of it.
func SetupRoutes(r *gin.Engine, h *handlers.AppHandlers, userRepo repositories.UserRepository) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	public := v1.Group("")
	h.AuthHandler.RegisterRoutes(public)

	authRequired := v1.Group("")
	authRequired.Use(middleware.AuthMiddleware(userRepo))
	{
		h.UserHandler.RegisterRoutes(public, authRequired)
		h.PetHandler.RegisterRoutes(authRequired)
		h.AvailabilityHandler.RegisterRoutes(authRequired)
		h.RequestHandler.RegisterRoutes(authRequired)
		h.CertificateHandler.RegisterRoutes(authRequired)
		h.ExperienceHandler.RegisterRoutes(authRequired)
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(userRepo), middleware.AdminMiddleware())
	{
		h.AdminHandler.RegisterRoutes(admin)
	}
}
