package app

import (
	"errors"
	"fmt"

	"petsit_backend/internal/auth"
	"petsit_backend/internal/config"
	"petsit_backend/internal/database"
	"petsit_backend/internal/email"
	"petsit_backend/internal/handlers"
	"petsit_backend/internal/imaging"
	"petsit_backend/internal/logger"
	"petsit_backend/internal/middleware"
	"petsit_backend/internal/models"
	"petsit_backend/internal/repositories"
	"petsit_backend/internal/routes"
	"petsit_backend/internal/services"
	"petsit_backend/internal/storage"
	"petsit_backend/internal/validator"
	"petsit_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	apperrors.SetDebug(cfg.Server.Env != "prod")

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Tests call this directly
// against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	container := initializeServices(cfg, store)
	appHandlers := initializeHandlers(container)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.SetupRoutes(ginRouter, appHandlers, container.UserRepo)

	// Locally stored uploads are served straight off disk.
	if local, ok := store.(*storage.LocalStorage); ok && cfg.Storage.BaseURL != "" {
		ginRouter.Static(cfg.Storage.BaseURL, local.BasePath())
	}

	return ginRouter
}

// ServiceContainer groups the services and the repositories the router
// layer still needs directly.
type ServiceContainer struct {
	UserRepo repositories.UserRepository

	AuthService         services.AuthService
	UserService         services.UserService
	PetService          services.PetService
	AvailabilityService services.AvailabilityService
	MatchingService     services.MatchingService
	RequestService      services.RequestService
	CertificateService  services.CertificateService
	ExperienceService   services.ExperienceService
	AdminService        services.AdminService
}

func initializeServices(cfg *config.Config, store storage.Storage) *ServiceContainer {
	emailProvider := email.NewProvider(cfg.Email)
	images := imaging.NewProcessor(800, 85)

	userRepo := repositories.NewUserRepository()
	petRepo := repositories.NewPetRepository()
	certRepo := repositories.NewCertificateRepository()
	expRepo := repositories.NewExperienceRepository()
	slotRepo := repositories.NewAvailabilityRepository()
	requestRepo := repositories.NewRequestRepository()

	return &ServiceContainer{
		UserRepo: userRepo,

		AuthService:         services.NewAuthService(userRepo, emailProvider),
		UserService:         services.NewUserService(userRepo, store, images),
		PetService:          services.NewPetService(petRepo),
		AvailabilityService: services.NewAvailabilityService(slotRepo),
		MatchingService:     services.NewMatchingService(requestRepo, slotRepo),
		RequestService:      services.NewRequestService(requestRepo, petRepo, userRepo, emailProvider),
		CertificateService:  services.NewCertificateService(certRepo, store),
		ExperienceService:   services.NewExperienceService(expRepo),
		AdminService:        services.NewAdminService(userRepo, petRepo, requestRepo),
	}
}

func initializeHandlers(c *ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(base, c.AuthService),
		UserHandler:         handlers.NewUserHandler(base, c.UserService),
		PetHandler:          handlers.NewPetHandler(base, c.PetService),
		AvailabilityHandler: handlers.NewAvailabilityHandler(base, c.AvailabilityService),
		RequestHandler:      handlers.NewRequestHandler(base, c.RequestService, c.MatchingService),
		CertificateHandler:  handlers.NewCertificateHandler(base, c.CertificateService),
		ExperienceHandler:   handlers.NewExperienceHandler(base, c.ExperienceService),
		AdminHandler:        handlers.NewAdminHandler(base, c.AdminService, c.UserService, c.CertificateService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the bootstrap admin account on first start when
// the config names one. Re-running against an existing account is a no-op.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("first_admin_email or first_admin_password not set, skipping admin seeding")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		FirstName:    "Admin",
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
