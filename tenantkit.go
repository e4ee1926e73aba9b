package tenantkit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/tenantkit/authz"
	"github.com/techmaster-vietnam/tenantkit/cache"
	"github.com/techmaster-vietnam/tenantkit/config"
	"github.com/techmaster-vietnam/tenantkit/database"
	"github.com/techmaster-vietnam/tenantkit/handlers"
	"github.com/techmaster-vietnam/tenantkit/middleware"
	"github.com/techmaster-vietnam/tenantkit/models"
	"github.com/techmaster-vietnam/tenantkit/repository"
	"github.com/techmaster-vietnam/tenantkit/router"
	"github.com/techmaster-vietnam/tenantkit/service"
	"gorm.io/gorm"
)

// Config là alias cho config.Config để tránh conflict với package config khác
type Config = config.Config

// Models - Export các models
type (
	Tenant      = models.Tenant
	User        = models.User
	Role        = models.Role
	PrintOption = models.PrintOption
	Application = models.Application
)

// Authz - Export các types của Authorization Evaluator
type (
	PermissionSpec = authz.PermissionSpec
	Identity       = authz.Identity
	Decision       = authz.Decision
)

// Caches gom các cache instances theo resource family.
// Mỗi family một instance riêng, bounded độc lập; được construct một lần
// lúc khởi tạo và inject vào services (không dùng global ẩn).
type Caches struct {
	PrintOptions *cache.Cache[models.PrintOptionSnapshot]
	Applications *cache.Cache[models.ApplicationSnapshot]
}

// TenantKit là main struct chứa tất cả dependencies
type TenantKit struct {
	DB     *gorm.DB
	Config *Config

	// Caches và Invalidation Coordinator
	Caches      Caches
	Invalidator *cache.Invalidator

	// Authorization Evaluator
	Evaluator *authz.Evaluator

	// Repositories
	TenantRepo *repository.TenantRepository
	UserRepo   *repository.UserRepository
	RoleRepo   *repository.RoleRepository
	OptionRepo *repository.PrintOptionRepository
	AppRepo    *repository.ApplicationRepository

	// Services
	AuthService        *service.AuthService
	TenantService      *service.TenantService
	PrintOptionService *service.PrintOptionService
	ApplicationService *service.ApplicationService

	// Middleware
	AuthMiddleware  *middleware.AuthMiddleware
	AuthzMiddleware *middleware.AuthzMiddleware

	// Handlers
	AuthHandler        *handlers.AuthHandler
	TenantHandler      *handlers.TenantHandler
	PrintOptionHandler *handlers.PrintOptionHandler
	ApplicationHandler *handlers.ApplicationHandler
}

// TenantKitBuilder là builder để tạo TenantKit
type TenantKitBuilder struct {
	app    *fiber.App
	db     *gorm.DB
	config *Config
}

// New tạo mới TenantKitBuilder
func New(app *fiber.App, db *gorm.DB) *TenantKitBuilder {
	return &TenantKitBuilder{
		app: app,
		db:  db,
	}
}

// WithConfig set config cho builder
func (b *TenantKitBuilder) WithConfig(cfg *Config) *TenantKitBuilder {
	b.config = cfg
	return b
}

// Initialize khởi tạo TenantKit với tất cả dependencies
func (b *TenantKitBuilder) Initialize() (*TenantKit, error) {
	// Load config nếu chưa có
	if b.config == nil {
		b.config = config.LoadConfig()
	}

	// Auto migrate
	if err := database.Migrate(b.db); err != nil {
		return nil, err
	}

	// Khởi tạo caches, mỗi resource family một instance, và đăng ký với invalidator
	caches := Caches{
		PrintOptions: cache.New[models.PrintOptionSnapshot](b.config.Cache.Capacity, b.config.Cache.TTL),
		Applications: cache.New[models.ApplicationSnapshot](b.config.Cache.Capacity, b.config.Cache.TTL),
	}
	invalidator := cache.NewInvalidator()
	invalidator.Register(cache.FamilyPrintOptions, caches.PrintOptions)
	invalidator.Register(cache.FamilyApplications, caches.Applications)

	// Authorization Evaluator
	evaluator := authz.NewEvaluator()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(b.db)
	userRepo := repository.NewUserRepository(b.db)
	roleRepo := repository.NewRoleRepository(b.db)
	optionRepo := repository.NewPrintOptionRepository(b.db)
	appRepo := repository.NewApplicationRepository(b.db)

	// Initialize services
	authService := service.NewAuthService(userRepo, b.config)
	tenantService := service.NewTenantService(tenantRepo)
	optionService := service.NewPrintOptionService(optionRepo, tenantRepo, caches.PrintOptions, invalidator)
	appService := service.NewApplicationService(appRepo, tenantRepo, caches.Applications, invalidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(b.config, userRepo)
	authzMiddleware := middleware.NewAuthzMiddleware(evaluator, b.config.Server.LoginPath)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	optionHandler := handlers.NewPrintOptionHandler(optionService)
	appHandler := handlers.NewApplicationHandler(appService)

	return &TenantKit{
		DB:                 b.db,
		Config:             b.config,
		Caches:             caches,
		Invalidator:        invalidator,
		Evaluator:          evaluator,
		TenantRepo:         tenantRepo,
		UserRepo:           userRepo,
		RoleRepo:           roleRepo,
		OptionRepo:         optionRepo,
		AppRepo:            appRepo,
		AuthService:        authService,
		TenantService:      tenantService,
		PrintOptionService: optionService,
		ApplicationService: appService,
		AuthMiddleware:     authMiddleware,
		AuthzMiddleware:    authzMiddleware,
		AuthHandler:        authHandler,
		TenantHandler:      tenantHandler,
		PrintOptionHandler: optionHandler,
		ApplicationHandler: appHandler,
	}, nil
}

// SetupRoutes đăng ký toàn bộ routes lên Fiber app
func (tk *TenantKit) SetupRoutes(app *fiber.App) {
	router.SetupRoutes(app, tk.AuthMiddleware, tk.AuthzMiddleware, router.Handlers{
		Auth:        tk.AuthHandler,
		Tenant:      tk.TenantHandler,
		PrintOption: tk.PrintOptionHandler,
		Application: tk.ApplicationHandler,
	})
}

// LoadConfig loads configuration from environment variables
// Đây là wrapper function để tránh conflict với package config của ứng dụng chính
func LoadConfig() *Config {
	return config.LoadConfig()
}
