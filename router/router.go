package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/tenantkit/authz"
	"github.com/techmaster-vietnam/tenantkit/handlers"
	"github.com/techmaster-vietnam/tenantkit/middleware"
)

// Handlers gom các handlers cần thiết để đăng ký routes
type Handlers struct {
	Auth        *handlers.AuthHandler
	Tenant      *handlers.TenantHandler
	PrintOption *handlers.PrintOptionHandler
	Application *handlers.ApplicationHandler
}

// PermissionSpec của các nhóm routes. Khai báo một chỗ để các route cùng nhóm
// không tự suy ra điều kiện riêng.
var (
	// Thao tác trên definitions toàn cục: chỉ super_admin
	specGlobalAdmin = authz.PermissionSpec{
		AllowedRoles: []authz.Role{authz.RoleSuperAdmin},
		RequireAuth:  true,
	}

	// Thao tác trong phạm vi một tenant: admin của đúng tenant đó,
	// hoặc super_admin (được miễn tenant match)
	specTenantAdmin = authz.PermissionSpec{
		AllowedRoles:       []authz.Role{authz.RoleAdmin, authz.RoleSuperAdmin},
		RequireAuth:        true,
		RequireTenantMatch: true,
	}

	// Đọc dữ liệu trong phạm vi một tenant: mọi user đã đăng nhập của tenant đó
	specTenantRead = authz.PermissionSpec{
		RequireAuth:        true,
		RequireTenantMatch: true,
	}
)

// SetupRoutes đăng ký toàn bộ routes.
// Mọi request đi qua Authenticate() để derive identity; từng route khai báo
// PermissionSpec qua authorization middleware trước khi chạm vào handler.
func SetupRoutes(
	app *fiber.App,
	authMw *middleware.AuthMiddleware,
	authzMw *middleware.AuthzMiddleware,
	h Handlers,
) {
	app.Use(authMw.Authenticate())

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login) // public
	auth.Get("/profile", authzMw.RequireAPI(authz.PermissionSpec{RequireAuth: true}), h.Auth.Profile)

	// Tenant management: chỉ super_admin
	api.Post("/tenants", authzMw.RequireAPI(specGlobalAdmin), h.Tenant.CreateTenant)
	api.Get("/tenants", authzMw.RequireAPI(specGlobalAdmin), h.Tenant.ListTenants)
	api.Get("/tenants/:tenant", authzMw.RequireAPI(specTenantAdmin), h.Tenant.GetTenant)

	// Print option definitions toàn cục: chỉ super_admin
	api.Post("/print-options", authzMw.RequireAPI(specGlobalAdmin), h.PrintOption.CreateOption)
	api.Get("/print-options", authzMw.RequireAPI(specGlobalAdmin), h.PrintOption.ListOptions)
	api.Put("/print-options/:id", authzMw.RequireAPI(specGlobalAdmin), h.PrintOption.UpdateOption)
	api.Delete("/print-options/:id", authzMw.RequireAPI(specGlobalAdmin), h.PrintOption.DeactivateOption)

	// Application definitions toàn cục: chỉ super_admin
	api.Post("/applications", authzMw.RequireAPI(specGlobalAdmin), h.Application.CreateApplication)
	api.Get("/applications", authzMw.RequireAPI(specGlobalAdmin), h.Application.ListApplications)
	api.Put("/applications/:id", authzMw.RequireAPI(specGlobalAdmin), h.Application.UpdateApplication)
	api.Delete("/applications/:id", authzMw.RequireAPI(specGlobalAdmin), h.Application.DeactivateApplication)

	// Tenant-scoped reads: user của đúng tenant (hoặc super_admin)
	api.Get("/tenants/:tenant/print-options", authzMw.RequireAPI(specTenantRead), h.PrintOption.GetTenantOptions)
	api.Get("/tenants/:tenant/applications", authzMw.RequireAPI(specTenantRead), h.Application.GetTenantApplications)

	// Tenant-scoped assignments: admin của đúng tenant (hoặc super_admin)
	api.Post("/tenants/:tenant/print-options/:id", authzMw.RequireAPI(specTenantAdmin), h.PrintOption.AssignOption)
	api.Delete("/tenants/:tenant/print-options/:id", authzMw.RequireAPI(specTenantAdmin), h.PrintOption.UnassignOption)
	api.Post("/tenants/:tenant/applications/:id", authzMw.RequireAPI(specTenantAdmin), h.Application.AssignApplication)
	api.Delete("/tenants/:tenant/applications/:id", authzMw.RequireAPI(specTenantAdmin), h.Application.UnassignApplication)
}
