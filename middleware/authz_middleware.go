package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/tenantkit/authz"
)

// AuthzMiddleware gắn Authorization Evaluator vào routes.
// Mỗi protected route khai báo một PermissionSpec; evaluator chỉ trả về
// allow/deny + reason, còn render deny thế nào (401/403 hay redirect/not-found)
// là lựa chọn của từng loại route ở đây.
type AuthzMiddleware struct {
	evaluator *authz.Evaluator
	loginPath string
}

// NewAuthzMiddleware creates a new authorization middleware
func NewAuthzMiddleware(evaluator *authz.Evaluator, loginPath string) *AuthzMiddleware {
	return &AuthzMiddleware{
		evaluator: evaluator,
		loginPath: loginPath,
	}
}

// RequireAPI bảo vệ API route: deny trả về structured error.
// Chưa đăng nhập -> 401, sai role hoặc sai tenant -> 403.
func (m *AuthzMiddleware) RequireAPI(spec authz.PermissionSpec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFromContext(c)
		target := TargetTenant(c)

		decision := m.evaluator.Evaluate(spec, identity, target)
		if decision.Allowed {
			return c.Next()
		}

		switch decision.Reason {
		case authz.ReasonUnauthenticated:
			return goerrorkit.NewAuthError(401, "Yêu cầu đăng nhập")
		default:
			return goerrorkit.NewAuthError(403, "Không có quyền truy cập").WithData(map[string]interface{}{
				"reason": string(decision.Reason),
				"tenant": target,
			})
		}
	}
}

// RequirePage bảo vệ page route: chưa đăng nhập thì redirect về trang login,
// sai role hoặc sai tenant thì trả not-found để không lộ sự tồn tại của tenant.
func (m *AuthzMiddleware) RequirePage(spec authz.PermissionSpec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFromContext(c)
		target := TargetTenant(c)

		decision := m.evaluator.Evaluate(spec, identity, target)
		if decision.Allowed {
			return c.Next()
		}

		if decision.Reason == authz.ReasonUnauthenticated {
			return c.Redirect(m.loginPath, fiber.StatusFound)
		}

		return fiber.ErrNotFound
	}
}

// TargetTenant xác định tenant mà request nhắm tới:
// ưu tiên path param :tenant, fallback về subdomain của Host header.
func TargetTenant(c *fiber.Ctx) string {
	if tenant := c.Params("tenant"); tenant != "" {
		return tenant
	}
	return subdomainFromHost(c.Hostname())
}

// subdomainFromHost tách subdomain từ hostname (ví dụ "acme.example.com" -> "acme").
// Hostname không có subdomain trả về chuỗi rỗng.
func subdomainFromHost(host string) string {
	// Bỏ port nếu có
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[0]
}
