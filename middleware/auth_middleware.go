package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/tenantkit/authz"
	"github.com/techmaster-vietnam/tenantkit/config"
	"github.com/techmaster-vietnam/tenantkit/core"
	"github.com/techmaster-vietnam/tenantkit/utils"
)

const identityKey = "identity"

// AuthMiddleware derive caller identity từ JWT, một lần mỗi request.
// Identity được lưu vào context để authorization middleware đánh giá,
// handler phía sau không tự kiểm tra token nữa.
type AuthMiddleware struct {
	config   *config.Config
	userRepo core.UserRepositoryInterface
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(cfg *config.Config, userRepo core.UserRepositoryInterface) *AuthMiddleware {
	return &AuthMiddleware{
		config:   cfg,
		userRepo: userRepo,
	}
}

// Authenticate validate token nếu có và lưu identity vào context.
// Không có token thì đi tiếp với identity anonymous; cho phép hay không là
// việc của authorization middleware dựa trên PermissionSpec của route.
// Token sai chữ ký hoặc hết hạn thì trả 401 ngay.
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			c.Locals(identityKey, authz.Anonymous)
			return c.Next()
		}

		claims, err := utils.ValidateToken(token, m.config.JWT.Secret)
		if err != nil {
			return goerrorkit.NewAuthError(401, "Token không hợp lệ").WithData(map[string]interface{}{
				"error": err.Error(),
			})
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return goerrorkit.NewAuthError(401, "Token không hợp lệ")
		}

		user, err := m.userRepo.GetByID(userID)
		if err != nil {
			return goerrorkit.WrapWithMessage(err, "Người dùng không tồn tại")
		}

		if !user.IsActive {
			return goerrorkit.NewAuthError(403, "Tài khoản đã bị vô hiệu hóa").WithData(map[string]interface{}{
				"user_id": user.ID,
			})
		}

		// Role và tenant lấy từ claims đã verify chữ ký, không query thêm
		c.Locals(identityKey, authz.Identity{
			Authenticated: true,
			UserID:        claims.UserID,
			Role:          authz.Role(claims.Role),
			Tenant:        claims.Tenant,
		})
		c.Locals("user", user)
		c.Locals("userID", claims.UserID)

		return c.Next()
	}
}

// extractToken extracts token from Authorization header or cookie
func extractToken(c *fiber.Ctx) string {
	// Try Authorization header first
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	// Try cookie
	return c.Cookies("token")
}

// IdentityFromContext trả về identity đã derive cho request.
// Request chưa qua Authenticate() được coi là anonymous.
func IdentityFromContext(c *fiber.Ctx) authz.Identity {
	id, ok := c.Locals(identityKey).(authz.Identity)
	if !ok {
		return authz.Anonymous
	}
	return id
}

// GetUserIDFromContext gets user ID from context
func GetUserIDFromContext(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals("userID").(string)
	return userID, ok
}
