package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/tenantkit/config"
	"github.com/techmaster-vietnam/tenantkit/core"
	"github.com/techmaster-vietnam/tenantkit/models"
	"github.com/techmaster-vietnam/tenantkit/utils"
	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo core.UserRepositoryInterface
	config   *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo core.UserRepositoryInterface, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents login response
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login xác thực user và phát hành JWT mang role + tenant membership.
// Token là nguồn duy nhất để middleware derive caller identity mỗi request.
func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	if err := utils.ValidateEmail(req.Email); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goerrorkit.NewAuthError(401, "Email hoặc mật khẩu không đúng")
		}
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi đăng nhập")
	}

	if !user.IsActive {
		return nil, goerrorkit.NewAuthError(403, "Tài khoản đã bị vô hiệu hóa").WithData(map[string]interface{}{
			"user_id": user.ID,
		})
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, goerrorkit.NewAuthError(401, "Email hoặc mật khẩu không đúng")
	}

	token, err := utils.GenerateToken(
		user.ID.String(),
		user.Email,
		user.Role.Name,
		user.TenantSubdomain(),
		s.config.JWT.Secret,
		s.config.JWT.Expiration,
	)
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi tạo token")
	}

	return &LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

// Profile lấy thông tin user hiện tại
func (s *AuthService) Profile(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goerrorkit.NewBusinessError(404, "Không tìm thấy user").WithData(map[string]interface{}{
				"user_id": userID,
			})
		}
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy thông tin user")
	}
	return user, nil
}
