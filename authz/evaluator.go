package authz

// Role là tên role của caller (trùng với models.Role.Name)
type Role string

// System roles
const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// PermissionSpec khai báo yêu cầu phân quyền của một protected operation.
// Spec được định nghĩa ngay tại call site (router), không lưu database.
type PermissionSpec struct {
	AllowedRoles       []Role // Rỗng + RequireAuth=false nghĩa là public
	RequireAuth        bool
	RequireTenantMatch bool // Caller phải thuộc đúng tenant được request nhắm tới
}

// Identity là danh tính caller, derive một lần mỗi request từ JWT đã validate
type Identity struct {
	Authenticated bool
	UserID        string
	Role          Role   // Rỗng nếu chưa đăng nhập
	Tenant        string // Subdomain của tenant mà caller thuộc về, rỗng nếu không có
}

// Anonymous là identity của caller chưa đăng nhập
var Anonymous = Identity{}

// DenyReason là lý do từ chối. Evaluator chỉ trả về reason code;
// việc render (redirect, not-found, 401/403) là quyết định của call site.
type DenyReason string

const (
	ReasonUnauthenticated  DenyReason = "UNAUTHENTICATED"   // Chưa đăng nhập
	ReasonInsufficientRole DenyReason = "INSUFFICIENT_ROLE" // Đã đăng nhập nhưng role không đủ quyền
	ReasonTenantMismatch   DenyReason = "TENANT_MISMATCH"   // Đúng role nhưng sai tenant
)

// Decision là kết quả đánh giá một request
type Decision struct {
	Allowed bool
	Reason  DenyReason // Chỉ có nghĩa khi Allowed=false
}

// Evaluator quyết định allow/deny cho mọi protected operation.
// Mọi kiểm tra role/tenant đều đi qua đây, không rải rác ở từng handler.
type Evaluator struct {
	superRole Role // Role được miễn kiểm tra tenant match (cross-tenant access)
}

// NewEvaluator tạo Evaluator với super role mặc định là super_admin
func NewEvaluator() *Evaluator {
	return &Evaluator{superRole: RoleSuperAdmin}
}

// Evaluate chạy lần lượt: auth check -> role check -> tenant check.
// Dừng ở lần deny đầu tiên; thứ tự này cố định để reason code ổn định.
func (e *Evaluator) Evaluate(spec PermissionSpec, id Identity, targetTenant string) Decision {
	// AUTH_CHECK
	if spec.RequireAuth && !id.Authenticated {
		return deny(ReasonUnauthenticated)
	}

	// ROLE_CHECK: chỉ áp dụng cho caller đã đăng nhập.
	// AllowedRoles rỗng nghĩa là mọi role đều qua (public with optional personalization)
	if id.Authenticated && len(spec.AllowedRoles) > 0 && !e.roleAllowed(spec.AllowedRoles, id.Role) {
		return deny(ReasonInsufficientRole)
	}

	// TENANT_CHECK: super role được truy cập cross-tenant, các role khác phải
	// thuộc đúng tenant được nhắm tới
	if spec.RequireTenantMatch && id.Role != e.superRole && id.Tenant != targetTenant {
		return deny(ReasonTenantMismatch)
	}

	return Decision{Allowed: true}
}

func (e *Evaluator) roleAllowed(allowed []Role, role Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func deny(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}
