package utils

import (
	"regexp"
	"strings"

	"github.com/techmaster-vietnam/goerrorkit"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Subdomain: chữ thường, số, dấu gạch ngang; không bắt đầu/kết thúc bằng gạch ngang
	subdomainRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
)

// ValidateEmail kiểm tra format email hợp lệ
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return goerrorkit.NewValidationError("Email là bắt buộc", map[string]interface{}{
			"field": "email",
		})
	}

	if !emailRegex.MatchString(email) {
		return goerrorkit.NewValidationError("Email không hợp lệ", map[string]interface{}{
			"field": "email",
			"value": email,
		})
	}

	if len(email) > 320 {
		return goerrorkit.NewValidationError("Email quá dài (tối đa 320 ký tự)", map[string]interface{}{
			"field":      "email",
			"max_length": 320,
		})
	}

	return nil
}

// ValidateSubdomain kiểm tra subdomain hợp lệ làm tenant key.
// Subdomain là định danh công khai của tenant nên phải an toàn để dùng trong hostname.
func ValidateSubdomain(subdomain string) error {
	if strings.TrimSpace(subdomain) == "" {
		return goerrorkit.NewValidationError("Subdomain là bắt buộc", map[string]interface{}{
			"field": "subdomain",
		})
	}

	if len(subdomain) > 63 {
		return goerrorkit.NewValidationError("Subdomain quá dài (tối đa 63 ký tự)", map[string]interface{}{
			"field":      "subdomain",
			"max_length": 63,
		})
	}

	if !subdomainRegex.MatchString(subdomain) {
		return goerrorkit.NewValidationError("Subdomain chỉ được chứa chữ thường, số và dấu gạch ngang", map[string]interface{}{
			"field": "subdomain",
			"value": subdomain,
		})
	}

	return nil
}
