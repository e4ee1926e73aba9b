package cache

import (
	"testing"
	"time"
)

func newRegisteredCaches(t *testing.T) (*Invalidator, *Cache[string], *Cache[string]) {
	t.Helper()

	printOptions := New[string](10, 10*time.Minute)
	applications := New[string](10, 10*time.Minute)

	iv := NewInvalidator()
	iv.Register(FamilyPrintOptions, printOptions)
	iv.Register(FamilyApplications, applications)

	return iv, printOptions, applications
}

// InvalidateTenant chỉ xóa đúng tenant đó trong đúng family đó
func TestInvalidator_InvalidateTenant_Isolation(t *testing.T) {
	iv, printOptions, applications := newRegisteredCaches(t)

	printOptions.Set("acme", "po-acme")
	printOptions.Set("globex", "po-globex")
	applications.Set("acme", "app-acme")

	iv.InvalidateTenant(FamilyPrintOptions, "acme")

	if _, ok := printOptions.Get("acme"); ok {
		t.Error("Expected acme print options to be invalidated")
	}
	if value, ok := printOptions.Get("globex"); !ok || value != "po-globex" {
		t.Error("Expected globex print options to be untouched")
	}
	if value, ok := applications.Get("acme"); !ok || value != "app-acme" {
		t.Error("Expected acme applications (different family) to be untouched")
	}
}

// InvalidateAll xóa sạch một family và không đụng vào family khác
func TestInvalidator_InvalidateAll_FamilyIsolation(t *testing.T) {
	iv, printOptions, applications := newRegisteredCaches(t)

	printOptions.Set("acme", "1")
	printOptions.Set("globex", "2")
	applications.Set("acme", "3")

	iv.InvalidateAll(FamilyPrintOptions)

	if printOptions.Len() != 0 {
		t.Errorf("Expected print options cache to be empty, got %d entries", printOptions.Len())
	}
	if applications.Len() != 1 {
		t.Errorf("Expected applications cache to keep its entry, got %d entries", applications.Len())
	}
}

// Family chưa đăng ký: log và bỏ qua, không panic, không ảnh hưởng mutation
func TestInvalidator_UnknownFamily(t *testing.T) {
	iv, printOptions, _ := newRegisteredCaches(t)

	printOptions.Set("acme", "1")

	iv.InvalidateTenant("unknown_family", "acme")
	iv.InvalidateAll("unknown_family")

	if _, ok := printOptions.Get("acme"); !ok {
		t.Error("Expected registered family to be untouched by unknown-family invalidation")
	}
}

func TestInvalidator_InvalidateTenant_MissingKey(t *testing.T) {
	iv, printOptions, _ := newRegisteredCaches(t)

	// Invalidate key không tồn tại là no-op
	iv.InvalidateTenant(FamilyPrintOptions, "ghost")

	if printOptions.Len() != 0 {
		t.Errorf("Expected empty cache, got %d entries", printOptions.Len())
	}
}
