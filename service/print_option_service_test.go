package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/techmaster-vietnam/tenantkit/cache"
	"github.com/techmaster-vietnam/tenantkit/models"
	"gorm.io/gorm"
)

// MockTenantRepository là mock repository cho testing
type MockTenantRepository struct {
	tenants map[string]*models.Tenant // subdomain -> tenant
}

func NewMockTenantRepository() *MockTenantRepository {
	return &MockTenantRepository{tenants: make(map[string]*models.Tenant)}
}

func (m *MockTenantRepository) AddTenant(subdomain string) *models.Tenant {
	tenant := &models.Tenant{ID: uuid.New(), Subdomain: subdomain, Name: subdomain, IsActive: true}
	m.tenants[subdomain] = tenant
	return tenant
}

func (m *MockTenantRepository) Create(tenant *models.Tenant) error {
	if _, ok := m.tenants[tenant.Subdomain]; ok {
		return gorm.ErrDuplicatedKey
	}
	if tenant.ID == uuid.Nil {
		tenant.ID = uuid.New()
	}
	m.tenants[tenant.Subdomain] = tenant
	return nil
}

func (m *MockTenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	for _, tenant := range m.tenants {
		if tenant.ID == id {
			return tenant, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTenantRepository) GetBySubdomain(subdomain string) (*models.Tenant, error) {
	tenant, ok := m.tenants[subdomain]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tenant, nil
}

func (m *MockTenantRepository) List() ([]models.Tenant, error) {
	result := make([]models.Tenant, 0, len(m.tenants))
	for _, tenant := range m.tenants {
		result = append(result, *tenant)
	}
	return result, nil
}

func (m *MockTenantRepository) Update(tenant *models.Tenant) error {
	m.tenants[tenant.Subdomain] = tenant
	return nil
}

// MockPrintOptionRepository là mock repository cho testing
// ListAssignedCalls đếm số lần đọc backing store để kiểm chứng cache hit/miss
type MockPrintOptionRepository struct {
	options           map[uuid.UUID]*models.PrintOption
	codes             map[string]bool
	assignments       map[uuid.UUID][]uuid.UUID // tenantID -> optionIDs theo thứ tự gán
	ListAssignedCalls int
	FailListAssigned  error // Nếu set, ListAssigned trả lỗi này
}

func NewMockPrintOptionRepository() *MockPrintOptionRepository {
	return &MockPrintOptionRepository{
		options:     make(map[uuid.UUID]*models.PrintOption),
		codes:       make(map[string]bool),
		assignments: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (m *MockPrintOptionRepository) Create(option *models.PrintOption) error {
	if m.codes[option.Code] {
		return gorm.ErrDuplicatedKey
	}
	if option.ID == uuid.Nil {
		option.ID = uuid.New()
	}
	m.options[option.ID] = option
	m.codes[option.Code] = true
	return nil
}

func (m *MockPrintOptionRepository) GetByID(id uuid.UUID) (*models.PrintOption, error) {
	option, ok := m.options[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return option, nil
}

func (m *MockPrintOptionRepository) Update(option *models.PrintOption) error {
	m.options[option.ID] = option
	return nil
}

func (m *MockPrintOptionRepository) Deactivate(id uuid.UUID) error {
	option, ok := m.options[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	option.IsActive = false
	return nil
}

func (m *MockPrintOptionRepository) List() ([]models.PrintOption, error) {
	result := make([]models.PrintOption, 0, len(m.options))
	for _, option := range m.options {
		result = append(result, *option)
	}
	return result, nil
}

func (m *MockPrintOptionRepository) ListAssigned(tenantID uuid.UUID) ([]models.PrintOption, error) {
	m.ListAssignedCalls++
	if m.FailListAssigned != nil {
		return nil, m.FailListAssigned
	}
	var result []models.PrintOption
	for _, optionID := range m.assignments[tenantID] {
		option, ok := m.options[optionID]
		if ok && option.IsActive {
			result = append(result, *option)
		}
	}
	return result, nil
}

func (m *MockPrintOptionRepository) Assign(tenantID, optionID uuid.UUID) error {
	for _, existing := range m.assignments[tenantID] {
		if existing == optionID {
			return nil // Đã gán rồi
		}
	}
	m.assignments[tenantID] = append(m.assignments[tenantID], optionID)
	return nil
}

func (m *MockPrintOptionRepository) Unassign(tenantID, optionID uuid.UUID) error {
	ids := m.assignments[tenantID]
	for i, existing := range ids {
		if existing == optionID {
			m.assignments[tenantID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

// newPrintOptionFixture dựng service với mock repos, cache thật và invalidator thật
// để test end-to-end semantics của read path + invalidation
func newPrintOptionFixture() (*PrintOptionService, *MockPrintOptionRepository, *MockTenantRepository, *cache.Cache[models.PrintOptionSnapshot]) {
	optionRepo := NewMockPrintOptionRepository()
	tenantRepo := NewMockTenantRepository()
	snapshots := cache.New[models.PrintOptionSnapshot](100, 10*time.Minute)

	invalidator := cache.NewInvalidator()
	invalidator.Register(cache.FamilyPrintOptions, snapshots)

	svc := NewPrintOptionService(optionRepo, tenantRepo, snapshots, invalidator)
	return svc, optionRepo, tenantRepo, snapshots
}

func seedOption(repo *MockPrintOptionRepository, code string, position int) *models.PrintOption {
	option := &models.PrintOption{Code: code, Label: code, Position: position, IsActive: true}
	_ = repo.Create(option)
	return option
}

func TestPrintOptionService_GetTenantOptions_PopulatesCache(t *testing.T) {
	svc, optionRepo, tenantRepo, snapshots := newPrintOptionFixture()

	tenant := tenantRepo.AddTenant("acme")
	color := seedOption(optionRepo, "color", 1)
	duplex := seedOption(optionRepo, "duplex", 2)
	_ = optionRepo.Assign(tenant.ID, color.ID)
	_ = optionRepo.Assign(tenant.ID, duplex.ID)

	// Lần đầu: cache miss, đọc backing store
	snapshot, err := svc.GetTenantOptions("acme")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if optionRepo.ListAssignedCalls != 1 {
		t.Errorf("Expected 1 backing store read, got %d", optionRepo.ListAssignedCalls)
	}
	if len(snapshot.Options) != 2 {
		t.Fatalf("Expected 2 options in snapshot, got %d", len(snapshot.Options))
	}
	if snapshot.Options[0].Code != "color" || snapshot.Options[1].Code != "duplex" {
		t.Errorf("Expected ordered options [color duplex], got [%s %s]", snapshot.Options[0].Code, snapshot.Options[1].Code)
	}

	// Lần hai: cache hit, không đọc backing store nữa
	if _, err := svc.GetTenantOptions("acme"); err != nil {
		t.Fatalf("Expected no error on cached read, got %v", err)
	}
	if optionRepo.ListAssignedCalls != 1 {
		t.Errorf("Expected cached read to skip backing store, got %d reads", optionRepo.ListAssignedCalls)
	}
	if snapshots.Len() != 1 {
		t.Errorf("Expected 1 cache entry, got %d", snapshots.Len())
	}
}

func TestPrintOptionService_GetTenantOptions_TenantNotFound(t *testing.T) {
	svc, _, _, snapshots := newPrintOptionFixture()

	if _, err := svc.GetTenantOptions("ghost"); err == nil {
		t.Fatal("Expected error for missing tenant, got nil")
	}

	// Không bao giờ tạo cache entry cho tenant không tồn tại
	if snapshots.Len() != 0 {
		t.Errorf("Expected empty cache, got %d entries", snapshots.Len())
	}
}

func TestPrintOptionService_GetTenantOptions_StoreFailure(t *testing.T) {
	svc, optionRepo, tenantRepo, snapshots := newPrintOptionFixture()

	tenantRepo.AddTenant("acme")
	optionRepo.FailListAssigned = errors.New("connection reset")

	if _, err := svc.GetTenantOptions("acme"); err == nil {
		t.Fatal("Expected backing store failure to propagate, got nil")
	}

	// Lỗi đọc không được populate cache với snapshot dở dang
	if snapshots.Len() != 0 {
		t.Errorf("Expected no cache entry after store failure, got %d", snapshots.Len())
	}
}

func TestPrintOptionService_CreateOption_InvalidatesAllTenants(t *testing.T) {
	svc, optionRepo, tenantRepo, snapshots := newPrintOptionFixture()

	tenantRepo.AddTenant("acme")
	tenantRepo.AddTenant("globex")

	// Warm cache cho cả hai tenants
	if _, err := svc.GetTenantOptions("acme"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.GetTenantOptions("globex"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if snapshots.Len() != 2 {
		t.Fatalf("Expected 2 warm entries, got %d", snapshots.Len())
	}

	// Definition toàn cục thay đổi: mọi tenant phải đọc lại
	if _, err := svc.CreateOption(CreateOptionRequest{Code: "a3", Label: "Khổ A3"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if snapshots.Len() != 0 {
		t.Errorf("Expected cache cleared after global mutation, got %d entries", snapshots.Len())
	}

	reads := optionRepo.ListAssignedCalls
	if _, err := svc.GetTenantOptions("acme"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if optionRepo.ListAssignedCalls != reads+1 {
		t.Error("Expected fresh backing store read after invalidation")
	}
}

func TestPrintOptionService_CreateOption_DuplicateLeavesCacheUntouched(t *testing.T) {
	svc, optionRepo, tenantRepo, snapshots := newPrintOptionFixture()

	tenant := tenantRepo.AddTenant("acme")
	color := seedOption(optionRepo, "color", 1)
	_ = optionRepo.Assign(tenant.ID, color.ID)

	before, err := svc.GetTenantOptions("acme")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Code trùng: mutation thất bại, không có invalidation
	if _, err := svc.CreateOption(CreateOptionRequest{Code: "color", Label: "Trùng"}); err == nil {
		t.Fatal("Expected duplicate error, got nil")
	}

	if snapshots.Len() != 1 {
		t.Errorf("Expected cache untouched after failed create, got %d entries", snapshots.Len())
	}

	reads := optionRepo.ListAssignedCalls
	after, err := svc.GetTenantOptions("acme")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if optionRepo.ListAssignedCalls != reads {
		t.Error("Expected cached read after failed create, backing store was hit")
	}
	if len(after.Options) != len(before.Options) {
		t.Errorf("Expected snapshot unchanged, got %d options vs %d", len(after.Options), len(before.Options))
	}
}

func TestPrintOptionService_AssignOption_InvalidatesOnlyThatTenant(t *testing.T) {
	svc, optionRepo, tenantRepo, _ := newPrintOptionFixture()

	acme := tenantRepo.AddTenant("acme")
	tenantRepo.AddTenant("globex")
	color := seedOption(optionRepo, "color", 1)
	duplex := seedOption(optionRepo, "duplex", 2)
	_ = optionRepo.Assign(acme.ID, color.ID)

	// Warm cache cho cả hai tenants
	if _, err := svc.GetTenantOptions("acme"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.GetTenantOptions("globex"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Assignment của riêng acme thay đổi
	if err := svc.AssignOption("acme", duplex.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// acme: cache miss, đọc lại và thấy option mới
	reads := optionRepo.ListAssignedCalls
	snapshot, err := svc.GetTenantOptions("acme")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if optionRepo.ListAssignedCalls != reads+1 {
		t.Error("Expected fresh backing store read for acme after targeted invalidation")
	}
	if len(snapshot.Options) != 2 {
		t.Errorf("Expected 2 options after assignment, got %d", len(snapshot.Options))
	}

	// globex: vẫn serve từ cache, không đọc lại
	reads = optionRepo.ListAssignedCalls
	if _, err := svc.GetTenantOptions("globex"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if optionRepo.ListAssignedCalls != reads {
		t.Error("Expected globex to keep serving from cache")
	}
}

func TestPrintOptionService_DeactivateOption_NotFound(t *testing.T) {
	svc, _, _, snapshots := newPrintOptionFixture()

	if err := svc.DeactivateOption(uuid.New()); err == nil {
		t.Fatal("Expected not-found error, got nil")
	}
	if snapshots.Len() != 0 {
		t.Errorf("Expected cache untouched, got %d entries", snapshots.Len())
	}
}

func TestPrintOptionService_AssignOption_TenantNotFound(t *testing.T) {
	svc, optionRepo, _, _ := newPrintOptionFixture()

	option := seedOption(optionRepo, "color", 1)

	if err := svc.AssignOption("ghost", option.ID); err == nil {
		t.Fatal("Expected not-found error for missing tenant, got nil")
	}
}
