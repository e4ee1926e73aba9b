package cache

import (
	"sync"

	"github.com/techmaster-vietnam/goerrorkit"
)

// Store là phần contract của Cache mà Invalidator cần: xóa một key hoặc xóa hết.
// Invalidator không sở hữu entries, chỉ phát lệnh evict về phía cache instance.
type Store interface {
	Delete(key string)
	Clear()
}

// Invalidator điều phối việc invalidate cache sau mutations.
// Mutation handlers gọi invalidator đồng bộ NGAY SAU khi mutation đã commit
// và TRƯỚC khi trả response, để reader sau đó không còn thấy dữ liệu cũ.
//
// Invalidate không bao giờ trả lỗi về phía mutation: family không đăng ký
// chỉ được log rồi bỏ qua, entry cũ sẽ tự hết hạn theo TTL.
type Invalidator struct {
	mu       sync.RWMutex
	families map[string]Store
}

// NewInvalidator tạo Invalidator rỗng, các families đăng ký qua Register
func NewInvalidator() *Invalidator {
	return &Invalidator{
		families: make(map[string]Store),
	}
}

// Register đăng ký cache instance cho một family.
// Gọi một lần lúc khởi tạo ứng dụng, trước khi nhận request.
func (iv *Invalidator) Register(family string, store Store) {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	iv.families[family] = store
}

// InvalidateTenant xóa entry của một tenant trong một family.
// Dùng khi mutation chỉ thay đổi assignment của riêng tenant đó.
func (iv *Invalidator) InvalidateTenant(family, key string) {
	store, ok := iv.lookup(family)
	if !ok {
		iv.logUnknownFamily(family)
		return
	}
	store.Delete(key)
}

// InvalidateAll xóa toàn bộ entries của một family.
// Dùng khi mutation thay đổi định nghĩa toàn cục mà mọi tenant có thể tham chiếu.
func (iv *Invalidator) InvalidateAll(family string) {
	store, ok := iv.lookup(family)
	if !ok {
		iv.logUnknownFamily(family)
		return
	}
	store.Clear()
}

func (iv *Invalidator) lookup(family string) (Store, bool) {
	iv.mu.RLock()
	defer iv.mu.RUnlock()
	store, ok := iv.families[family]
	return store, ok
}

func (iv *Invalidator) logUnknownFamily(family string) {
	goerrorkit.LogError(goerrorkit.NewBusinessError(404, "Resource family chưa được đăng ký với Invalidator").WithData(map[string]interface{}{
		"family": family,
	}), "Invalidator")
}
