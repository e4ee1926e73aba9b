package cache

import (
	"container/list"
	"sync"
	"time"
)

// Tên các resource families, mỗi family có một cache instance riêng
const (
	FamilyPrintOptions = "print_options"
	FamilyApplications = "applications"
)

// Cache là in-memory cache theo tenant cho một resource family.
// Key là subdomain của tenant, value là snapshot bất biến của family đó.
// Hai chính sách độc lập trên cùng một map:
//   - LRU theo access order khi vượt capacity (evict entry ít được đọc nhất)
//   - TTL tính từ thời điểm insert, kiểm tra lazy lúc Get
//
// Get làm mới vị trí LRU nhưng KHÔNG gia hạn TTL: tuổi của entry luôn tính từ
// lúc Set, nên staleness tối đa là một cửa sổ TTL dù entry được đọc liên tục.
type Cache[V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*list.Element
	order    *list.List // front = most recently used

	now func() time.Time // thay thế được trong tests
}

type entry[V any] struct {
	key        string
	value      V
	insertedAt time.Time
}

// New tạo cache với capacity và ttl cho trước.
// capacity <= 0 hoặc ttl <= 0 sẽ dùng giá trị mặc định (100 entries, 10 phút).
func New[V any](capacity int, ttl time.Duration) *Cache[V] {
	if capacity <= 0 {
		capacity = 100
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache[V]{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
}

// Get trả về snapshot đã cache cho tenant key nếu còn hạn.
// Entry hết hạn được coi như không tồn tại kể cả khi chưa bị xóa vật lý,
// và được purge luôn tại đây. Không chạm vào backing store.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return zero, false
	}

	ent := elem.Value.(*entry[V])
	if c.now().Sub(ent.insertedAt) >= c.ttl {
		// Hết hạn: purge luôn thay vì đợi eviction
		c.order.Remove(elem)
		delete(c.entries, key)
		return zero, false
	}

	c.order.MoveToFront(elem)
	return ent.value, true
}

// Set insert hoặc thay thế entry cho key, đóng dấu thời điểm hiện tại.
// Nếu cache đầy và key là key mới thì evict entry least-recently-used trước.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		ent := elem.Value.(*entry[V])
		ent.value = value
		ent.insertedAt = c.now()
		c.order.MoveToFront(elem)
		return
	}

	if len(c.entries) >= c.capacity {
		c.evictOldest()
	}

	elem := c.order.PushFront(&entry[V]{
		key:        key,
		value:      value,
		insertedAt: c.now(),
	})
	c.entries[key] = elem
}

// Delete xóa entry cho key nếu có. Gọi trên key không tồn tại là no-op.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.Remove(elem)
		delete(c.entries, key)
	}
}

// Clear xóa toàn bộ entries (dùng khi một mutation ảnh hưởng mọi tenant)
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

// Len trả về số entry hiện tại, phục vụ observability
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest xóa entry ở cuối access-order list. Caller phải giữ lock.
func (c *Cache[V]) evictOldest() {
	elem := c.order.Back()
	if elem == nil {
		return
	}
	ent := elem.Value.(*entry[V])
	c.order.Remove(elem)
	delete(c.entries, ent.key)
}
