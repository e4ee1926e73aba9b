package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock để kiểm soát thời gian trong tests, không cần sleep
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache(capacity int, ttl time.Duration) (*Cache[string], *fakeClock) {
	c := New[string](capacity, ttl)
	clock := newFakeClock()
	c.now = clock.Now
	return c, clock
}

func TestCache_SetGet(t *testing.T) {
	c, _ := newTestCache(10, 10*time.Minute)

	c.Set("acme", "snapshot-1")

	value, ok := c.Get("acme")
	if !ok {
		t.Fatal("Expected hit for key acme, got miss")
	}
	if value != "snapshot-1" {
		t.Errorf("Expected value snapshot-1, got %q", value)
	}
}

func TestCache_GetMissingKey(t *testing.T) {
	c, _ := newTestCache(10, 10*time.Minute)

	if _, ok := c.Get("unknown"); ok {
		t.Error("Expected miss for unknown key, got hit")
	}
}

func TestCache_SetReplacesExisting(t *testing.T) {
	c, _ := newTestCache(10, 10*time.Minute)

	c.Set("acme", "old")
	c.Set("acme", "new")

	value, ok := c.Get("acme")
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if value != "new" {
		t.Errorf("Expected value new, got %q", value)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}
}

// Entry hết hạn phải được coi như không tồn tại ngay tại ranh giới TTL,
// kể cả khi chưa bị xóa vật lý
func TestCache_TTLExpiry(t *testing.T) {
	ttl := 10 * time.Minute
	c, clock := newTestCache(10, ttl)

	c.Set("acme", "snapshot-1")

	// Ngay trước ranh giới TTL: vẫn hit
	clock.Advance(ttl - time.Second)
	if _, ok := c.Get("acme"); !ok {
		t.Error("Expected hit just before TTL boundary, got miss")
	}

	// Đúng ranh giới TTL: phải miss
	clock.Advance(time.Second)
	if _, ok := c.Get("acme"); ok {
		t.Error("Expected miss at TTL boundary, got hit")
	}
}

// Get làm mới vị trí LRU nhưng không được gia hạn TTL:
// entry được đọc liên tục vẫn hết hạn sau đúng một cửa sổ TTL từ lúc Set
func TestCache_GetDoesNotExtendTTL(t *testing.T) {
	ttl := 10 * time.Minute
	c, clock := newTestCache(10, ttl)

	c.Set("acme", "snapshot-1")

	for i := 0; i < 9; i++ {
		clock.Advance(time.Minute)
		if _, ok := c.Get("acme"); !ok {
			t.Fatalf("Expected hit at minute %d, got miss", i+1)
		}
	}

	clock.Advance(time.Minute)
	if _, ok := c.Get("acme"); ok {
		t.Error("Expected miss after full TTL despite frequent reads, got hit")
	}
}

func TestCache_SetRefreshesTTL(t *testing.T) {
	ttl := 10 * time.Minute
	c, clock := newTestCache(10, ttl)

	c.Set("acme", "old")
	clock.Advance(9 * time.Minute)
	c.Set("acme", "new") // Replace đóng dấu lại thời gian

	clock.Advance(9 * time.Minute)
	value, ok := c.Get("acme")
	if !ok {
		t.Fatal("Expected hit after replace reset the insertion time, got miss")
	}
	if value != "new" {
		t.Errorf("Expected value new, got %q", value)
	}
}

// Vượt capacity thì evict entry least-recently-used
func TestCache_LRUEviction(t *testing.T) {
	c, _ := newTestCache(3, 10*time.Minute)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")

	// Đọc "a" để "b" trở thành least-recently-used
	if _, ok := c.Get("a"); !ok {
		t.Fatal("Expected hit for a")
	}

	c.Set("d", "4") // Đẩy "b" ra

	if _, ok := c.Get("b"); ok {
		t.Error("Expected b to be evicted as least-recently-used")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("Expected %q to survive eviction", key)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Expected 3 entries, got %d", c.Len())
	}
}

func TestCache_CapacityNeverExceeded(t *testing.T) {
	capacity := 5
	c, _ := newTestCache(capacity, 10*time.Minute)

	for i := 0; i < 20; i++ {
		c.Set(fmt.Sprintf("tenant-%d", i), "snapshot")
		if c.Len() > capacity {
			t.Fatalf("Cache exceeded capacity: %d entries after %d sets", c.Len(), i+1)
		}
	}
	if c.Len() != capacity {
		t.Errorf("Expected %d entries, got %d", capacity, c.Len())
	}
}

// Delete hai lần liên tiếp có cùng observable effect như một lần
func TestCache_DeleteIdempotent(t *testing.T) {
	c, _ := newTestCache(10, 10*time.Minute)

	c.Set("acme", "snapshot-1")

	c.Delete("acme")
	if _, ok := c.Get("acme"); ok {
		t.Error("Expected miss after delete, got hit")
	}

	c.Delete("acme") // No-op, không panic
	if c.Len() != 0 {
		t.Errorf("Expected 0 entries, got %d", c.Len())
	}
}

func TestCache_Clear(t *testing.T) {
	c, _ := newTestCache(10, 10*time.Minute)

	c.Set("acme", "1")
	c.Set("globex", "2")

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Expected 0 entries after clear, got %d", c.Len())
	}
	if _, ok := c.Get("acme"); ok {
		t.Error("Expected miss after clear")
	}

	// Cache phải dùng lại được bình thường sau clear
	c.Set("acme", "3")
	if value, ok := c.Get("acme"); !ok || value != "3" {
		t.Errorf("Expected hit with value 3 after clear+set, got %q (hit=%v)", value, ok)
	}
}

func TestCache_DefaultsApplied(t *testing.T) {
	c := New[string](0, 0)
	if c.capacity != 100 {
		t.Errorf("Expected default capacity 100, got %d", c.capacity)
	}
	if c.ttl != 10*time.Minute {
		t.Errorf("Expected default TTL 10m, got %v", c.ttl)
	}
}

// Truy cập đồng thời không được panic hay race; mỗi operation tự atomic
func TestCache_ConcurrentAccess(t *testing.T) {
	c, _ := newTestCache(50, 10*time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("tenant-%d", j%20)
				switch j % 4 {
				case 0:
					c.Set(key, "snapshot")
				case 1:
					c.Get(key)
				case 2:
					c.Delete(key)
				default:
					c.Len()
				}
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 50 {
		t.Errorf("Cache exceeded capacity under concurrency: %d", c.Len())
	}
}
