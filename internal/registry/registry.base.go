// Package registry cung cấp registry generic, thread-safe, dùng để giữ các đối tượng dùng chung
// theo tên (ví dụ: *mongo.Collection theo tên collection).
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zougmar/hassan-elec/internal/common"
)

// Registry là một thread-safe generic registry.
//
// Example:
//
//	cols := NewRegistry[*mongo.Collection]()
//	cols.Register("employees", db.Collection("employees"))
//	if col, ok := cols.Get("employees"); ok {
//	    ...
//	}
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo và trả về một registry mới
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item, ghi đè nếu name đã tồn tại.
// isNew = false khi ghi đè item cũ.
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get lấy item theo name
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// MustGet lấy item theo name, trả lỗi bọc common.ErrNotFound nếu chưa đăng ký
func (r *Registry[T]) MustGet(name string) (T, error) {
	item, ok := r.Get(name)
	if !ok {
		var zero T
		return zero, fmt.Errorf("item %q is not registered: %w", name, common.ErrNotFound)
	}
	return item, nil
}

// Names trả về danh sách tên đã đăng ký, đã sắp xếp
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClearAll xóa toàn bộ item. cleanup (nếu có) được gọi cho từng item,
// lỗi đầu tiên được trả về nhưng việc xóa vẫn tiếp tục.
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, item := range r.items {
		if cleanup != nil {
			if cerr := cleanup(item); cerr != nil && err == nil {
				err = fmt.Errorf("cleanup %q: %w", name, cerr)
			}
		}
		delete(r.items, name)
		count++
	}
	return count, err
}
