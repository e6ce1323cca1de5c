package repository

import (
	"context"
	"sync"
	"time"

	"github.com/lessonhub/lessonhub/internal/order"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory order repository for unit tests and degraded
// startup.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*order.Order
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*order.Order)}
}

func (m *MemoryRepo) Insert(ctx context.Context, o *order.Order) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	o.CreatedAt = time.Now().UTC()
	m.store[o.ID.Hex()] = o
	return o.ID.Hex(), nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*order.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if o, ok := m.store[id]; ok {
		return o, nil
	}
	return nil, ErrNotFound
}

// Len reports the number of stored orders; used by tests to assert that a
// rejected order persisted nothing.
func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
