package store

import (
	"context"
	"strings"
	"sync"

	"pawprint/internal/sentinel"
	"pawprint/internal/tenant/models"
	id "pawprint/pkg/domain"
)

// ErrNotFound is returned when no tenant owns a routing key.
var ErrNotFound = sentinel.ErrNotFound

// Source resolves a routing key to a tenant descriptor.
// Implementations must be deterministic: the same key always yields an
// equivalent descriptor, so navigation stays reproducible in tests.
type Source interface {
	FindByRoutingKey(ctx context.Context, key id.RoutingKey) (*models.TenantDescriptor, error)
}

// InMemory stores tenant descriptors in memory for the demo environment and tests.
type InMemory struct {
	mu    sync.RWMutex
	byKey map[string]*models.TenantDescriptor
}

// NewInMemory creates an in-memory tenant source.
func NewInMemory() *InMemory {
	return &InMemory{
		byKey: make(map[string]*models.TenantDescriptor),
	}
}

// Put registers a descriptor under its routing key (case-insensitive).
func (s *InMemory) Put(t *models.TenantDescriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byKey[strings.ToLower(t.RoutingKey.String())] = t
}

// FindByRoutingKey retrieves a descriptor by routing key.
func (s *InMemory) FindByRoutingKey(_ context.Context, key id.RoutingKey) (*models.TenantDescriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.byKey[strings.ToLower(key.String())]; ok {
		return t, nil
	}
	return nil, ErrNotFound
}

var _ Source = (*InMemory)(nil)
