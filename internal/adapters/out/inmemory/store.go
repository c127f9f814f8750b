// Package inmemory provides map-backed implementations of the outbound
// ports: the order repository, the product catalog and a staged-write unit
// of work. Writes buffer inside the unit of work and reach the shared store
// only on Commit; Rollback discards them.
package inmemory

import (
	"sync"

	"ordering/internal/core/domain/model/order"
)

// OrderStore is the shared in-memory order storage. Access is guarded by a
// mutex; aggregates are held by reference, callers must not mutate an
// aggregate concurrently with a commit.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

// NewOrderStore creates an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]*order.Order),
	}
}

func (s *OrderStore) get(id string) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	aggregate, ok := s.orders[id]
	return aggregate, ok
}

func (s *OrderStore) list() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	aggregates := make([]*order.Order, 0, len(s.orders))
	for _, aggregate := range s.orders {
		aggregates = append(aggregates, aggregate)
	}
	return aggregates
}

func (s *OrderStore) apply(staged map[string]*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, aggregate := range staged {
		s.orders[id] = aggregate
	}
}
