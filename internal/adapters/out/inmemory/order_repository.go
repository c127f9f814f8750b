package inmemory

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// ErrOrderAlreadyExists is returned when Add is called with an identity the
// store already holds.
var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderRepository implements ports.OrderRepository over the shared store.
//
// A repository obtained from a unit of work stages its writes in that unit
// of work and its reads see the staged writes first. A standalone repository
// created with NewOrderRepository is read-only: it serves queries directly
// from committed state, and writes fail with ErrTransactionNotStarted.
type OrderRepository struct {
	store *OrderStore
	uow   *UnitOfWork // nil outside a transaction
}

// NewOrderRepository creates a read-only repository over committed state.
// Command handlers should obtain their repository from a unit of work
// instead.
func NewOrderRepository(store *OrderStore) *OrderRepository {
	return &OrderRepository{store: store}
}

// Add stages a brand-new order in the transaction.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := r.ensureActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().String()
	if _, ok := r.lookup(id); ok {
		return ErrOrderAlreadyExists
	}

	r.uow.staged[id] = aggregate
	return nil
}

// Update stages changes to an existing order in the transaction.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := r.ensureActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().String()
	if _, ok := r.lookup(id); !ok {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID())
	}

	r.uow.staged[id] = aggregate
	return nil
}

// Get retrieves an order by id. Inside a transaction staged writes shadow
// committed state.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	aggregate, ok := r.lookup(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}

	return aggregate, nil
}

// GetByCustomer retrieves every order belonging to a customer. Inside a
// transaction staged writes shadow committed state for the same identity.
func (r *OrderRepository) GetByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	aggregates := make([]*order.Order, 0)

	if r.inTransaction() {
		for id, aggregate := range r.uow.staged {
			seen[id] = true
			if aggregate.CustomerID().IsEqual(customerID) {
				aggregates = append(aggregates, aggregate)
			}
		}
	}

	for _, aggregate := range r.store.list() {
		if seen[aggregate.ID().String()] {
			continue
		}
		if aggregate.CustomerID().IsEqual(customerID) {
			aggregates = append(aggregates, aggregate)
		}
	}

	return aggregates, nil
}

func (r *OrderRepository) inTransaction() bool {
	return r.uow != nil && r.uow.active
}

func (r *OrderRepository) ensureActive() error {
	if !r.inTransaction() {
		return ErrTransactionNotStarted
	}
	return nil
}

func (r *OrderRepository) lookup(id string) (*order.Order, bool) {
	if r.inTransaction() {
		if aggregate, ok := r.uow.staged[id]; ok {
			return aggregate, true
		}
	}
	return r.store.get(id)
}
