package inmemory

import (
	"context"
	"errors"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

var (
	// ErrTransactionAlreadyStarted is returned when Begin is called on a
	// unit of work that is already active.
	ErrTransactionAlreadyStarted = errors.New("transaction already started")

	// ErrTransactionNotStarted is returned when Commit is called before
	// Begin or after the transaction finished.
	ErrTransactionNotStarted = errors.New("transaction not started")
)

// UnitOfWorkFactory creates unit of work instances over a shared order
// store. Each business operation gets a fresh instance with its own staging
// buffer.
type UnitOfWorkFactory struct {
	store *OrderStore
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *OrderStore) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work.
func (f *UnitOfWorkFactory) Create() commands.OrderUoW {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork buffers order writes until Commit. Reads within the transaction
// see the buffered writes first, so a handler observes its own changes. Not
// safe for concurrent use; create one per operation.
type UnitOfWork struct {
	store  *OrderStore
	staged map[string]*order.Order
	active bool
}

// Begin starts the transaction.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return ErrTransactionAlreadyStarted
	}

	u.staged = make(map[string]*order.Order)
	u.active = true
	return nil
}

// Commit applies all buffered writes to the shared store atomically and ends
// the transaction.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrTransactionNotStarted
	}

	u.store.apply(u.staged)
	u.staged = nil
	u.active = false
	return nil
}

// Rollback discards buffered writes. Calling it after Commit or without a
// transaction is a no-op, so handlers can safely defer it.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	u.staged = nil
	u.active = false
	return nil
}

// OrderRepository returns a repository whose writes stage in this unit of
// work.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: u.store, uow: u}
}
