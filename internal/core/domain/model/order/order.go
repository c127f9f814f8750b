package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewDraftOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewDraftOrder or RestoreOrder")

// Order is the aggregate root of the ordering domain. It owns its line items
// and drives the status lifecycle from draft through placement, payment and
// preparation.
//
// Order maintains these invariants:
//   - totalItems is always the sum of the item quantities
//   - totalAmount is always the sum of the item totals plus the shipping
//     cost (zero while shipping is unset)
//   - status transitions follow the lifecycle encoded in Status
//   - each lifecycle transition stamps its timestamp exactly once
//   - every operation validates before mutating, so a failed call leaves
//     the order untouched
//
// Brand-new orders start as drafts via NewDraftOrder; RestoreOrder rehydrates
// persisted state. The struct uses private fields so mutation happens only
// through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who owns the order
	customerID kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// paymentMethod is how the customer pays (Unknown until chosen)
	paymentMethod PaymentMethod

	// billing holds invoicing details (nil until provided)
	billing *Billing

	// shipping holds delivery details (nil until provided)
	shipping *Shipping

	// items are the order lines, owned by the aggregate
	items []*Item

	// totalItems is the sum of all item quantities
	totalItems kernel.Quantity

	// totalAmount is the sum of all item totals plus the shipping cost
	totalAmount kernel.Money

	// lifecycle timestamps, zero until the transition happens
	placedAt   time.Time
	paidAt     time.Time
	readyAt    time.Time
	canceledAt time.Time

	// guard ensures the aggregate was properly initialized
	guard guard.ConstructorGuard
}

// NewDraftOrder creates a brand-new draft order for a customer. The draft has
// a fresh identity, no items, zero totals and nothing else set.
func NewDraftOrder(customerID kernel.UUID) (*Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:          kernel.NewUUID(),
		customerID:  customerID,
		status:      StatusDraft,
		totalItems:  kernel.ZeroQuantity,
		totalAmount: kernel.ZeroMoney,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistent storage. It performs
// structural validation only: persisted totals, timestamps and items are
// accepted as they were saved. The payment method, billing and shipping stay
// unset when the persisted order never had them.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	paymentMethod PaymentMethod,
	billing *Billing,
	shipping *Shipping,
	items []*Item,
	totalItems kernel.Quantity,
	totalAmount kernel.Money,
	placedAt time.Time,
	paidAt time.Time,
	readyAt time.Time,
	canceledAt time.Time,
) (*Order, error) {
	o := &Order{
		placedAt:   placedAt,
		paidAt:     paidAt,
		readyAt:    readyAt,
		canceledAt: canceledAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setPaymentMethod(paymentMethod),
		o.setBilling(billing),
		o.setShipping(shipping),
		o.setItems(items),
		o.setTotalItems(totalItems),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewDraftOrder or
// RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the chosen payment method.
// Returns PaymentMethodUnknown while none has been chosen.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Billing returns the invoicing details. Returns nil while unset.
func (o *Order) Billing() *Billing {
	return o.billing
}

// Shipping returns the delivery details. Returns nil while unset.
func (o *Order) Shipping() *Shipping {
	return o.shipping
}

// Items returns a copy of the order lines. Mutating the returned slice does
// not affect the order; the items themselves change only through the
// aggregate's methods.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalItems returns the sum of all item quantities.
func (o *Order) TotalItems() kernel.Quantity {
	return o.totalItems
}

// TotalAmount returns the sum of all item totals plus the shipping cost.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// PlacedAt returns when the order was placed, zero while still a draft.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// PaidAt returns when payment was confirmed, zero until then.
func (o *Order) PaidAt() time.Time {
	return o.paidAt
}

// ReadyAt returns when the order became ready, zero until then.
func (o *Order) ReadyAt() time.Time {
	return o.readyAt
}

// CanceledAt returns when the order was canceled, zero unless canceled.
func (o *Order) CanceledAt() time.Time {
	return o.canceledAt
}

// IsDraft reports whether the order is still a draft.
func (o *Order) IsDraft() bool {
	return o.status == StatusDraft
}

// AddItem adds a new line for the given catalog snapshot.
//
// The stock check runs first: an out-of-stock product fails with an
// OutOfStockError and leaves the order unchanged. Adding the same product
// twice yields two distinct lines; lines are never merged. Totals are fully
// recalculated afterwards.
func (o *Order) AddItem(p product.Product, quantity kernel.Quantity) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := errors.Join(p.Validate(), quantity.Validate()); err != nil {
		return err
	}

	if err := p.CheckInStock(); err != nil {
		return err
	}

	item, err := newItem(o.id, p, quantity)
	if err != nil {
		return err
	}

	items := append(o.Items(), item)
	totalItems, totalAmount, err := o.calculateTotals(items, o.shipping)
	if err != nil {
		return err
	}

	o.items = items
	o.totalItems = totalItems
	o.totalAmount = totalAmount
	return nil
}

// ChangeItemQuantity replaces the quantity of an existing line and
// recalculates both the line total and the order totals. An item ID the order
// does not contain fails with an ItemNotFoundError.
func (o *Order) ChangeItemQuantity(itemID kernel.UUID, quantity kernel.Quantity) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := errors.Join(itemID.Validate(), quantity.Validate()); err != nil {
		return err
	}

	item, err := o.findItem(itemID)
	if err != nil {
		return err
	}

	previous := item.quantity
	if err := item.changeQuantity(quantity); err != nil {
		return err
	}

	totalItems, totalAmount, err := o.calculateTotals(o.items, o.shipping)
	if err != nil {
		// the line already changed, put it back
		if restoreErr := item.changeQuantity(previous); restoreErr != nil {
			return errors.Join(err, restoreErr)
		}
		return err
	}

	o.totalItems = totalItems
	o.totalAmount = totalAmount
	return nil
}

// ChangeBilling replaces the invoicing details.
func (o *Order) ChangeBilling(billing Billing) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := billing.Validate(); err != nil {
		return err
	}

	o.billing = &billing
	return nil
}

// ChangePaymentMethod replaces the payment method.
func (o *Order) ChangePaymentMethod(method PaymentMethod) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := method.Validate(); err != nil {
		return err
	}

	o.paymentMethod = method
	return nil
}

// ChangeShipping replaces the delivery details and recalculates totals with
// the new shipping cost. An expected delivery date before today fails with an
// InvalidDeliveryDateError and leaves the order untouched.
func (o *Order) ChangeShipping(shipping Shipping) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := shipping.Validate(); err != nil {
		return err
	}

	if shipping.ExpectedDate().Before(startOfToday()) {
		return NewInvalidDeliveryDateError(o.id, shipping.ExpectedDate())
	}

	totalItems, totalAmount, err := o.calculateTotals(o.items, &shipping)
	if err != nil {
		return err
	}

	o.shipping = &shipping
	o.totalItems = totalItems
	o.totalAmount = totalAmount
	return nil
}

// Place submits the draft order.
//
// Placement requires shipping, billing, a payment method and at least one
// item; the error names whichever is missing. On success the order moves to
// Placed and placedAt is stamped.
func (o *Order) Place() error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := o.verifyCanBePlaced(); err != nil {
		return err
	}

	if err := o.changeStatus(StatusPlaced); err != nil {
		return err
	}

	o.placedAt = time.Now()
	return nil
}

// MarkAsPaid confirms payment, moving the order to Paid and stamping paidAt.
func (o *Order) MarkAsPaid() error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := o.changeStatus(StatusPaid); err != nil {
		return err
	}

	o.paidAt = time.Now()
	return nil
}

// MarkAsReady records that the order has been prepared for delivery, moving
// it to Ready and stamping readyAt.
func (o *Order) MarkAsReady() error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := o.changeStatus(StatusReady); err != nil {
		return err
	}

	o.readyAt = time.Now()
	return nil
}

// Cancel moves the order to its terminal Canceled state and stamps
// canceledAt. Cancellation is allowed from every non-terminal state.
func (o *Order) Cancel() error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := o.changeStatus(StatusCanceled); err != nil {
		return err
	}

	o.canceledAt = time.Now()
	return nil
}

// verifyCanBePlaced checks the placement dependencies in a fixed order so the
// reported missing piece is deterministic.
func (o *Order) verifyCanBePlaced() error {
	if o.shipping == nil {
		return NewCannotBePlacedError(o.id, "shipping")
	}

	if o.billing == nil {
		return NewCannotBePlacedError(o.id, "billing")
	}

	if o.paymentMethod == PaymentMethodUnknown {
		return NewCannotBePlacedError(o.id, "paymentMethod")
	}

	if len(o.items) == 0 {
		return NewCannotBePlacedError(o.id, "items")
	}

	return nil
}

// changeStatus moves the order to the next status when the lifecycle allows
// it, otherwise fails with a StatusCannotBeChangedError.
func (o *Order) changeStatus(next Status) error {
	if !o.status.CanChangeTo(next) {
		return NewStatusCannotBeChangedError(o.id, o.status, next)
	}

	o.status = next
	return nil
}

// calculateTotals recomputes both totals from scratch over the given lines
// and shipping. A full recompute keeps the result independent of the order of
// mutations and makes recalculation idempotent.
func (o *Order) calculateTotals(items []*Item, shipping *Shipping) (kernel.Quantity, kernel.Money, error) {
	totalItems := kernel.ZeroQuantity
	totalAmount := kernel.ZeroMoney

	for _, item := range items {
		var err error
		if totalItems, err = totalItems.Add(item.Quantity()); err != nil {
			return kernel.Quantity{}, kernel.Money{}, err
		}
		if totalAmount, err = totalAmount.Add(item.TotalAmount()); err != nil {
			return kernel.Quantity{}, kernel.Money{}, err
		}
	}

	if shipping != nil {
		var err error
		if totalAmount, err = totalAmount.Add(shipping.Cost()); err != nil {
			return kernel.Quantity{}, kernel.Money{}, err
		}
	}

	return totalItems, totalAmount, nil
}

func (o *Order) findItem(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}

	return nil, NewItemNotFoundError(itemID, o.id)
}

// startOfToday returns midnight of the current day in the local time zone.
// Delivery dates compare at day granularity.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// setPaymentMethod accepts Unknown because draft orders may be persisted
// before a payment method is chosen.
func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if method == PaymentMethodUnknown {
		return nil
	}

	if err := method.Validate(); err != nil {
		return err
	}

	o.paymentMethod = method
	return nil
}

func (o *Order) setBilling(billing *Billing) error {
	if billing == nil {
		return nil
	}

	if err := billing.Validate(); err != nil {
		return err
	}

	o.billing = billing
	return nil
}

func (o *Order) setShipping(shipping *Shipping) error {
	if shipping == nil {
		return nil
	}

	if err := shipping.Validate(); err != nil {
		return err
	}

	o.shipping = shipping
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotalItems(totalItems kernel.Quantity) error {
	if err := totalItems.Validate(); err != nil {
		return err
	}

	o.totalItems = totalItems
	return nil
}

func (o *Order) setTotalAmount(totalAmount kernel.Money) error {
	if err := totalAmount.Validate(); err != nil {
		return err
	}

	o.totalAmount = totalAmount
	return nil
}
