package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Placed ──> Paid ──> Ready
//	  │          │         │        │
//	  └──────────┴─────────┴────────┴──> Canceled
//
// Canceled is a terminal state reachable from every other state.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status of a new order. Draft orders are
	// freely editable: items, billing, shipping and payment method can all
	// change.
	StatusDraft

	// StatusPlaced indicates the customer has submitted the order.
	// Items can no longer change.
	StatusPlaced

	// StatusPaid indicates payment has been confirmed.
	StatusPaid

	// StatusReady indicates the order has been prepared for delivery.
	StatusReady

	// StatusCanceled is the terminal state. No further transitions exist.
	StatusCanceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusDraft:    "Draft",
		StatusPlaced:   "Placed",
		StatusPaid:     "Paid",
		StatusReady:    "Ready",
		StatusCanceled: "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:    "Draft",
		StatusPlaced:   "Placed",
		StatusPaid:     "Paid",
		StatusReady:    "Ready",
		StatusCanceled: "Canceled",
	}
}

// getStatusTransitions returns the allowed transition table.
// A status maps to the set of statuses it may change to.
func getStatusTransitions() map[Status]map[Status]bool {
	//nolint:exhaustive // Canceled is terminal and Unknown has no transitions
	return map[Status]map[Status]bool{
		StatusDraft:  {StatusPlaced: true, StatusCanceled: true},
		StatusPlaced: {StatusPaid: true, StatusCanceled: true},
		StatusPaid:   {StatusReady: true, StatusCanceled: true},
		StatusReady:  {StatusCanceled: true},
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any value,
// including invalid ones, which read as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanChangeTo reports whether the transition from the receiver to next is
// allowed by the lifecycle. It is a pure lookup with no side effects; staying
// in place is never an allowed transition.
func (s Status) CanChangeTo(next Status) bool {
	return getStatusTransitions()[s][next]
}

// StatusFromString parses a persisted status name back into a Status.
// Only valid statuses parse; "Unknown" and unrecognized names fail.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}

	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}
