package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// PaymentMethod identifies how the customer intends to pay for the order.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCreditCard pays through a credit card charge.
	PaymentMethodCreditCard

	// PaymentMethodGatewayBalance pays from the customer's gateway balance.
	PaymentMethodGatewayBalance
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown:        "Unknown",
		PaymentMethodCreditCard:     "CreditCard",
		PaymentMethodGatewayBalance: "GatewayBalance",
	}
}

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentMethodCreditCard:     "CreditCard",
		PaymentMethodGatewayBalance: "GatewayBalance",
	}
}

// Validate checks if the PaymentMethod value is valid.
func (p PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", p),
		)
	}
	return nil
}

// String implements fmt.Stringer. Invalid values read as "Unknown".
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// PaymentMethodFromString parses a persisted payment method name.
func PaymentMethodFromString(value string) (PaymentMethod, error) {
	for method, name := range getValidPaymentMethodStrings() {
		if name == value {
			return method, nil
		}
	}

	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", value),
	)
}
