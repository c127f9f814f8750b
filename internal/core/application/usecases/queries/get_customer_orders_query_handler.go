package queries

import (
	"context"

	"ordering/internal/core/ports"
)

// GetCustomerOrdersQueryHandler reads all of a customer's orders through the
// repository port.
type GetCustomerOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order reads.
func NewGetCustomerOrdersQueryHandler(orderRepository ports.OrderRepository) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle retrieves the customer's orders and maps each to the read model.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orderRepository.GetByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	responses := make([]GetOrderQueryResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, mapOrderToResponse(aggregate))
	}

	return responses, nil
}
