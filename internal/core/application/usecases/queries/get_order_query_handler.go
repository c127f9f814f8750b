package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// GetOrderQueryHandler reads a single order through the repository port and
// flattens it into the response shape.
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(orderRepository ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepository: orderRepository}
}

// Handle retrieves the order and maps it to the read model.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return mapOrderToResponse(aggregate), nil
}

func mapOrderToResponse(aggregate *order.Order) GetOrderQueryResponse {
	items := make([]GetOrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, GetOrderItemResponse{
			ID:          item.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Price:       item.Price().String(),
			Quantity:    item.Quantity().Value(),
			TotalAmount: item.TotalAmount().String(),
		})
	}

	return GetOrderQueryResponse{
		ID:            aggregate.ID(),
		CustomerID:    aggregate.CustomerID(),
		Status:        aggregate.Status().String(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		TotalItems:    aggregate.TotalItems().Value(),
		TotalAmount:   aggregate.TotalAmount().String(),
		PlacedAt:      aggregate.PlacedAt(),
		PaidAt:        aggregate.PaidAt(),
		ReadyAt:       aggregate.ReadyAt(),
		CanceledAt:    aggregate.CanceledAt(),
		Items:         items,
	}
}
