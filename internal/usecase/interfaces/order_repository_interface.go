package interfaces

import (
	"context"

	"comcraft/internal/domain/entities"
)

// IOrderRepository abstracts persistence for Order.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error)
}
