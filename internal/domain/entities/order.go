package entities

import "time"

// OrderStatus tracks fulfilment. The core only ever writes "pending";
// later transitions belong to the admin surface.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus tracks payment reconciliation, which happens out of band.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Order is the persisted purchase record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI order_number-index (PK: order_number)
//   - GSI customer_id-index (PK: customer_id)
//
// OrderNumber is the human-readable code (CC + 6 time digits + 3 random
// uppercase alphanumerics). Uniqueness is probabilistic; the conditional put
// on the row id is what actually guards against double writes.
type Order struct {
	ID            string        `json:"id"`
	OrderNumber   string        `json:"order_number"`
	CustomerID    string        `json:"customer_id"`
	DiscordID     string        `json:"discord_id"`
	ServiceType   string        `json:"service_type"`
	ServiceName   string        `json:"service_name"`
	Price         float64       `json:"price"`
	Budget        string        `json:"budget"`
	Timeline      string        `json:"timeline"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentLink   string        `json:"payment_link,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
