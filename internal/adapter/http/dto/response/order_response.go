package response

import (
	"time"

	"comcraft/internal/domain/entities"
	"comcraft/internal/usecase"
)

type OrderConfirmationResponse struct {
	OrderNumber string        `json:"order_number"`
	OrderID     string        `json:"order_id"`
	Quote       QuoteResponse `json:"quote"`
	PaymentLink string        `json:"payment_link,omitempty"`
}

func FromOrderConfirmation(c usecase.OrderConfirmation) OrderConfirmationResponse {
	return OrderConfirmationResponse{
		OrderNumber: c.OrderNumber,
		OrderID:     c.OrderID,
		Quote:       FromQuote(c.Quote),
		PaymentLink: c.PaymentLink,
	}
}

type OrderResponse struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"order_number"`
	CustomerID    string    `json:"customer_id"`
	DiscordID     string    `json:"discord_id"`
	ServiceType   string    `json:"service_type"`
	ServiceName   string    `json:"service_name"`
	Price         float64   `json:"price"`
	Budget        string    `json:"budget"`
	Timeline      string    `json:"timeline"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	PaymentLink   string    `json:"payment_link,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		DiscordID:     o.DiscordID,
		ServiceType:   o.ServiceType,
		ServiceName:   o.ServiceName,
		Price:         o.Price,
		Budget:        o.Budget,
		Timeline:      o.Timeline,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentLink:   o.PaymentLink,
		CreatedAt:     o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
