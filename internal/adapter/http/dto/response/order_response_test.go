package response

import (
	"testing"
	"time"

	"comcraft/internal/domain/entities"
	"comcraft/internal/usecase"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:            "order-1",
		OrderNumber:   "CC123456ABC",
		CustomerID:    "cust-1",
		DiscordID:     "discord-1",
		ServiceType:   "website",
		ServiceName:   "Website - Starter",
		Price:         150,
		Budget:        "$150.00",
		Timeline:      "2 weeks",
		Status:        entities.OrderStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
		PaymentLink:   "https://checkout.local/pay/CC123456ABC",
		CreatedAt:     now,
	}

	res := FromOrder(o)
	if res.ID != "order-1" || res.OrderNumber != "CC123456ABC" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.CustomerID != "cust-1" || res.DiscordID != "discord-1" {
		t.Fatalf("unexpected customer fields: %+v", res)
	}
	if res.Price != 150 || res.Budget != "$150.00" || res.Timeline != "2 weeks" {
		t.Fatalf("unexpected pricing fields: %+v", res)
	}
	if res.Status != "pending" || res.PaymentStatus != "pending" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if res.PaymentLink != "https://checkout.local/pay/CC123456ABC" {
		t.Fatalf("unexpected payment link: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created at: %+v", res)
	}
}

func TestFromOrders(t *testing.T) {
	out := FromOrders([]entities.Order{{ID: "order-1"}, {ID: "order-2"}})
	if len(out) != 2 || out[0].ID != "order-1" || out[1].ID != "order-2" {
		t.Fatalf("unexpected mapping: %+v", out)
	}
	if empty := FromOrders(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}

func TestFromOrderConfirmation(t *testing.T) {
	c := usecase.OrderConfirmation{
		OrderNumber: "CC123456ABC",
		OrderID:     "order-1",
		Quote: entities.Quote{
			Items:    []entities.QuoteItem{{Name: "Website - Starter", Price: 150, Timeline: "1-2 weeks"}},
			Subtotal: 150,
			Total:    150,
			Timeline: "2 weeks",
		},
		PaymentLink: "https://checkout.local/pay/CC123456ABC",
	}

	res := FromOrderConfirmation(c)
	if res.OrderNumber != "CC123456ABC" || res.OrderID != "order-1" {
		t.Fatalf("unexpected confirmation ids: %+v", res)
	}
	if len(res.Quote.Items) != 1 || res.Quote.Total != 150 {
		t.Fatalf("unexpected quote mapping: %+v", res.Quote)
	}
	if res.PaymentLink != "https://checkout.local/pay/CC123456ABC" {
		t.Fatalf("unexpected payment link: %+v", res)
	}
}
