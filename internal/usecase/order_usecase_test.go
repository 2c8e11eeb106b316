package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"comcraft/internal/domain/catalog"
	"comcraft/internal/domain/entities"
	"comcraft/internal/usecase/interfaces"
	mock_interfaces "comcraft/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var orderNumberPattern = regexp.MustCompile(`^CC\d{6}[A-Z0-9]{3}$`)

func newOrderUseCase(customers interfaces.ICustomerRepository, orders interfaces.IOrderRepository, checkout interfaces.ICheckoutGateway) *OrderUseCase {
	pricing := catalog.Default()
	return NewOrderUseCase(NewQuoteUseCase(pricing), pricing, customers, orders, checkout)
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	identity := entities.CustomerIdentity{DiscordID: "discord-1", Tag: "crafter#0001", Email: "crafter@example.com"}

	t.Run("invalid discord id", func(t *testing.T) {
		uc := newOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), entities.CustomerIdentity{DiscordID: "   "}, nil, entities.QuoteOptions{})
		if !errors.Is(err, ErrInvalidDiscordID) {
			t.Fatalf("expected ErrInvalidDiscordID, got %v", err)
		}
	})

	t.Run("no valid selections", func(t *testing.T) {
		uc := newOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), identity, []entities.Selection{{ServiceID: "nope"}}, entities.QuoteOptions{})
		if !errors.Is(err, ErrEmptyOrder) {
			t.Fatalf("expected ErrEmptyOrder, got %v", err)
		}
	})

	t.Run("new customer creates one customer row and one order row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(customers, orders, nil)

		customers.EXPECT().GetByDiscordID(gomock.Any(), "discord-1").Return(entities.Customer{}, nil)
		customers.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" || c.DiscordID != "discord-1" || c.Tag != "crafter#0001" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)
		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if !orderNumberPattern.MatchString(o.OrderNumber) {
					t.Fatalf("bad order number: %q", o.OrderNumber)
				}
				if o.ID == "" || o.CustomerID == "" || o.DiscordID != "discord-1" {
					t.Fatalf("unexpected order linkage: %+v", o)
				}
				if o.ServiceType != "website" || o.ServiceName != "Website - Starter" {
					t.Fatalf("unexpected service summary: type=%q name=%q", o.ServiceType, o.ServiceName)
				}
				if o.Price != 150 || o.Budget != "$150.00" {
					t.Fatalf("unexpected pricing: price=%v budget=%q", o.Price, o.Budget)
				}
				if o.Status != entities.OrderStatusPending || o.PaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("expected pending statuses, got %+v", o)
				}
				return o, nil
			},
		)

		confirmation, err := uc.CreateOrder(context.Background(), identity, []entities.Selection{{ServiceID: "website"}}, entities.QuoteOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !orderNumberPattern.MatchString(confirmation.OrderNumber) {
			t.Fatalf("bad order number: %q", confirmation.OrderNumber)
		}
		if confirmation.OrderID == "" {
			t.Fatalf("expected generated order id")
		}
		if len(confirmation.Quote.Items) != 1 || confirmation.Quote.Total != 150 {
			t.Fatalf("unexpected quote in confirmation: %+v", confirmation.Quote)
		}
	})

	t.Run("known customer takes the update path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(customers, orders, nil)

		existing := entities.Customer{ID: "cust-1", DiscordID: "discord-1"}
		customers.EXPECT().GetByDiscordID(gomock.Any(), "discord-1").Return(existing, nil)
		customers.EXPECT().UpdateProfile(gomock.Any(), "discord-1", identity).Return(existing, nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.CustomerID != "cust-1" {
					t.Fatalf("expected order linked to existing customer, got %q", o.CustomerID)
				}
				return o, nil
			},
		)

		if _, err := uc.CreateOrder(context.Background(), identity, []entities.Selection{{ServiceID: "website"}}, entities.QuoteOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("customer lookup failure surfaces as persistence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := newOrderUseCase(customers, nil, nil)

		customers.EXPECT().GetByDiscordID(gomock.Any(), "discord-1").Return(entities.Customer{}, errors.New("dynamo down"))

		_, err := uc.CreateOrder(context.Background(), identity, []entities.Selection{{ServiceID: "website"}}, entities.QuoteOptions{})
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})

	t.Run("order insert failure surfaces as persistence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(customers, orders, nil)

		customers.EXPECT().GetByDiscordID(gomock.Any(), "discord-1").Return(entities.Customer{ID: "cust-1"}, nil)
		customers.EXPECT().UpdateProfile(gomock.Any(), "discord-1", identity).Return(entities.Customer{ID: "cust-1"}, nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("dynamo down"))

		_, err := uc.CreateOrder(context.Background(), identity, []entities.Selection{{ServiceID: "website"}}, entities.QuoteOptions{})
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})

	t.Run("checkout failure does not fail the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		checkout := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := newOrderUseCase(customers, orders, checkout)

		customers.EXPECT().GetByDiscordID(gomock.Any(), "discord-1").Return(entities.Customer{ID: "cust-1"}, nil)
		customers.EXPECT().UpdateProfile(gomock.Any(), "discord-1", identity).Return(entities.Customer{ID: "cust-1"}, nil)
		checkout.EXPECT().CreateCheckoutLink(gomock.Any(), gomock.Any(), "Website - Starter", 150.0).Return("", errors.New("gateway down"))
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.PaymentLink != "" {
					t.Fatalf("expected no payment link, got %q", o.PaymentLink)
				}
				return o, nil
			},
		)

		confirmation, err := uc.CreateOrder(context.Background(), identity, []entities.Selection{{ServiceID: "website"}}, entities.QuoteOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if confirmation.PaymentLink != "" {
			t.Fatalf("expected no payment link, got %q", confirmation.PaymentLink)
		}
	})

	t.Run("checkout link attached when gateway succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		checkout := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := newOrderUseCase(customers, orders, checkout)

		customers.EXPECT().GetByDiscordID(gomock.Any(), "discord-1").Return(entities.Customer{ID: "cust-1"}, nil)
		customers.EXPECT().UpdateProfile(gomock.Any(), "discord-1", identity).Return(entities.Customer{ID: "cust-1"}, nil)
		checkout.EXPECT().CreateCheckoutLink(gomock.Any(), gomock.Any(), gomock.Any(), 150.0).Return("https://pay.example/abc", nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		confirmation, err := uc.CreateOrder(context.Background(), identity, []entities.Selection{{ServiceID: "website"}}, entities.QuoteOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if confirmation.PaymentLink != "https://pay.example/abc" {
			t.Fatalf("expected payment link, got %q", confirmation.PaymentLink)
		}
	})
}

func TestOrderUseCase_GetOrderByNumber(t *testing.T) {
	t.Run("invalid number", func(t *testing.T) {
		uc := newOrderUseCase(nil, nil, nil)
		_, err := uc.GetOrderByNumber(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderNumber) {
			t.Fatalf("expected ErrInvalidOrderNumber, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(nil, orders, nil)

		orders.EXPECT().GetByOrderNumber(gomock.Any(), "CC123456ABC").Return(entities.Order{}, nil)

		_, err := uc.GetOrderByNumber(context.Background(), "CC123456ABC")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(nil, orders, nil)

		orders.EXPECT().GetByOrderNumber(gomock.Any(), "CC123456ABC").Return(entities.Order{ID: "order-1", OrderNumber: "CC123456ABC"}, nil)

		order, err := uc.GetOrderByNumber(context.Background(), "CC123456ABC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID != "order-1" {
			t.Fatalf("unexpected order: %+v", order)
		}
	})
}

func TestOrderUseCase_ListOrdersByDiscordID(t *testing.T) {
	t.Run("unknown customer yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := newOrderUseCase(customers, nil, nil)

		customers.EXPECT().GetByDiscordID(gomock.Any(), "discord-9").Return(entities.Customer{}, nil)

		orders, err := uc.ListOrdersByDiscordID(context.Background(), "discord-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 0 {
			t.Fatalf("expected no orders, got %d", len(orders))
		}
	})

	t.Run("known customer lists orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(customers, orders, nil)

		customers.EXPECT().GetByDiscordID(gomock.Any(), "discord-1").Return(entities.Customer{ID: "cust-1"}, nil)
		orders.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.Order{{ID: "order-1"}}, nil)

		got, err := uc.ListOrdersByDiscordID(context.Background(), "discord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "order-1" {
			t.Fatalf("unexpected orders: %+v", got)
		}
	})
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		if num := generateOrderNumber(); !orderNumberPattern.MatchString(num) {
			t.Fatalf("order number %q does not match %s", num, orderNumberPattern)
		}
	}
}
