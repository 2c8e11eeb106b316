package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"comcraft/internal/domain/catalog"
	"comcraft/internal/domain/entities"
	"comcraft/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidDiscordID   = errors.New("invalid discord_id")
	ErrInvalidOrderNumber = errors.New("invalid order number")
	ErrEmptyOrder         = errors.New("order has no valid selections")
	ErrOrderNotFound      = errors.New("order not found")

	// ErrPersistence wraps store write/read failures on the order path.
	// They surface to the caller; retry policy is the caller's.
	ErrPersistence = errors.New("store unavailable")
)

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// OrderConfirmation is what the caller shows the customer after provisioning.
type OrderConfirmation struct {
	OrderNumber string         `json:"order_number"`
	OrderID     string         `json:"order_id"`
	Quote       entities.Quote `json:"quote"`
	PaymentLink string         `json:"payment_link,omitempty"`
}

// IOrderUseCase provisions and reads orders.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, identity entities.CustomerIdentity, selections []entities.Selection, options entities.QuoteOptions) (OrderConfirmation, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	ListOrdersByDiscordID(ctx context.Context, discordID string) ([]entities.Order, error)
}

type OrderUseCase struct {
	quotes    IQuoteUseCase
	catalog   *catalog.Catalog
	customers interfaces.ICustomerRepository
	orders    interfaces.IOrderRepository
	checkout  interfaces.ICheckoutGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the order provisioner. checkout may be nil; orders are
// then created without a payment link and reconcile out of band.
func NewOrderUseCase(
	quotes IQuoteUseCase,
	c *catalog.Catalog,
	customers interfaces.ICustomerRepository,
	orders interfaces.IOrderRepository,
	checkout interfaces.ICheckoutGateway,
) *OrderUseCase {
	return &OrderUseCase{quotes: quotes, catalog: c, customers: customers, orders: orders, checkout: checkout}
}

// CreateOrder computes the quote, upserts the customer by discord id and
// persists one pending order. Exactly two sequential store round-trips: the
// order row references the customer row id produced by the upsert.
func (u *OrderUseCase) CreateOrder(ctx context.Context, identity entities.CustomerIdentity, selections []entities.Selection, options entities.QuoteOptions) (OrderConfirmation, error) {
	identity.DiscordID = strings.TrimSpace(identity.DiscordID)
	if identity.DiscordID == "" {
		return OrderConfirmation{}, ErrInvalidDiscordID
	}

	orderNumber := generateOrderNumber()
	quote := u.quotes.ComputeQuote(selections, options)
	if len(quote.Items) == 0 {
		log.Printf("[order][usecase] no valid selections discord_id=%s", identity.DiscordID)
		return OrderConfirmation{}, ErrEmptyOrder
	}

	customer, err := u.upsertCustomer(ctx, identity)
	if err != nil {
		return OrderConfirmation{}, err
	}

	serviceType, serviceName := u.summarize(selections, quote)

	order := entities.Order{
		ID:            uuid.NewString(),
		OrderNumber:   orderNumber,
		CustomerID:    customer.ID,
		DiscordID:     identity.DiscordID,
		ServiceType:   serviceType,
		ServiceName:   serviceName,
		Price:         quote.Total,
		Budget:        fmt.Sprintf("$%.2f", quote.Total),
		Timeline:      quote.Timeline,
		Status:        entities.OrderStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	// Checkout link is best effort: a gateway outage must not lose the order.
	if u.checkout != nil {
		link, err := u.checkout.CreateCheckoutLink(ctx, orderNumber, serviceName, quote.Total)
		if err != nil {
			log.Printf("[order][usecase] checkout link failed order_number=%s err=%v", orderNumber, err)
		} else {
			order.PaymentLink = link
		}
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		log.Printf("[order][usecase] order create failed order_number=%s err=%v", orderNumber, err)
		return OrderConfirmation{}, fmt.Errorf("%w: creating order: %v", ErrPersistence, err)
	}
	log.Printf("[order][usecase] order created order_number=%s customer_id=%s total=%.2f", created.OrderNumber, customer.ID, quote.Total)

	return OrderConfirmation{
		OrderNumber: created.OrderNumber,
		OrderID:     created.ID,
		Quote:       quote,
		PaymentLink: created.PaymentLink,
	}, nil
}

// upsertCustomer refreshes display fields for a known discord id and inserts
// a row otherwise. Two concurrent calls for the same new id race between the
// get and the create; the DynamoDB repository's conditional put turns the
// loser into the update path, so at most one row exists per discord id.
func (u *OrderUseCase) upsertCustomer(ctx context.Context, identity entities.CustomerIdentity) (entities.Customer, error) {
	existing, err := u.customers.GetByDiscordID(ctx, identity.DiscordID)
	if err != nil {
		return entities.Customer{}, fmt.Errorf("%w: loading customer: %v", ErrPersistence, err)
	}

	if existing.ID != "" {
		updated, err := u.customers.UpdateProfile(ctx, identity.DiscordID, identity)
		if err != nil {
			return entities.Customer{}, fmt.Errorf("%w: updating customer: %v", ErrPersistence, err)
		}
		return updated, nil
	}

	now := time.Now().UTC()
	created, err := u.customers.Create(ctx, entities.Customer{
		ID:        uuid.NewString(),
		DiscordID: identity.DiscordID,
		Tag:       identity.Tag,
		Email:     identity.Email,
		AvatarURL: identity.AvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Customer{}, fmt.Errorf("%w: creating customer: %v", ErrPersistence, err)
	}
	return created, nil
}

// summarize builds the comma-joined display fields persisted on the order:
// service ids for service_type, quote line names for service_name.
func (u *OrderUseCase) summarize(selections []entities.Selection, quote entities.Quote) (string, string) {
	ids := make([]string, 0, len(selections))
	for _, sel := range selections {
		entry, ok := u.catalog.Find(sel.ServiceID)
		if !ok || sel.TierIndex < 0 || sel.TierIndex >= len(entry.Tiers) {
			continue
		}
		ids = append(ids, entry.ID)
	}

	names := make([]string, 0, len(quote.Items))
	for _, item := range quote.Items {
		names = append(names, item.Name)
	}

	return strings.Join(ids, ", "), strings.Join(names, ", ")
}

func (u *OrderUseCase) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.Order{}, ErrInvalidOrderNumber
	}

	order, err := u.orders.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: loading order: %v", ErrPersistence, err)
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *OrderUseCase) ListOrdersByDiscordID(ctx context.Context, discordID string) ([]entities.Order, error) {
	discordID = strings.TrimSpace(discordID)
	if discordID == "" {
		return nil, ErrInvalidDiscordID
	}

	customer, err := u.customers.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("%w: loading customer: %v", ErrPersistence, err)
	}
	if customer.ID == "" {
		return []entities.Order{}, nil
	}

	orders, err := u.orders.ListByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing orders: %v", ErrPersistence, err)
	}
	return orders, nil
}

// generateOrderNumber builds the human-readable order code: "CC", the last six
// digits of the current unix-millisecond clock, and three random uppercase
// alphanumerics. Collisions are improbable, not impossible; the order row id
// is the real uniqueness guard.
func generateOrderNumber() string {
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}
	return fmt.Sprintf("CC%06d%s", time.Now().UnixMilli()%1_000_000, suffix)
}
