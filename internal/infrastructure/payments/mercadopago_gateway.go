package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"comcraft/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoCheckoutGateway creates hosted checkout preferences for orders
// and hands back the init-point URL customers pay at.
type MercadoPagoCheckoutGateway struct {
	client   preference.Client
	currency string
	mockMode bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoCheckoutGateway)(nil)

func NewMercadoPagoCheckoutGateway(accessToken string) (*MercadoPagoCheckoutGateway, error) {
	if isCheckoutGatewayMockEnabled() {
		log.Printf("[checkout][gateway] mock mode enabled")
		return &MercadoPagoCheckoutGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[checkout][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[checkout][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[checkout][gateway] Mercado Pago client initialized")

	return &MercadoPagoCheckoutGateway{
		client:   preference.NewClient(cfg),
		currency: getenvDefault("MERCADOPAGO_CURRENCY", "USD"),
	}, nil
}

func (g *MercadoPagoCheckoutGateway) CreateCheckoutLink(ctx context.Context, orderNumber, title string, amount float64) (string, error) {
	if g != nil && g.mockMode {
		link := fmt.Sprintf("https://checkout.local/pay/%s", orderNumber)
		log.Printf("[checkout][gateway] mock link created order_number=%s link=%s", orderNumber, link)
		return link, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[checkout][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[checkout][gateway] preference create start order_number=%s amount=%.2f", orderNumber, amount)

	resp, err := g.client.Create(ctx, preference.Request{
		ExternalReference: orderNumber,
		Items: []preference.ItemRequest{
			{
				ID:         orderNumber,
				Title:      title,
				Quantity:   1,
				CurrencyID: g.currency,
				UnitPrice:  amount,
			},
		},
	})
	if err != nil {
		log.Printf("[checkout][gateway] sdk create failed order_number=%s err=%v", orderNumber, err)
		return "", err
	}

	log.Printf("[checkout][gateway] preference created order_number=%s preference_id=%s", orderNumber, resp.ID)
	return resp.InitPoint, nil
}

func isCheckoutGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
