package response

import "comcraft/internal/domain/entities"

type QuoteItemResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Timeline string  `json:"timeline"`
}

type QuoteResponse struct {
	Items    []QuoteItemResponse `json:"items"`
	Subtotal float64             `json:"subtotal"`
	Discount float64             `json:"discount"`
	Total    float64             `json:"total"`
	Timeline string              `json:"timeline"`
	Savings  string              `json:"savings,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{Name: it.Name, Price: it.Price, Timeline: it.Timeline})
	}
	return QuoteResponse{
		Items:    items,
		Subtotal: q.Subtotal,
		Discount: q.Discount,
		Total:    q.Total,
		Timeline: q.Timeline,
		Savings:  q.Savings,
	}
}

type ServiceResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Tiers       []TierResponse `json:"tiers"`
}

type TierResponse struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Features []string `json:"features"`
	Timeline string   `json:"timeline"`
}

func FromServices(entries []entities.ServiceCatalogEntry) []ServiceResponse {
	services := make([]ServiceResponse, 0, len(entries))
	for _, e := range entries {
		tiers := make([]TierResponse, 0, len(e.Tiers))
		for _, t := range e.Tiers {
			tiers = append(tiers, TierResponse{Name: t.Name, Price: t.Price, Features: t.Features, Timeline: t.Timeline})
		}
		services = append(services, ServiceResponse{
			ID:          e.ID,
			Name:        e.Name,
			Category:    e.Category,
			Description: e.Description,
			Tiers:       tiers,
		})
	}
	return services
}
