package request

import (
	"strings"

	"comcraft/internal/domain/entities"
)

type SelectionRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	TierIndex *int   `json:"tier_index"`
	Quantity  *int   `json:"quantity"`
}

// QuoteRequest is the payload accepted by POST /v1/quotes. Selections may
// resolve to nothing; the quote engine answers with a zero-value quote rather
// than rejecting.
type QuoteRequest struct {
	Selections []SelectionRequest `json:"selections" binding:"required"`
	FirstTime  bool               `json:"first_time"`
	Rush       bool               `json:"rush"`
}

func (r QuoteRequest) ToSelections() []entities.Selection {
	selections := make([]entities.Selection, 0, len(r.Selections))
	for _, s := range r.Selections {
		sel := entities.Selection{
			ServiceID: strings.TrimSpace(s.ServiceID),
			Quantity:  1,
		}
		if s.TierIndex != nil {
			sel.TierIndex = *s.TierIndex
		}
		if s.Quantity != nil {
			sel.Quantity = *s.Quantity
		}
		selections = append(selections, sel)
	}
	return selections
}

func (r QuoteRequest) ToOptions() entities.QuoteOptions {
	return entities.QuoteOptions{FirstTime: r.FirstTime, Rush: r.Rush}
}
