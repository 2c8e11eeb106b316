package entities

// Selection is a caller's choice of service + tier + quantity for one quote line.
//
// TierIndex defaults to 0, Quantity to 1. A selection referencing an unknown
// service id or an out-of-range tier index is dropped, not rejected.
type Selection struct {
	ServiceID string `json:"service_id"`
	TierIndex int    `json:"tier_index"`
	Quantity  int    `json:"quantity"`
}

// QuoteOptions toggle the discount/surcharge rules.
type QuoteOptions struct {
	FirstTime bool `json:"first_time"`
	Rush      bool `json:"rush"`
}

// QuoteItem is one priced line in a quote, in selection order.
type QuoteItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Timeline string  `json:"timeline"`
}

// Quote is the computed pricing result. It is ephemeral; only the derived
// Order is persisted.
//
// Subtotal is the post-surcharge amount when rush is requested, while Discount
// is always computed on the pre-surcharge amount. See the quote use case for
// why that asymmetry is pinned.
type Quote struct {
	Items    []QuoteItem `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Discount float64     `json:"discount"`
	Total    float64     `json:"total"`
	Timeline string      `json:"timeline"`
	Savings  string      `json:"savings,omitempty"`
}
