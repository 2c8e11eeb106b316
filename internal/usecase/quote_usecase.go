package usecase

import (
	"fmt"
	"strconv"

	"comcraft/internal/domain/catalog"
	"comcraft/internal/domain/entities"
)

const (
	firstTimeDiscountRate = 0.15
	bundleDiscountRate    = 0.20
	rushMultiplier        = 1.5

	// Used when a tier timeline has no leading integer ("Immediate") and for
	// quotes with no resolved selections.
	defaultTimelineWeeks = 2
)

// IQuoteUseCase exposes the pricing catalog and quote computation.
type IQuoteUseCase interface {
	ComputeQuote(selections []entities.Selection, options entities.QuoteOptions) entities.Quote
	ListServices() []entities.ServiceCatalogEntry
}

type QuoteUseCase struct {
	catalog *catalog.Catalog
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(c *catalog.Catalog) *QuoteUseCase {
	return &QuoteUseCase{catalog: c}
}

// ComputeQuote prices a list of selections.
//
// Rules, in order:
//   - Selections with an unknown service id or out-of-range tier index are
//     dropped; they never fail the quote.
//   - Discount: 15% for first-time customers, else 20% when more than one line
//     resolved, else none. First-time wins even when both apply.
//   - Rush multiplies the subtotal by 1.5 and halves the timeline (rounded up).
//
// Pricing policy pinned by product: the discount is computed on the pre-rush
// subtotal but subtracted from the rush-inflated one, so a rush order keeps
// the smaller, non-inflated discount. Do not reorder these steps.
func (u *QuoteUseCase) ComputeQuote(selections []entities.Selection, options entities.QuoteOptions) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(selections))
	subtotal := 0.0
	timelineWeeks := 0

	for _, sel := range selections {
		entry, ok := u.catalog.Find(sel.ServiceID)
		if !ok {
			continue
		}
		if sel.TierIndex < 0 || sel.TierIndex >= len(entry.Tiers) {
			continue
		}
		tier := entry.Tiers[sel.TierIndex]

		quantity := sel.Quantity
		if quantity < 1 {
			quantity = 1
		}
		lineTotal := tier.Price * float64(quantity)

		items = append(items, entities.QuoteItem{
			Name:     entry.Name + " - " + tier.Name,
			Price:    lineTotal,
			Timeline: tier.Timeline,
		})
		subtotal += lineTotal

		// Projects run in parallel, so the quote timeline is the longest
		// single line, not the sum.
		if w := parseLeadingWeeks(tier.Timeline); w > timelineWeeks {
			timelineWeeks = w
		}
	}

	if len(items) == 0 {
		timelineWeeks = defaultTimelineWeeks
	}

	var discount float64
	switch {
	case options.FirstTime:
		discount = subtotal * firstTimeDiscountRate
	case len(items) > 1:
		discount = subtotal * bundleDiscountRate
	}

	if options.Rush {
		subtotal *= rushMultiplier
		timelineWeeks = (timelineWeeks + 1) / 2
	}

	total := subtotal - discount

	savings := ""
	if discount > 0 {
		savings = fmt.Sprintf("You save $%.2f!", discount)
	}

	return entities.Quote{
		Items:    items,
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
		Timeline: fmt.Sprintf("%d weeks", timelineWeeks),
		Savings:  savings,
	}
}

func (u *QuoteUseCase) ListServices() []entities.ServiceCatalogEntry {
	return u.catalog.Entries()
}

// parseLeadingWeeks extracts the first contiguous integer from a tier timeline
// ("2-3 weeks" -> 2). Timelines without one ("Immediate") fall back to the
// default estimate.
func parseLeadingWeeks(timeline string) int {
	start := -1
	for i, r := range timeline {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(timeline[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(timeline[start:])
		return n
	}
	return defaultTimelineWeeks
}
