package entities

// Tier is one priced package inside a service offering.
//
// Price is a USD amount. Timeline is a loose display estimate ("2-3 weeks",
// "Immediate"); the quote engine only reads its leading integer.
type Tier struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Features []string `json:"features"`
	Timeline string   `json:"timeline"`
}

// ServiceCatalogEntry is one service the agency sells.
//
// Entries are immutable at runtime; tiers are ordered cheapest-first and
// addressed by index (tier 0 is the default).
type ServiceCatalogEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Tiers       []Tier `json:"tiers"`
}
