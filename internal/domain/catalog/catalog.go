package catalog

import "comcraft/internal/domain/entities"

// Catalog is the agency's service offering. Entries are compiled in; the
// admin surface does not edit pricing at runtime.
type Catalog struct {
	entries []entities.ServiceCatalogEntry
	byID    map[string]int
}

// New builds a catalog from the given entries, indexing them by id.
func New(entries []entities.ServiceCatalogEntry) *Catalog {
	byID := make(map[string]int, len(entries))
	for i, e := range entries {
		byID[e.ID] = i
	}
	return &Catalog{entries: entries, byID: byID}
}

// Entries returns the offering in display order.
func (c *Catalog) Entries() []entities.ServiceCatalogEntry {
	return c.entries
}

// Find resolves a service by id.
func (c *Catalog) Find(id string) (entities.ServiceCatalogEntry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entities.ServiceCatalogEntry{}, false
	}
	return c.entries[i], true
}

// Default returns the ComCraft pricing catalog.
func Default() *Catalog {
	return New([]entities.ServiceCatalogEntry{
		{
			ID:          "website",
			Name:        "Website",
			Category:    "Web Development",
			Description: "Custom websites, from landing pages to full company sites.",
			Tiers: []entities.Tier{
				{
					Name:     "Starter",
					Price:    150,
					Features: []string{"Single landing page", "Mobile responsive", "Contact form", "Basic SEO"},
					Timeline: "1-2 weeks",
				},
				{
					Name:     "Business",
					Price:    300,
					Features: []string{"Up to 5 pages", "CMS integration", "Analytics setup", "On-page SEO"},
					Timeline: "2-3 weeks",
				},
				{
					Name:     "Premium",
					Price:    600,
					Features: []string{"Unlimited pages", "Custom design system", "Multilingual support", "Performance tuning", "3 months support"},
					Timeline: "3-4 weeks",
				},
			},
		},
		{
			ID:          "webshop",
			Name:        "Webshop",
			Category:    "Web Development",
			Description: "E-commerce stores with payments, inventory and order management.",
			Tiers: []entities.Tier{
				{
					Name:     "Basic",
					Price:    250,
					Features: []string{"Up to 25 products", "Stripe/PayPal checkout", "Order notifications"},
					Timeline: "2-3 weeks",
				},
				{
					Name:     "Advanced",
					Price:    500,
					Features: []string{"Unlimited products", "Discount codes", "Customer accounts", "Inventory tracking"},
					Timeline: "3-4 weeks",
				},
				{
					Name:     "Enterprise",
					Price:    900,
					Features: []string{"Multi-currency", "Shipping integrations", "Admin dashboard", "Priority support"},
					Timeline: "4-6 weeks",
				},
			},
		},
		{
			ID:          "discord_bot",
			Name:        "Discord Bot",
			Category:    "Discord",
			Description: "Custom bots: moderation, leveling, tickets, economy and more.",
			Tiers: []entities.Tier{
				{
					Name:     "Basic",
					Price:    100,
					Features: []string{"Up to 10 commands", "Moderation basics", "Welcome messages"},
					Timeline: "1 week",
				},
				{
					Name:     "Advanced",
					Price:    250,
					Features: []string{"Unlimited commands", "Leveling system", "Ticket support", "Database backed"},
					Timeline: "2 weeks",
				},
				{
					Name:     "Custom",
					Price:    500,
					Features: []string{"Fully bespoke features", "External API integrations", "Web dashboard", "Hosting setup"},
					Timeline: "2-4 weeks",
				},
			},
		},
		{
			ID:          "discord_server",
			Name:        "Discord Server Setup",
			Category:    "Discord",
			Description: "Professional server structure, roles, channels and permissions.",
			Tiers: []entities.Tier{
				{
					Name:     "Standard",
					Price:    75,
					Features: []string{"Channel structure", "Role hierarchy", "Permission setup"},
					Timeline: "Immediate",
				},
				{
					Name:     "Professional",
					Price:    150,
					Features: []string{"Everything in Standard", "Custom emojis and branding", "Onboarding flow", "Verification gate"},
					Timeline: "1 week",
				},
				{
					Name:     "Community",
					Price:    300,
					Features: []string{"Everything in Professional", "Event setup", "Partner-ready layout", "Staff training call"},
					Timeline: "1-2 weeks",
				},
			},
		},
		{
			ID:          "automation",
			Name:        "Automation",
			Category:    "Tooling",
			Description: "Scripts, workflows and integrations that remove manual work.",
			Tiers: []entities.Tier{
				{
					Name:     "Script",
					Price:    80,
					Features: []string{"Single-purpose script", "Documentation", "Handover call"},
					Timeline: "1 week",
				},
				{
					Name:     "Workflow",
					Price:    200,
					Features: []string{"Multi-step workflow", "Scheduling", "Error alerting"},
					Timeline: "1-2 weeks",
				},
				{
					Name:     "Integration",
					Price:    450,
					Features: []string{"Third-party API integration", "Webhooks", "Monitoring", "1 month support"},
					Timeline: "2-3 weeks",
				},
			},
		},
	})
}
