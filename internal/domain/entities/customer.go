package entities

import "time"

// Customer is a purchaser identified by their Discord id.
//
// Storage model (DynamoDB):
//   - PK: discord_id
//
// ID is a generated row id referenced by orders; DiscordID is the stable
// identity key supplied by the caller's auth layer.
type Customer struct {
	ID        string    `json:"id"`
	DiscordID string    `json:"discord_id"`
	Tag       string    `json:"tag"`
	Email     string    `json:"email,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerIdentity is the caller-supplied identity used to upsert a Customer.
// Tag/Email/AvatarURL are optional display fields refreshed on every order.
type CustomerIdentity struct {
	DiscordID string `json:"discord_id"`
	Tag       string `json:"tag"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}
