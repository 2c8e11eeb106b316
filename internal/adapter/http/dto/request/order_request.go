package request

import (
	"strings"

	"comcraft/internal/domain/entities"
)

// OrderRequest is the payload accepted by POST /v1/orders: the quote inputs
// plus the purchaser's identity as supplied by the caller's auth layer.
type OrderRequest struct {
	DiscordID  string             `json:"discord_id" binding:"required"`
	Tag        string             `json:"tag"`
	Email      string             `json:"email"`
	AvatarURL  string             `json:"avatar_url"`
	Selections []SelectionRequest `json:"selections" binding:"required"`
	FirstTime  bool               `json:"first_time"`
	Rush       bool               `json:"rush"`
}

func (r OrderRequest) ToIdentity() entities.CustomerIdentity {
	return entities.CustomerIdentity{
		DiscordID: strings.TrimSpace(r.DiscordID),
		Tag:       strings.TrimSpace(r.Tag),
		Email:     strings.TrimSpace(r.Email),
		AvatarURL: strings.TrimSpace(r.AvatarURL),
	}
}

func (r OrderRequest) ToSelections() []entities.Selection {
	return QuoteRequest{Selections: r.Selections}.ToSelections()
}

func (r OrderRequest) ToOptions() entities.QuoteOptions {
	return entities.QuoteOptions{FirstTime: r.FirstTime, Rush: r.Rush}
}
