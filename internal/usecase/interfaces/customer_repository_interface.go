package interfaces

import (
	"context"

	"comcraft/internal/domain/entities"
)

// ICustomerRepository abstracts persistence for Customer.
//
// Upsert semantics live in the order use case (get → update or create). Two
// concurrent creates for the same new discord id race at this layer; the
// DynamoDB implementation closes it with a conditional put on discord_id, but
// the contract itself does not promise uniqueness.
type ICustomerRepository interface {
	GetByDiscordID(ctx context.Context, discordID string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	UpdateProfile(ctx context.Context, discordID string, identity entities.CustomerIdentity) (entities.Customer, error)
}
