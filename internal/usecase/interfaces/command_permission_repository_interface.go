package interfaces

import (
	"context"

	"comcraft/internal/domain/entities"
)

// ICommandPermissionRepository abstracts the per-guild command allow-list.
//
// The access gate only reads; PutRule exists for the admin surface.
// GetRule returns a zero-value rule (not an error) when no row exists.
type ICommandPermissionRepository interface {
	GetRule(ctx context.Context, guildID, commandName string) (entities.CommandPermissionRule, error)
	PutRule(ctx context.Context, rule entities.CommandPermissionRule) (entities.CommandPermissionRule, error)
}
