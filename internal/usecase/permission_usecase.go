package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"comcraft/internal/domain/entities"
	"comcraft/internal/usecase/interfaces"
)

var (
	ErrInvalidGuildID          = errors.New("invalid guild_id")
	ErrCommandNotRestrictable  = errors.New("command does not support restriction")
	ErrInvalidPermissionUpdate = errors.New("invalid permission update")
)

// restrictableCommands is the closed set of command names that support
// per-guild role restriction. Anything else is always allowed.
var restrictableCommands = map[string]struct{}{
	"quote":    {},
	"order":    {},
	"services": {},
	"announce": {},
	"setup":    {},
	"ticket":   {},
}

// ICommandAccessUseCase gates restricted bot commands.
type ICommandAccessUseCase interface {
	IsAllowed(ctx context.Context, guildID, commandName string, callerRoleIDs []string, callerIsAdministrator bool) bool
	SetAllowedRoles(ctx context.Context, guildID, commandName string, roleIDs []string) (entities.CommandPermissionRule, error)
}

type CommandAccessUseCase struct {
	rules interfaces.ICommandPermissionRepository
}

var _ ICommandAccessUseCase = (*CommandAccessUseCase)(nil)

func NewCommandAccessUseCase(rules interfaces.ICommandPermissionRepository) *CommandAccessUseCase {
	return &CommandAccessUseCase{rules: rules}
}

// IsAllowed decides whether the caller may invoke commandName in guildID.
//
// Commands outside the restrictable set pass unconditionally, as do guilds
// with no rule (or an empty role list) for the command. Administrators bypass
// any rule. When the rule lookup fails the gate fails OPEN: an unreachable
// store must never lock every guild out of its own bot.
func (u *CommandAccessUseCase) IsAllowed(ctx context.Context, guildID, commandName string, callerRoleIDs []string, callerIsAdministrator bool) bool {
	if _, ok := restrictableCommands[commandName]; !ok {
		return true
	}

	rule, err := u.rules.GetRule(ctx, guildID, commandName)
	if err != nil {
		log.Printf("[permission][usecase] rule lookup failed guild_id=%s command=%s err=%v; allowing", guildID, commandName, err)
		return true
	}
	if !rule.Restricts() {
		return true
	}

	if callerIsAdministrator {
		return true
	}

	allowed := make(map[string]struct{}, len(rule.AllowedRoleIDs))
	for _, id := range rule.AllowedRoleIDs {
		allowed[id] = struct{}{}
	}
	for _, id := range callerRoleIDs {
		if _, ok := allowed[id]; ok {
			return true
		}
	}
	return false
}

// SetAllowedRoles replaces the allow-list for one (guild, command) pair.
// An empty role list clears the restriction. Admin surface only; the gate
// itself never writes.
func (u *CommandAccessUseCase) SetAllowedRoles(ctx context.Context, guildID, commandName string, roleIDs []string) (entities.CommandPermissionRule, error) {
	guildID = strings.TrimSpace(guildID)
	if guildID == "" {
		return entities.CommandPermissionRule{}, ErrInvalidGuildID
	}
	commandName = strings.TrimSpace(commandName)
	if _, ok := restrictableCommands[commandName]; !ok {
		return entities.CommandPermissionRule{}, ErrCommandNotRestrictable
	}

	cleaned := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return entities.CommandPermissionRule{}, ErrInvalidPermissionUpdate
		}
		cleaned = append(cleaned, id)
	}

	rule, err := u.rules.PutRule(ctx, entities.CommandPermissionRule{
		GuildID:        guildID,
		CommandName:    commandName,
		AllowedRoleIDs: cleaned,
	})
	if err != nil {
		return entities.CommandPermissionRule{}, fmt.Errorf("%w: saving rule: %v", ErrPersistence, err)
	}
	return rule, nil
}

// RestrictableCommands lists the command names eligible for restriction,
// for the admin surface to present.
func RestrictableCommands() []string {
	names := make([]string, 0, len(restrictableCommands))
	for name := range restrictableCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
