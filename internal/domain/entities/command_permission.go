package entities

// CommandPermissionRule restricts a bot command to a set of roles in one guild.
//
// Storage model (DynamoDB):
//   - PK: guild_id, SK: command_name
//
// AllowedRoleIDs is either empty (no restriction, everyone allowed) or a
// non-empty set (only members holding one of the roles, or an administrator,
// may invoke). There is no "deny everyone" state.
type CommandPermissionRule struct {
	GuildID        string   `json:"guild_id"`
	CommandName    string   `json:"command_name"`
	AllowedRoleIDs []string `json:"allowed_role_ids"`
}

// Restricts reports whether the rule actually limits access.
func (r CommandPermissionRule) Restricts() bool {
	return len(r.AllowedRoleIDs) > 0
}
