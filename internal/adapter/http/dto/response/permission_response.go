package response

import "comcraft/internal/domain/entities"

type PermissionCheckResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionRuleResponse struct {
	GuildID        string   `json:"guild_id"`
	CommandName    string   `json:"command_name"`
	AllowedRoleIDs []string `json:"allowed_role_ids"`
}

func FromPermissionRule(r entities.CommandPermissionRule) PermissionRuleResponse {
	return PermissionRuleResponse{
		GuildID:        r.GuildID,
		CommandName:    r.CommandName,
		AllowedRoleIDs: r.AllowedRoleIDs,
	}
}
