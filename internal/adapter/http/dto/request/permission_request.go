package request

// PermissionCheckRequest is the payload for POST /v1/permissions/check,
// mirroring what a bot command handler knows about the caller.
type PermissionCheckRequest struct {
	GuildID         string   `json:"guild_id" binding:"required"`
	CommandName     string   `json:"command_name" binding:"required"`
	RoleIDs         []string `json:"role_ids"`
	IsAdministrator bool     `json:"is_administrator"`
}

// PermissionUpdateRequest is the payload for PUT /v1/permissions. An empty
// role list clears the restriction.
type PermissionUpdateRequest struct {
	GuildID     string   `json:"guild_id" binding:"required"`
	CommandName string   `json:"command_name" binding:"required"`
	RoleIDs     []string `json:"role_ids"`
}
