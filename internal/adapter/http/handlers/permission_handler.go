package handlers

import (
	"errors"
	"net/http"

	"comcraft/internal/adapter/http/dto/request"
	"comcraft/internal/adapter/http/dto/response"
	"comcraft/internal/usecase"
	"comcraft/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPermissionPayload = pkg.NewDomainErrorSimple("INVALID_PERMISSION_INPUT", "Invalid permission payload", http.StatusBadRequest)

// PermissionHandler exposes the command access gate and its admin surface.
type PermissionHandler struct {
	usecase usecase.ICommandAccessUseCase
}

func NewPermissionHandler(uc usecase.ICommandAccessUseCase) *PermissionHandler {
	return &PermissionHandler{usecase: uc}
}

// CheckPermission answers whether the caller may invoke the command. This
// endpoint never fails closed: gate-internal lookup problems read as allowed.
func (h *PermissionHandler) CheckPermission(c *gin.Context) {
	var payload request.PermissionCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPermissionPayload.HTTPStatus, errInvalidPermissionPayload.ToHTTPError())
		return
	}

	allowed := h.usecase.IsAllowed(c.Request.Context(), payload.GuildID, payload.CommandName, payload.RoleIDs, payload.IsAdministrator)
	c.JSON(http.StatusOK, response.PermissionCheckResponse{Allowed: allowed})
}

// UpdatePermission replaces the allow-list for one (guild, command) pair.
func (h *PermissionHandler) UpdatePermission(c *gin.Context) {
	var payload request.PermissionUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPermissionPayload.HTTPStatus, errInvalidPermissionPayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.SetAllowedRoles(c.Request.Context(), payload.GuildID, payload.CommandName, payload.RoleIDs)
	if err != nil {
		appErr := mapPermissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPermissionRule(rule))
}

func mapPermissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGuildID), errors.Is(err, usecase.ErrInvalidPermissionUpdate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCommandNotRestrictable):
		return pkg.NewDomainErrorSimple("COMMAND_NOT_RESTRICTABLE", "Command does not support restriction", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPersistence):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Permission store unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
