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

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles order provisioning and lookups.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder provisions a pending order from the caller's selections and
// identity and returns the confirmation (order number + quote).
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	confirmation, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToIdentity(), payload.ToSelections(), payload.ToOptions())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrderConfirmation(confirmation))
}

// GetOrderByNumber resolves one order by its human-readable code.
func (h *OrderHandler) GetOrderByNumber(c *gin.Context) {
	order, err := h.usecase.GetOrderByNumber(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrdersByDiscordID returns a customer's order history, oldest first as
// stored. Unknown customers get an empty list, not a 404.
func (h *OrderHandler) ListOrdersByDiscordID(c *gin.Context) {
	orders, err := h.usecase.ListOrdersByDiscordID(c.Request.Context(), c.Param("discord_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDiscordID), errors.Is(err, usecase.ErrInvalidOrderNumber), errors.Is(err, usecase.ErrEmptyOrder):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPersistence):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Order store unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
