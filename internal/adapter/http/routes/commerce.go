package routes

import (
	"comcraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices    = "/services"
	PathQuotes      = "/quotes"
	PathOrders      = "/orders"
	PathCustomers   = "/customers"
	PathPermissions = "/permissions"
)

func addCommerceRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, orderHandler *handlers.OrderHandler, permissionHandler *handlers.PermissionHandler) {
	rg.GET(PathServices, quoteHandler.ListServices)
	rg.POST(PathQuotes, quoteHandler.ComputeQuote)

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_number", orderHandler.GetOrderByNumber)
	}

	rg.GET(PathCustomers+"/:discord_id/orders", orderHandler.ListOrdersByDiscordID)

	permissions := rg.Group(PathPermissions)
	{
		// Consulted by the bot before every restricted command handler.
		permissions.POST("/check", permissionHandler.CheckPermission)
		permissions.PUT("", permissionHandler.UpdatePermission)
	}
}
