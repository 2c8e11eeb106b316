package routes

import (
	"log"
	"os"
	"strconv"

	_ "comcraft/docs" // This will be auto-generated
	"comcraft/internal/adapter/http/handlers"
	"comcraft/internal/adapter/persistence/repository"
	"comcraft/internal/domain/catalog"
	"comcraft/internal/infrastructure/database"
	"comcraft/internal/infrastructure/payments"
	"comcraft/internal/usecase"
	"comcraft/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	permissionRepo := repository.NewCommandPermissionDynamoRepository(ddb)

	pricing := catalog.Default()
	quoteUseCase := usecase.NewQuoteUseCase(pricing)

	var checkout interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoCheckoutGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago checkout not configured, orders ship without payment links: %v", err)
	} else {
		checkout = mpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(quoteUseCase, pricing, customerRepo, orderRepo, checkout)
	accessUseCase := usecase.NewCommandAccessUseCase(permissionRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	permissionHandler := handlers.NewPermissionHandler(accessUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCommerceRoutes(v1, quoteHandler, orderHandler, permissionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
