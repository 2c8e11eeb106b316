package main

import (
	_ "comcraft/docs"
	"comcraft/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ComCraft Commerce API
// @version         1.0
// @description     Quote calculation, order provisioning and command access rules for the ComCraft platform.

// @contact.name   ComCraft Support
// @contact.email  support@comcraft.dev

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
