package main

import (
	_ "salesdash/docs"
	"salesdash/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Sales Dashboard API
// @version         1.0
// @description     Project/sales-pipeline dashboard backend: KPI summaries, lead and quote tables and a slot-persisted project store.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the sales API token.

func main() {
	routes.Run()
}
