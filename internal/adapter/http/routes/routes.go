package routes

import (
	"log"
	"strconv"

	_ "salesdash/docs" // This will be auto-generated
	"salesdash/internal/adapter/http/handlers"
	repository2 "salesdash/internal/adapter/persistence/repository"
	"salesdash/internal/infrastructure/database"
	"salesdash/internal/infrastructure/salesapi"
	"salesdash/internal/usecase"

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

	slots := repository2.NewDynamoSlotStore(ddb)
	projectRepo := repository2.NewProjectSlotRepository(slots)

	tokens := salesapi.NewTokenStore()
	salesGateway := salesapi.NewClient(tokens)
	authGateway := salesapi.NewAuthClient()

	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	teamUseCase := usecase.NewTeamUseCase(projectRepo)
	salesUseCase := usecase.NewSalesUseCase(salesGateway)
	authUseCase := usecase.NewAuthUseCase(authGateway, tokens)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	teamHandler := handlers.NewTeamHandler(teamUseCase)
	salesHandler := handlers.NewSalesHandler(salesUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addSalesRoutes(v1, salesHandler)
	addProjectRoutes(v1, projectHandler, teamHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
