package routes

import (
	"salesdash/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSales    = "/sales"
	PathProjects = "/projects"
	PathTeams    = "/teams"
	PathAuth     = "/auth"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}
}

func addSalesRoutes(rg *gin.RouterGroup, salesHandler *handlers.SalesHandler) {
	sales := rg.Group(PathSales)
	{
		sales.GET("/overview", salesHandler.Overview)
		sales.GET("/leads", salesHandler.ListLeads)
		sales.GET("/quotes", salesHandler.ListQuotes)
	}
}

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, teamHandler *handlers.TeamHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)
		projects.PATCH("/:id/assign", projectHandler.AssignTeam)
		projects.GET("/dashboard", projectHandler.Dashboard)
	}

	teams := rg.Group(PathTeams)
	{
		teams.GET("", teamHandler.ListTeams)
		teams.GET("/:id", teamHandler.GetTeam)
		teams.GET("/:id/workload", teamHandler.GetWorkload)
	}
}
