package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oguzk/disiplintakip/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	incidentController *controllers.IncidentController,
	catalogController *controllers.CatalogController,
	documentController *controllers.DocumentController,
	statisticsController *controllers.StatisticsController,
	settingsController *controllers.SettingsController,
	aiController *controllers.AIController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student roster routes
	students := v1.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.POST("", studentController.CreateStudent)
		students.POST("/import", studentController.ImportStudents)
		students.GET("/:id", studentController.GetStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Incident file routes, involvements as a subresource
	incidents := v1.Group("/incidents")
	{
		incidents.GET("", incidentController.ListIncidents)
		incidents.POST("", incidentController.CreateIncident)
		incidents.GET("/:id", incidentController.GetIncident)
		incidents.PUT("/:id", incidentController.UpdateIncident)
		incidents.DELETE("/:id", incidentController.DeleteIncident)
		incidents.POST("/:id/involvements", incidentController.AddInvolvement)
		incidents.PUT("/:id/involvements/:studentId", incidentController.UpdateInvolvement)
		incidents.DELETE("/:id/involvements/:studentId", incidentController.RemoveInvolvement)
	}

	// Penalty catalog routes
	catalog := v1.Group("/catalog")
	{
		catalog.GET("", catalogController.GetCatalog)
		catalog.POST("/apply", catalogController.ApplyArticle)
	}

	// Document rendering routes
	documents := v1.Group("/documents")
	{
		documents.GET("", documentController.ListDocuments)
		documents.POST("/render", documentController.RenderDocument)
	}

	// Dashboard statistics
	v1.GET("/statistics", statisticsController.GetStatistics)

	// Settings routes
	settings := v1.Group("/settings")
	{
		settings.GET("/institution", settingsController.GetInstitution)
		settings.PUT("/institution", settingsController.SaveInstitution)
		settings.GET("/board", settingsController.GetBoard)
		settings.PUT("/board", settingsController.SaveBoard)
		settings.DELETE("/board/:id", settingsController.DeleteBoardMember)
		settings.PUT("/apikey", settingsController.SaveAPIKey)
	}

	// AI assistant routes
	ai := v1.Group("/ai")
	{
		ai.POST("/analyze", aiController.AnalyzeIncident)
		ai.POST("/reason", aiController.GenerateReason)
		ai.POST("/search", aiController.SearchRegulations)
		ai.POST("/board-info", aiController.FetchBoardInfo)
		ai.POST("/validate-key", aiController.ValidateKey)
	}
}
