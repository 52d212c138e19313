package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/MGTheTrain/description-generator/internal/domain/catalog"
	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/pkg/config"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	jobService generation.JobService,
	previewService catalog.PreviewService,
	authSettings *config.AuthSettings) {

	v1 := r.Group(BasePath) // lookup in version file

	// Auth routes
	authHandler := NewAuthHandler(authSettings)
	v1.POST("/login", authHandler.Login)

	// Generation routes; mutating operations require a bearer token
	generationHandler := NewGenerationHandler(jobService)
	v1.GET("/generations/status", generationHandler.Status)
	v1.GET("/generations/logs", generationHandler.StreamLogs)

	authorized := v1.Group("", RequireAuth(authSettings))
	authorized.POST("/generations", generationHandler.Start)
	authorized.POST("/generations/stop", generationHandler.Stop)
	authorized.GET("/generations", generationHandler.ListJobs)

	// Sheet routes
	sheetHandler := NewSheetHandler(previewService)
	v1.POST("/sheets/preview", sheetHandler.Preview)
}
