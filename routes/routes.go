package routes

import (
	"crm-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the import and recommendation endpoints.
func RegisterRoutes(r *gin.Engine, ic *controllers.ImportController, rc *controllers.RecommendationController) {
	api := r.Group("/api")
	{
		imports := api.Group("/import")
		{
			imports.POST("/excel", ic.ImportExcel)
			imports.POST("/excel/preview", ic.PreviewExcel)
			imports.POST("/excel/sheets", ic.GetExcelSheets)
			imports.POST("/data", ic.ImportData)
			imports.POST("/democracylab", ic.ImportDemocracyLab)
			imports.GET("/jobs/:id", ic.GetImportJobStatus)
		}

		api.POST("/recommendations", rc.GetRecommendations)
	}
}
