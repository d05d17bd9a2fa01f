package controllers

import (
	"net/http"

	"crm-service/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecommendationController serves preference-based project recommendations.
type RecommendationController struct {
	service RecommendationServiceAPI
	logger  *zap.Logger
}

func NewRecommendationController(service RecommendationServiceAPI, logger *zap.Logger) *RecommendationController {
	return &RecommendationController{
		service: service,
		logger:  logger,
	}
}

// GetRecommendations returns projects matching the requested preferences.
// An empty preference list is valid and yields an empty result.
func (rc *RecommendationController) GetRecommendations(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	projects, err := rc.service.GetRecommendations(c.Request.Context(), req.Preferences)
	if err != nil {
		rc.logger.Error("failed to compute recommendations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, projects)
}
