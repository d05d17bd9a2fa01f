package controllers

import (
	"context"
	"time"

	"crm-service/models"
)

// Default request handling limits.
const (
	DefaultContextTimeout = 30 * time.Second
	PreviewLimit          = 10
)

// ImportServiceAPI defines the import operations the controllers depend on.
type ImportServiceAPI interface {
	ImportExcel(ctx context.Context, filePath, sheetName string) (*models.ImportResponse, error)
	PreviewExcel(ctx context.Context, filePath, sheetName string, limit int) (*models.ExcelPreview, error)
	SheetNames(filePath string) ([]string, error)
	ImportRows(ctx context.Context, entity models.EntityType, rows []map[string]any, source string) *models.DataImportResponse
	ImportDemocracyLab(ctx context.Context, projects []models.DemocracyLabProject) *models.ImportResponse
}

// RecommendationServiceAPI defines the recommendation operations the
// controllers depend on.
type RecommendationServiceAPI interface {
	GetRecommendations(ctx context.Context, preferences []string) ([]models.RecommendedProject, error)
}
