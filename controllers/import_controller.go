package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"crm-service/models"
	"crm-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ImportController handles the spreadsheet and JSON import endpoints.
type ImportController struct {
	service   ImportServiceAPI
	validator *RequestValidator
	redis     *redis.Client
	logger    *zap.Logger
}

func NewImportController(service ImportServiceAPI, rdb *redis.Client, logger *zap.Logger) *ImportController {
	return &ImportController{
		service:   service,
		validator: NewRequestValidator(),
		redis:     rdb,
		logger:    logger,
	}
}

// ImportExcel imports project rows from a workbook on the server filesystem.
func (ic *ImportController) ImportExcel(c *gin.Context) {
	req, ok := ic.bindImportRequest(c)
	if !ok {
		return
	}

	resp, err := ic.service.ImportExcel(c.Request.Context(), req.FilePath, req.SheetName)
	if err != nil {
		c.JSON(http.StatusBadRequest, excelReadFailure(req.FilePath, err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PreviewExcel parses a workbook without importing anything.
func (ic *ImportController) PreviewExcel(c *gin.Context) {
	req, ok := ic.bindImportRequest(c)
	if !ok {
		return
	}

	preview, err := ic.service.PreviewExcel(c.Request.Context(), req.FilePath, req.SheetName, PreviewLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, excelReadFailure(req.FilePath, err))
		return
	}
	c.JSON(http.StatusOK, preview)
}

// GetExcelSheets lists the worksheets of a workbook.
func (ic *ImportController) GetExcelSheets(c *gin.Context) {
	var req models.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FilePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "file_path is required",
		})
		return
	}
	if err := ic.validator.ValidateExcelPath(req.FilePath); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	sheets, err := ic.service.SheetNames(req.FilePath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Failed to read Excel file at '%s': %v", req.FilePath, err),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sheets": sheets})
}

// ImportData imports already-parsed rows into the requested table. With
// ?async=true the batch is queued and processed by the background worker.
func (ic *ImportController) ImportData(c *gin.Context) {
	var req models.DataImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body: " + err.Error()})
		return
	}
	if err := ic.validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	entity, err := models.ParseEntityType(req.TableName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	ic.logger.Info("data import request",
		zap.String("table", req.TableName),
		zap.String("source", req.Source),
		zap.Int("records", len(req.Data)),
	)

	if strings.ToLower(strings.TrimSpace(c.Query("async"))) == "true" {
		ic.handleAsyncImport(c, entity, &req)
		return
	}

	resp := ic.service.ImportRows(c.Request.Context(), entity, req.Data, req.Source)
	c.JSON(http.StatusOK, resp)
}

// ImportDemocracyLab imports projects from the external DemocracyLab feed.
func (ic *ImportController) ImportDemocracyLab(c *gin.Context) {
	var req models.DemocracyLabImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body: " + err.Error()})
		return
	}

	resp := ic.service.ImportDemocracyLab(c.Request.Context(), req.Projects)
	c.JSON(http.StatusOK, resp)
}

// GetImportJobStatus returns the state of a queued import job.
func (ic *ImportController) GetImportJobStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Job ID required"})
		return
	}
	if ic.redis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Async imports are not enabled"})
		return
	}

	job, found, err := services.GetImportJob(c.Request.Context(), ic.redis, id)
	if err != nil {
		ic.logger.Error("failed to get job status", zap.String("job", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job status"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	// The queued payload is internal state; report progress only.
	job.Rows = nil
	c.JSON(http.StatusOK, job)
}

func (ic *ImportController) handleAsyncImport(c *gin.Context, entity models.EntityType, req *models.DataImportRequest) {
	if ic.redis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Async imports are not enabled"})
		return
	}

	jobID, err := services.EnqueueImportJob(c.Request.Context(), ic.redis, entity, req)
	if err != nil {
		ic.logger.Error("failed to enqueue import job", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to queue import job"})
		return
	}

	ic.logger.Info("import job queued", zap.String("job_id", jobID), zap.String("table", entity.String()))
	c.JSON(http.StatusAccepted, gin.H{
		"job_id":  jobID,
		"message": "Import queued for processing",
	})
}

func (ic *ImportController) bindImportRequest(c *gin.Context) (*models.ImportRequest, bool) {
	var req models.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body: " + err.Error()})
		return nil, false
	}
	if err := ic.validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return nil, false
	}
	if err := ic.validator.ValidateExcelPath(req.FilePath); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return nil, false
	}
	return &req, true
}

func excelReadFailure(filePath string, err error) *models.ImportResponse {
	return &models.ImportResponse{
		Success: false,
		Message: fmt.Sprintf("Failed to read Excel file at '%s': %v", filePath, err),
		Errors:  []string{fmt.Sprintf("File path: %s - %v", filePath, err)},
	}
}
