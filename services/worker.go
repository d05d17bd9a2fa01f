package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"crm-service/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Job keys: import:queue holds pending job IDs, import:job:<id> holds the
// job metadata and, once processed, the final report.
const (
	importQueueKey     = "import:queue"
	importJobKeyPrefix = "import:job:"
	importJobTTL       = 24 * time.Hour
)

// ImportJob is the redis-persisted state of one queued import batch.
type ImportJob struct {
	Status    string                     `json:"status"`
	CreatedAt string                     `json:"created_at"`
	TableName string                     `json:"table_name"`
	Source    string                     `json:"source"`
	Rows      []map[string]any           `json:"rows,omitempty"`
	Result    *models.DataImportResponse `json:"result,omitempty"`
	Error     string                     `json:"error,omitempty"`
}

// EnqueueImportJob persists the batch under a fresh job ID and queues it for
// the background worker.
func EnqueueImportJob(ctx context.Context, rdb *redis.Client, entity models.EntityType, req *models.DataImportRequest) (string, error) {
	jobID := uuid.New().String()
	job := ImportJob{
		Status:    "pending",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		TableName: entity.String(),
		Source:    req.Source,
		Rows:      req.Data,
	}

	data, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job: %w", err)
	}

	jobKey := importJobKeyPrefix + jobID
	if err := rdb.Set(ctx, jobKey, data, importJobTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store job metadata: %w", err)
	}
	if err := rdb.RPush(ctx, importQueueKey, jobID).Err(); err != nil {
		rdb.Del(ctx, jobKey)
		return "", fmt.Errorf("failed to enqueue job: %w", err)
	}
	return jobID, nil
}

// GetImportJob loads a job's current state. The second return is false when
// the job does not exist or has expired.
func GetImportJob(ctx context.Context, rdb *redis.Client, jobID string) (*ImportJob, bool, error) {
	val, err := rdb.Get(ctx, importJobKeyPrefix+jobID).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var job ImportJob
	if err := json.Unmarshal([]byte(val), &job); err != nil {
		return nil, false, fmt.Errorf("failed to parse job state: %w", err)
	}
	return &job, true, nil
}

// StartImportWorker starts a background worker that drains queued import
// jobs until ctx is cancelled.
func StartImportWorker(ctx context.Context, rdb *redis.Client, svc *ImportService, logger *zap.Logger) {
	if rdb == nil || svc == nil {
		logger.Warn("import worker not started: missing dependencies")
		return
	}

	go func() {
		logger.Info("import worker started", zap.String("queue", importQueueKey))
		for {
			select {
			case <-ctx.Done():
				logger.Info("import worker stopping")
				return
			default:
			}

			res, err := rdb.BLPop(ctx, 0*time.Second, importQueueKey).Result()
			if err != nil {
				if err == context.Canceled || err == context.DeadlineExceeded {
					return
				}
				logger.Error("redis BLPop failed", zap.Error(err))
				time.Sleep(500 * time.Millisecond)
				continue
			}
			if len(res) < 2 {
				continue
			}
			processImportJob(ctx, rdb, svc, res[1], logger)
		}
	}()
}

func processImportJob(ctx context.Context, rdb *redis.Client, svc *ImportService, jobID string, logger *zap.Logger) {
	job, found, err := GetImportJob(ctx, rdb, jobID)
	if err != nil || !found {
		logger.Error("failed to load job", zap.String("job", jobID), zap.Error(err))
		return
	}

	job.Status = "processing"
	saveImportJob(ctx, rdb, jobID, job, logger)

	entity, err := models.ParseEntityType(job.TableName)
	if err != nil {
		job.Status = "failed"
		job.Error = err.Error()
		job.Rows = nil
		saveImportJob(ctx, rdb, jobID, job, logger)
		return
	}

	result := svc.ImportRows(ctx, entity, job.Rows, job.Source)

	job.Status = "completed"
	job.Rows = nil
	job.Result = result
	saveImportJob(ctx, rdb, jobID, job, logger)
	logger.Info("import job completed",
		zap.String("job", jobID),
		zap.String("table", job.TableName),
		zap.Intp("imported", result.ImportedCount),
		zap.Intp("skipped", result.SkippedCount),
	)
}

func saveImportJob(ctx context.Context, rdb *redis.Client, jobID string, job *ImportJob, logger *zap.Logger) {
	data, err := json.Marshal(job)
	if err != nil {
		logger.Error("failed to marshal job state", zap.String("job", jobID), zap.Error(err))
		return
	}
	if err := rdb.Set(ctx, importJobKeyPrefix+jobID, data, importJobTTL).Err(); err != nil {
		logger.Error("failed to save job state", zap.String("job", jobID), zap.Error(err))
	}
}
