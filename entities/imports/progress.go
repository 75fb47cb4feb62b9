package imports

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// AuditDetail resume el resultado de un trabajo para la bitácora.
func AuditDetail(progress schemas.ImportProgress) string {
	if progress.Error != "" {
		return fmt.Sprintf("importados=%d, omitidos=%d, error=%s", progress.Imported, progress.Skipped, progress.Error)
	}
	return fmt.Sprintf("importados=%d, omitidos=%d", progress.Imported, progress.Skipped)
}

// WriteProgress guarda el avance del trabajo en un hash de redis con TTL,
// para que sobreviva a un reinicio del proceso.
func WriteProgress(ctx context.Context, rdb *redis.Client, jobID string, progress schemas.ImportProgress) error {
	key := database.REDIS_IMPORT_PROGRESS_PREFIX + jobID

	fields := map[string]any{
		"status":    progress.Status,
		"total":     progress.Total,
		"processed": progress.Processed,
		"imported":  progress.Imported,
		"skipped":   progress.Skipped,
		"error":     progress.Error,
	}

	if err := rdb.HSet(ctx, key, fields).Err(); err != nil {
		return err
	}
	return rdb.Expire(ctx, key, database.REDIS_IMPORT_PROGRESS_TTL).Err()
}

func ReadProgress(ctx context.Context, rdb *redis.Client, jobID string) (*schemas.ImportProgress, error) {
	key := database.REDIS_IMPORT_PROGRESS_PREFIX + jobID

	fields, err := rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, redis.Nil
	}

	progress := &schemas.ImportProgress{
		JobID:  jobID,
		Status: fields["status"],
		Error:  fields["error"],
	}
	progress.Total, _ = strconv.Atoi(fields["total"])
	progress.Processed, _ = strconv.Atoi(fields["processed"])
	progress.Imported, _ = strconv.Atoi(fields["imported"])
	progress.Skipped, _ = strconv.Atoi(fields["skipped"])

	return progress, nil
}

func GetProgress(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobId")

	ctx := r.Context()

	rdb, err := database.ConnectRedis()
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_REDIS)
		return
	}
	defer rdb.Close()

	progress, err := ReadProgress(ctx, rdb, jobID)
	if err != nil {
		if err == redis.Nil {
			utils.SendResponse(w, http.StatusNotFound, "Trabajo de importación no encontrado", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_IMPORT_PROGRESS)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", progress, 0)
}
