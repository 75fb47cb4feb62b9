package imports

import (
	"api/database"
	"api/entities/audit"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/csv"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type linkedinCSVRow struct {
	Name        string
	JobTitle    string
	Company     string
	Email       string
	LinkedinURL string
}

// parseLinkedinCSV lee el CSV exportado de LinkedIn (name, title, company,
// email, linkedin_url). El encabezado es opcional; las filas malformadas o
// sin nombre ni correo se cuentan como omitidas.
func parseLinkedinCSV(r io.Reader) ([]linkedinCSVRow, int) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows := []linkedinCSVRow{}
	skippedRows := 0
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skippedRows++
			continue
		}

		// Encabezado opcional.
		if first {
			first = false
			if len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "name") {
				continue
			}
		}

		if len(record) < 4 {
			skippedRows++
			continue
		}

		row := linkedinCSVRow{
			Name:     strings.TrimSpace(record[0]),
			JobTitle: strings.TrimSpace(record[1]),
			Company:  strings.TrimSpace(record[2]),
			Email:    strings.ToLower(strings.TrimSpace(record[3])),
		}
		if len(record) > 4 {
			row.LinkedinURL = strings.TrimSpace(record[4])
		}

		if row.Name == "" && row.Email == "" {
			skippedRows++
			continue
		}
		rows = append(rows, row)
	}

	return rows, skippedRows
}

// ImportLinkedinCSV registra el trabajo de forma durable y procesa las filas
// en segundo plano.
func ImportLinkedinCSV(w http.ResponseWriter, r *http.Request) {
	rows, skippedRows := parseLinkedinCSV(r.Body)

	if len(rows) == 0 {
		utils.SendResponse(w, http.StatusBadRequest, "El CSV no contiene filas válidas", nil, 0)
		return
	}

	jobID := bson.NewObjectID().Hex()
	fileName := r.Header.Get("X-File-Name")

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	jobsCol := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_LINKEDIN_IMPORT_JOBS)

	job := schemas.LinkedinImportJob{
		JobID:     jobID,
		FileName:  fileName,
		Status:    schemas.IMPORT_STATUS_RUNNING,
		Total:     len(rows) + skippedRows,
		Skipped:   skippedRows,
		CreatedAt: time.Now(),
	}
	if _, err := jobsCol.InsertOne(ctx, job); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_CONTACT_TO_MONGODB)
		return
	}

	go runLinkedinCSVImport(middlewares.ActorFromRequest(r), jobID, rows, skippedRows)

	utils.SendResponse(w, http.StatusAccepted, "", map[string]string{"job_id": jobID}, 0)
}

func runLinkedinCSVImport(actor, jobID string, rows []linkedinCSVRow, skippedRows int) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	rdb, err := database.ConnectRedis()
	if err != nil {
		log.Printf("[IMPORT] no se pudo conectar a redis: %v", err)
		return
	}
	defer rdb.Close()

	progress := schemas.ImportProgress{
		JobID:   jobID,
		Status:  schemas.IMPORT_STATUS_RUNNING,
		Total:   len(rows) + skippedRows,
		Skipped: skippedRows,
	}
	if err := WriteProgress(ctx, rdb, jobID, progress); err != nil {
		log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
	}

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		finishLinkedinJob(ctx, rdb, actor, jobID, &progress, err)
		return
	}
	defer mongoClient.Disconnect(ctx)

	contactsCol := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_UNIFIED_CONTACTS)

	for _, row := range rows {
		progress.Processed++

		setDoc := bson.D{
			{Key: "name", Value: row.Name},
			{Key: "updated_at", Value: time.Now()},
		}
		if row.JobTitle != "" {
			setDoc = append(setDoc, bson.E{Key: "job_title", Value: row.JobTitle})
		}
		if row.Company != "" {
			setDoc = append(setDoc, bson.E{Key: "company_name", Value: row.Company})
		}
		if row.LinkedinURL != "" {
			setDoc = append(setDoc, bson.E{Key: "notes", Value: "LinkedIn: " + row.LinkedinURL})
		}

		update := bson.D{
			{Key: "$set", Value: setDoc},
			{Key: "$setOnInsert", Value: bson.D{
				{Key: "email", Value: row.Email},
				{Key: "stage", Value: 1},
				{Key: "source", Value: "linkedin_csv"},
				{Key: "created_at", Value: time.Now()},
			}},
		}

		var filter bson.D
		if row.Email != "" {
			filter = bson.D{{Key: "email", Value: row.Email}}
		} else {
			filter = bson.D{{Key: "name", Value: row.Name}, {Key: "company_name", Value: row.Company}}
		}

		updateOpts := options.UpdateOne().SetUpsert(true)
		if _, err := contactsCol.UpdateOne(ctx, filter, update, updateOpts); err != nil {
			progress.Skipped++
			continue
		}
		progress.Imported++
	}

	finishLinkedinJob(ctx, rdb, actor, jobID, &progress, nil)
}

// finishLinkedinJob cierra el registro durable del trabajo, el avance en
// redis y la bitácora con el mismo estado final.
func finishLinkedinJob(ctx context.Context, rdb *redis.Client, actor, jobID string, progress *schemas.ImportProgress, cause error) {
	if cause != nil {
		progress.Status = schemas.IMPORT_STATUS_FAILED
		progress.Error = cause.Error()
	} else {
		progress.Status = schemas.IMPORT_STATUS_FINISHED
	}

	if err := WriteProgress(ctx, rdb, jobID, *progress); err != nil {
		log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
	}

	if err := audit.Record(ctx, actor, "import", "linkedin_csv", jobID, AuditDetail(*progress)); err != nil {
		log.Printf("[AUDIT] no se pudo registrar la importación: %v", err)
	}

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		log.Printf("[IMPORT] no se pudo cerrar el trabajo %s: %v", jobID, err)
		return
	}
	defer mongoClient.Disconnect(ctx)

	jobsCol := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_LINKEDIN_IMPORT_JOBS)

	now := time.Now()
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: progress.Status},
		{Key: "total", Value: progress.Total},
		{Key: "imported", Value: progress.Imported},
		{Key: "skipped", Value: progress.Skipped},
		{Key: "error", Value: progress.Error},
		{Key: "finished_at", Value: now},
	}}}
	if _, err := jobsCol.UpdateOne(ctx, bson.D{{Key: "job_id", Value: jobID}}, update); err != nil {
		log.Printf("[IMPORT] no se pudo cerrar el trabajo %s: %v", jobID, err)
	}
}
