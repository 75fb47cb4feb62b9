package imports

import (
	"api/database"
	"api/entities/audit"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ImportLegacyContacts vuelca la tabla de contactos del ERP anterior hacia
// los contactos unificados. Se corre una sola vez por migración.
func ImportLegacyContacts(w http.ResponseWriter, r *http.Request) {
	jobID := bson.NewObjectID().Hex()

	go runLegacyContactImport(middlewares.ActorFromRequest(r), jobID)

	utils.SendResponse(w, http.StatusAccepted, "", map[string]string{"job_id": jobID}, 0)
}

func runLegacyContactImport(actor, jobID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	rdb, err := database.ConnectRedis()
	if err != nil {
		log.Printf("[IMPORT] no se pudo conectar a redis: %v", err)
		return
	}
	defer rdb.Close()

	progress := schemas.ImportProgress{JobID: jobID, Status: schemas.IMPORT_STATUS_RUNNING}
	failImport := func(cause error) {
		progress.Status = schemas.IMPORT_STATUS_FAILED
		progress.Error = cause.Error()
		if err := WriteProgress(ctx, rdb, jobID, progress); err != nil {
			log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
		}
		if err := audit.Record(ctx, actor, "import", "legacy_contacts", jobID, AuditDetail(progress)); err != nil {
			log.Printf("[AUDIT] no se pudo registrar la importación: %v", err)
		}
	}

	if err := WriteProgress(ctx, rdb, jobID, progress); err != nil {
		log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
	}

	mysqlDB, err := database.ConnectMySQL()
	if err != nil {
		failImport(err)
		return
	}
	defer mysqlDB.Close()

	query := "SELECT nombre, correo, telefono, puesto, empresa FROM " + database.TABLE_LEGACY_CONTACTS
	rows, err := mysqlDB.QueryContext(ctx, query)
	if err != nil {
		failImport(err)
		return
	}
	defer rows.Close()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		failImport(err)
		return
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_UNIFIED_CONTACTS)

	for rows.Next() {
		progress.Processed++
		progress.Total = progress.Processed

		var name, email, phone, jobTitle, companyName string
		if err := rows.Scan(&name, &email, &phone, &jobTitle, &companyName); err != nil {
			progress.Skipped++
			continue
		}

		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			progress.Skipped++
			continue
		}

		setDoc := bson.D{
			{Key: "updated_at", Value: time.Now()},
		}
		if name != "" {
			setDoc = append(setDoc, bson.E{Key: "name", Value: name})
		}
		if phone != "" {
			setDoc = append(setDoc, bson.E{Key: "phone", Value: phone})
		}
		if jobTitle != "" {
			setDoc = append(setDoc, bson.E{Key: "job_title", Value: jobTitle})
		}
		if companyName != "" {
			setDoc = append(setDoc, bson.E{Key: "company_name", Value: companyName})
		}

		update := bson.D{
			{Key: "$set", Value: setDoc},
			{Key: "$setOnInsert", Value: bson.D{
				{Key: "email", Value: email},
				{Key: "stage", Value: 1},
				{Key: "source", Value: "legacy_erp"},
				{Key: "created_at", Value: time.Now()},
			}},
		}

		updateOpts := options.UpdateOne().SetUpsert(true)
		if _, err := collection.UpdateOne(ctx, bson.D{{Key: "email", Value: email}}, update, updateOpts); err != nil {
			progress.Skipped++
			continue
		}
		progress.Imported++

		if progress.Processed%500 == 0 {
			if err := WriteProgress(ctx, rdb, jobID, progress); err != nil {
				log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
			}
		}
	}

	if err := rows.Err(); err != nil {
		failImport(err)
		return
	}

	progress.Status = schemas.IMPORT_STATUS_FINISHED
	if err := WriteProgress(ctx, rdb, jobID, progress); err != nil {
		log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
	}

	if err := audit.Record(ctx, actor, "import", "legacy_contacts", jobID, AuditDetail(progress)); err != nil {
		log.Printf("[AUDIT] no se pudo registrar la importación: %v", err)
	}
}
