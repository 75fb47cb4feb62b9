package imports

import (
	"api/database"
	"api/entities/audit"
	"api/integrations/hubspot"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const hubspotBatchSize = 100

// ImportHubspotContacts lanza en segundo plano la importación de los miembros
// de una lista de HubSpot hacia los contactos unificados.
func ImportHubspotContacts(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		ListID string `json:"list_id"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ListID == "" {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.IMPORTS_INVALID_REQUEST_DATA)
		return
	}

	jobID := bson.NewObjectID().Hex()

	go runHubspotContactImport(middlewares.ActorFromRequest(r), jobID, payload.ListID)

	utils.SendResponse(w, http.StatusAccepted, "", map[string]string{"job_id": jobID}, 0)
}

func runHubspotContactImport(actor, jobID, listID string) {
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
		if err := audit.Record(ctx, actor, "import", "hubspot_contacts", jobID, AuditDetail(progress)); err != nil {
			log.Printf("[AUDIT] no se pudo registrar la importación: %v", err)
		}
	}

	if err := WriteProgress(ctx, rdb, jobID, progress); err != nil {
		log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
	}

	hubspotClient := hubspot.NewClient()

	contactIDs, err := hubspotClient.GetListMemberships(ctx, listID)
	if err != nil {
		failImport(err)
		return
	}
	progress.Total = len(contactIDs)

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		failImport(err)
		return
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_UNIFIED_CONTACTS)

	properties := []string{"firstname", "lastname", "email", "phone", "jobtitle", "company"}

	for start := 0; start < len(contactIDs); start += hubspotBatchSize {
		end := min(start+hubspotBatchSize, len(contactIDs))

		hubspotContacts, err := hubspotClient.BatchReadContacts(ctx, contactIDs[start:end], properties)
		if err != nil {
			failImport(err)
			return
		}

		for _, hubspotContact := range hubspotContacts {
			progress.Processed++

			name := strings.TrimSpace(hubspotContact.Properties["firstname"] + " " + hubspotContact.Properties["lastname"])
			email := strings.ToLower(strings.TrimSpace(hubspotContact.Properties["email"]))
			if name == "" && email == "" {
				progress.Skipped++
				continue
			}

			// Upsert por hubspot_id; si el contacto existía por correo y
			// todavía no tiene hubspot_id, se vincula por correo.
			filter := bson.D{{Key: "hubspot_id", Value: hubspotContact.ID}}
			if email != "" {
				filter = bson.D{{Key: "$or", Value: bson.A{
					bson.D{{Key: "hubspot_id", Value: hubspotContact.ID}},
					bson.D{
						{Key: "email", Value: email},
						{Key: "hubspot_id", Value: bson.D{{Key: "$exists", Value: false}}},
					},
				}}}
			}

			setDoc := bson.D{
				{Key: "hubspot_id", Value: hubspotContact.ID},
				{Key: "updated_at", Value: time.Now()},
			}
			if name != "" {
				setDoc = append(setDoc, bson.E{Key: "name", Value: name})
			}
			if email != "" {
				setDoc = append(setDoc, bson.E{Key: "email", Value: email})
			}
			if phone := hubspotContact.Properties["phone"]; phone != "" {
				setDoc = append(setDoc, bson.E{Key: "phone", Value: phone})
			}
			if jobTitle := hubspotContact.Properties["jobtitle"]; jobTitle != "" {
				setDoc = append(setDoc, bson.E{Key: "job_title", Value: jobTitle})
			}
			if company := hubspotContact.Properties["company"]; company != "" {
				setDoc = append(setDoc, bson.E{Key: "company_name", Value: company})
			}

			update := bson.D{
				{Key: "$set", Value: setDoc},
				{Key: "$setOnInsert", Value: bson.D{
					{Key: "stage", Value: 1},
					{Key: "source", Value: "hubspot"},
					{Key: "created_at", Value: time.Now()},
				}},
			}

			updateOpts := options.UpdateOne().SetUpsert(true)
			if _, err := collection.UpdateOne(ctx, filter, update, updateOpts); err != nil {
				progress.Skipped++
				continue
			}
			progress.Imported++
		}

		if err := WriteProgress(ctx, rdb, jobID, progress); err != nil {
			log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
		}
	}

	progress.Status = schemas.IMPORT_STATUS_FINISHED
	if err := WriteProgress(ctx, rdb, jobID, progress); err != nil {
		log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
	}

	if err := audit.Record(ctx, actor, "import", "hubspot_contacts", jobID, AuditDetail(progress)); err != nil {
		log.Printf("[AUDIT] no se pudo registrar la importación: %v", err)
	}
}
