package cases

import (
	"api/database"
	"api/entities/audit"
	"api/entities/imports"
	"api/integrations/hubspot"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const importBatchSize = 100

// ImportFromHubspot lanza en segundo plano la importación de los negocios de
// una lista de HubSpot y responde de inmediato con el id del trabajo.
func ImportFromHubspot(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		ListID string `json:"list_id"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ListID == "" {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.IMPORTS_INVALID_REQUEST_DATA)
		return
	}

	jobID := bson.NewObjectID().Hex()

	go runHubspotDealImport(middlewares.ActorFromRequest(r), jobID, payload.ListID)

	utils.SendResponse(w, http.StatusAccepted, "", map[string]string{"job_id": jobID}, 0)
}

// runHubspotDealImport corre con su propio contexto y cliente de Mongo; no
// comparte nada con la petición que lo originó.
func runHubspotDealImport(actor, jobID, listID string) {
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
		if err := imports.WriteProgress(ctx, rdb, jobID, progress); err != nil {
			log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
		}
		if err := audit.Record(ctx, actor, "import", "hubspot_deals", jobID, imports.AuditDetail(progress)); err != nil {
			log.Printf("[AUDIT] no se pudo registrar la importación: %v", err)
		}
	}

	if err := imports.WriteProgress(ctx, rdb, jobID, progress); err != nil {
		log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
	}

	hubspotClient := hubspot.NewClient()

	dealIDs, err := hubspotClient.GetListMemberships(ctx, listID)
	if err != nil {
		failImport(err)
		return
	}
	progress.Total = len(dealIDs)

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		failImport(err)
		return
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CASES)

	properties := []string{"dealname", "dealstage", "amount"}

	for start := 0; start < len(dealIDs); start += importBatchSize {
		end := min(start+importBatchSize, len(dealIDs))

		deals, err := hubspotClient.BatchReadDeals(ctx, dealIDs[start:end], properties)
		if err != nil {
			failImport(err)
			return
		}

		for _, deal := range deals {
			progress.Processed++

			title := deal.Properties["dealname"]
			if title == "" {
				progress.Skipped++
				continue
			}

			filter := bson.D{{Key: "hubspot_deal_id", Value: deal.ID}}
			update := bson.D{
				{Key: "$set", Value: bson.D{
					{Key: "title", Value: title},
					{Key: "updated_at", Value: time.Now()},
				}},
				{Key: "$setOnInsert", Value: bson.D{
					{Key: "hubspot_deal_id", Value: deal.ID},
					{Key: "stage", Value: schemas.CASE_STAGE_REQUESTED},
					{Key: "status", Value: schemas.CASE_STATUS_OPEN},
					{Key: "last_activity_at", Value: time.Now()},
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

		if err := imports.WriteProgress(ctx, rdb, jobID, progress); err != nil {
			log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
		}
	}

	progress.Status = schemas.IMPORT_STATUS_FINISHED
	if err := imports.WriteProgress(ctx, rdb, jobID, progress); err != nil {
		log.Printf("[IMPORT] no se pudo guardar el avance: %v", err)
	}

	if err := audit.Record(ctx, actor, "import", "hubspot_deals", jobID, imports.AuditDetail(progress)); err != nil {
		log.Printf("[AUDIT] no se pudo registrar la importación: %v", err)
	}
}
