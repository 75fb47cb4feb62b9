package scrappers

import (
	"api/database"
	"api/entities/audit"
	"api/entities/imports"
	"api/integrations/apify"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const linkedinActorID = "dev_fusion~linkedin-profile-scraper"

// RunLinkedin lanza el actor de Apify que raspa perfiles de LinkedIn y vuelca
// los resultados como oportunidades.
func RunLinkedin(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		ProfileURLs []string `json:"profile_urls"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload.ProfileURLs) == 0 {
		utils.SendResponse(w, http.StatusBadRequest, "Se requiere al menos una URL de perfil", nil, 0)
		return
	}

	jobID := bson.NewObjectID().Hex()

	input := map[string]any{"profileUrls": payload.ProfileURLs}
	go runScraper(middlewares.ActorFromRequest(r), jobID, linkedinActorID, input, schemas.OPPORTUNITY_SOURCE_LINKEDIN, mapLinkedinItem)

	utils.SendResponse(w, http.StatusAccepted, "", map[string]string{"job_id": jobID}, 0)
}

func mapLinkedinItem(item map[string]any) *schemas.ScraperOpportunity {
	sourceURL := stringField(item, "url", "profileUrl")
	if sourceURL == "" {
		return nil
	}

	return &schemas.ScraperOpportunity{
		SourceURL:   sourceURL,
		ContactName: stringField(item, "fullName", "name"),
		CompanyName: stringField(item, "companyName", "company"),
		Email:       stringField(item, "email"),
	}
}

// runScraper corre con su propio contexto; espera la ejecución del actor y
// deduplica las oportunidades por source_url.
func runScraper(actor, jobID, actorID string, input map[string]any, source string, mapItem func(map[string]any) *schemas.ScraperOpportunity) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	rdb, err := database.ConnectRedis()
	if err != nil {
		log.Printf("[SCRAPPERS] no se pudo conectar a redis: %v", err)
		return
	}
	defer rdb.Close()

	progress := schemas.ImportProgress{JobID: jobID, Status: schemas.IMPORT_STATUS_RUNNING}
	failRun := func(cause error) {
		progress.Status = schemas.IMPORT_STATUS_FAILED
		progress.Error = cause.Error()
		if err := imports.WriteProgress(ctx, rdb, jobID, progress); err != nil {
			log.Printf("[SCRAPPERS] no se pudo guardar el avance: %v", err)
		}
		if err := audit.Record(ctx, actor, "import", source, jobID, imports.AuditDetail(progress)); err != nil {
			log.Printf("[AUDIT] no se pudo registrar la corrida del actor: %v", err)
		}
	}

	if err := imports.WriteProgress(ctx, rdb, jobID, progress); err != nil {
		log.Printf("[SCRAPPERS] no se pudo guardar el avance: %v", err)
	}

	apifyClient := apify.NewClient()

	run, err := apifyClient.RunActor(ctx, actorID, input)
	if err != nil {
		failRun(err)
		return
	}

	run, err = apifyClient.WaitRun(ctx, run.ID)
	if err != nil {
		failRun(err)
		return
	}

	items, err := apifyClient.DatasetItems(ctx, run.DefaultDatasetID)
	if err != nil {
		failRun(err)
		return
	}
	progress.Total = len(items)

	imported, skipped, err := insertOpportunities(ctx, items, source, mapItem)
	progress.Processed = len(items)
	progress.Imported = imported
	progress.Skipped = skipped
	if err != nil {
		failRun(err)
		return
	}

	progress.Status = schemas.IMPORT_STATUS_FINISHED
	if err := imports.WriteProgress(ctx, rdb, jobID, progress); err != nil {
		log.Printf("[SCRAPPERS] no se pudo guardar el avance: %v", err)
	}

	if err := audit.Record(ctx, actor, "import", source, jobID, imports.AuditDetail(progress)); err != nil {
		log.Printf("[AUDIT] no se pudo registrar la corrida del actor: %v", err)
	}
}

func stringField(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := item[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
