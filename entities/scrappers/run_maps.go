package scrappers

import (
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const mapsActorID = "compass~crawler-google-places"

// RunMaps lanza el actor de Apify que raspa negocios de Google Maps.
func RunMaps(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		Query    string `json:"query"`
		Location string `json:"location"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Query == "" {
		utils.SendResponse(w, http.StatusBadRequest, "El campo query es obligatorio", nil, 0)
		return
	}

	jobID := bson.NewObjectID().Hex()

	input := map[string]any{
		"searchStringsArray": []string{payload.Query},
		"locationQuery":      payload.Location,
	}
	go runScraper(middlewares.ActorFromRequest(r), jobID, mapsActorID, input, schemas.OPPORTUNITY_SOURCE_MAPS, mapMapsItem)

	utils.SendResponse(w, http.StatusAccepted, "", map[string]string{"job_id": jobID}, 0)
}

func mapMapsItem(item map[string]any) *schemas.ScraperOpportunity {
	sourceURL := stringField(item, "url", "placeUrl")
	if sourceURL == "" {
		return nil
	}

	return &schemas.ScraperOpportunity{
		SourceURL:   sourceURL,
		CompanyName: stringField(item, "title", "name"),
		Phone:       stringField(item, "phone", "phoneNumber"),
		Website:     stringField(item, "website"),
		Address:     stringField(item, "address"),
	}
}
