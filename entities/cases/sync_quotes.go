package cases

import (
	"api/database"
	"api/integrations/hubspot"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SyncQuotes reemplaza quotes[] con las cotizaciones actuales del negocio
// espejado en HubSpot.
func SyncQuotes(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_CASE_ID_FORMAT)
		return
	}

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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CASES)

	caseDoc, err := findCase(ctx, collection, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Caso no encontrado", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CASES_IN_MONGODB)
		return
	}

	if caseDoc.HubspotDealID == "" {
		utils.SendResponse(w, http.StatusBadRequest, "El caso no tiene negocio de HubSpot asociado", nil, 0)
		return
	}

	hubspotClient := hubspot.NewClient()

	deal, err := hubspotClient.GetDeal(ctx, caseDoc.HubspotDealID, []string{"dealname", "dealstage"})
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_HUBSPOT)
		return
	}

	status := caseDoc.Status
	switch deal.Properties["dealstage"] {
	case "closedwon":
		status = schemas.CASE_STATUS_WON
	case "closedlost":
		status = schemas.CASE_STATUS_LOST
	}

	hubspotQuotes, err := hubspotClient.GetDealQuotes(ctx, caseDoc.HubspotDealID)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_HUBSPOT)
		return
	}

	quotes := make([]schemas.Quote, 0, len(hubspotQuotes))
	for _, hubspotQuote := range hubspotQuotes {
		quote := schemas.Quote{
			HubspotQuoteID: hubspotQuote.ID,
			Title:          hubspotQuote.Properties["hs_title"],
			Currency:       hubspotQuote.Properties["hs_currency"],
			Status:         hubspotQuote.Properties["hs_status"],
			SyncedAt:       time.Now(),
		}
		if amount, err := strconv.ParseFloat(hubspotQuote.Properties["hs_quote_amount"], 64); err == nil {
			quote.Amount = amount
		}
		if expires, err := time.Parse(time.RFC3339, hubspotQuote.Properties["hs_expiration_date"]); err == nil {
			quote.ExpiresAt = expires
		}
		quotes = append(quotes, quote)
	}

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "quotes", Value: quotes},
		{Key: "status", Value: status},
		{Key: "last_activity_at", Value: time.Now()},
		{Key: "updated_at", Value: time.Now()},
	}}}

	if _, err := collection.UpdateOne(ctx, filter, update); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_CASE_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", quotes, 0)
}
