package companies

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func UpdateOne(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_COMPANY_ID_FORMAT)
		return
	}

	company := &schemas.Company{}
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.COMPANIES_INVALID_REQUEST_DATA)
		return
	}

	if company.Classification != "" &&
		company.Classification != schemas.COMPANY_CLASSIFICATION_INBOUND &&
		company.Classification != schemas.COMPANY_CLASSIFICATION_OUTBOUND {
		utils.SendResponse(w, http.StatusBadRequest, "La clasificación debe ser inbound u outbound", nil, 0)
		return
	}

	updateDoc := bson.D{}

	if company.Name != "" {
		updateDoc = append(updateDoc, bson.E{Key: "name", Value: company.Name})
	}
	if len(company.Aliases) > 0 {
		updateDoc = append(updateDoc, bson.E{Key: "aliases", Value: company.Aliases})
	}
	if len(company.Domains) > 0 {
		updateDoc = append(updateDoc, bson.E{Key: "domains", Value: company.Domains})
	}
	if company.Industry != "" {
		updateDoc = append(updateDoc, bson.E{Key: "industry", Value: company.Industry})
	}
	if company.Classification != "" {
		updateDoc = append(updateDoc, bson.E{Key: "classification", Value: company.Classification})
	}
	if company.HubspotID != "" {
		updateDoc = append(updateDoc, bson.E{Key: "hubspot_id", Value: company.HubspotID})
	}
	if company.Notes != "" {
		updateDoc = append(updateDoc, bson.E{Key: "notes", Value: company.Notes})
	}

	if len(updateDoc) == 0 {
		utils.SendResponse(w, http.StatusBadRequest, "No se proporcionó ningún campo para actualizar", nil, 0)
		return
	}

	updateDoc = append(updateDoc, bson.E{Key: "updated_at", Value: time.Now()})

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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_UNIFIED_COMPANIES)

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: updateDoc}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_COMPANY_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Empresa no encontrada", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
