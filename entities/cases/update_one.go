package cases

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
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_CASE_ID_FORMAT)
		return
	}

	caseDoc := &schemas.Case{}
	if err := json.NewDecoder(r.Body).Decode(&caseDoc); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CASES_INVALID_REQUEST_DATA)
		return
	}

	if caseDoc.Stage != "" {
		utils.SendResponse(w, http.StatusBadRequest, "La etapa se cambia mediante el endpoint de etapa", nil, 0)
		return
	}

	if caseDoc.Status != "" &&
		caseDoc.Status != schemas.CASE_STATUS_OPEN &&
		caseDoc.Status != schemas.CASE_STATUS_WON &&
		caseDoc.Status != schemas.CASE_STATUS_LOST {
		utils.SendResponse(w, http.StatusBadRequest, "Estado de caso inválido", nil, 0)
		return
	}

	updateDoc := bson.D{}

	if caseDoc.Title != "" {
		updateDoc = append(updateDoc, bson.E{Key: "title", Value: caseDoc.Title})
	}
	if caseDoc.Status != "" {
		updateDoc = append(updateDoc, bson.E{Key: "status", Value: caseDoc.Status})
	}
	if caseDoc.HubspotDealID != "" {
		updateDoc = append(updateDoc, bson.E{Key: "hubspot_deal_id", Value: caseDoc.HubspotDealID})
	}
	if len(caseDoc.ContactIDs) > 0 {
		updateDoc = append(updateDoc, bson.E{Key: "contact_ids", Value: caseDoc.ContactIDs})
	}
	if len(caseDoc.CompanyIDs) > 0 {
		updateDoc = append(updateDoc, bson.E{Key: "company_ids", Value: caseDoc.CompanyIDs})
	}
	if caseDoc.CompanyName != "" {
		updateDoc = append(updateDoc, bson.E{Key: "company_name", Value: caseDoc.CompanyName})
	}
	if len(caseDoc.Tasks) > 0 {
		updateDoc = append(updateDoc, bson.E{Key: "tasks", Value: caseDoc.Tasks})
	}

	if len(updateDoc) == 0 {
		utils.SendResponse(w, http.StatusBadRequest, "No se proporcionó ningún campo para actualizar", nil, 0)
		return
	}

	updateDoc = append(updateDoc, bson.E{Key: "last_activity_at", Value: time.Now()})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CASES)

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: updateDoc}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_CASE_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Caso no encontrado", nil, 0)
		return
	}

	broadcastCaseUpdate(CaseWSMessage{Action: "updated", CaseID: idStr})

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
