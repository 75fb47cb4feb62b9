package cases

import (
	"api/database"
	"api/entities/audit"
	"api/middlewares"
	"api/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func UpdateOneStage(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_CASE_ID_FORMAT)
		return
	}

	payload := struct {
		Stage string `json:"stage"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CASES_INVALID_REQUEST_DATA)
		return
	}

	if !IsValidStage(payload.Stage) {
		utils.SendResponse(w, http.StatusBadRequest, "Etapa de caso inválida", nil, 0)
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

	if !IsValidStageTransition(caseDoc.Stage, payload.Stage) {
		message := fmt.Sprintf("Transición de etapa inválida: %s -> %s", caseDoc.Stage, payload.Stage)
		utils.SendResponse(w, http.StatusBadRequest, message, nil, 0)
		return
	}

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "stage", Value: payload.Stage},
		{Key: "last_activity_at", Value: time.Now()},
		{Key: "updated_at", Value: time.Now()},
	}}}

	if _, err := collection.UpdateOne(ctx, filter, update); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_CASE_IN_MONGODB)
		return
	}

	actor := middlewares.ActorFromRequest(r)
	detail := fmt.Sprintf("etapa %s -> %s", caseDoc.Stage, payload.Stage)
	if err := audit.Record(ctx, actor, "stage_change", "case", idStr, detail); err != nil {
		log.Printf("[AUDIT] no se pudo registrar el cambio de etapa: %v", err)
	}

	broadcastCaseUpdate(CaseWSMessage{Action: "stage_changed", CaseID: idStr, Details: payload.Stage})

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
