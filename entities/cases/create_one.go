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

func CreateOne(w http.ResponseWriter, r *http.Request) {
	caseDoc := &schemas.Case{}
	if err := json.NewDecoder(r.Body).Decode(&caseDoc); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CASES_INVALID_REQUEST_DATA)
		return
	}

	if caseDoc.Title == "" {
		utils.SendResponse(w, http.StatusBadRequest, "El título del caso es obligatorio", nil, 0)
		return
	}

	if caseDoc.Stage == "" {
		caseDoc.Stage = schemas.CASE_STAGE_REQUESTED
	}
	if !IsValidStage(caseDoc.Stage) {
		utils.SendResponse(w, http.StatusBadRequest, "Etapa de caso inválida", nil, 0)
		return
	}

	if caseDoc.Status == "" {
		caseDoc.Status = schemas.CASE_STATUS_OPEN
	}

	caseDoc.LastActivityAt = time.Now()
	caseDoc.CreatedAt = time.Now()
	caseDoc.UpdatedAt = time.Now()

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

	result, err := collection.InsertOne(ctx, caseDoc)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_CASE_TO_MONGODB)
		return
	}

	if insertedID, ok := result.InsertedID.(bson.ObjectID); ok {
		caseDoc.ID = insertedID
	}

	broadcastCaseUpdate(CaseWSMessage{Action: "created", CaseID: caseDoc.ID.Hex()})

	utils.SendResponse(w, http.StatusCreated, "", caseDoc, 0)
}
