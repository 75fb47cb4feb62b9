package cases

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
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func DiscardOne(w http.ResponseWriter, r *http.Request) {
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

	if !IsValidStageTransition(caseDoc.Stage, schemas.CASE_STAGE_DISCARDED) {
		utils.SendResponse(w, http.StatusBadRequest, "El caso no puede descartarse en su etapa actual", nil, 0)
		return
	}

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "stage", Value: schemas.CASE_STAGE_DISCARDED},
		{Key: "discarded_at", Value: time.Now()},
		{Key: "updated_at", Value: time.Now()},
	}}}

	if _, err := collection.UpdateOne(ctx, filter, update); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_CASE_IN_MONGODB)
		return
	}

	actor := middlewares.ActorFromRequest(r)
	if err := audit.Record(ctx, actor, "discard", "case", idStr, ""); err != nil {
		log.Printf("[AUDIT] no se pudo registrar el descarte: %v", err)
	}

	broadcastCaseUpdate(CaseWSMessage{Action: "discarded", CaseID: idStr})

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
