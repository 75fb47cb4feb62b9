package documents

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
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_DOCUMENT_ID_FORMAT)
		return
	}

	document := &schemas.Document{}
	if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.DOCUMENTS_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if document.Title != "" {
		updateDoc = append(updateDoc, bson.E{Key: "title", Value: document.Title})
	}
	if document.Type != "" {
		updateDoc = append(updateDoc, bson.E{Key: "type", Value: document.Type})
	}
	if document.URL != "" {
		updateDoc = append(updateDoc, bson.E{Key: "url", Value: document.URL})
	}
	if len(document.Tags) > 0 {
		updateDoc = append(updateDoc, bson.E{Key: "tags", Value: document.Tags})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_DOCUMENTS)

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: updateDoc}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_DOCUMENT_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Documento no encontrado", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
