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

func CreateOne(w http.ResponseWriter, r *http.Request) {
	document := &schemas.Document{}
	if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.DOCUMENTS_INVALID_REQUEST_DATA)
		return
	}

	if document.Title == "" || document.URL == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Título y URL son obligatorios", nil, 0)
		return
	}

	document.CreatedAt = time.Now()
	document.UpdatedAt = time.Now()

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

	result, err := collection.InsertOne(ctx, document)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_DOCUMENT_TO_MONGODB)
		return
	}

	if insertedID, ok := result.InsertedID.(bson.ObjectID); ok {
		document.ID = insertedID
	}

	utils.SendResponse(w, http.StatusCreated, "", document, 0)
}
