package events

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
	event := &schemas.WebinarEvent{}
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.EVENTS_INVALID_REQUEST_DATA)
		return
	}

	if event.Title == "" {
		utils.SendResponse(w, http.StatusBadRequest, "El título del evento es obligatorio", nil, 0)
		return
	}

	if event.StartsAt.IsZero() {
		utils.SendResponse(w, http.StatusBadRequest, "La fecha de inicio es obligatoria", nil, 0)
		return
	}

	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_WEBINAR_EVENTS)

	result, err := collection.InsertOne(ctx, event)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_EVENT_TO_MONGODB)
		return
	}

	if insertedID, ok := result.InsertedID.(bson.ObjectID); ok {
		event.ID = insertedID
	}

	utils.SendResponse(w, http.StatusCreated, "", event, 0)
}
