package events

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func GetAll(w http.ResponseWriter, r *http.Request) {
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

	filter := bson.M{}
	if upcoming := r.URL.Query().Get("upcoming"); upcoming == "true" {
		filter["starts_at"] = bson.M{"$gte": time.Now()}
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "starts_at", Value: -1}})

	cursor, err := collection.Find(ctx, filter, findOpts)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_EVENTS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	events := []schemas.WebinarEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_EVENTS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", events, 0)
}
