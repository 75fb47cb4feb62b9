package events

import (
	"api/database"
	"api/entities/audit"
	"api/integrations/google"
	"api/middlewares"
	"api/utils"
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CreateBroadcast programa la transmisión en vivo del webinar en YouTube y
// guarda el identificador resultante en el evento.
func CreateBroadcast(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_EVENT_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
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

	event, err := findEvent(ctx, collection, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Evento no encontrado", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_EVENTS_IN_MONGODB)
		return
	}

	if event.YoutubeID != "" {
		utils.SendResponse(w, http.StatusOK, "El evento ya tiene una transmisión programada", bson.M{"youtube_id": event.YoutubeID}, 0)
		return
	}

	if event.StartsAt.IsZero() {
		utils.SendResponse(w, http.StatusBadRequest, "El evento no tiene fecha de inicio", nil, 0)
		return
	}

	googleClient := google.NewClient()
	accessToken, err := googleClient.LoadAccessToken(ctx)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_GOOGLE)
		return
	}

	youtubeID, err := googleClient.CreateLiveBroadcast(ctx, accessToken, event.Title, event.StartsAt)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_GOOGLE)
		return
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "youtube_id", Value: youtubeID},
		{Key: "updated_at", Value: time.Now()},
	}}}
	if _, err := collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_EVENT_IN_MONGODB)
		return
	}

	audit.Record(ctx, middlewares.ActorFromRequest(r), "broadcast_created", "webinar_event", idStr, "youtube_id="+youtubeID)

	utils.SendResponse(w, http.StatusCreated, "", bson.M{"youtube_id": youtubeID}, 0)
}
