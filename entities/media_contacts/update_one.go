package media_contacts

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
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_MEDIA_CONTACT_ID_FORMAT)
		return
	}

	mediaContact := &schemas.MediaContact{}
	if err := json.NewDecoder(r.Body).Decode(&mediaContact); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.MEDIA_CONTACTS_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if mediaContact.Name != "" {
		updateDoc = append(updateDoc, bson.E{Key: "name", Value: mediaContact.Name})
	}
	if mediaContact.Outlet != "" {
		updateDoc = append(updateDoc, bson.E{Key: "outlet", Value: mediaContact.Outlet})
	}
	if mediaContact.Email != "" {
		updateDoc = append(updateDoc, bson.E{Key: "email", Value: mediaContact.Email})
	}
	if mediaContact.Phone != "" {
		updateDoc = append(updateDoc, bson.E{Key: "phone", Value: mediaContact.Phone})
	}
	if len(mediaContact.Topics) > 0 {
		updateDoc = append(updateDoc, bson.E{Key: "topics", Value: mediaContact.Topics})
	}
	if mediaContact.Notes != "" {
		updateDoc = append(updateDoc, bson.E{Key: "notes", Value: mediaContact.Notes})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_MEDIA_CONTACTS)

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: updateDoc}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_MEDIA_CONTACT_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Contacto de prensa no encontrado", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
