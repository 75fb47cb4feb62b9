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

func CreateOne(w http.ResponseWriter, r *http.Request) {
	mediaContact := &schemas.MediaContact{}
	if err := json.NewDecoder(r.Body).Decode(&mediaContact); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.MEDIA_CONTACTS_INVALID_REQUEST_DATA)
		return
	}

	if mediaContact.Name == "" {
		utils.SendResponse(w, http.StatusBadRequest, "El nombre es obligatorio", nil, 0)
		return
	}

	mediaContact.CreatedAt = time.Now()
	mediaContact.UpdatedAt = time.Now()

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

	result, err := collection.InsertOne(ctx, mediaContact)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_MEDIA_CONTACT_TO_MONGODB)
		return
	}

	if insertedID, ok := result.InsertedID.(bson.ObjectID); ok {
		mediaContact.ID = insertedID
	}

	utils.SendResponse(w, http.StatusCreated, "", mediaContact, 0)
}
