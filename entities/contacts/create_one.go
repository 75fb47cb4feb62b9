package contacts

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
	contact := &schemas.Contact{}
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CONTACTS_INVALID_REQUEST_DATA)
		return
	}

	if contact.Email == "" && contact.Name == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Se requiere al menos nombre o correo", nil, 0)
		return
	}

	if contact.Stage != 0 && (contact.Stage < 1 || contact.Stage > 5) {
		utils.SendResponse(w, http.StatusBadRequest, "La etapa debe estar entre 1 y 5", nil, 0)
		return
	}

	if contact.Stage == 0 {
		contact.Stage = 1
	}
	if contact.BuyerPersona == 0 {
		contact.BuyerPersona = ClassifyBuyerPersona(contact.JobTitle)
	}
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()

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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_UNIFIED_CONTACTS)

	result, err := collection.InsertOne(ctx, contact)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_CONTACT_TO_MONGODB)
		return
	}

	if insertedID, ok := result.InsertedID.(bson.ObjectID); ok {
		contact.ID = insertedID
	}

	utils.SendResponse(w, http.StatusCreated, "", contact, 0)
}
