package contacts

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

// ClassifyOne recalcula el buyer persona del contacto a partir de su puesto.
func ClassifyOne(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_CONTACT_ID_FORMAT)
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_UNIFIED_CONTACTS)

	contact := schemas.Contact{}
	filter := bson.D{{Key: "_id", Value: id}}
	if err := collection.FindOne(ctx, filter).Decode(&contact); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Contacto no encontrado", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CONTACTS_IN_MONGODB)
		return
	}

	persona := ClassifyBuyerPersona(contact.JobTitle)

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "buyer_persona", Value: persona},
		{Key: "updated_at", Value: time.Now()},
	}}}
	if _, err := collection.UpdateOne(ctx, filter, update); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_CONTACT_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", map[string]int{"buyer_persona": persona}, 0)
}
