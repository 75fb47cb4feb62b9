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

func UpdateOne(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_CONTACT_ID_FORMAT)
		return
	}

	contact := &schemas.Contact{}
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CONTACTS_INVALID_REQUEST_DATA)
		return
	}

	if contact.Stage != 0 && (contact.Stage < 1 || contact.Stage > 5) {
		utils.SendResponse(w, http.StatusBadRequest, "La etapa debe estar entre 1 y 5", nil, 0)
		return
	}

	updateDoc := bson.D{}

	if contact.Name != "" {
		updateDoc = append(updateDoc, bson.E{Key: "name", Value: contact.Name})
	}
	if contact.Email != "" {
		updateDoc = append(updateDoc, bson.E{Key: "email", Value: contact.Email})
	}
	if contact.Phone != "" {
		updateDoc = append(updateDoc, bson.E{Key: "phone", Value: contact.Phone})
	}
	if contact.JobTitle != "" {
		updateDoc = append(updateDoc, bson.E{Key: "job_title", Value: contact.JobTitle})
	}
	if !contact.CompanyID.IsZero() {
		updateDoc = append(updateDoc, bson.E{Key: "company_id", Value: contact.CompanyID})
	}
	if contact.CompanyName != "" {
		updateDoc = append(updateDoc, bson.E{Key: "company_name", Value: contact.CompanyName})
	}
	if contact.HubspotID != "" {
		updateDoc = append(updateDoc, bson.E{Key: "hubspot_id", Value: contact.HubspotID})
	}
	if contact.Stage != 0 {
		updateDoc = append(updateDoc, bson.E{Key: "stage", Value: contact.Stage})
	}
	if contact.BuyerPersona != 0 {
		updateDoc = append(updateDoc, bson.E{Key: "buyer_persona", Value: contact.BuyerPersona})
	}
	if len(contact.Roles) > 0 {
		updateDoc = append(updateDoc, bson.E{Key: "roles", Value: contact.Roles})
	}
	if contact.Source != "" {
		updateDoc = append(updateDoc, bson.E{Key: "source", Value: contact.Source})
	}
	if contact.Notes != "" {
		updateDoc = append(updateDoc, bson.E{Key: "notes", Value: contact.Notes})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_UNIFIED_CONTACTS)

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: updateDoc}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_CONTACT_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Contacto no encontrado", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
