package contacts

import (
	"api/database"
	"api/entities/audit"
	"api/integrations/hubspot"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func UpdateOneStage(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_CONTACT_ID_FORMAT)
		return
	}

	payload := struct {
		Stage int `json:"stage"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CONTACTS_INVALID_REQUEST_DATA)
		return
	}

	if payload.Stage < 1 || payload.Stage > 5 {
		utils.SendResponse(w, http.StatusBadRequest, "La etapa debe estar entre 1 y 5", nil, 0)
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

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "stage", Value: payload.Stage},
		{Key: "updated_at", Value: time.Now()},
	}}}

	updated := schemas.Contact{}
	findOpts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = collection.FindOneAndUpdate(ctx, filter, update, findOpts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.SendResponse(w, http.StatusNotFound, "Contacto no encontrado", nil, 0)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_CONTACT_IN_MONGODB)
		return
	}

	if updated.HubspotID != "" {
		properties := map[string]string{"etapa_panel": fmt.Sprintf("%d", payload.Stage)}
		if err := hubspot.NewClient().UpdateContact(ctx, updated.HubspotID, properties); err != nil {
			log.Printf("[HUBSPOT] no se pudo reflejar la etapa del contacto %s: %v", idStr, err)
		}
	}

	actor := middlewares.ActorFromRequest(r)
	detail := fmt.Sprintf("etapa cambiada a %d", payload.Stage)
	if err := audit.Record(ctx, actor, "stage_change", "contact", idStr, detail); err != nil {
		log.Printf("[AUDIT] no se pudo registrar el cambio de etapa: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
