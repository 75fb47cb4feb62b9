package events

import (
	"api/database"
	"api/integrations/turnstile"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type publicEventRegistration struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Company        string `json:"company"`
	TurnstileToken string `json:"turnstile_token"`
}

// RegisterPublic inscribe a un asistente desde el formulario público del
// webinar y refleja la inscripción en el historial del contacto.
func RegisterPublic(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_EVENT_ID_FORMAT)
		return
	}

	payload := publicEventRegistration{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.EVENTS_INVALID_REQUEST_DATA)
		return
	}

	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	if payload.Email == "" || payload.Name == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Nombre y correo son obligatorios", nil, 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	remoteIP, _, _ := net.SplitHostPort(r.RemoteAddr)
	ok, err := turnstile.NewClient().Verify(ctx, payload.TurnstileToken, remoteIP)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_VERIFY_TURNSTILE_TOKEN)
		return
	}
	if !ok {
		utils.SendResponse(w, http.StatusForbidden, "Verificación CAPTCHA fallida", nil, 0)
		return
	}

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

	for _, registrant := range event.Registrants {
		if strings.EqualFold(registrant.Email, payload.Email) {
			utils.SendResponse(w, http.StatusOK, "El asistente ya estaba inscrito", registrant, 0)
			return
		}
	}

	registrant := schemas.EventRegistrant{
		Name:         payload.Name,
		Email:        payload.Email,
		Company:      payload.Company,
		RegisteredAt: time.Now(),
	}

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "registrants", Value: registrant}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now()}}},
	}

	if _, err := collection.UpdateOne(ctx, filter, update); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_EVENT_IN_MONGODB)
		return
	}

	// Reflejar la inscripción en el historial de webinars del contacto.
	contactsCol := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_UNIFIED_CONTACTS)
	attendance := schemas.WebinarAttendance{
		EventID:      event.ID,
		EventTitle:   event.Title,
		RegisteredAt: time.Now(),
	}
	contactUpdate := bson.D{
		{Key: "$push", Value: bson.D{{Key: "webinar_history", Value: attendance}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now()}}},
	}
	if _, err := contactsCol.UpdateOne(ctx, bson.D{{Key: "email", Value: payload.Email}}, contactUpdate); err != nil {
		log.Printf("[EVENTS] no se pudo actualizar el historial del contacto %s: %v", payload.Email, err)
	}

	utils.SendResponse(w, http.StatusCreated, "", registrant, 0)
}
