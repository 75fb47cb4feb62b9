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

// CreateCalendar crea el evento en Google Calendar y guarda su identificador.
func CreateCalendar(w http.ResponseWriter, r *http.Request) {
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

	if event.CalendarEventID != "" {
		utils.SendResponse(w, http.StatusOK, "El evento ya está en el calendario", bson.M{"calendar_event_id": event.CalendarEventID}, 0)
		return
	}

	if event.StartsAt.IsZero() {
		utils.SendResponse(w, http.StatusBadRequest, "El evento no tiene fecha de inicio", nil, 0)
		return
	}

	endsAt := event.EndsAt
	if endsAt.IsZero() {
		endsAt = event.StartsAt.Add(1 * time.Hour)
	}

	googleClient := google.NewClient()
	accessToken, err := googleClient.LoadAccessToken(ctx)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_GOOGLE)
		return
	}

	calendarEventID, err := googleClient.CreateCalendarEvent(ctx, accessToken, google.CalendarEvent{
		Summary:     event.Title,
		Description: event.Description,
		StartsAt:    event.StartsAt,
		EndsAt:      endsAt,
	})
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_GOOGLE)
		return
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "calendar_event_id", Value: calendarEventID},
		{Key: "updated_at", Value: time.Now()},
	}}}
	if _, err := collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_EVENT_IN_MONGODB)
		return
	}

	audit.Record(ctx, middlewares.ActorFromRequest(r), "calendar_created", "webinar_event", idStr, "calendar_event_id="+calendarEventID)

	utils.SendResponse(w, http.StatusCreated, "", bson.M{"calendar_event_id": calendarEventID}, 0)
}
