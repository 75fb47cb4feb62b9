package events

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func AddTask(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_EVENT_ID_FORMAT)
		return
	}

	task := schemas.EventTask{}
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil || task.Title == "" {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.EVENTS_INVALID_REQUEST_DATA)
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_WEBINAR_EVENTS)

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "tasks", Value: task}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now()}}},
	}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_EVENT_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Evento no encontrado", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", nil, 0)
}

// UpdateTask modifica una tarea por su índice dentro de tasks[].
func UpdateTask(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	indexStr := r.PathValue("index")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_EVENT_ID_FORMAT)
		return
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 {
		utils.SendResponse(w, http.StatusBadRequest, "Índice de tarea inválido", nil, 0)
		return
	}

	payload := struct {
		Title   *string    `json:"title"`
		Done    *bool      `json:"done"`
		DueDate *time.Time `json:"due_date"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.EVENTS_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}
	if payload.Title != nil {
		updateDoc = append(updateDoc, bson.E{Key: fmt.Sprintf("tasks.%d.title", index), Value: *payload.Title})
	}
	if payload.Done != nil {
		updateDoc = append(updateDoc, bson.E{Key: fmt.Sprintf("tasks.%d.done", index), Value: *payload.Done})
	}
	if payload.DueDate != nil {
		updateDoc = append(updateDoc, bson.E{Key: fmt.Sprintf("tasks.%d.due_date", index), Value: *payload.DueDate})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_WEBINAR_EVENTS)

	// El filtro exige que exista la tarea en ese índice.
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: fmt.Sprintf("tasks.%d", index), Value: bson.D{{Key: "$exists", Value: true}}},
	}
	update := bson.D{{Key: "$set", Value: updateDoc}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_EVENT_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Evento o tarea no encontrados", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
