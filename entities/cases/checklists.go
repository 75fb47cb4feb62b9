package cases

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var validChecklistStates = []string{
	schemas.CHECKLIST_STATE_PENDING,
	schemas.CHECKLIST_STATE_IN_PROGRESS,
	schemas.CHECKLIST_STATE_DONE,
	schemas.CHECKLIST_STATE_BLOCKED,
}

// isValidChecklistSegment rechaza segmentos que romperían la ruta del campo
// en Mongo: "." crea anidación extra y "$" es un operador.
func isValidChecklistSegment(segment string) bool {
	return segment != "" && !strings.ContainsAny(segment, ".$")
}

func GetChecklists(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_CASE_ID_FORMAT)
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CASES)

	caseDoc, err := findCase(ctx, collection, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Caso no encontrado", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CASES_IN_MONGODB)
		return
	}

	checklists := caseDoc.CaseChecklists
	if checklists == nil {
		checklists = schemas.CaseChecklists{}
	}

	utils.SendResponse(w, http.StatusOK, "", checklists, 0)
}

// UpdateChecklistCell fija el estado de una celda grupo -> columna -> contacto.
func UpdateChecklistCell(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	group := r.PathValue("group")
	column := r.PathValue("column")
	contactID := r.PathValue("contactId")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_CASE_ID_FORMAT)
		return
	}

	if !isValidChecklistSegment(group) || !isValidChecklistSegment(column) || !isValidChecklistSegment(contactID) {
		utils.SendResponse(w, http.StatusBadRequest, "Grupo, columna o contacto inválido", nil, 0)
		return
	}

	payload := struct {
		State string `json:"state"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CASES_INVALID_REQUEST_DATA)
		return
	}

	if !slices.Contains(validChecklistStates, payload.State) {
		utils.SendResponse(w, http.StatusBadRequest, "Estado de celda inválido", nil, 0)
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CASES)

	cell := schemas.ChecklistCell{
		State:     payload.State,
		UpdatedAt: time.Now(),
		UpdatedBy: middlewares.ActorFromRequest(r),
	}

	cellPath := fmt.Sprintf("case_checklists.%s.%s.%s", group, column, contactID)

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: cellPath, Value: cell},
		{Key: "last_activity_at", Value: time.Now()},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_CASE_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Caso no encontrado", nil, 0)
		return
	}

	broadcastCaseUpdate(CaseWSMessage{
		Action:  "checklist_updated",
		CaseID:  idStr,
		Details: fmt.Sprintf("%s/%s/%s", group, column, contactID),
	})

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
