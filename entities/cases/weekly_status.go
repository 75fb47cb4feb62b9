package cases

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

// CalculateWeeklyStatus: verde sin tareas pendientes, amarillo con pendientes
// pero con actividad esta semana, rojo con pendientes y sin actividad.
func CalculateWeeklyStatus(caseDoc schemas.Case, now time.Time) string {
	hasPending := false
	for _, task := range caseDoc.Tasks {
		if !task.Done {
			hasPending = true
			break
		}
	}

	if !hasPending {
		return schemas.WEEKLY_STATUS_GREEN
	}

	if !caseDoc.LastActivityAt.IsZero() && utils.SameISOWeek(caseDoc.LastActivityAt, now) {
		return schemas.WEEKLY_STATUS_YELLOW
	}

	return schemas.WEEKLY_STATUS_RED
}

func GetWeeklyStatus(w http.ResponseWriter, r *http.Request) {
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

	caseDoc := schemas.Case{}
	filter := bson.D{{Key: "_id", Value: id}}
	if err := collection.FindOne(ctx, filter).Decode(&caseDoc); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Caso no encontrado", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CASES_IN_MONGODB)
		return
	}

	status := CalculateWeeklyStatus(caseDoc, time.Now())

	utils.SendResponse(w, http.StatusOK, "", map[string]string{"weekly_status": status}, 0)
}
