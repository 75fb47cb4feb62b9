package audit

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	query := r.URL.Query()

	limit := 50
	page := 1
	if limitParsed, err := strconv.Atoi(query.Get("limit")); err == nil && limitParsed > 0 {
		if limitParsed > 200 {
			limit = 200
		} else {
			limit = limitParsed
		}
	}
	if pageParsed, err := strconv.Atoi(query.Get("page")); err == nil && pageParsed > 0 {
		page = pageParsed
	}
	skip := (page - 1) * limit

	filter := bson.M{}
	if entityType := query.Get("entity_type"); entityType != "" {
		filter["entity_type"] = entityType
	}
	if entityID := query.Get("entity_id"); entityID != "" {
		filter["entity_id"] = entityID
	}

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_AUDIT_LOGS)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOpts)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_AUDIT_LOGS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	logs := []schemas.AuditLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_AUDIT_LOGS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", logs, 0)
}
