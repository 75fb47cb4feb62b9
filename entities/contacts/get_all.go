package contacts

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

func buildContactsFilterFromQueryParams(r *http.Request) bson.M {
	query := r.URL.Query()
	filter := bson.M{}

	if query.Get("discarded") == "true" {
		filter["discarded_at"] = bson.M{"$ne": nil}
	} else {
		filter["discarded_at"] = nil
	}

	if stageStr := query.Get("stage"); stageStr != "" {
		if stage, err := strconv.Atoi(stageStr); err == nil {
			filter["stage"] = stage
		}
	}

	if personaStr := query.Get("buyer_persona"); personaStr != "" {
		if persona, err := strconv.Atoi(personaStr); err == nil {
			filter["buyer_persona"] = persona
		}
	}

	if search := query.Get("search"); search != "" {
		pattern := utils.SearchRegex(search)
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": pattern, "$options": "i"}},
			{"email": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	return filter
}

func GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	query := r.URL.Query()

	limit := 20
	page := 1
	if limitParsed, err := strconv.Atoi(query.Get("limit")); err == nil && limitParsed > 0 {
		if limitParsed > 100 {
			limit = 100
		} else {
			limit = limitParsed
		}
	}
	if pageParsed, err := strconv.Atoi(query.Get("page")); err == nil && pageParsed > 0 {
		page = pageParsed
	}
	skip := (page - 1) * limit

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_UNIFIED_CONTACTS)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, buildContactsFilterFromQueryParams(r), findOpts)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CONTACTS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	contacts := []schemas.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CONTACTS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", contacts, 0)
}
