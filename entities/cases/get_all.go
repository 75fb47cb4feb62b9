package cases

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

func buildCasesFilterFromQueryParams(r *http.Request) bson.M {
	query := r.URL.Query()
	filter := bson.M{}

	if query.Get("discarded") == "true" {
		filter["discarded_at"] = bson.M{"$ne": nil}
	} else {
		filter["discarded_at"] = nil
	}

	if stage := query.Get("stage"); stage != "" {
		filter["stage"] = stage
	}

	if status := query.Get("status"); status != "" {
		filter["status"] = status
	}

	if companyID := query.Get("company_id"); companyID != "" {
		if id, err := bson.ObjectIDFromHex(companyID); err == nil {
			filter["company_ids"] = id
		}
	}

	if contactID := query.Get("contact_id"); contactID != "" {
		if id, err := bson.ObjectIDFromHex(contactID); err == nil {
			filter["contact_ids"] = id
		}
	}

	if search := query.Get("search"); search != "" {
		pattern := utils.SearchRegex(search)
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"company_name": bson.M{"$regex": pattern, "$options": "i"}},
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CASES)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "last_activity_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, buildCasesFilterFromQueryParams(r), findOpts)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CASES_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	cases := []schemas.Case{}
	if err := cursor.All(ctx, &cases); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CASES_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", cases, 0)
}
