package companies

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

func buildCompaniesFilterFromQueryParams(r *http.Request) bson.M {
	query := r.URL.Query()
	filter := bson.M{}

	if query.Get("include_merged") != "true" {
		filter["is_merged"] = false
	}

	if classification := query.Get("classification"); classification != "" {
		filter["classification"] = classification
	}

	if industry := query.Get("industry"); industry != "" {
		filter["industry"] = industry
	}

	if search := query.Get("search"); search != "" {
		pattern := utils.SearchRegex(search)
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": pattern, "$options": "i"}},
			{"aliases": bson.M{"$regex": pattern, "$options": "i"}},
			{"domains": bson.M{"$regex": pattern, "$options": "i"}},
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_UNIFIED_COMPANIES)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, buildCompaniesFilterFromQueryParams(r), findOpts)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_COMPANIES_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	companies := []schemas.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_COMPANIES_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", companies, 0)
}
