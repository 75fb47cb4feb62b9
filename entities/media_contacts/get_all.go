package media_contacts

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
	queryParams := r.URL.Query()

	filter := bson.D{}

	if queryParams.Get("discarded") == "true" {
		filter = append(filter, bson.E{Key: "discarded_at", Value: bson.D{{Key: "$exists", Value: true}}})
	} else {
		filter = append(filter, bson.E{Key: "discarded_at", Value: bson.D{{Key: "$exists", Value: false}}})
	}

	if outlet := queryParams.Get("outlet"); outlet != "" {
		filter = append(filter, bson.E{Key: "outlet", Value: bson.D{
			{Key: "$regex", Value: utils.SearchRegex(outlet)},
			{Key: "$options", Value: "i"},
		}})
	}

	if topic := queryParams.Get("topic"); topic != "" {
		filter = append(filter, bson.E{Key: "topics", Value: topic})
	}

	if search := queryParams.Get("search"); search != "" {
		searchRegex := bson.D{{Key: "$regex", Value: utils.SearchRegex(search)}, {Key: "$options", Value: "i"}}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: searchRegex}},
			bson.D{{Key: "email", Value: searchRegex}},
		}})
	}

	page := 1
	if pageStr := queryParams.Get("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit := 50
	if limitStr := queryParams.Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_MEDIA_CONTACTS)

	findOptions := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_MEDIA_CONTACTS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	mediaContacts := []schemas.MediaContact{}
	if err := cursor.All(ctx, &mediaContacts); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_MEDIA_CONTACTS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", mediaContacts, 0)
}
