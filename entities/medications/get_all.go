package medications

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

// GetAll busca en el catálogo de medicamentos por nombre o sustancia. El
// catálogo es de solo lectura; se carga por fuera del servicio.
func GetAll(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	filter := bson.D{}

	if search := queryParams.Get("search"); search != "" {
		searchRegex := bson.D{{Key: "$regex", Value: utils.SearchRegex(search)}, {Key: "$options", Value: "i"}}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: searchRegex}},
			bson.D{{Key: "substance", Value: searchRegex}},
		}})
	}

	if laboratory := queryParams.Get("laboratory"); laboratory != "" {
		filter = append(filter, bson.E{Key: "laboratory", Value: bson.D{
			{Key: "$regex", Value: utils.SearchRegex(laboratory)},
			{Key: "$options", Value: "i"},
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_PHARMA_MEDICATIONS)

	findOptions := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_MEDICATIONS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	medications := []schemas.PharmaMedication{}
	if err := cursor.All(ctx, &medications); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_MEDICATIONS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", medications, 0)
}
