package companies

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func CreateOne(w http.ResponseWriter, r *http.Request) {
	company := &schemas.Company{}
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.COMPANIES_INVALID_REQUEST_DATA)
		return
	}

	if company.Name == "" {
		utils.SendResponse(w, http.StatusBadRequest, "El nombre de la empresa es obligatorio", nil, 0)
		return
	}

	if company.Classification != "" &&
		company.Classification != schemas.COMPANY_CLASSIFICATION_INBOUND &&
		company.Classification != schemas.COMPANY_CLASSIFICATION_OUTBOUND {
		utils.SendResponse(w, http.StatusBadRequest, "La clasificación debe ser inbound u outbound", nil, 0)
		return
	}

	company.IsMerged = false
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()

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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_UNIFIED_COMPANIES)

	result, err := collection.InsertOne(ctx, company)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_COMPANY_TO_MONGODB)
		return
	}

	if insertedID, ok := result.InsertedID.(bson.ObjectID); ok {
		company.ID = insertedID
	}

	utils.SendResponse(w, http.StatusCreated, "", company, 0)
}
