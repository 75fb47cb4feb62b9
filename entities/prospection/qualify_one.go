package prospection

import (
	"api/database"
	"api/entities/audit"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type qualifyRequest struct {
	Qualified *bool  `json:"qualified"`
	Notes     string `json:"notes"`
}

// QualifyOne resuelve una oportunidad: si califica, crea o vincula la empresa
// outbound y el contacto; si no, la descarta.
func QualifyOne(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_OPPORTUNITY_ID_FORMAT)
		return
	}

	payload := qualifyRequest{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Qualified == nil {
		utils.SendResponse(w, http.StatusBadRequest, "El campo qualified es obligatorio", nil, 0)
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

	db := mongoClient.Database(database.GetDB())
	opportunitiesCol := db.Collection(database.COLLECTION_SCRAPER_OPPORTUNITIES)

	opportunity := schemas.ScraperOpportunity{}
	if err := opportunitiesCol.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&opportunity); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Oportunidad no encontrada", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_OPPORTUNITIES_IN_MONGODB)
		return
	}

	if opportunity.Qualified != nil || opportunity.DiscardedAt != nil {
		utils.SendResponse(w, http.StatusConflict, "La oportunidad ya fue resuelta", nil, 0)
		return
	}

	actor := middlewares.ActorFromRequest(r)
	now := time.Now()

	if !*payload.Qualified {
		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "qualified", Value: false},
			{Key: "notes", Value: payload.Notes},
			{Key: "discarded_at", Value: now},
			{Key: "updated_at", Value: now},
		}}}
		if _, err := opportunitiesCol.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update); err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_OPPORTUNITY_IN_MONGODB)
			return
		}

		if err := audit.Record(ctx, actor, "opportunity_discarded", "scraper_opportunity", idStr, opportunity.CompanyName); err != nil {
			log.Printf("[AUDIT] no se pudo registrar el descarte de la oportunidad: %v", err)
		}
		utils.SendResponse(w, http.StatusOK, "", nil, 0)
		return
	}

	companyID, companyCreated, err := attachCompany(ctx, db, &opportunity)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_COMPANY_TO_MONGODB)
		return
	}

	contactCreated := false
	if opportunity.Email != "" {
		contactCreated, err = attachContact(ctx, db, &opportunity, companyID)
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_CONTACT_TO_MONGODB)
			return
		}
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "qualified", Value: true},
		{Key: "notes", Value: payload.Notes},
		{Key: "company_id", Value: companyID},
		{Key: "updated_at", Value: now},
	}}}
	if _, err := opportunitiesCol.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_OPPORTUNITY_IN_MONGODB)
		return
	}

	if err := audit.Record(ctx, actor, "opportunity_qualified", "scraper_opportunity", idStr, opportunity.CompanyName); err != nil {
		log.Printf("[AUDIT] no se pudo registrar la calificación de la oportunidad: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, "", bson.M{
		"company_id":      companyID,
		"company_created": companyCreated,
		"contact_created": contactCreated,
	}, 0)
}

// attachCompany busca la empresa por nombre normalizado o dominio; si no
// existe la crea con clasificación outbound.
func attachCompany(ctx context.Context, db *mongo.Database, opportunity *schemas.ScraperOpportunity) (bson.ObjectID, bool, error) {
	companiesCol := db.Collection(database.COLLECTION_UNIFIED_COMPANIES)

	normalized := utils.NormalizeCompanyName(opportunity.CompanyName)
	domain := utils.ExtractDomain(opportunity.Website)
	if domain == "" {
		domain = utils.ExtractDomain(opportunity.Email)
	}

	cursor, err := companiesCol.Find(ctx, bson.D{{Key: "is_merged", Value: bson.D{{Key: "$ne", Value: true}}}})
	if err != nil {
		return bson.ObjectID{}, false, err
	}
	defer cursor.Close(ctx)

	companies := []schemas.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		return bson.ObjectID{}, false, err
	}

	for _, company := range companies {
		if normalized != "" && utils.NormalizeCompanyName(company.Name) == normalized {
			return company.ID, false, nil
		}
		if domain != "" {
			for _, companyDomain := range company.Domains {
				if strings.EqualFold(companyDomain, domain) {
					return company.ID, false, nil
				}
			}
		}
	}

	now := time.Now()
	company := schemas.Company{
		Name:           opportunity.CompanyName,
		Classification: schemas.COMPANY_CLASSIFICATION_OUTBOUND,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if domain != "" {
		company.Domains = []string{domain}
	}

	result, err := companiesCol.InsertOne(ctx, company)
	if err != nil {
		return bson.ObjectID{}, false, err
	}

	insertedID, _ := result.InsertedID.(bson.ObjectID)
	return insertedID, true, nil
}

// attachContact crea el contacto de la oportunidad si su correo no existe aún.
func attachContact(ctx context.Context, db *mongo.Database, opportunity *schemas.ScraperOpportunity, companyID bson.ObjectID) (bool, error) {
	contactsCol := db.Collection(database.COLLECTION_UNIFIED_CONTACTS)

	email := strings.ToLower(strings.TrimSpace(opportunity.Email))

	count, err := contactsCol.CountDocuments(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now()
	contact := schemas.Contact{
		Name:        opportunity.ContactName,
		Email:       email,
		Phone:       opportunity.Phone,
		CompanyID:   companyID,
		CompanyName: opportunity.CompanyName,
		Stage:       1,
		Source:      opportunity.Source,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := contactsCol.InsertOne(ctx, contact); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
