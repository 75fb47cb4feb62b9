package prospection

import (
	"api/database"
	"api/entities/audit"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type consolidateResult struct {
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
}

// Consolidate vincula las oportunidades pendientes con empresas existentes
// comparando nombres normalizados, dominios y coincidencias de prefijo.
func Consolidate(w http.ResponseWriter, r *http.Request) {
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
	companiesCol := db.Collection(database.COLLECTION_UNIFIED_COMPANIES)

	companiesCursor, err := companiesCol.Find(ctx, bson.D{{Key: "is_merged", Value: bson.D{{Key: "$ne", Value: true}}}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_COMPANIES_IN_MONGODB)
		return
	}
	defer companiesCursor.Close(ctx)

	companies := []schemas.Company{}
	if err := companiesCursor.All(ctx, &companies); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_COMPANIES_IN_MONGODB)
		return
	}

	pendingFilter := bson.D{
		{Key: "company_id", Value: bson.D{{Key: "$exists", Value: false}}},
		{Key: "discarded_at", Value: bson.D{{Key: "$exists", Value: false}}},
	}
	opportunitiesCursor, err := opportunitiesCol.Find(ctx, pendingFilter)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_OPPORTUNITIES_IN_MONGODB)
		return
	}
	defer opportunitiesCursor.Close(ctx)

	opportunities := []schemas.ScraperOpportunity{}
	if err := opportunitiesCursor.All(ctx, &opportunities); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_OPPORTUNITIES_IN_MONGODB)
		return
	}

	result := consolidateResult{}
	for _, opportunity := range opportunities {
		company, found := matchCompany(&opportunity, companies)
		if !found {
			result.Unmatched++
			continue
		}

		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "company_id", Value: company.ID},
			{Key: "updated_at", Value: time.Now()},
		}}}
		if _, err := opportunitiesCol.UpdateOne(ctx, bson.D{{Key: "_id", Value: opportunity.ID}}, update); err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_OPPORTUNITY_IN_MONGODB)
			return
		}
		result.Matched++
	}

	detail := fmt.Sprintf("vinculadas=%d, sin empresa=%d", result.Matched, result.Unmatched)
	if err := audit.Record(ctx, middlewares.ActorFromRequest(r), "opportunities_consolidated", "scraper_opportunity", "", detail); err != nil {
		log.Printf("[AUDIT] no se pudo registrar la consolidación: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, "", result, 0)
}

func matchCompany(opportunity *schemas.ScraperOpportunity, companies []schemas.Company) (*schemas.Company, bool) {
	normalized := utils.NormalizeCompanyName(opportunity.CompanyName)
	domain := utils.ExtractDomain(opportunity.Website)
	if domain == "" {
		domain = utils.ExtractDomain(opportunity.Email)
	}

	if normalized == "" && domain == "" {
		return nil, false
	}

	for i := range companies {
		company := &companies[i]

		if domain != "" {
			for _, companyDomain := range company.Domains {
				if strings.EqualFold(companyDomain, domain) {
					return company, true
				}
			}
		}

		if normalized == "" {
			continue
		}

		candidates := append([]string{company.Name}, company.Aliases...)
		for _, candidate := range candidates {
			candidateNormalized := utils.NormalizeCompanyName(candidate)
			if candidateNormalized == normalized || utils.IsCompanyPrefixMatch(candidateNormalized, normalized) {
				return company, true
			}
		}
	}

	return nil, false
}
