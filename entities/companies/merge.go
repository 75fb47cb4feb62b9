package companies

import (
	"api/database"
	"api/entities/audit"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type mergeRequest struct {
	WinnerID string   `json:"winner_id"`
	LoserIDs []string `json:"loser_ids"`
}

type mergeResult struct {
	Winner    string `json:"winner"`
	Losers    int    `json:"losers"`
	Repointed int64  `json:"repointed"`
}

// Merge fusiona manualmente una o más empresas en una superviviente. Las
// perdedoras quedan marcadas con is_merged y merged_into; nunca se borran.
func Merge(w http.ResponseWriter, r *http.Request) {
	payload := mergeRequest{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.COMPANIES_INVALID_REQUEST_DATA)
		return
	}

	winnerID, err := bson.ObjectIDFromHex(payload.WinnerID)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_COMPANY_ID_FORMAT)
		return
	}

	if len(payload.LoserIDs) == 0 {
		utils.SendResponse(w, http.StatusBadRequest, "Se requiere al menos una empresa perdedora", nil, 0)
		return
	}

	loserIDs := make([]bson.ObjectID, 0, len(payload.LoserIDs))
	for _, idStr := range payload.LoserIDs {
		id, err := bson.ObjectIDFromHex(idStr)
		if err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_COMPANY_ID_FORMAT)
			return
		}
		if id == winnerID {
			utils.SendResponse(w, http.StatusBadRequest, "La empresa ganadora no puede estar entre las perdedoras", nil, 0)
			return
		}
		loserIDs = append(loserIDs, id)
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
	collection := db.Collection(database.COLLECTION_UNIFIED_COMPANIES)

	winner := schemas.Company{}
	if err := collection.FindOne(ctx, bson.D{{Key: "_id", Value: winnerID}}).Decode(&winner); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Empresa ganadora no encontrada", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_COMPANIES_IN_MONGODB)
		return
	}
	if winner.IsMerged {
		utils.SendResponse(w, http.StatusBadRequest, "La empresa ganadora ya fue fusionada en otra", nil, 0)
		return
	}

	cursor, err := collection.Find(ctx, bson.M{"_id": bson.M{"$in": loserIDs}, "is_merged": false})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_COMPANIES_IN_MONGODB)
		return
	}
	losers := []schemas.Company{}
	if err := cursor.All(ctx, &losers); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_COMPANIES_IN_MONGODB)
		return
	}

	if len(losers) == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Ninguna empresa perdedora válida", nil, 0)
		return
	}

	repointed, err := performMerge(ctx, db, winner, losers)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_COMPANY_IN_MONGODB)
		return
	}

	actor := middlewares.ActorFromRequest(r)
	detail := fmt.Sprintf("%d empresas fusionadas, %d documentos reapuntados", len(losers), repointed)
	if err := audit.Record(ctx, actor, "merge", "company", winner.ID.Hex(), detail); err != nil {
		log.Printf("[AUDIT] no se pudo registrar la fusión: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, "", mergeResult{
		Winner:    winner.ID.Hex(),
		Losers:    len(losers),
		Repointed: repointed,
	}, 0)
}

// performMerge aplica la fusión sin transacción: primero consolida a la
// ganadora, después marca a las perdedoras y al final reapunta contactos,
// casos y oportunidades. Una falla a medio camino deja la marca puesta, por
// lo que volver a ejecutar retoma el reapuntado pendiente.
func performMerge(ctx context.Context, db *mongo.Database, winner schemas.Company, losers []schemas.Company) (int64, error) {
	companiesCol := db.Collection(database.COLLECTION_UNIFIED_COMPANIES)

	aliases := slices.Clone(winner.Aliases)
	domains := slices.Clone(winner.Domains)
	loserIDs := make([]bson.ObjectID, 0, len(losers))
	loserNames := make([]string, 0, len(losers))

	for _, loser := range losers {
		loserIDs = append(loserIDs, loser.ID)
		loserNames = append(loserNames, loser.Name)
		if loser.Name != winner.Name && !slices.Contains(aliases, loser.Name) {
			aliases = append(aliases, loser.Name)
		}
		for _, alias := range loser.Aliases {
			if alias != winner.Name && !slices.Contains(aliases, alias) {
				aliases = append(aliases, alias)
			}
		}
		for _, domain := range loser.Domains {
			domain = strings.ToLower(domain)
			if !slices.Contains(domains, domain) {
				domains = append(domains, domain)
			}
		}
	}

	winnerUpdate := bson.D{{Key: "$set", Value: bson.D{
		{Key: "aliases", Value: aliases},
		{Key: "domains", Value: domains},
		{Key: "updated_at", Value: time.Now()},
	}}}
	if _, err := companiesCol.UpdateOne(ctx, bson.D{{Key: "_id", Value: winner.ID}}, winnerUpdate); err != nil {
		return 0, err
	}

	losersUpdate := bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_merged", Value: true},
		{Key: "merged_into", Value: winner.ID},
		{Key: "updated_at", Value: time.Now()},
	}}}
	if _, err := companiesCol.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": loserIDs}}, losersUpdate); err != nil {
		return 0, err
	}

	var repointed int64

	contactsCol := db.Collection(database.COLLECTION_UNIFIED_CONTACTS)
	contactsByID, err := contactsCol.UpdateMany(ctx,
		bson.M{"company_id": bson.M{"$in": loserIDs}},
		bson.M{"$set": bson.M{"company_id": winner.ID, "company_name": winner.Name, "updated_at": time.Now()}})
	if err != nil {
		return repointed, err
	}
	repointed += contactsByID.ModifiedCount

	// Los vínculos antiguos por nombre de empresa se reapuntan por separado.
	contactsByName, err := contactsCol.UpdateMany(ctx,
		bson.M{"company_name": bson.M{"$in": loserNames}},
		bson.M{"$set": bson.M{"company_id": winner.ID, "company_name": winner.Name, "updated_at": time.Now()}})
	if err != nil {
		return repointed, err
	}
	repointed += contactsByName.ModifiedCount

	casesCol := db.Collection(database.COLLECTION_CASES)
	casesAdd, err := casesCol.UpdateMany(ctx,
		bson.M{"company_ids": bson.M{"$in": loserIDs}},
		bson.M{"$addToSet": bson.M{"company_ids": winner.ID}})
	if err != nil {
		return repointed, err
	}
	if _, err := casesCol.UpdateMany(ctx,
		bson.M{"company_ids": bson.M{"$in": loserIDs}},
		bson.M{"$pull": bson.M{"company_ids": bson.M{"$in": loserIDs}}}); err != nil {
		return repointed, err
	}
	repointed += casesAdd.ModifiedCount

	casesByName, err := casesCol.UpdateMany(ctx,
		bson.M{"company_name": bson.M{"$in": loserNames}},
		bson.M{"$set": bson.M{"company_name": winner.Name, "updated_at": time.Now()}})
	if err != nil {
		return repointed, err
	}
	repointed += casesByName.ModifiedCount

	opportunitiesCol := db.Collection(database.COLLECTION_SCRAPER_OPPORTUNITIES)
	opportunities, err := opportunitiesCol.UpdateMany(ctx,
		bson.M{"company_id": bson.M{"$in": loserIDs}},
		bson.M{"$set": bson.M{"company_id": winner.ID, "company_name": winner.Name, "updated_at": time.Now()}})
	if err != nil {
		return repointed, err
	}
	repointed += opportunities.ModifiedCount

	return repointed, nil
}
