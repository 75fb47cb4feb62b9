package companies

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
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// companiesMatch decide si dos empresas son la misma: nombre normalizado
// igual, dominio compartido, o un nombre que extiende al otro.
func companiesMatch(a, b schemas.Company) bool {
	normA := utils.NormalizeCompanyName(a.Name)
	normB := utils.NormalizeCompanyName(b.Name)

	if normA != "" && normA == normB {
		return true
	}

	for _, domainA := range a.Domains {
		for _, domainB := range b.Domains {
			if domainA != "" && strings.EqualFold(domainA, domainB) {
				return true
			}
		}
	}

	return utils.IsCompanyPrefixMatch(normA, normB)
}

// BuildMergeGroups agrupa las empresas duplicadas. Cada grupo viene ordenado
// con la más antigua primero, que es la que sobrevive.
func BuildMergeGroups(companies []schemas.Company) [][]schemas.Company {
	groups := [][]schemas.Company{}
	assigned := make(map[int]bool)

	for i := range companies {
		if assigned[i] {
			continue
		}

		group := []schemas.Company{companies[i]}
		assigned[i] = true

		for j := i + 1; j < len(companies); j++ {
			if assigned[j] {
				continue
			}
			for _, member := range group {
				if companiesMatch(member, companies[j]) {
					group = append(group, companies[j])
					assigned[j] = true
					break
				}
			}
		}

		if len(group) > 1 {
			sort.SliceStable(group, func(a, b int) bool {
				return group[a].CreatedAt.Before(group[b].CreatedAt)
			})
			groups = append(groups, group)
		}
	}

	return groups
}

type autoMergeResult struct {
	GroupsMerged int   `json:"groups_merged"`
	Repointed    int64 `json:"repointed"`
}

// AutoMerge recorre las empresas activas, detecta duplicados y los fusiona
// en la más antigua de cada grupo. Volver a ejecutarla no produce cambios.
func AutoMerge(w http.ResponseWriter, r *http.Request) {
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

	cursor, err := collection.Find(ctx, bson.M{"is_merged": false})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_COMPANIES_IN_MONGODB)
		return
	}

	companies := []schemas.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_COMPANIES_IN_MONGODB)
		return
	}

	groups := BuildMergeGroups(companies)

	actor := middlewares.ActorFromRequest(r)
	result := autoMergeResult{}

	for _, group := range groups {
		winner := group[0]
		losers := group[1:]

		repointed, err := performMerge(ctx, db, winner, losers)
		if err != nil {
			// Sin rollback: lo ya fusionado queda hecho y el reintento retoma.
			log.Printf("[AUTO-MERGE] fusión parcial en %s: %v", winner.ID.Hex(), err)
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_COMPANY_IN_MONGODB)
			return
		}

		result.GroupsMerged++
		result.Repointed += repointed

		detail := fmt.Sprintf("fusión automática de %d empresas, %d documentos reapuntados", len(losers), repointed)
		if err := audit.Record(ctx, actor, "auto_merge", "company", winner.ID.Hex(), detail); err != nil {
			log.Printf("[AUDIT] no se pudo registrar la fusión automática: %v", err)
		}
	}

	utils.SendResponse(w, http.StatusOK, "", result, 0)
}
