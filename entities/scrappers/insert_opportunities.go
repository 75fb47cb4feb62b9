package scrappers

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// insertOpportunities inserta los elementos del dataset como oportunidades,
// descartando los que ya existen con el mismo source_url.
func insertOpportunities(ctx context.Context, items []map[string]any, source string, mapItem func(map[string]any) *schemas.ScraperOpportunity) (int, int, error) {
	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		return 0, 0, err
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_SCRAPER_OPPORTUNITIES)

	imported := 0
	skipped := 0
	for _, item := range items {
		opportunity := mapItem(item)
		if opportunity == nil || opportunity.CompanyName == "" && opportunity.ContactName == "" {
			skipped++
			continue
		}

		count, err := collection.CountDocuments(ctx, bson.D{{Key: "source_url", Value: opportunity.SourceURL}})
		if err != nil {
			return imported, skipped, err
		}
		if count > 0 {
			skipped++
			continue
		}

		opportunity.Source = source
		opportunity.CreatedAt = time.Now()
		opportunity.UpdatedAt = time.Now()

		if _, err := collection.InsertOne(ctx, opportunity); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				skipped++
				continue
			}
			return imported, skipped, err
		}
		imported++
	}

	return imported, skipped, nil
}
