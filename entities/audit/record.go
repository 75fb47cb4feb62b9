package audit

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Record inserta una entrada en audit_logs. Los llamadores la tratan como
// mejor esfuerzo y sólo registran el error en consola.
func Record(ctx context.Context, actor, action, entityType, entityID, detail string) error {
	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		return err
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_AUDIT_LOGS)

	entry := schemas.AuditLog{
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}

	_, err = collection.InsertOne(ctx, entry)
	return err
}
