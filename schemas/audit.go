package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type AuditLog struct {
	ID         bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Actor      string        `json:"actor,omitempty" bson:"actor,omitempty"`
	Action     string        `json:"action,omitempty" bson:"action,omitempty"`
	EntityType string        `json:"entity_type,omitempty" bson:"entity_type,omitempty"`
	EntityID   string        `json:"entity_id,omitempty" bson:"entity_id,omitempty"`
	Detail     string        `json:"detail,omitempty" bson:"detail,omitempty"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at,omitempty"`
}
