package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Document struct {
	ID          bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string        `json:"title,omitempty" bson:"title,omitempty"`
	Type        string        `json:"type,omitempty" bson:"type,omitempty"`
	URL         string        `json:"url,omitempty" bson:"url,omitempty"`
	Tags        []string      `json:"tags,omitempty" bson:"tags,omitempty"`
	DiscardedAt *time.Time    `json:"discarded_at,omitempty" bson:"discarded_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
