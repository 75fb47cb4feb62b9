package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type MediaContact struct {
	ID          bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string        `json:"name,omitempty" bson:"name,omitempty"`
	Outlet      string        `json:"outlet,omitempty" bson:"outlet,omitempty"`
	Email       string        `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Topics      []string      `json:"topics,omitempty" bson:"topics,omitempty"`
	Notes       string        `json:"notes,omitempty" bson:"notes,omitempty"`
	DiscardedAt *time.Time    `json:"discarded_at,omitempty" bson:"discarded_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
