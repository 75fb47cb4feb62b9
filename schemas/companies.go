package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	COMPANY_CLASSIFICATION_INBOUND  = "inbound"
	COMPANY_CLASSIFICATION_OUTBOUND = "outbound"
)

type Company struct {
	ID             bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string        `json:"name,omitempty" bson:"name,omitempty"`
	Aliases        []string      `json:"aliases,omitempty" bson:"aliases,omitempty"`
	Domains        []string      `json:"domains,omitempty" bson:"domains,omitempty"`
	Industry       string        `json:"industry,omitempty" bson:"industry,omitempty"`
	Classification string        `json:"classification,omitempty" bson:"classification,omitempty"`
	HubspotID      string        `json:"hubspot_id,omitempty" bson:"hubspot_id,omitempty"`
	IsMerged       bool          `json:"is_merged" bson:"is_merged"`
	MergedInto     bson.ObjectID `json:"merged_into,omitempty" bson:"merged_into,omitempty"`
	Notes          string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt      time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
