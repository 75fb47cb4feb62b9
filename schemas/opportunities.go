package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	OPPORTUNITY_SOURCE_LINKEDIN = "apify_linkedin"
	OPPORTUNITY_SOURCE_MAPS     = "apify_maps"
)

type ScraperOpportunity struct {
	ID          bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Source      string        `json:"source,omitempty" bson:"source,omitempty"`
	SourceURL   string        `json:"source_url,omitempty" bson:"source_url,omitempty"`
	CompanyName string        `json:"company_name,omitempty" bson:"company_name,omitempty"`
	CompanyID   bson.ObjectID `json:"company_id,omitempty" bson:"company_id,omitempty"`
	ContactName string        `json:"contact_name,omitempty" bson:"contact_name,omitempty"`
	Email       string        `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Website     string        `json:"website,omitempty" bson:"website,omitempty"`
	Address     string        `json:"address,omitempty" bson:"address,omitempty"`
	Qualified   *bool         `json:"qualified,omitempty" bson:"qualified,omitempty"`
	Notes       string        `json:"notes,omitempty" bson:"notes,omitempty"`
	DiscardedAt *time.Time    `json:"discarded_at,omitempty" bson:"discarded_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
