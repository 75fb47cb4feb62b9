package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type WebinarAttendance struct {
	EventID      bson.ObjectID `json:"event_id,omitempty" bson:"event_id,omitempty"`
	EventTitle   string        `json:"event_title,omitempty" bson:"event_title,omitempty"`
	RegisteredAt time.Time     `json:"registered_at" bson:"registered_at,omitempty"`
	Attended     bool          `json:"attended" bson:"attended"`
}

type CaseReference struct {
	CaseID   bson.ObjectID `json:"case_id,omitempty" bson:"case_id,omitempty"`
	Role     string        `json:"role,omitempty" bson:"role,omitempty"`
	AddedAt  time.Time     `json:"added_at" bson:"added_at,omitempty"`
	Resolved bool          `json:"resolved" bson:"resolved"`
}

type Contact struct {
	ID             bson.ObjectID       `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string              `json:"name,omitempty" bson:"name,omitempty"`
	Email          string              `json:"email,omitempty" bson:"email,omitempty"`
	Phone          string              `json:"phone,omitempty" bson:"phone,omitempty"`
	JobTitle       string              `json:"job_title,omitempty" bson:"job_title,omitempty"`
	CompanyID      bson.ObjectID       `json:"company_id,omitempty" bson:"company_id,omitempty"`
	CompanyName    string              `json:"company_name,omitempty" bson:"company_name,omitempty"`
	HubspotID      string              `json:"hubspot_id,omitempty" bson:"hubspot_id,omitempty"`
	Stage          int                 `json:"stage,omitempty" bson:"stage,omitempty"`
	BuyerPersona   int                 `json:"buyer_persona,omitempty" bson:"buyer_persona,omitempty"`
	Roles          []string            `json:"roles,omitempty" bson:"roles,omitempty"`
	CaseHistory    []CaseReference     `json:"case_history,omitempty" bson:"case_history,omitempty"`
	WebinarHistory []WebinarAttendance `json:"webinar_history,omitempty" bson:"webinar_history,omitempty"`
	Source         string              `json:"source,omitempty" bson:"source,omitempty"`
	Notes          string              `json:"notes,omitempty" bson:"notes,omitempty"`
	DiscardedAt    *time.Time          `json:"discarded_at,omitempty" bson:"discarded_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at,omitempty"`
}
