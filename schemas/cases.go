package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	CASE_STAGE_REQUESTED   = "caso_solicitado"
	CASE_STAGE_IN_PROGRESS = "caso_en_progreso"
	CASE_STAGE_DELIVERED   = "caso_entregado"
	CASE_STAGE_CLOSED      = "caso_cerrado"
	CASE_STAGE_DISCARDED   = "caso_descartado"

	CASE_STATUS_OPEN = "open"
	CASE_STATUS_WON  = "won"
	CASE_STATUS_LOST = "lost"

	CHECKLIST_STATE_PENDING     = "pending"
	CHECKLIST_STATE_IN_PROGRESS = "in_progress"
	CHECKLIST_STATE_DONE        = "done"
	CHECKLIST_STATE_BLOCKED     = "blocked"

	WEEKLY_STATUS_GREEN  = "green"
	WEEKLY_STATUS_YELLOW = "yellow"
	WEEKLY_STATUS_RED    = "red"
)

type Quote struct {
	HubspotQuoteID string    `json:"hubspot_quote_id,omitempty" bson:"hubspot_quote_id,omitempty"`
	Title          string    `json:"title,omitempty" bson:"title,omitempty"`
	Amount         float64   `json:"amount" bson:"amount"`
	Currency       string    `json:"currency,omitempty" bson:"currency,omitempty"`
	Status         string    `json:"status,omitempty" bson:"status,omitempty"`
	ExpiresAt      time.Time `json:"expires_at" bson:"expires_at,omitempty"`
	SyncedAt       time.Time `json:"synced_at" bson:"synced_at,omitempty"`
}

type ChecklistCell struct {
	State     string    `json:"state,omitempty" bson:"state,omitempty"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty" bson:"updated_by,omitempty"`
}

// CaseChecklists anida grupo -> columna -> id de contacto -> celda.
type CaseChecklists map[string]map[string]map[string]ChecklistCell

type CaseTask struct {
	Title     string     `json:"title,omitempty" bson:"title,omitempty"`
	Done      bool       `json:"done" bson:"done"`
	DueDate   *time.Time `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at,omitempty"`
}

type Case struct {
	ID             bson.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Title          string          `json:"title,omitempty" bson:"title,omitempty"`
	Stage          string          `json:"stage,omitempty" bson:"stage,omitempty"`
	Status         string          `json:"status,omitempty" bson:"status,omitempty"`
	HubspotDealID  string          `json:"hubspot_deal_id,omitempty" bson:"hubspot_deal_id,omitempty"`
	ContactIDs     []bson.ObjectID `json:"contact_ids,omitempty" bson:"contact_ids,omitempty"`
	CompanyIDs     []bson.ObjectID `json:"company_ids,omitempty" bson:"company_ids,omitempty"`
	CompanyName    string          `json:"company_name,omitempty" bson:"company_name,omitempty"`
	Quotes         []Quote         `json:"quotes,omitempty" bson:"quotes,omitempty"`
	Tasks          []CaseTask      `json:"tasks,omitempty" bson:"tasks,omitempty"`
	CaseChecklists CaseChecklists  `json:"case_checklists,omitempty" bson:"case_checklists,omitempty"`
	LastActivityAt time.Time       `json:"last_activity_at" bson:"last_activity_at,omitempty"`
	DiscardedAt    *time.Time      `json:"discarded_at,omitempty" bson:"discarded_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at" bson:"updated_at,omitempty"`
}
