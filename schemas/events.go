package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type EventTask struct {
	Title   string     `json:"title,omitempty" bson:"title,omitempty"`
	Done    bool       `json:"done" bson:"done"`
	DueDate *time.Time `json:"due_date,omitempty" bson:"due_date,omitempty"`
}

type EventRegistrant struct {
	Name         string    `json:"name,omitempty" bson:"name,omitempty"`
	Email        string    `json:"email,omitempty" bson:"email,omitempty"`
	Company      string    `json:"company,omitempty" bson:"company,omitempty"`
	RegisteredAt time.Time `json:"registered_at" bson:"registered_at,omitempty"`
}

type WebinarEvent struct {
	ID              bson.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string            `json:"title,omitempty" bson:"title,omitempty"`
	Description     string            `json:"description,omitempty" bson:"description,omitempty"`
	StartsAt        time.Time         `json:"starts_at" bson:"starts_at,omitempty"`
	EndsAt          time.Time         `json:"ends_at" bson:"ends_at,omitempty"`
	Speakers        []string          `json:"speakers,omitempty" bson:"speakers,omitempty"`
	Tasks           []EventTask       `json:"tasks,omitempty" bson:"tasks,omitempty"`
	Registrants     []EventRegistrant `json:"registrants,omitempty" bson:"registrants,omitempty"`
	YoutubeID       string            `json:"youtube_id,omitempty" bson:"youtube_id,omitempty"`
	CalendarEventID string            `json:"calendar_event_id,omitempty" bson:"calendar_event_id,omitempty"`
	BannerPrompt    string            `json:"banner_prompt,omitempty" bson:"banner_prompt,omitempty"`
	EmailCopy       string            `json:"email_copy,omitempty" bson:"email_copy,omitempty"`
	TitleIdeas      []string          `json:"title_ideas,omitempty" bson:"title_ideas,omitempty"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt       time.Time         `json:"updated_at" bson:"updated_at,omitempty"`
}
