package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	IMPORT_STATUS_RUNNING  = "running"
	IMPORT_STATUS_FINISHED = "finished"
	IMPORT_STATUS_FAILED   = "failed"
)

type ImportProgress struct {
	JobID     string `json:"job_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Total     int    `json:"total"`
	Processed int    `json:"processed"`
	Imported  int    `json:"imported"`
	Skipped   int    `json:"skipped"`
	Error     string `json:"error,omitempty"`
}

type LinkedinImportJob struct {
	ID         bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	JobID      string        `json:"job_id,omitempty" bson:"job_id,omitempty"`
	FileName   string        `json:"file_name,omitempty" bson:"file_name,omitempty"`
	Status     string        `json:"status,omitempty" bson:"status,omitempty"`
	Total      int           `json:"total" bson:"total"`
	Imported   int           `json:"imported" bson:"imported"`
	Skipped    int           `json:"skipped" bson:"skipped"`
	Error      string        `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at,omitempty"`
	FinishedAt *time.Time    `json:"finished_at,omitempty" bson:"finished_at,omitempty"`
}
