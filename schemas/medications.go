package schemas

import "go.mongodb.org/mongo-driver/v2/bson"

type PharmaMedication struct {
	ID           bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string        `json:"name,omitempty" bson:"name,omitempty"`
	Substance    string        `json:"substance,omitempty" bson:"substance,omitempty"`
	Laboratory   string        `json:"laboratory,omitempty" bson:"laboratory,omitempty"`
	Indication   string        `json:"indication,omitempty" bson:"indication,omitempty"`
	Presentation string        `json:"presentation,omitempty" bson:"presentation,omitempty"`
}
