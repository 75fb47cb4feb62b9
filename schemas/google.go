package schemas

import "time"

// GoogleTokens se guarda en la colección settings bajo la clave google_tokens.
type GoogleTokens struct {
	Key          string    `json:"key,omitempty" bson:"key,omitempty"`
	AccessToken  string    `json:"access_token,omitempty" bson:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty" bson:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at" bson:"expires_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at,omitempty"`
}
