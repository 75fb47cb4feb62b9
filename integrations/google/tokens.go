package google

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const SETTINGS_KEY_GOOGLE_TOKENS = "google_tokens"

// LoadAccessToken lee los tokens guardados en la colección settings y los
// refresca contra el endpoint OAuth cuando están vencidos.
func (c *Client) LoadAccessToken(ctx context.Context) (string, error) {
	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		return "", err
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_SETTINGS)

	tokens := schemas.GoogleTokens{}
	filter := bson.D{{Key: "key", Value: SETTINGS_KEY_GOOGLE_TOKENS}}
	if err := collection.FindOne(ctx, filter).Decode(&tokens); err != nil {
		return "", err
	}

	if time.Now().Before(tokens.ExpiresAt.Add(-1 * time.Minute)) {
		return tokens.AccessToken, nil
	}

	refreshed, err := c.refreshToken(ctx, tokens.RefreshToken)
	if err != nil {
		return "", err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "access_token", Value: refreshed.AccessToken},
		{Key: "expires_at", Value: refreshed.ExpiresAt},
		{Key: "updated_at", Value: time.Now()},
	}}}
	if _, err := collection.UpdateOne(ctx, filter, update); err != nil {
		return "", err
	}

	return refreshed.AccessToken, nil
}

type refreshedToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

func (c *Client) refreshToken(ctx context.Context, refreshToken string) (*refreshedToken, error) {
	form := url.Values{}
	form.Set("client_id", c.ClientID)
	form.Set("client_secret", c.ClientSecret)
	form.Set("refresh_token", refreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, "POST", c.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	payload := struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return &refreshedToken{
		AccessToken: payload.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second),
	}, nil
}
