package google

import (
	"context"
	"time"
)

// CreateLiveBroadcast crea una transmisión en vivo no listada para el webinar.
func (c *Client) CreateLiveBroadcast(ctx context.Context, accessToken, title string, startsAt time.Time) (string, error) {
	body := map[string]any{
		"snippet": map[string]any{
			"title":              title,
			"scheduledStartTime": startsAt.Format(time.RFC3339),
		},
		"status": map[string]any{
			"privacyStatus": "unlisted",
		},
		"contentDetails": map[string]any{
			"enableAutoStart": true,
			"enableAutoStop":  true,
		},
	}

	created := struct {
		ID string `json:"id"`
	}{}
	url := c.YoutubeURL + "/liveBroadcasts?part=snippet,status,contentDetails"
	if err := c.doJSON(ctx, "POST", url, accessToken, body, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}
