package google

import (
	"context"
	"time"
)

type CalendarEvent struct {
	Summary     string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
}

func (c *Client) CreateCalendarEvent(ctx context.Context, accessToken string, event CalendarEvent) (string, error) {
	body := map[string]any{
		"summary":     event.Summary,
		"description": event.Description,
		"start":       map[string]string{"dateTime": event.StartsAt.Format(time.RFC3339)},
		"end":         map[string]string{"dateTime": event.EndsAt.Format(time.RFC3339)},
	}

	created := struct {
		ID string `json:"id"`
	}{}
	url := c.CalendarURL + "/calendars/primary/events"
	if err := c.doJSON(ctx, "POST", url, accessToken, body, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}
