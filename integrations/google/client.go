package google

import (
	"api/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	DEFAULT_TOKEN_URL    = "https://oauth2.googleapis.com/token"
	DEFAULT_CALENDAR_URL = "https://www.googleapis.com/calendar/v3"
	DEFAULT_DRIVE_URL    = "https://www.googleapis.com/drive/v3"
	DEFAULT_YOUTUBE_URL  = "https://www.googleapis.com/youtube/v3"
)

type Client struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	CalendarURL  string
	DriveURL     string
	YoutubeURL   string
	HTTPClient   *http.Client
}

func NewClient() *Client {
	return &Client{
		ClientID:     os.Getenv(utils.GOOGLE_CLIENT_ID),
		ClientSecret: os.Getenv(utils.GOOGLE_CLIENT_SECRET),
		TokenURL:     DEFAULT_TOKEN_URL,
		CalendarURL:  DEFAULT_CALENDAR_URL,
		DriveURL:     DEFAULT_DRIVE_URL,
		YoutubeURL:   DEFAULT_YOUTUBE_URL,
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google: respuesta %d", e.StatusCode)
}

func (c *Client) doJSON(ctx context.Context, method, fullURL, accessToken string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
