package hubspot

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

const DEFAULT_BASE_URL = "https://api.hubapi.com"

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:    DEFAULT_BASE_URL,
		Token:      os.Getenv(utils.HUBSPOT_TOKEN),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200]
	}
	return fmt.Sprintf("hubspot: respuesta %d: %s", e.StatusCode, body)
}

type Object struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

type paging struct {
	Next struct {
		After string `json:"after"`
	} `json:"next"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(respBody, out)
}
