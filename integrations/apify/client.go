package apify

import (
	"api/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	DEFAULT_BASE_URL = "https://api.apify.com/v2"

	RUN_STATUS_SUCCEEDED = "SUCCEEDED"
	RUN_STATUS_FAILED    = "FAILED"
	RUN_STATUS_ABORTED   = "ABORTED"
	RUN_STATUS_TIMED_OUT = "TIMED-OUT"
)

type Client struct {
	BaseURL      string
	Token        string
	PollInterval time.Duration
	HTTPClient   *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:      DEFAULT_BASE_URL,
		Token:        os.Getenv(utils.APIFY_TOKEN),
		PollInterval: 10 * time.Second,
		HTTPClient:   &http.Client{Timeout: 60 * time.Second},
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
	return fmt.Sprintf("apify: respuesta %d: %s", e.StatusCode, body)
}

type Run struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	DefaultDatasetID string `json:"defaultDatasetId"`
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

	separator := "?"
	if u, err := url.Parse(path); err == nil && u.RawQuery != "" {
		separator = "&"
	}
	fullURL := c.BaseURL + path + separator + "token=" + url.QueryEscape(c.Token)

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return err
	}
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

func (c *Client) RunActor(ctx context.Context, actorID string, input any) (*Run, error) {
	path := fmt.Sprintf("/acts/%s/runs", url.PathEscape(actorID))

	result := struct {
		Data Run `json:"data"`
	}{}
	if err := c.doJSON(ctx, "POST", path, input, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (c *Client) GetRun(ctx context.Context, runID string) (*Run, error) {
	path := fmt.Sprintf("/actor-runs/%s", url.PathEscape(runID))

	result := struct {
		Data Run `json:"data"`
	}{}
	if err := c.doJSON(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// WaitRun consulta el estado de la ejecución hasta que termina o el
// contexto se cancela.
func (c *Client) WaitRun(ctx context.Context, runID string) (*Run, error) {
	for {
		run, err := c.GetRun(ctx, runID)
		if err != nil {
			return nil, err
		}

		switch run.Status {
		case RUN_STATUS_SUCCEEDED:
			return run, nil
		case RUN_STATUS_FAILED, RUN_STATUS_ABORTED, RUN_STATUS_TIMED_OUT:
			return run, fmt.Errorf("apify: la ejecución %s terminó con estado %s", runID, run.Status)
		}

		select {
		case <-ctx.Done():
			return run, ctx.Err()
		case <-time.After(c.PollInterval):
		}
	}
}

func (c *Client) DatasetItems(ctx context.Context, datasetID string) ([]map[string]any, error) {
	path := fmt.Sprintf("/datasets/%s/items?clean=true", url.PathEscape(datasetID))

	items := []map[string]any{}
	if err := c.doJSON(ctx, "GET", path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
