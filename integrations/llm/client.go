package llm

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
	DEFAULT_BASE_URL = "https://llm.emergentagent.com/v1"
	DEFAULT_MODEL    = "gpt-4o"
	IMAGE_MODEL      = "gpt-image-1"
)

type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:    DEFAULT_BASE_URL,
		APIKey:     os.Getenv(utils.LLM_API_KEY),
		Model:      DEFAULT_MODEL,
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
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
	return fmt.Sprintf("llm: respuesta %d: %s", e.StatusCode, body)
}

func (c *Client) doJSON(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return json.Unmarshal(respBody, out)
}

// GenerateText envía un prompt de sistema y uno de usuario y devuelve el
// texto de la primera respuesta.
func (c *Client) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body := map[string]any{
		"model": c.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
	}

	result := struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}{}
	if err := c.doJSON(ctx, "/chat/completions", body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("llm: respuesta sin contenido")
	}
	return result.Choices[0].Message.Content, nil
}

// GenerateImage devuelve la imagen generada codificada en base64.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model":           IMAGE_MODEL,
		"prompt":          prompt,
		"response_format": "b64_json",
		"size":            "1536x1024",
	}

	result := struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}{}
	if err := c.doJSON(ctx, "/images/generations", body, &result); err != nil {
		return "", err
	}

	if len(result.Data) == 0 {
		return "", fmt.Errorf("llm: respuesta sin imagen")
	}
	return result.Data[0].B64JSON, nil
}
