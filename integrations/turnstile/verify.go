package turnstile

import (
	"api/utils"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const DEFAULT_VERIFY_URL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

type Client struct {
	VerifyURL  string
	Secret     string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		VerifyURL:  DEFAULT_VERIFY_URL,
		Secret:     os.Getenv(utils.TURNSTILE_SECRET),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify valida el token del CAPTCHA contra Cloudflare.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	form := url.Values{}
	form.Set("secret", c.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	result := struct {
		Success bool `json:"success"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, err
	}

	return result.Success, nil
}
