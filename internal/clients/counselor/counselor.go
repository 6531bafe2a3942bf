// Package counselor is the HTTP client for the hosted advice-generation API.
// Callers pass a context; the request is cancelled when the deadline expires
// and the rule-based fallback takes over.
package counselor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

type Client struct {
	apiKey string
	url    string
	http   *http.Client
}

func New(apiKey, url string) *Client {
	if url == "" {
		url = defaultURL
	}
	return &Client{
		apiKey: apiKey,
		url:    url,
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// Configured reports whether an API key is present; without one callers go
// straight to the rule-based responder.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", errors.New("missing counselor api key")
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e generateResponse
		if json.Unmarshal(body, &e) == nil && e.Error != nil && e.Error.Message != "" {
			return "", fmt.Errorf("counselor api error (%d): %s", resp.StatusCode, e.Error.Message)
		}
		return "", fmt.Errorf("counselor api http error (%d): %s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("counselor api returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
