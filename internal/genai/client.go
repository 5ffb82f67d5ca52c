// Package genai talks to the generative content service behind the detail
// panel, the quiz, and the census search. Every operation degrades to a
// nil result: callers show fallback text instead of failing the session.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// Client calls the Gemini generateContent API.
type Client struct {
	APIKey     string
	Model      string
	Endpoint   string
	HTTPClient *http.Client
}

// NewClient creates a Client using the GEMINI_API_KEY env var. The key may
// be absent; the client then reports itself unavailable and every call
// fails fast without a network round trip.
func NewClient(model string) *Client {
	return &Client{
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:      model,
		Endpoint:   defaultEndpoint,
		HTTPClient: &http.Client{Timeout: 90 * time.Second},
	}
}

// Available reports whether a credential is configured.
func (c *Client) Available() bool { return c.APIKey != "" }

type apiRequest struct {
	Contents         []apiContent `json:"contents"`
	GenerationConfig apiGenConfig `json:"generationConfig"`
}

type apiContent struct {
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text"`
}

type apiGenConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
}

type apiResponse struct {
	Candidates []apiCandidate `json:"candidates"`
	Error      *apiError      `json:"error,omitempty"`
}

type apiCandidate struct {
	Content apiContent `json:"content"`
}

type apiError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// generate sends one prompt and returns the raw text of the first
// candidate. The request always asks for a JSON response body.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if !c.Available() {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	body, err := json.Marshal(apiRequest{
		Contents:         []apiContent{{Parts: []apiPart{{Text: prompt}}}},
		GenerationConfig: apiGenConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.Endpoint, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if apiResp.Error != nil {
		return "", fmt.Errorf("API error (%s): %s", apiResp.Error.Status, apiResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}
	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from API")
	}
	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}
