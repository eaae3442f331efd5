package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"urbannest-properties/pkg/logger"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client calls the Gemini generateContent endpoint.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Gemini client for the given model.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
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
}

// GenerateText sends the prompt to the model and returns the first candidate's text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	requestBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to marshal generate request body: error=%v", err)
		return "", fmt.Errorf("failed to marshal request body: %v", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create generate request: error=%v", err)
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to send generate request: model=%s, error=%v", c.model, err)
		return "", fmt.Errorf("failed to send generate request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to read generate response body: model=%s, status=%s, error=%v", c.model, resp.Status, err)
		return "", fmt.Errorf("failed to read response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.GlobalLogger.Errorf("Generate request failed: model=%s, status=%s, response=%s", c.model, resp.Status, string(body))
		return "", fmt.Errorf("generate request failed: %s", resp.Status)
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode generate response: model=%s, error=%v", c.model, err)
		return "", fmt.Errorf("failed to decode generate response: %v", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generate response contained no candidates")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
