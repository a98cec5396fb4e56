// Package huggingface provides inference-API backed implementations of the
// text generator and sentiment classifier. Responses arrive in several known
// envelope shapes and are parsed defensively; any deviation is reported as an
// error for the caller's fallback logic, never a crash.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/interview-pilot/interview-pilot/internal/ai"
)

const (
	apiURL = "https://api-inference.huggingface.co"

	defaultModel         = "mistralai/Mistral-7B-Instruct-v0.1"
	defaultAnalysisModel = "cardiffnlp/twitter-roberta-base-sentiment-latest"

	contentType = "application/json"

	maxNewTokens = 1024
	temperature  = 0.1
)

// Client talks to the HuggingFace inference API for both text completion and
// sentiment classification.
type Client struct {
	token         string
	model         string
	analysisModel string
	logger        *zap.Logger

	HTTPClient *http.Client
	APIURL     string
}

// New creates a HuggingFace inference client.
func New(token, model, analysisModel string, logger *zap.Logger) *Client {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if analysisModel = strings.TrimSpace(analysisModel); analysisModel == "" {
		analysisModel = defaultAnalysisModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		token:         token,
		model:         model,
		analysisModel: analysisModel,
		logger:        logger,
		APIURL:        apiURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Model() string { return c.model }

// GenerateContent submits the prompt for text completion and extracts the
// generated text from whichever reply envelope the API used.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt must not be empty")
	}

	payload := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens":   maxNewTokens,
			"temperature":      temperature,
			"return_full_text": false,
		},
	}

	data, err := c.post(ctx, c.model, payload)
	if err != nil {
		return "", err
	}

	text := generatedText(data)
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no generated text in response")
	}
	return text, nil
}

// Classify labels the text with the sentiment analysis model and maps the
// result to the positive/neutral/negative scale with a 0-100 confidence.
func (c *Client) Classify(ctx context.Context, text string) (ai.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return ai.NeutralSentiment(), nil
	}

	data, err := c.post(ctx, c.analysisModel, map[string]any{"inputs": text})
	if err != nil {
		return ai.Sentiment{}, err
	}

	return parseSentiment(data)
}

func (c *Client) post(ctx context.Context, model string, payload any) (any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s", c.APIURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Set("Content-Type", contentType)

	c.logger.Debug("make request", zap.String("url", url))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return data, nil
}

// generatedText accepts the known completion envelopes:
// [{"generated_text": ...}], {"generated_text": ...}, a bare string, and
// [{"text": ...}]. Anything else is rendered back to JSON so the caller's
// array scan still has a chance.
func generatedText(data any) string {
	switch v := data.(type) {
	case string:
		return v
	case map[string]any:
		if text, ok := v["generated_text"].(string); ok {
			return text
		}
	case []any:
		if len(v) == 0 {
			return ""
		}
		if first, ok := v[0].(map[string]any); ok {
			if text, ok := first["generated_text"].(string); ok {
				return text
			}
			if text, ok := first["text"].(string); ok {
				return text
			}
		}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return string(raw)
}

// parseSentiment accepts both the nested [[{label, score}]] and the flat
// [{label, score}] classification envelopes.
func parseSentiment(data any) (ai.Sentiment, error) {
	top, ok := topLabel(data)
	if !ok {
		return ai.Sentiment{}, errors.New("no sentiment label in response")
	}

	label, _ := top["label"].(string)
	if strings.TrimSpace(label) == "" {
		return ai.Sentiment{}, errors.New("empty sentiment label in response")
	}

	score, ok := top["score"].(float64)
	if !ok {
		score = 0.5
	}

	return ai.Sentiment{
		Label:      mapLabel(label),
		Confidence: int(score*100 + 0.5),
	}, nil
}

func topLabel(data any) (map[string]any, bool) {
	list, ok := data.([]any)
	if !ok || len(list) == 0 {
		m, ok := data.(map[string]any)
		return m, ok
	}

	if nested, ok := list[0].([]any); ok {
		if len(nested) == 0 {
			return nil, false
		}
		m, ok := nested[0].(map[string]any)
		return m, ok
	}

	m, ok := list[0].(map[string]any)
	return m, ok
}

func mapLabel(label string) string {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "pos"):
		return ai.SentimentPositive
	case strings.Contains(lower, "neg"):
		return ai.SentimentNegative
	default:
		return ai.SentimentNeutral
	}
}
