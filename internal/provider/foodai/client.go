package foodai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ton48099/CaloriTons/internal/model"
)

// ErrNotFound means the service explicitly signalled no match for the
// description, as opposed to a transport or parse failure. Callers should
// invite the user to refine the query rather than retry.
var ErrNotFound = errors.New("food not found")

const (
	defaultModel    = "gpt-4o-mini"
	defaultLanguage = "en-US"
)

// FoodLookup is the normalized wire record: nutrition facts per 100 grams
// plus a standard portion suggestion.
type FoodLookup struct {
	Name                 string  `json:"name"`
	Calories100g         float64 `json:"calories100g"`
	Protein100g          float64 `json:"protein100g"`
	Carbs100g            float64 `json:"carbs100g"`
	Fat100g              float64 `json:"fat100g"`
	StandardPortionGrams float64 `json:"standardPortionGrams"`
	StandardPortionName  string  `json:"standardPortionName"`
	NotFound             bool    `json:"notFound,omitempty"`
}

// Per100g converts the wire record into the model's nutrition facts.
func (f FoodLookup) Per100g() model.NutritionPer100g {
	return model.NutritionPer100g{
		Calories: f.Calories100g,
		Protein:  f.Protein100g,
		Carbs:    f.Carbs100g,
		Fat:      f.Fat100g,
	}
}

// Client looks up nutrition facts for a free-text food description through
// a chat-completion API. It does not retry and enforces no timeout of its
// own; cancellation comes from the caller's context.
type Client struct {
	ai       *openai.Client
	model    string
	language string
}

func NewClient(apiKey string) *Client {
	return &Client{
		ai:       openai.NewClient(apiKey),
		model:    defaultModel,
		language: defaultLanguage,
	}
}

// NewClientWithBaseURL targets a non-default API endpoint. Tests point this
// at a local fake server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		ai:       openai.NewClientWithConfig(cfg),
		model:    defaultModel,
		language: defaultLanguage,
	}
}

func (c *Client) WithModel(m string) *Client {
	if strings.TrimSpace(m) != "" {
		c.model = m
	}
	return c
}

func (c *Client) WithLanguage(lang string) *Client {
	if strings.TrimSpace(lang) != "" {
		c.language = lang
	}
	return c
}

// AnalyzeFood returns the per-100g nutrition record for a description, or
// ErrNotFound when the service reports no identifiable food. Any other
// failure (transport, empty body, malformed JSON) is a plain error and
// leaves no state behind.
func (c *Client) AnalyzeFood(ctx context.Context, description string) (FoodLookup, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return FoodLookup{}, fmt.Errorf("food description is required")
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"You are a nutrition database. Answer in %s. "+
						"Reply with a single JSON object and nothing else, using exactly these keys: "+
						`name, calories100g, protein100g, carbs100g, fat100g, standardPortionGrams, standardPortionName. `+
						"All nutrition values are per 100 grams; standardPortionGrams is the weight in grams of one typical portion "+
						"(e.g. one medium apple, one slice of bread) and standardPortionName describes it. "+
						`If the text does not describe an identifiable, edible food, reply with {"notFound": true}.`,
					c.language,
				),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Identify average standard nutrition facts for: %q", description),
			},
		},
		MaxTokens:   300,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.ai.CreateChatCompletion(ctx, req)
	if err != nil {
		return FoodLookup{}, fmt.Errorf("food lookup request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return FoodLookup{}, fmt.Errorf("food lookup: empty response")
	}

	content := stripJSONFences(resp.Choices[0].Message.Content)
	if content == "" {
		return FoodLookup{}, ErrNotFound
	}

	var out FoodLookup
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return FoodLookup{}, fmt.Errorf("decode food lookup response: %w", err)
	}
	if out.NotFound {
		return FoodLookup{}, ErrNotFound
	}
	// A "match" with zeroed nutrition is the model dodging the not-found
	// signal; treat it the same way.
	if out.Calories100g == 0 && out.Protein100g == 0 && out.Carbs100g == 0 && out.Fat100g == 0 {
		return FoodLookup{}, ErrNotFound
	}
	if strings.TrimSpace(out.Name) == "" {
		out.Name = description
	}
	return out, nil
}

// stripJSONFences unwraps a markdown-fenced code block, which some models
// emit even when asked for raw JSON.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
