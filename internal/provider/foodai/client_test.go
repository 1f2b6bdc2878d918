package foodai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func fakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newFakeClient(t *testing.T, content string) *Client {
	t.Helper()
	ts := fakeCompletionServer(t, content)
	return NewClientWithBaseURL("test-key", ts.URL+"/v1")
}

func TestAnalyzeFoodParsesWellFormedResponse(t *testing.T) {
	t.Parallel()

	c := newFakeClient(t, `{
  "name": "French bread",
  "calories100g": 265,
  "protein100g": 9,
  "carbs100g": 49,
  "fat100g": 3.2,
  "standardPortionGrams": 50,
  "standardPortionName": "1 roll"
}`)

	got, err := c.AnalyzeFood(context.Background(), "french bread with butter")
	if err != nil {
		t.Fatalf("analyze food: %v", err)
	}
	if got.Name != "French bread" || got.Calories100g != 265 || got.StandardPortionGrams != 50 {
		t.Fatalf("unexpected lookup: %+v", got)
	}
	per := got.Per100g()
	if per.Calories != 265 || per.Protein != 9 || per.Carbs != 49 || per.Fat != 3.2 {
		t.Fatalf("unexpected per-100g facts: %+v", per)
	}
}

func TestAnalyzeFoodUnwrapsFencedJSON(t *testing.T) {
	t.Parallel()

	c := newFakeClient(t, "```json\n{\"name\":\"Apple\",\"calories100g\":52,\"protein100g\":0.3,\"carbs100g\":14,\"fat100g\":0.2,\"standardPortionGrams\":180,\"standardPortionName\":\"1 medium apple\"}\n```")

	got, err := c.AnalyzeFood(context.Background(), "apple")
	if err != nil {
		t.Fatalf("analyze food: %v", err)
	}
	if got.Name != "Apple" || got.StandardPortionGrams != 180 {
		t.Fatalf("unexpected lookup: %+v", got)
	}
}

func TestAnalyzeFoodNotFoundSignal(t *testing.T) {
	t.Parallel()

	c := newFakeClient(t, `{"notFound": true}`)
	if _, err := c.AnalyzeFood(context.Background(), "a red sports car"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnalyzeFoodTreatsAllZeroNutritionAsNotFound(t *testing.T) {
	t.Parallel()

	c := newFakeClient(t, `{"name":"mystery","calories100g":0,"protein100g":0,"carbs100g":0,"fat100g":0,"standardPortionGrams":0,"standardPortionName":""}`)
	if _, err := c.AnalyzeFood(context.Background(), "mystery"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for zeroed nutrition, got %v", err)
	}
}

func TestAnalyzeFoodMalformedContentIsAFailure(t *testing.T) {
	t.Parallel()

	c := newFakeClient(t, `the apple has about 52 kcal per 100g`)
	_, err := c.AnalyzeFood(context.Background(), "apple")
	if err == nil {
		t.Fatalf("expected decode error for non-JSON content")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("malformed content must not be reported as not-found: %v", err)
	}
}

func TestAnalyzeFoodRequiresDescription(t *testing.T) {
	t.Parallel()

	c := NewClient("test-key")
	if _, err := c.AnalyzeFood(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for blank description")
	}
}

func TestStripJSONFences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{" ```json\n{\"a\":1}\n``` ", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := stripJSONFences(tc.in); got != tc.want {
			t.Fatalf("stripJSONFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
