//go:build integration
// +build integration

package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
}

func doJSON(t *testing.T, method, url string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s %s response: %v", method, url, err)
	}
	return resp, out
}

func TestHealthz(t *testing.T) {
	resp, err := http.Get(fmt.Sprintf("%s/healthz", baseURL()))
	if err != nil {
		t.Fatalf("health check request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
}

func TestQuestionLifecycle(t *testing.T) {
	text := fmt.Sprintf("Integration question %d?", time.Now().UnixNano())

	resp, created := doJSON(t, http.MethodPost, baseURL()+"/api/questions", map[string]interface{}{
		"question":   text,
		"answer":     "yes",
		"category":   1,
		"difficulty": 2,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create: unexpected status %d: %v", resp.StatusCode, created)
	}
	id, ok := created["last_inserted_id"].(float64)
	if !ok || id <= 0 {
		t.Fatalf("create: missing last_inserted_id: %v", created)
	}

	resp, found := doJSON(t, http.MethodPost, baseURL()+"/api/search-questions", map[string]string{"searchTerm": text})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search: unexpected status %d", resp.StatusCode)
	}
	if total, _ := found["total_questions"].(float64); total != 1 {
		t.Fatalf("search: expected exactly one match, got %v", found)
	}

	resp, deleted := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/questions/%d", baseURL(), int(id)), nil)
	if resp.StatusCode != http.StatusOK || deleted["deleted"] != id {
		t.Fatalf("delete: unexpected response %d %v", resp.StatusCode, deleted)
	}

	resp, again := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/questions/%d", baseURL(), int(id)), nil)
	if resp.StatusCode != http.StatusNotFound || again["error"] != float64(http.StatusNotFound) {
		t.Fatalf("second delete: expected 404, got %d %v", resp.StatusCode, again)
	}
}

func TestQuizDrainsCategory(t *testing.T) {
	resp, listing := doJSON(t, http.MethodGet, baseURL()+"/api/categories/1/questions", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("category listing: unexpected status %d", resp.StatusCode)
	}
	total := int(listing["total_questions"].(float64))

	previous := []int{}
	for i := 0; i <= total; i++ {
		resp, out := doJSON(t, http.MethodPost, baseURL()+"/api/quizzes", map[string]interface{}{
			"previous_questions": previous,
			"quiz_category":      map[string]interface{}{"id": 1, "type": "Science"},
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("quiz: unexpected status %d", resp.StatusCode)
		}
		if out["question"] == nil {
			if len(previous) < total {
				t.Fatalf("quiz ended after %d of %d questions", len(previous), total)
			}
			return
		}
		q := out["question"].(map[string]interface{})
		if q["category"] != float64(1) {
			t.Fatalf("quiz returned question from category %v", q["category"])
		}
		previous = append(previous, int(q["id"].(float64)))
	}
	t.Fatalf("quiz never reported an exhausted pool after %d draws", len(previous))
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	resp, out := doJSON(t, http.MethodGet, baseURL()+"/api/nope", nil)
	if resp.StatusCode != http.StatusNotFound || out["error"] != float64(http.StatusNotFound) {
		t.Fatalf("expected JSON 404, got %d %v", resp.StatusCode, out)
	}
}
