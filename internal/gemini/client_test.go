package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/tutor"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestGenerate(t *testing.T) {
	var gotKey, gotPath string
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"指挥官，"},{"text":"e = c/a"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(nil, Options{BaseURL: srv.URL + "/", LookupEnv: env(map[string]string{"API_KEY": "k-1"})})
	got, err := c.Generate(context.Background(), "prompt text")
	if err != nil {
		t.Fatal(err)
	}
	if got != "指挥官，e = c/a" {
		t.Errorf("unexpected reply %q", got)
	}
	if gotKey != "k-1" {
		t.Errorf("expected api key header, got %q", gotKey)
	}
	if gotPath != "/v1beta/models/gemini-2.5-flash:generateContent" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "prompt text" || gotBody.Contents[0].Role != "user" {
		t.Errorf("unexpected body %+v", gotBody)
	}
}

func TestModel(t *testing.T) {
	if got := NewClient(nil, Options{}).Model(); got != DefaultModel {
		t.Errorf("expected default model, got %q", got)
	}
	if got := NewClient(nil, Options{Model: " gemini-test "}).Model(); got != "gemini-test" {
		t.Errorf("expected trimmed model, got %q", got)
	}
}

func TestGenerateFallbackKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClient(nil, Options{BaseURL: srv.URL, LookupEnv: env(map[string]string{"API_KEY": " ", "GEMINI_API_KEY": "k-2"})})
	got, err := c.Generate(context.Background(), "p")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("expected empty reply, got %q", got)
	}
	if gotKey != "k-2" {
		t.Errorf("expected fallback key, got %q", gotKey)
	}
}

func TestGenerateMissingKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(nil, Options{BaseURL: srv.URL, LookupEnv: env(nil)})
	_, err := c.Generate(context.Background(), "p")
	if !errors.Is(err, ErrMissingAPIKey) || !errors.Is(err, tutor.ErrMissingCredential) {
		t.Errorf("expected ErrMissingCredential, got %v", err)
	}
	if called {
		t.Error("no request may be sent without a key")
	}
}

func TestGenerateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	c := NewClient(nil, Options{BaseURL: srv.URL, Model: "gemini-test", LookupEnv: env(map[string]string{"API_KEY": "bad"})})
	_, err := c.Generate(context.Background(), "p")

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if httpErr.HTTPStatusCode() != http.StatusForbidden {
		t.Errorf("expected 403, got %d", httpErr.StatusCode)
	}
	if !errors.Is(tutor.Classify(err), tutor.ErrServiceCall) {
		t.Error("http errors should classify as service failures")
	}
}

func TestGenerateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(nil, Options{BaseURL: srv.URL, LookupEnv: env(map[string]string{"API_KEY": "k"})})
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := c.Generate(ctx, "p")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestGenerateBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient(nil, Options{BaseURL: srv.URL, LookupEnv: env(map[string]string{"API_KEY": "k"})})
	if _, err := c.Generate(context.Background(), "p"); err == nil {
		t.Error("expected decode error")
	}
}

func TestSessionIntegration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(nil, Options{BaseURL: srv.URL, LookupEnv: env(map[string]string{"API_KEY": "k"})})
	s := tutor.NewSession(c)
	msg, ok := s.Submit(context.Background(), "hi")
	if !ok || msg.Text != "ok" {
		t.Errorf("unexpected result %v %+v", ok, msg)
	}
}
