package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/logger"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/tutor"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
)

// KeyEnv lists the variables searched for the credential, in order.
var KeyEnv = []string{"API_KEY", "GEMINI_API_KEY"}

// ErrMissingAPIKey is returned before any request when no key is set.
var ErrMissingAPIKey = fmt.Errorf("gemini: %w: set %s", tutor.ErrMissingCredential, strings.Join(KeyEnv, " or "))

type Options struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Client calls the generateContent endpoint. The credential is read on every
// call, so a key exported after start-up is picked up without a restart.
type Client struct {
	log        *logger.Logger
	baseURL    string
	model      string
	httpClient *http.Client
	lookupEnv  func(string) (string, bool)
}

func NewClient(log *logger.Logger, opts Options) *Client {
	if log == nil {
		log = logger.Nop()
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Client{
		log:        log,
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		lookupEnv:  lookup,
	}
}

func (c *Client) Model() string { return c.model }

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

// HTTPError is a non-2xx reply from the service.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("gemini http %d: %s", e.StatusCode, e.Body)
}

func (e *HTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

// Generate sends prompt as one user content block and returns the text of the
// first candidate. An empty reply is not an error.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	key := c.apiKey()
	if key == "" {
		return "", ErrMissingAPIKey
	}

	body := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	raw, err := c.doOnce(ctx, key, "/v1beta/models/"+c.model+":generateContent", body)
	if err != nil {
		return "", err
	}

	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("gemini decode error: %w; raw=%s", err, string(raw))
	}
	if len(resp.Candidates) == 0 {
		c.log.Debug("gemini returned no candidates", "model", c.model)
		return "", nil
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}

func (c *Client) doOnce(ctx context.Context, key, path string, body any) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", key)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}

	c.log.Debug("gemini request",
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start).String(),
	)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

func (c *Client) apiKey() string {
	for _, name := range KeyEnv {
		if v, ok := c.lookupEnv(name); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}
