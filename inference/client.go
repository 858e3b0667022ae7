package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	lawlens "github.com/lawlens/lawlens"
)

// maxErrorBodyChars bounds how much of a failed response body is carried
// into the error, so logs stay readable.
const maxErrorBodyChars = 1000

// Config holds everything a Client needs. No ambient state: endpoint, auth,
// and generation parameters are all explicit.
type Config struct {
	// Endpoint is the full invocation URL of the text-generation endpoint.
	Endpoint string
	// Token, when non-empty, is sent as a bearer token.
	Token string

	// Generation parameters. Zero values take the defaults below.
	MaxNewTokens int     // default 2048
	Temperature  float64 // default 0.3
	TopP         float64 // default 0.9

	// HTTPClient overrides the transport. Nil means http.DefaultClient;
	// callers set timeouts via context, not the client.
	HTTPClient *http.Client
	// Logger receives request/response logs. Nil means slog.Default().
	Logger *slog.Logger
}

// Client calls a hosted text-generation endpoint with a legal-analysis
// prompt and returns the raw generated text. Parsing that text into a
// LawRecord is the normalize package's job.
type Client struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// NewClient builds a Client from cfg, filling generation-parameter defaults.
func NewClient(cfg Config) *Client {
	if cfg.MaxNewTokens == 0 {
		cfg.MaxNewTokens = 2048
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.3
	}
	if cfg.TopP == 0 {
		cfg.TopP = 0.9
	}
	c := &Client{cfg: cfg, client: cfg.HTTPClient, logger: cfg.Logger}
	if c.client == nil {
		c.client = http.DefaultClient
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// generateRequest is the wire format of a text-generation invocation.
type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	TopP         float64 `json:"top_p"`
}

// Analyze sends the document through the endpoint and returns the model's
// raw generated text. Transport failures, non-200 statuses, and context
// cancellation all surface as *lawlens.ErrInference.
func (c *Client) Analyze(ctx context.Context, documentText, filename string) (string, error) {
	reqID := lawlens.NewID()
	prompt := BuildPrompt(documentText, filename)

	body := generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxNewTokens: c.cfg.MaxNewTokens,
			Temperature:  c.cfg.Temperature,
			TopP:         c.cfg.TopP,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", &lawlens.ErrInference{Endpoint: c.cfg.Endpoint, Message: fmt.Sprintf("marshal request: %v", err)}
	}

	c.logger.Debug("inference request",
		"request_id", reqID,
		"filename", filename,
		"prompt_chars", len(prompt))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &lawlens.ErrInference{Endpoint: c.cfg.Endpoint, Message: fmt.Sprintf("create request: %v", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Warn("inference call failed", "request_id", reqID, "error", err)
		return "", &lawlens.ErrInference{Endpoint: c.cfg.Endpoint, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &lawlens.ErrInference{Endpoint: c.cfg.Endpoint, Status: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("inference endpoint returned error status",
			"request_id", reqID,
			"status", resp.StatusCode)
		return "", &lawlens.ErrInference{
			Endpoint: c.cfg.Endpoint,
			Status:   resp.StatusCode,
			Message:  clip(string(respBody), maxErrorBodyChars),
		}
	}

	generated := UnwrapEnvelope(respBody)
	c.logger.Debug("inference response",
		"request_id", reqID,
		"generated_chars", len(generated))
	return generated, nil
}

// clip cuts s to at most limit runes with no marker, for error payloads.
func clip(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
