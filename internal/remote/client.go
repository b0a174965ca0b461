package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/joefazee/directory-admin/internal/logger"
)

const maxResponseBytes = 10 << 20

type Config struct {
	BaseURL string        `env:"REMOTE_API_BASE_URL" env-default:"https://e-commerce-three-sigma-49.vercel.app/api" validate:"required,url"`
	Timeout time.Duration `env:"REMOTE_API_TIMEOUT" env-default:"30s"`
}

// Envelope is the shape every endpoint answers with.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Payload is an encoded request body.
type Payload struct {
	ContentType string
	Body        []byte
}

// JSON encodes v as an application/json payload.
func JSON(v interface{}) (*Payload, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("remote: encode body: %w", err)
	}
	return &Payload{ContentType: "application/json", Body: b}, nil
}

type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

func New(cfg Config, l logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     l,
	}
}

// Call performs one request and decodes the envelope's data into T.
// It never retries.
func Call[T any](ctx context.Context, c *Client, method, path string, body *Payload) (T, error) {
	var out Envelope[T]
	err := c.do(ctx, method, path, body, &out)
	return out.Data, err
}

// Do performs a request whose response data is ignored, like deletes.
func (c *Client) Do(ctx context.Context, method, path string, body *Payload) error {
	var out Envelope[json.RawMessage]
	return c.do(ctx, method, path, body, &out)
}

type envelopeStatus interface {
	status() (bool, string)
}

func (e *Envelope[T]) status() (bool, string) {
	msg := e.Message
	if msg == "" {
		msg = e.Error
	}
	return e.Success, msg
}

func (c *Client) do(ctx context.Context, method, path string, body *Payload, out envelopeStatus) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("remote: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", body.ContentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(err, map[string]interface{}{"method": method, "path": path})
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read %s %s: %w", ErrTransport, method, path, err)
	}

	c.log.Debug("remote call", map[string]interface{}{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	})

	decodeErr := json.Unmarshal(raw, out)
	success, msg := out.status()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("remote: decode %s %s: %w", method, path, decodeErr)
	}
	if !success {
		if msg == "" {
			msg = "request was not successful"
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	return nil
}
