package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	// RequestTimeout is fixed for every backend call; there is no retry
	// and no caching, each call is one fresh request.
	RequestTimeout = 30 * time.Second

	maxResponseBytes = 4 << 20
)

// Client is the single configured HTTP client for the assistant backend.
// It attaches a bearer token from the session store at request time when
// one is present.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      ports.SessionStore
	logger     *zap.Logger
}

func NewClient(baseURL string, store ports.SessionStore, logger *zap.Logger) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("backend base url is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("backend base url must use http or https")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: RequestTimeout},
		store:      store,
		logger:     logger,
	}, nil
}

func (c *Client) Auth() *AuthAPI         { return &AuthAPI{client: c} }
func (c *Client) Email() *EmailAPI       { return &EmailAPI{client: c} }
func (c *Client) Calendar() *CalendarAPI { return &CalendarAPI{client: c} }
func (c *Client) Docs() *DocsAPI         { return &DocsAPI{client: c} }
func (c *Client) Code() *CodeAPI         { return &CodeAPI{client: c} }
func (c *Client) Chat() *ChatAPI         { return &ChatAPI{client: c} }

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := ports.Token(ctx, c.store); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("backend request", zap.String("method", method), zap.String("path", redactQuery(path)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := newError(resp.StatusCode, data)
		c.logger.Debug("backend error response",
			zap.String("path", redactQuery(path)),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", apiErr.Detail),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}

	return nil
}

func mapTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w after %s", domain.ErrRequestTimeout, RequestTimeout)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", domain.ErrRequestTimeout, RequestTimeout)
	}

	return fmt.Errorf("reach backend: %w", err)
}

// redactQuery keeps authorization codes out of the debug log.
func redactQuery(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
