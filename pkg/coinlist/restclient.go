package coinlist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Observer receives one notification per dispatched request.
// status is 0 when no response was received.
type Observer interface {
	ObserveRequest(method string, status int, elapsed time.Duration, err error)
}

// RESTClient signs and sends requests to the CoinList Pro REST API.
// All fields are set at construction; a RESTClient is safe for concurrent use.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	signer     *Signer
	logger     *zap.Logger
	now        func() time.Time
	observer   Observer
}

// Option customizes a RESTClient.
type Option func(*RESTClient)

// WithHTTPClient replaces the default http.Client (e.g. with an httptest client).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *RESTClient) { c.httpClient = hc }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *RESTClient) { c.logger = logger }
}

// WithClock overrides the clock used for request timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *RESTClient) { c.now = now }
}

func WithObserver(o Observer) Option {
	return func(c *RESTClient) { c.observer = o }
}

func NewRESTClient(baseURL string, timeout time.Duration, signer *Signer, opts ...Option) *RESTClient {
	c := &RESTClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		signer:     signer,
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dispatch sends exactly one signed request and returns the response body as raw JSON.
// The HTTP status is not interpreted: exchange error payloads are returned like any
// other JSON document and must be checked by the caller.
func (c *RESTClient) Dispatch(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	raw, _, err := c.send(ctx, method, path, body, query)
	return raw, err
}

// call is Dispatch for typed endpoints: a non-2xx status becomes an *APIError
// and the JSON payload is decoded into out (when out is non-nil).
func (c *RESTClient) call(ctx context.Context, method, path string, body any, query url.Values, out any) error {
	raw, status, err := c.send(ctx, method, path, body, query)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return newAPIError(status, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *RESTClient) send(ctx context.Context, method, path string, body any, query url.Values) (raw json.RawMessage, status int, err error) {
	if !isSupportedMethod(method) {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}
	if c.signer == nil {
		return nil, 0, fmt.Errorf("%w: signer not set", ErrInvalidCredentials)
	}

	pathWithQuery := PathWithQuery(path, query)

	payload, err := CanonicalJSON(body)
	if err != nil {
		return nil, 0, fmt.Errorf("encode request body: %w", err)
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	signature := c.signer.Sign(SigningMessage(timestamp, method, pathWithQuery, payload))

	// The signed payload string is the transmitted payload.
	var reqBody io.Reader
	if payload != "" {
		reqBody = strings.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+pathWithQuery, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderAccessKey, c.signer.AccessKey())
	req.Header.Set(HeaderAccessSignature, signature)
	req.Header.Set(HeaderAccessTimestamp, timestamp)

	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		if c.observer != nil {
			c.observer.ObserveRequest(method, status, elapsed, err)
		}
		if err != nil {
			c.logger.Warn("coinlist request failed",
				zap.String("method", method),
				zap.String("path", pathWithQuery),
				zap.Int("status", status),
				zap.Duration("elapsed", elapsed),
				zap.Error(err))
			return
		}
		c.logger.Debug("coinlist request",
			zap.String("method", method),
			zap.String("path", pathWithQuery),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed))
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, status, fmt.Errorf("read response: %w", err)
	}

	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return nil, status, fmt.Errorf("%w: status %d: %q", ErrInvalidResponse, status, truncate(data, 256))
	}

	return json.RawMessage(data), status, nil
}

// PathWithQuery appends the encoded query to path. The result is both the signed
// path and the request target, so its encoding and ordering are fixed here only.
func PathWithQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	encoded := query.Encode()
	if encoded == "" {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&" + encoded
	}
	return path + "?" + encoded
}

// CanonicalJSON renders body as compact JSON without a trailing newline.
// A nil body and empty objects or arrays render as the empty string.
func CanonicalJSON(body any) (string, error) {
	if body == nil {
		return "", nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return "", err
	}

	out := strings.TrimSuffix(buf.String(), "\n")
	switch out {
	case "null", "{}", "[]":
		return "", nil
	}
	return out, nil
}

func isSupportedMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPatch:
		return true
	}
	return false
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
