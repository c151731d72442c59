package arr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
)

// Client performs authenticated round-trips against one *arr instance.
// It is immutable after construction: the base URL, API key and version
// prefix never change for the lifetime of the process, so a Client is safe
// for concurrent use without locking.
type Client struct {
	service Service
	baseURL string
	apiKey  string
	version string
	httpc   *http.Client
	logger  *log.Logger
}

// ClientOption customizes a Client at construction time.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests to count
// or fake transport calls.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpc = h }
}

// NewClient builds a client for one service family. Any trailing slash on
// baseURL is stripped once, here, so URL assembly never produces double
// slashes. No timeout is applied; cancellation comes from the caller's
// context.
func NewClient(service Service, baseURL, apiKey string, logger *log.Logger, opts ...ClientOption) *Client {
	c := &Client{
		service: service,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		version: service.APIVersion(),
		httpc:   &http.Client{},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Service returns the family this client talks to.
func (c *Client) Service() Service {
	return c.service
}

// requestOptions carries per-request knobs.
type requestOptions struct {
	headers http.Header
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

// WithHeader sets or overrides one header on the request. Overriding
// X-Api-Key replaces the configured key for that request only.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = http.Header{}
		}
		o.headers.Set(key, value)
	}
}

// endpointURL assembles {baseURL}/api/{version}{path}. path must begin
// with "/".
func (c *Client) endpointURL(path string, query url.Values) string {
	u := c.baseURL + "/api/" + c.version + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do performs one round-trip and returns the raw response body. Non-2xx
// responses become *APIError; transport failures surface verbatim, wrapped
// with the service name. No retries, no caching.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, opts ...RequestOption) ([]byte, error) {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request body: %w", c.service, err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.endpointURL(path, query)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.service, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	for key, values := range o.headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	c.logger.Debug("arr request", "service", c.service, "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.service, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Body read is best-effort on failures; an unreadable body still
		// yields a usable error with the status line.
		text := ""
		if err == nil {
			text = string(data)
		}
		return nil, &APIError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       text,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read response body: %w", c.service, err)
	}
	return data, nil
}

// Get performs a GET and decodes the JSON response into out. A nil out
// discards the body.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any, opts ...RequestOption) error {
	data, err := c.do(ctx, http.MethodGet, path, query, nil, opts...)
	if err != nil {
		return err
	}
	return c.decode(data, out)
}

// Post performs a POST with a JSON body and decodes the JSON response into
// out. A nil out discards the body.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	data, err := c.do(ctx, http.MethodPost, path, nil, body, opts...)
	if err != nil {
		return err
	}
	return c.decode(data, out)
}

func (c *Client) decode(data []byte, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", c.service, err)
	}
	return nil
}
