package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DanielPopoola/checkout-sdk/internal/config"
	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/google/uuid"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-Id"
	contentTypeJSON     = "application/json"
)

// Request describes one backend call. Path is joined to the base URL unless
// it is already absolute.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers map[string]string
}

// Doer executes a request and decodes a successful JSON reply into out.
type Doer interface {
	Do(ctx context.Context, req Request, out any) error
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger

	root   context.Context
	cancel context.CancelFunc
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient builds a client for the environment named in cfg. A missing API
// key is rejected here so no request can ever leave without credentials.
func NewClient(cfg config.SDKConfig, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, domain.NewError(domain.ErrCodeMerchantCredentialRequired)
	}

	baseURL, ok := domain.BaseURL(domain.Environment(cfg.Mode), cfg.DevelopmentURL)
	if !ok {
		return nil, domain.WrapError(domain.ErrCodeInvalidConfig, fmt.Errorf("unknown mode %q", cfg.Mode))
	}

	root, cancel := context.WithCancel(context.Background())
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
		root:       root,
		cancel:     cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) APIKey() string {
	return c.apiKey
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Cleanup aborts every in-flight request. Requests issued afterwards fail
// with REQUEST_ABORTED.
func (c *Client) Cleanup() {
	c.cancel()
}

func (c *Client) Do(ctx context.Context, req Request, out any) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.root, cancel)
	defer stop()

	if c.root.Err() != nil {
		return abortedError(c.root.Err())
	}

	target, err := c.resolve(req)
	if err != nil {
		return unknownError(err)
	}

	var bodyReader io.Reader
	if req.Body != nil {
		jsonData, err := json.Marshal(req.Body)
		if err != nil {
			return unknownError(fmt.Errorf("error marshalling json: %w", err))
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return unknownError(fmt.Errorf("error creating request: %w", err))
	}

	httpReq.Header.Set(headerContentType, contentTypeJSON)
	httpReq.Header.Set(headerAuthorization, "Token "+c.apiKey)
	httpReq.Header.Set(headerRequestID, uuid.NewString())
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() == context.Canceled {
			return abortedError(err)
		}
		return failedError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend call",
		"method", req.Method,
		"url", target,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		body := map[string]any{}
		_ = json.Unmarshal(raw, &body)
		return httpError(resp.StatusCode, body)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		if ctx.Err() == context.Canceled {
			return abortedError(err)
		}
		return unknownError(fmt.Errorf("error decoding json response: %w", err))
	}
	return nil
}

func (c *Client) resolve(req Request) (string, error) {
	raw := req.Path
	if !isAbsolute(raw) {
		raw = c.baseURL + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if len(req.Query) > 0 {
		q := u.Query()
		for k, vs := range req.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func isAbsolute(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Option adjusts a single request built by Get, Post or Delete.
type Option func(*Request)

func WithHeader(key, value string) Option {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = map[string]string{}
		}
		r.Headers[key] = value
	}
}

func WithQuery(q url.Values) Option {
	return func(r *Request) {
		r.Query = q
	}
}

func Get[Resp any](ctx context.Context, d Doer, path string, opts ...Option) (*Resp, error) {
	return send[Resp](ctx, d, http.MethodGet, path, nil, opts)
}

func Post[Resp any](ctx context.Context, d Doer, path string, body any, opts ...Option) (*Resp, error) {
	return send[Resp](ctx, d, http.MethodPost, path, body, opts)
}

func Delete[Resp any](ctx context.Context, d Doer, path string, opts ...Option) (*Resp, error) {
	return send[Resp](ctx, d, http.MethodDelete, path, nil, opts)
}

func send[Resp any](ctx context.Context, d Doer, method, path string, body any, opts []Option) (*Resp, error) {
	req := Request{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(&req)
	}

	var resp Resp
	if err := d.Do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
