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
	"sync"

	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/dmitrijs2005/fittrack/internal/logging"
	"github.com/dmitrijs2005/fittrack/internal/sanitize"
	"github.com/google/uuid"
)

// TokenStore is the persisted bearer token as seen by the client.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Navigator moves the user interface to another route.
type Navigator interface {
	Navigate(route string)
}

type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

// Client performs JSON requests against the FitTrack backend.
type Client struct {
	baseURL   string
	http      *http.Client
	logger    logging.Logger
	tokens    TokenStore
	navigator Navigator

	mu            sync.RWMutex
	authorization string
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetAuthorization installs "Bearer <token>" as the default Authorization
// header for every later request.
func (c *Client) SetAuthorization(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token == "" {
		c.authorization = ""
		return
	}
	c.authorization = "Bearer " + token
}

func (c *Client) ClearAuthorization() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authorization = ""
}

// Authorization returns the current default Authorization header value.
func (c *Client) Authorization() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authorization
}

func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}

func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body, opts)
}

func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body, opts)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, opts)
}

func (c *Client) do(ctx context.Context, method, path string, body any, opts []RequestOption) (*Response, error) {
	rc := newRequestConfig(opts)

	req, err := c.newRequest(ctx, method, path, body, rc)
	if err != nil {
		c.logger.Error(ctx, "api request setup failed", "method", method, "path", path, "error", err)
		return nil, unexpectedError(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error(ctx, "api network error", "method", method, "path", path, "error", err)
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error(ctx, "api network error", "method", method, "path", path, "error", err)
		return nil, networkError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.endSession(ctx)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := statusError(resp.StatusCode, data)
		c.logger.Error(ctx, "api error", "method", method, "path", path, "status", apiErr.Status, "message", apiErr.Message)
		return nil, apiErr
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, rc *requestConfig) (*http.Request, error) {
	target, err := c.resolve(path)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		payload, err := encodeBody(body, rc.skipSanitize)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}

	if err := c.intercept(ctx, req, rc); err != nil {
		return nil, err
	}
	return req, nil
}

// intercept applies headers in increasing order of precedence; the stored
// token always has the last word on Authorization.
func (c *Client) intercept(ctx context.Context, req *http.Request, rc *requestConfig) error {
	req.Header.Set(common.ContentTypeHeaderName, common.JSONContentType)
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	if auth := c.Authorization(); auth != "" {
		req.Header.Set(common.AuthorizationHeaderName, auth)
	}

	for key, values := range rc.headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to read auth token: %w", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
	return nil
}

// endSession runs on every 401, including the ones answering a login
// attempt.
func (c *Client) endSession(ctx context.Context) {
	if c.tokens != nil {
		if err := c.tokens.Clear(ctx); err != nil {
			c.logger.Error(ctx, "failed to clear auth token", "error", err)
		}
	}
	c.ClearAuthorization()
	if c.navigator != nil {
		c.navigator.Navigate(common.LoginRoute)
	}
}

func (c *Client) resolve(path string) (string, error) {
	if c.baseURL == "" {
		u, err := url.Parse(path)
		if err != nil {
			return "", err
		}
		if !u.IsAbs() {
			return "", fmt.Errorf("relative path %q without base URL", path)
		}
		return u.String(), nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// encodeBody marshals body to JSON. Unless skip is set the JSON is decoded
// into generic values, HTML-escaped and encoded again.
func encodeBody(body any, skip bool) ([]byte, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	if skip {
		return raw, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(sanitize.Value(generic)); err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Response is a successful (2xx) reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

var ErrEmptyBody = errors.New("empty response body")

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return ErrEmptyBody
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
