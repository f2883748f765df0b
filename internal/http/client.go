// Package http implements the authenticated request pipeline: URL and
// header assembly, body serialization, dispatch, response normalization,
// and error classification.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/verge-client/internal/constants"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

// Logger interface for the HTTP layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents one API call before dispatch.
type Request struct {
	Method   string
	Endpoint string
	Query    url.Values
	Body     interface{}
	Headers  map[string]string
}

// Response is the raw result of a dispatched call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client issues authenticated calls against one connection. The pipeline
// itself holds no mutable state; callers may share a Client across
// goroutines.
type Client struct {
	conn       verge.Connection
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug request/response logging.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig opts in to transport-level retries. The default is no
// retries: a transient failure surfaces immediately as a classified error.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a request pipeline bound to a connection.
func NewClient(conn verge.Connection, opts ...Option) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = constants.DefaultRetryMax
	httpClient.RetryWaitMax = constants.DefaultRetryWaitMax
	httpClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	httpClient.Logger = nil

	if conn != nil && conn.SkipCertVerification() {
		httpClient.HTTPClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402 -- connection policy is explicit opt-in
		}
	}

	client := &Client{
		conn:       conn,
		httpClient: httpClient,
		userAgent:  "verge-client/1.0",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do dispatches one request. A non-2xx status returns both the response
// and a classified *verge.APIError; a missing or invalid connection
// returns a *verge.ConfigError before any network activity.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.conn == nil {
		return nil, &verge.ConfigError{Reason: "no connection supplied"}
	}

	if !c.conn.IsValid() {
		return nil, &verge.ConfigError{Reason: "connection is not valid"}
	}

	fullURL := c.conn.BaseURL() + "/" + strings.TrimPrefix(req.Endpoint, "/")
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	bodyReader, err := serializeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.setHeaders(httpReq, req)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode >= 400 {
		return resp, verge.Classify(resp.StatusCode, respBody)
	}

	return resp, nil
}

// serializeBody encodes the request body for mutating methods. Bodies on
// GET and DELETE are ignored.
func serializeBody(req *Request) (io.Reader, error) {
	if req.Body == nil {
		return nil, nil
	}

	switch req.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return nil, nil
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return bytes.NewReader(data), nil
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request) {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	scheme := c.conn.AuthScheme()
	if scheme == "" {
		scheme = constants.SchemeBasic
	}

	if credential := c.conn.Credential(); credential != "" {
		httpReq.Header.Set("Authorization", scheme+" "+credential)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Endpoint: endpoint, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Endpoint: endpoint, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Endpoint: endpoint, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Endpoint: endpoint, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Endpoint: endpoint})
}

// Execute issues one call and returns the normalized record sequence. It
// is the generic surface every per-resource client is built on.
func (c *Client) Execute(ctx context.Context, method, endpoint string, body interface{}, query *verge.Query) ([]verge.Record, error) {
	req := &Request{
		Method:   method,
		Endpoint: endpoint,
		Body:     body,
		Query:    query.Values(),
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	records, err := verge.NormalizeRecords(resp.Body)
	if err != nil {
		return nil, err
	}

	return records, nil
}
