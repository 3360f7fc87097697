// Package api talks to the remote product REST service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cristianoliveira/shelf/internal/config"
	"github.com/cristianoliveira/shelf/internal/logging"
	"github.com/cristianoliveira/shelf/internal/product"
)

const (
	productsPath = "products"
	// maxBody bounds how much of a response is read.
	maxBody = 8 << 20
)

// Operation names used in StatusError and logs.
const (
	OpFetch  = "fetch products"
	OpCreate = "create product"
	OpUpdate = "update product"
	OpDelete = "delete product"
)

// Client issues product calls against the remote service. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithLogger sets the logger used for request traces. By default the
// global logger at call time is used.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient builds a client for baseURL, e.g. https://fakestoreapi.com.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig reads api_base_url and request_timeout.
func NewFromConfig() *Client {
	return NewClient(
		config.Get("api_base_url", config.DefaultAPIBaseURL),
		WithTimeout(config.GetDuration("request_timeout", 0)),
	)
}

func (c *Client) logger() logging.Logger {
	if c.log != nil {
		return c.log
	}
	return logging.With("component", "api")
}

// BaseURL returns the normalized service root.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchProducts lists the remote catalog. A JSON body that is not an array
// yields an empty list; array elements that are not products are skipped.
func (c *Client) FetchProducts(ctx context.Context) ([]product.Product, error) {
	body, err := c.do(ctx, OpFetch, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%s: decode body: %w", OpFetch, err)
	}
	if _, ok := raw.([]any); !ok {
		c.logger().Warn("product list is not an array", "type", fmt.Sprintf("%T", raw))
		return []product.Product{}, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		return nil, fmt.Errorf("%s: decode body: %w", OpFetch, err)
	}
	items := make([]product.Product, 0, len(elems))
	for i, elem := range elems {
		var p product.Product
		if err := json.Unmarshal(elem, &p); err != nil {
			c.logger().Warn("skipping malformed product", "index", i, "error", err)
			continue
		}
		items = append(items, p)
	}
	c.logger().Debug("fetched products", "count", len(items))
	return items, nil
}

// CreateProduct posts a new product and returns the service echo.
func (c *Client) CreateProduct(ctx context.Context, payload product.Payload) (product.Patch, error) {
	body, err := c.do(ctx, OpCreate, http.MethodPost, payload, productsPath)
	if err != nil {
		return product.Patch{}, err
	}
	return decodePatch(OpCreate, body)
}

// UpdateProduct replaces the product with the given id and returns the echo.
func (c *Client) UpdateProduct(ctx context.Context, id string, payload product.Payload) (product.Patch, error) {
	if strings.TrimSpace(id) == "" {
		return product.Patch{}, ErrMissingID
	}
	body, err := c.do(ctx, OpUpdate, http.MethodPut, payload, productsPath, id)
	if err != nil {
		return product.Patch{}, err
	}
	return decodePatch(OpUpdate, body)
}

// DeleteResult is the outcome of a delete call. Body is nil when the
// service answered with an empty body.
type DeleteResult struct {
	Success bool
	Body    json.RawMessage
}

// DeleteProduct removes the product with the given id.
func (c *Client) DeleteProduct(ctx context.Context, id string) (DeleteResult, error) {
	if strings.TrimSpace(id) == "" {
		return DeleteResult{}, ErrMissingID
	}
	body, err := c.do(ctx, OpDelete, http.MethodDelete, nil, productsPath, id)
	if err != nil {
		return DeleteResult{}, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return DeleteResult{Success: true}, nil
	}
	if !json.Valid(body) {
		return DeleteResult{}, fmt.Errorf("%s: decode body: invalid JSON", OpDelete)
	}
	return DeleteResult{Success: true, Body: json.RawMessage(body)}, nil
}

func decodePatch(op string, body []byte) (product.Patch, error) {
	var patch product.Patch
	if len(bytes.TrimSpace(body)) == 0 {
		return patch, nil
	}
	if err := json.Unmarshal(body, &patch); err != nil {
		return product.Patch{}, fmt.Errorf("%s: decode body: %w", op, err)
	}
	return patch, nil
}

// do sends one request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, op, method string, payload any, segments ...string) ([]byte, error) {
	if len(segments) == 0 {
		segments = []string{productsPath}
	}
	endpoint, err := url.JoinPath(c.baseURL, segments...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: encode payload: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger().Warn("request failed", "op", op, "url", endpoint, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger().Debug("request done", "op", op, "method", method, "url", endpoint, "status", resp.StatusCode, "elapsed", time.Since(start))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		c.logger().Warn("unexpected status", "op", op, "status", resp.StatusCode)
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}
	return body, nil
}
