// Package client is a typed HTTP client for the user API. Every call maps
// one-to-one onto a route and uses the types in package contract.
package client

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

	"gin-user-rpc/pkg/contract"
)

const DefaultBaseURL = "http://localhost:3000"

type Client struct {
	base *url.URL
	hc   *http.Client
	log  *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.hc = hc } }

func WithLogger(l *zap.Logger) Option { return func(c *Client) { c.log = l } }

// New builds a client for the service at baseURL. Calls never retry.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	c := &Client{base: u, hc: &http.Client{Timeout: 30 * time.Second}, log: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]contract.User, error) {
	var out []contract.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []contract.User{}
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (contract.User, error) {
	var out contract.User
	err := c.do(ctx, http.MethodGet, userPath(id), nil, &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, in contract.CreateUserInput) (contract.User, error) {
	var out contract.User
	err := c.do(ctx, http.MethodPost, "/users", in, &out)
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, id int, in contract.UpdateUserInput) (contract.User, error) {
	var out contract.User
	err := c.do(ctx, http.MethodPut, userPath(id), in, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id int) (contract.DeleteResult, error) {
	var out contract.DeleteResult
	err := c.do(ctx, http.MethodDelete, userPath(id), nil, &out)
	return out, err
}

func userPath(id int) string { return "/users/" + strconv.Itoa(id) }

func (c *Client) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &TransportError{Method: method, Path: path, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(contract.HeaderVersion, contract.Version)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: fmt.Errorf("read response: %w", err)}
	}
	c.log.Debug("request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		se := &StatusError{Method: method, Path: path, StatusCode: res.StatusCode}
		// a body that is not an ErrorBody still yields a StatusError
		_ = json.Unmarshal(raw, &se.Body)
		return se
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Method: method, Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

