// Package gateway is the HTTP client for the storefront API. The session
// rides on an httpOnly cookie held in the client's jar; a double-submit CSRF
// token cookie is mirrored into a request header for state-changing verbs.
// A 401 is recovered once via a silent refresh-and-retry before it is
// surfaced to the caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
)

const (
	csrfCookieName = "csrf_token"
	csrfHeaderName = "X-CSRF-Token"
	refreshPath    = "/api/auth/refresh"
)

// APIError is a non-2xx response decoded from the server's {error} body.
type APIError struct {
	Status  int
	Message string
}

// HTTPStatus lets callers branch on the status without importing this
// package's concrete error type.
func (e *APIError) HTTPStatus() int { return e.Status }

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.APIConfig, logger *slog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create cookie jar")
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
			Jar:     jar,
		},
		logger: logger,
	}, nil
}

// do issues one request and, on a 401, refreshes the session once and replays
// the original request once. Requests are never replayed twice.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.doWithHeaders(ctx, method, path, query, body, out, nil)
}

func (c *Client) doWithHeaders(ctx context.Context, method, path string, query url.Values, body, out any, headers map[string]string) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to marshal request body")
		}
	}

	resp, err := c.attempt(ctx, method, path, query, payload, headers)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && path != refreshPath {
		drain(resp)
		c.logger.Debug("session expired, attempting silent refresh", "path", path)
		if rerr := c.refresh(ctx); rerr != nil {
			return errs.Mark(errs.Wrap(rerr, "silent refresh failed"), errs.ErrUnauthorized)
		}
		resp, err = c.attempt(ctx, method, path, query, payload, headers)
		if err != nil {
			return err
		}
	}

	return decode(resp, out)
}

func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, payload []byte, headers map[string]string) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if isStateChanging(method) {
		if token := c.csrfToken(); token != "" {
			req.Header.Set(csrfHeaderName, token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "%s %s failed", method, path), errs.ErrAPIFailure)
	}
	return resp, nil
}

func (c *Client) refresh(ctx context.Context) error {
	resp, err := c.attempt(ctx, http.MethodPost, refreshPath, nil, nil, nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// Refresh renews the session cookie explicitly. The same endpoint is invoked
// implicitly when any request hits a 401.
func (c *Client) Refresh(ctx context.Context) error {
	return c.refresh(ctx)
}

func (c *Client) csrfToken() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == csrfCookieName {
			return ck.Value
		}
	}
	return ""
}

func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Message = body.Error
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return errs.Mark(apiErr, errs.ErrUnauthorized)
		}
		return apiErr
	}

	if out == nil {
		drain(resp)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode response body")
	}
	return nil
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) //nolint:errcheck
	resp.Body.Close()
}

func isStateChanging(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
