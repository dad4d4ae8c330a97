// Package httpclient issues JSON requests against the wedding REST API and
// turns every non-2xx response into an *apperrors.HTTPError.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/logger"
)

// DefaultTimeout bounds every request unless Config.Timeout says otherwise.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of a failed response body is read for the message.
const maxErrorBody = 64 << 10

// UnauthorizedBehavior selects what Query does with a 401 response.
type UnauthorizedBehavior int

const (
	// UnauthorizedFail returns the 401 as an *apperrors.HTTPError.
	UnauthorizedFail UnauthorizedBehavior = iota
	// UnauthorizedReturnNull reports "no value" instead of failing, which lets
	// callers tell "not signed in" apart from real errors.
	UnauthorizedReturnNull
)

// Config contains tunables for the client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is a thin JSON client for the external API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// New constructs a Client. A zero timeout means DefaultTimeout.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		logger:  logger.Component("httpclient"),
	}
}

// BaseURL returns the API root every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request sends body (JSON-encoded when non-nil) and decodes a successful
// response into out (skipped when out is nil or the body is empty).
func (c *Client) Request(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkResponse(method, path, resp); err != nil {
		return err
	}
	_, err = c.decode(method, path, resp, out)
	return err
}

// Get is Request with GET and no body.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.Request(ctx, http.MethodGet, path, nil, out)
}

// Query is the read path used by the cache. found is false when the server
// answered 401 and on401 is UnauthorizedReturnNull, or when a successful
// response carried no body.
func (c *Client) Query(ctx context.Context, path string, on401 UnauthorizedBehavior, out interface{}) (found bool, err error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if on401 == UnauthorizedReturnNull && resp.StatusCode == http.StatusUnauthorized {
		c.logger.Debug().Str("path", path).Msg("Unauthorized response treated as empty")
		return false, nil
	}

	if err := c.checkResponse(http.MethodGet, path, resp); err != nil {
		return false, err
	}
	decoded, err := c.decode(http.MethodGet, path, resp, out)
	if err != nil {
		return false, err
	}
	return decoded || out == nil, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("API request failed to complete")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// checkResponse converts a non-2xx response into an HTTPError and logs it.
func (c *Client) checkResponse(method, path string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	httpErr := errorFromResponse(resp)
	c.logger.Error().
		Str("method", method).
		Str("path", path).
		Int("status", httpErr.Status).
		Str("code", string(httpErr.Code)).
		Msg(httpErr.Message)
	return httpErr
}

// decode reports whether a body was decoded into out.
func (c *Client) decode(method, path string, resp *http.Response, out interface{}) (bool, error) {
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}

	err := json.NewDecoder(resp.Body).Decode(out)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("Failed to decode API response")
		return false, fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return true, nil
}

// errorBody is the error contract of the wedding API.
type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// errorFromResponse uses the JSON `message` field when the body is JSON and the
// raw body text otherwise; an empty message falls back to the status text.
func errorFromResponse(resp *http.Response) *apperrors.HTTPError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		return apperrors.NewHTTPError(resp.StatusCode, body.Message, apperrors.ParseErrorCode(body.Code))
	}

	return apperrors.NewHTTPError(resp.StatusCode, strings.TrimSpace(string(raw)), apperrors.CodeUnknown)
}
