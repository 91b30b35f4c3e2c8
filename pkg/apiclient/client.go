// Package apiclient is a small Go client for the temple API. It keeps the
// session cookie in a jar and silently re-authenticates once when the
// server reports an expired token.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// TokenExpiredCode is the error code the API attaches to 401 responses
// caused by an expired (rather than missing or invalid) session token.
const TokenExpiredCode = "TOKEN_EXPIRED"

// Credentials are the signin details used for silent re-authentication.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Client talks to the temple API as one signed-in principal.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials Credentials
	signinPath  string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A cookie jar is
// installed on it if it has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSigninPath overrides the signin endpoint, for super admin sessions.
func WithSigninPath(path string) Option {
	return func(c *Client) {
		c.signinPath = path
	}
}

// New builds a client for the API at baseURL.
func New(baseURL string, creds Credentials, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		credentials: creds,
		signinPath:  "/api/user/signin",
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.httpClient.Jar = jar
	}
	return c, nil
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Signin authenticates with the stored credentials. The session cookie
// lands in the jar.
func (c *Client) Signin(ctx context.Context) error {
	body, err := json.Marshal(c.credentials)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.signinPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return parseAPIError(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

// Do sends the request and decodes the JSON response into out (when out is
// non-nil). If the API answers with the token-expired code, the client
// re-authenticates exactly once and retries the request exactly once; any
// failure after that surfaces to the caller.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}

	if isTokenExpired(resp) {
		resp.Body.Close()
		if err := c.Signin(ctx); err != nil {
			return err
		}
		resp, err = c.send(ctx, method, path, body)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.httpClient.Do(req)
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// isTokenExpired peeks at the response to see whether it carries the
// token-expired code. The body is replaced so later readers still see it.
func isTokenExpired(resp *http.Response) bool {
	if resp.StatusCode != http.StatusUnauthorized {
		return false
	}

	data, err := io.ReadAll(resp.Body)
	resp.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return false
	}

	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return false
	}
	return body.Code == TokenExpiredCode
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

	data, err := io.ReadAll(resp.Body)
	if err == nil {
		var body errorBody
		if json.Unmarshal(data, &body) == nil && body.Error != "" {
			apiErr.Message = body.Error
			apiErr.Code = body.Code
		}
	}
	return apiErr
}
