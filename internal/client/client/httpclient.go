package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/netops/internal/client/models"
	"github.com/dmitrijs2005/netops/internal/common"
	"github.com/dmitrijs2005/netops/internal/logging"
)

// DefaultBaseURL is the backend the client talks to unless configured otherwise.
const DefaultBaseURL = "https://espresso-food-delivery-backend-cc3e106e2d34.herokuapp.com/"

const (
	endpointRegister = "register"
	endpointLogin    = "login"
	endpointProfile  = "profile"

	// maxErrorBody bounds how much of a failed response is kept in StatusError.
	maxErrorBody = 1 << 10
	// maxResponseBody bounds a successful response; larger bodies fail.
	maxResponseBody = 1 << 20
)

var errBodyTooLarge = fmt.Errorf("response body exceeds %d bytes", maxResponseBody)

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HTTPClient is the AuthClient backed by the JSON-over-HTTP backend.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	logger  logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client (platform default timeouts).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient validates baseURL and returns a client rooted at it.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", baseURL)
	}

	c := &HTTPClient{baseURL: u, http: &http.Client{}, logger: logging.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *HTTPClient) Register(ctx context.Context, fullName, email, password string) (string, error) {
	body := registerRequest{FullName: fullName, Email: email, Password: password}
	resp, err := c.post(ctx, endpointRegister, body)
	if err != nil {
		return "", err
	}
	return string(resp), nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := c.post(ctx, endpointLogin, loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	return string(resp), nil
}

func (c *HTTPClient) FetchProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL.JoinPath(endpointProfile, url.PathEscape(userID)), nil)
	if err != nil {
		return nil, err
	}
	p, err := decodeProfile(resp)
	if err != nil {
		return nil, parseError(endpointProfile, err)
	}
	return p, nil
}

func (c *HTTPClient) post(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, parseError(endpoint, err)
	}
	return c.do(ctx, http.MethodPost, c.baseURL.JoinPath(endpoint), data)
}

// do performs a single request/response exchange and returns the body of a
// 2xx response. Everything else is an ErrTransport.
func (c *HTTPClient) do(ctx context.Context, method string, u *url.URL, body []byte) ([]byte, error) {
	op := u.Path

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return nil, transportError(op, err)
	}
	req.Header.Set("Content-Type", common.ContentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(op, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "backend response", "method", method, "url", u.Redacted(), "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, transportError(op, &StatusError{Code: resp.StatusCode, Body: string(b)})
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody+1))
	if err != nil {
		return nil, transportError(op, err)
	}
	if len(data) > maxResponseBody {
		return nil, transportError(op, errBodyTooLarge)
	}
	return data, nil
}
