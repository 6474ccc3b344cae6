package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/google/uuid"
	"github.com/rayaboutique242-create/raya-console/internal/config"
	"github.com/rayaboutique242-create/raya-console/internal/errors"
	"github.com/rayaboutique242-create/raya-console/sessions"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderTenantID      = "X-Tenant-ID"
	HeaderRequestID     = "X-Request-ID"
	HeaderContentType   = "Content-Type"

	contentTypeJSON = "application/json"
)

// Options describe one API call. Body is sent as-is and may be replayed once after a refresh.
type Options struct {
	Method  string
	Body    []byte
	Headers map[string]string
}

// Client issues API requests on behalf of the session it owns.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	session      *sessions.Manager
	refreshGroup singleflight.Group
	requestID    func() string
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithHTTPClient replaces the default client. Give it a cookie jar if the server's
// refresh cookie must round-trip.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRequestIDFunc sets the generator of X-Request-ID values (primarily for testing).
func WithRequestIDFunc(requestID func() string) ClientOption {
	return func(c *Client) {
		if requestID != nil {
			c.requestID = requestID
		}
	}
}

// New creates a Client for the configured API. The default HTTP client keeps
// cookies so server-set credentials are sent back on later calls.
func New(cfg config.APIConfig, session *sessions.Manager, options ...ClientOption) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("[client.New] config is required")
	}
	if session == nil {
		return nil, errors.New("[client.New] session manager is required")
	}
	baseURL := strings.TrimRight(cfg.GetAPIBaseURL(), "/")
	if baseURL == "" {
		return nil, errors.New("[client.New] API base URL is required")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrapf(err, "[client.New] cookie jar")
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Jar: jar, Timeout: cfg.GetHTTPTimeout()},
		session:    session,
		requestID:  uuid.NewString,
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Session returns the session manager the client reads tokens from.
func (c *Client) Session() *sessions.Manager {
	return c.session
}

// Request issues a call to path. When the API rejects the access token and
// allowRetry is set, the session is refreshed once and the call is replayed with
// allowRetry cleared. Credential endpoints never trigger a refresh.
func (c *Client) Request(ctx context.Context, path string, opts Options, allowRetry bool) (*Response, error) {
	res, sentToken, err := c.send(ctx, path, opts, true)
	if err != nil {
		return nil, err
	}

	if res.StatusCode == http.StatusUnauthorized && allowRetry && !IsAuthEndpoint(path) {
		drainAndClose(res.Body)
		log.Debug().Str("path", path).Msg("access token rejected, refreshing session")
		if err := c.refresh(ctx, sentToken); err != nil {
			return nil, err
		}
		return c.Request(ctx, path, opts, false)
	}

	defer res.Body.Close()
	return readResponse(res)
}

// Do is Request with the single refresh-and-retry enabled.
func (c *Client) Do(ctx context.Context, path string, opts Options) (*Response, error) {
	return c.Request(ctx, path, opts, true)
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, path, Options{Method: http.MethodGet})
}

// Post sends body as JSON. A nil body sends no payload.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.doJSON(ctx, http.MethodPost, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.doJSON(ctx, http.MethodPatch, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, path, Options{Method: http.MethodDelete})
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any) (*Response, error) {
	opts := Options{Method: method}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding %s %s body: %v", errors.ErrInvalidRequest, method, path, err)
		}
		opts.Body = data
	}
	return c.Do(ctx, path, opts)
}

// send performs one HTTP exchange and returns the access token it attached, if any.
func (c *Client) send(ctx context.Context, path string, opts Options, authenticate bool) (*http.Response, string, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if len(opts.Body) > 0 {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s %s: %v", errors.ErrInvalidRequest, method, path, err)
	}

	req.Header.Set(HeaderContentType, contentTypeJSON)
	for name, value := range opts.Headers {
		req.Header.Set(name, value)
	}

	var token string
	if authenticate {
		if token = c.session.AccessToken(); token != "" {
			req.Header.Set(HeaderAuthorization, "Bearer "+token)
		}
		if tenantID := c.session.ActiveTenantID(); tenantID != "" {
			req.Header.Set(HeaderTenantID, tenantID)
		}
	}
	req.Header.Set(HeaderRequestID, c.requestID())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", errors.Wrapf(err, "%s %s", method, path)
	}
	return res, token, nil
}

func readResponse(res *http.Response) (*Response, error) {
	if res.StatusCode == http.StatusNoContent {
		return &Response{StatusCode: res.StatusCode, Kind: KindEmpty}, nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading response body")
	}

	out := newResponse(res.StatusCode, body)
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, newAPIError(res, out)
	}
	return out, nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
