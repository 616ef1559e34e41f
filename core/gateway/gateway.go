package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dataforge-io/dataforge-go/core/logger"
)

const defaultTimeout = 30 * time.Second

// Session is the capability the gateway needs from the session layer: read
// the current token, and tear the session down when the server reports it
// expired. Logout is expected to clear storage and trigger navigation to the
// login entry point.
type Session interface {
	Token() (string, bool)
	Logout() error
}

// Client performs authenticated API calls with uniform failure classification.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    Session
	log        *slog.Logger
	newID      func() string
	timeout    time.Duration
}

// New creates a gateway client for the API at baseURL, drawing tokens from
// the given session.
func New(baseURL string, session Session, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    session,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:      uuid.NewString,
		timeout:    defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an authenticated GET and decodes the JSON payload into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// Post performs an authenticated POST with the given content type and body,
// decoding the JSON payload into out. Callers needing a longer bound than the
// default timeout attach their own deadline to ctx.
func (c *Client) Post(ctx context.Context, path, contentType string, body io.Reader, out any) error {
	return c.do(ctx, http.MethodPost, path, contentType, body, out)
}

// apiError is the server's error envelope. The "error" field takes priority
// over "message" when both are present.
type apiError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Err     string `json:"error"`
	Code    int    `json:"code"`
}

func (e apiError) text() string {
	if e.Err != "" {
		return e.Err
	}
	return e.Message
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	token, ok := c.session.Token()
	if !ok {
		// Local auth failure: redirect to login without touching the network.
		_ = c.session.Logout()
		return ErrNoToken
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	requestID := c.newID()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("request failed to reach server",
			logger.Method(method),
			logger.Path(path),
			logger.RequestID(requestID),
			logger.Error(err),
		)
		return errors.Join(ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Join(ErrUnreachable, err)
	}

	c.log.Debug("request completed",
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.RequestID(requestID),
		logger.Elapsed(start),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn("session expired, logging out",
			logger.Path(path),
			logger.RequestID(requestID),
		)
		if err := c.session.Logout(); err != nil {
			c.log.Warn("failed to clear expired session", logger.Error(err))
		}
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.text() != "" {
			return fmt.Errorf("%w: %s", ErrServer, apiErr.text())
		}
		return fmt.Errorf("%w: %s", ErrServer, resp.Status)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Join(ErrUnexpectedResponse, err)
		}
	}
	return nil
}
